package service

import (
	"context"
	"time"

	"home_patterns/internal/models"
)

type fakeStateRepo struct {
	listResp []models.DeviceSnapshot
	listErr  error
	saveErr  error
	saved    [][]models.DeviceSnapshot
}

func (f *fakeStateRepo) Save(_ context.Context, snaps ...models.DeviceSnapshot) error {
	f.saved = append(f.saved, snaps)
	return f.saveErr
}

func (f *fakeStateRepo) List(_ context.Context) ([]models.DeviceSnapshot, error) {
	return f.listResp, f.listErr
}

type fakeEventRepo struct {
	appendErr error
	events    []models.HomeEvent

	listResp []models.HomeEvent
	listErr  error
	gotFrom  time.Time
	gotTo    time.Time
	gotType  string
	calls    int
}

func (f *fakeEventRepo) Append(_ context.Context, e models.HomeEvent) error {
	f.events = append(f.events, e)
	return f.appendErr
}

func (f *fakeEventRepo) List(_ context.Context, from, to time.Time, typ string) ([]models.HomeEvent, error) {
	f.calls++
	f.gotFrom, f.gotTo, f.gotType = from, to, typ
	return f.listResp, f.listErr
}

func (f *fakeEventRepo) types() []string {
	out := make([]string, len(f.events))
	for i, e := range f.events {
		out[i] = e.Type
	}
	return out
}
