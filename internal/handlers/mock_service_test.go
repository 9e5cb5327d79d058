package handlers

import (
	"context"
	"sync"
	"time"

	"home_patterns/internal/models"
	"home_patterns/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockHistory struct {
	view service.HistoryView
	err  error
}

func (m *mockHistory) Histories(ctx context.Context) (service.HistoryView, error) {
	return m.view, m.err
}

type mockMonitoring struct {
	mu      sync.Mutex
	devices []models.DeviceSnapshot
	err     error
	calls   int
}

func (m *mockMonitoring) Devices(ctx context.Context) ([]models.DeviceSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.devices, m.err
}

func (m *mockMonitoring) set(devices []models.DeviceSnapshot) {
	m.mu.Lock()
	m.devices = devices
	m.mu.Unlock()
}

type mockEventLog struct {
	resp      []models.HomeEvent
	err       error
	lastFrom  time.Time
	lastTo    time.Time
	lastType  string
	lastLimit int
	calls     int
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.HomeEvent, error) {
	m.calls++
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	m.lastLimit = f.Limit
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func temp(v float64) *float64 { return &v }
