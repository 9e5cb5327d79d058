package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"home_patterns/internal/models"
	"home_patterns/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func TestParseInterval(t *testing.T) {
	h := NewHandler(&service.Service{}, nil)
	tight := NewHandler(&service.Service{}, nil, WithStream(StreamOptions{
		DefaultInterval: 200 * time.Millisecond,
		MaxInterval:     500 * time.Millisecond,
	}))

	cases := []struct {
		name string
		h    *Handler
		u    string
		want time.Duration
	}{
		{"default_when_missing", h, "/ws", 1 * time.Second},
		{"interval_string_valid", h, "/ws?interval=200ms", 200 * time.Millisecond},
		{"interval_ms_valid", h, "/ws?interval_ms=150", 150 * time.Millisecond},
		{"interval_too_large", h, "/ws?interval=20s", 1 * time.Second},
		{"interval_ms_too_large", h, "/ws?interval_ms=20000", 1 * time.Second},
		{"interval_invalid_string", h, "/ws?interval=bogus", 1 * time.Second},
		{"both_present_interval_wins", h, "/ws?interval=2s&interval_ms=150", 2 * time.Second},
		{"configured_default", tight, "/ws", 200 * time.Millisecond},
		{"configured_max_rejects", tight, "/ws?interval=1s", 200 * time.Millisecond},
		{"configured_max_allows", tight, "/ws?interval_ms=500", 500 * time.Millisecond},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, tc.u, nil)
			if got := tc.h.parseInterval(c); got != tc.want {
				t.Fatalf("got %v, want %v for %s", got, tc.want, tc.u)
			}
		})
	}
}

func TestSameDevices_IgnoresUpdatedAt(t *testing.T) {
	now := time.Now()
	a := []models.DeviceSnapshot{{Device: models.DeviceThermostat, TemperatureC: temp(5), UpdatedAt: now}}
	b := []models.DeviceSnapshot{{Device: models.DeviceThermostat, TemperatureC: temp(5), UpdatedAt: now.Add(time.Minute)}}
	if !sameDevices(a, b) {
		t.Fatal("snapshots differing only in UpdatedAt should match")
	}
	b[0].TemperatureC = temp(6)
	if sameDevices(a, b) {
		t.Fatal("different readings should not match")
	}
	if sameDevices(a, nil) {
		t.Fatal("length mismatch should not match")
	}
}

type envelope struct {
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func dialStream(t *testing.T, s *service.Service, query string) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", NewHandler(s, nil).wsConnect)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws"
	u.RawQuery = query

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn, wait time.Duration) (envelope, error) {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(wait))
	var env envelope
	err := conn.ReadJSON(&env)
	return env, err
}

func TestWebSocket_InitialDevicesAndRemote(t *testing.T) {
	mon := &mockMonitoring{devices: []models.DeviceSnapshot{
		{Device: models.DeviceThermostat, TemperatureC: temp(21.5)},
		{Device: models.DeviceLight, Status: "ON"},
	}}
	hist := &mockHistory{view: service.HistoryView{Session: "s", Executed: []string{"turn on light"}, Undone: []string{}}}
	conn := dialStream(t, &service.Service{Monitoring: mon, HistoryReader: hist}, "interval_ms=20")

	env, err := readEnvelope(t, conn, time.Second)
	if err != nil {
		t.Fatalf("read devices: %v", err)
	}
	if env.Type != envelopeDevices {
		t.Fatalf("first envelope type = %q", env.Type)
	}
	var snaps []models.DeviceSnapshot
	if err := json.Unmarshal(env.Data, &snaps); err != nil {
		t.Fatalf("unmarshal devices: %v", err)
	}
	if len(snaps) != 2 || snaps[0].TemperatureC == nil || *snaps[0].TemperatureC != 21.5 || snaps[1].Status != "ON" {
		t.Fatalf("unexpected devices: %+v", snaps)
	}

	env, err = readEnvelope(t, conn, time.Second)
	if err != nil {
		t.Fatalf("read remote: %v", err)
	}
	var view service.HistoryView
	if env.Type != envelopeRemote || json.Unmarshal(env.Data, &view) != nil {
		t.Fatalf("bad remote envelope: %+v", env)
	}
	if view.Session != "s" || len(view.Executed) != 1 {
		t.Fatalf("unexpected view: %+v", view)
	}

	// Nothing changed, so several poll ticks pass silently.
	if env, err := readEnvelope(t, conn, 150*time.Millisecond); err == nil {
		t.Fatalf("unexpected push without a change: %+v", env)
	}
}

func TestWebSocket_PushesOnDeviceChange(t *testing.T) {
	mon := &mockMonitoring{devices: []models.DeviceSnapshot{{Device: models.DeviceFan, Status: "OFF"}}}
	conn := dialStream(t, &service.Service{Monitoring: mon}, "interval_ms=20")

	if env, err := readEnvelope(t, conn, time.Second); err != nil || env.Type != envelopeDevices {
		t.Fatalf("initial: %+v %v", env, err)
	}

	mon.set([]models.DeviceSnapshot{{Device: models.DeviceFan, Status: "ON"}})

	env, err := readEnvelope(t, conn, time.Second)
	if err != nil {
		t.Fatalf("read change: %v", err)
	}
	var snaps []models.DeviceSnapshot
	if err := json.Unmarshal(env.Data, &snaps); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Type != envelopeDevices || len(snaps) != 1 || snaps[0].Status != "ON" {
		t.Fatalf("unexpected change envelope: %+v", env)
	}
}

func TestWebSocket_InitialDevicesError_Closes(t *testing.T) {
	mon := &mockMonitoring{err: errors.New("boom")}
	conn := dialStream(t, &service.Service{Monitoring: mon}, "")

	// The server closes right after the initial Devices call fails.
	if env, err := readEnvelope(t, conn, 500*time.Millisecond); err == nil {
		t.Fatalf("expected read error (closed), got message: %+v", env)
	}
}
