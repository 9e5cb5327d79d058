package handlers

import (
	"context"
	"net/http"
	"reflect"
	"strconv"
	"time"

	"home_patterns/internal/models"
	"home_patterns/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 1 << 12 // 4 KB

	envelopeDevices = "devices"
	envelopeRemote  = "remote"
)

// StreamOptions bounds how often /ws polls for changes. Clients pick an
// interval with ?interval=500ms or ?interval_ms=500, up to MaxInterval.
type StreamOptions struct {
	DefaultInterval time.Duration
	MaxInterval     time.Duration
}

var defaultStream = StreamOptions{DefaultInterval: time.Second, MaxInterval: 10 * time.Second}

type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// The stream only reports status, so any origin may subscribe.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// streamState is what the client last received; only changes are pushed.
type streamState struct {
	devicesSent bool
	devices     []models.DeviceSnapshot
	history     *service.HistoryView
}

// wsConnect sends the current devices (and remote histories when a journal
// reader is wired), then polls and pushes whichever of the two changed.
//
// @Summary      Device stream
// @Description  WebSocket upgrade. Messages are {"type":"devices"|"remote","data":...}, sent initially and then on change.
// @Tags         devices
// @Param        interval     query  string  false  "Poll interval, e.g. 500ms"
// @Param        interval_ms  query  int     false  "Poll interval in milliseconds"
// @Success      101  {string}  string  "Switching Protocols"
// @Router       /ws [get]
func (h *Handler) wsConnect(c *gin.Context) {
	interval := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	go h.startReader(conn, done)

	poll := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		poll.Stop()
		ping.Stop()
	}()

	ctx := c.Request.Context()
	var st streamState
	if err := h.pushChanges(ctx, conn, &st); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "err", err)
		}
		return
	}

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case <-poll.C:
			if err := h.pushChanges(ctx, conn, &st); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
		}
	}
}

// parseInterval reads ?interval=2s or ?interval_ms=2000 within the configured
// bounds; anything else falls back to the default.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= h.stream.MaxInterval {
			return d
		}
	}

	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 {
			if d := time.Duration(v) * time.Millisecond; d <= h.stream.MaxInterval {
				return d
			}
		}
	}

	return h.stream.DefaultInterval
}

// startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
	}
}

func (h *Handler) pushChanges(ctx context.Context, conn *websocket.Conn, st *streamState) error {
	devices, err := h.services.Monitoring.Devices(ctx)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_devices_failed", "err", err)
		}
		return err
	}
	if !st.devicesSent || !sameDevices(st.devices, devices) {
		if err := writeEnvelope(conn, envelopeDevices, devices); err != nil {
			return err
		}
		st.devicesSent, st.devices = true, devices
	}

	if h.services.HistoryReader == nil {
		return nil
	}
	view, err := h.services.HistoryReader.Histories(ctx)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_history_failed", "err", err)
		}
		return err
	}
	if st.history == nil || !reflect.DeepEqual(*st.history, view) {
		if err := writeEnvelope(conn, envelopeRemote, view); err != nil {
			return err
		}
		st.history = &view
	}
	return nil
}

func writeEnvelope(conn *websocket.Conn, typ string, data interface{}) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(wsEnvelope{Type: typ, Data: data})
}

// sameDevices compares readings and ignores UpdatedAt, which the live
// baseline restamps on every call.
func sameDevices(a, b []models.DeviceSnapshot) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Device != b[i].Device || a[i].Status != b[i].Status {
			return false
		}
		at, bt := a[i].TemperatureC, b[i].TemperatureC
		if (at == nil) != (bt == nil) || (at != nil && *at != *bt) {
			return false
		}
	}
	return true
}
