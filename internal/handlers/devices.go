package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errGetDevices = "failed to load devices"
	errGetHistory = "failed to load remote history"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      List devices
// @Description  Latest snapshot of the thermostat, light and fan. Before anything is journaled the configured baseline is returned.
// @Tags         devices
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, devices"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/devices [get]
func (h *Handler) getDevices(c *gin.Context) {
	devices, err := h.services.Monitoring.Devices(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetDevices, "devices_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(devices),
		"devices": devices,
	})
}

// @Summary      Remote histories
// @Description  Executed and undone commands of the latest remote session, oldest first, rebuilt from the journal.
// @Tags         remote
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "session, executed, undone, can_undo, can_redo"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/remote [get]
func (h *Handler) getRemote(c *gin.Context) {
	view, err := h.services.HistoryReader.Histories(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetHistory, "remote_history_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session":  view.Session,
		"executed": view.Executed,
		"undone":   view.Undone,
		"can_undo": len(view.Executed) > 0,
		"can_redo": len(view.Undone) > 0,
	})
}
