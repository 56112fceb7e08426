package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/thrivelog/thrivelog/internal/render"
	"github.com/thrivelog/thrivelog/internal/service"
)

type StatusHandler struct {
	statusService *service.StatusService
	db            *sqlx.DB
}

func NewStatusHandler(statusService *service.StatusService, db *sqlx.DB) *StatusHandler {
	return &StatusHandler{
		statusService: statusService,
		db:            db,
	}
}

func (h *StatusHandler) AIStatus(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, http.StatusOK, h.statusService.AIStatus(r.Context()))
}

// Health reports whether the database answers a ping
func (h *StatusHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	err := h.db.PingContext(ctx)
	if err != nil {
		slog.Error("health check failed", "error", err)
		render.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
