package handlers

import (
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/taskline/notion-sync/internal/config"
)

type HealthHandler struct {
	cfg     config.Config
	started time.Time
}

func NewHealthHandler(cfg config.Config) *HealthHandler {
	return &HealthHandler{
		cfg:     cfg,
		started: time.Now(),
	}
}

func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Notion Task Manager API"})
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	notionStatus := "not_configured"
	if h.cfg.NotionConfigured() {
		notionStatus = "connected"
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":        "healthy",
		"notion_status": notionStatus,
		"started":       humanize.Time(h.started),
		"timestamp":     time.Now().UTC(),
	})
}
