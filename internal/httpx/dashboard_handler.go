package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"tokohp/internal/shop"
)

type StatsSource interface {
	Snapshot(ctx context.Context) (shop.StatsSnapshot, error)
}

type DashboardHandler struct {
	Stats StatsSource
	Cache Cache
	Log   *zap.Logger
}

func (h *DashboardHandler) Register(r *chi.Mux) {
	r.Get("/api/dashboard/stats", h.stats)
}

func (h *DashboardHandler) stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if body, ok := h.Cache.Get(ctx); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
		return
	}

	snap, err := h.Stats.Snapshot(ctx)
	if err != nil {
		h.Log.Error("stats snapshot", zap.Error(err))
		writeError(w, err)
		return
	}
	stats := shop.ComputeStats(snap)

	body, _ := json.Marshal(stats)
	h.Cache.Set(ctx, body)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
