package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/store-manager-api/internal/state"
)

func HealthcheckHandler(store state.Reader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":          "ok",
			"time":            time.Now(),
			"state_loaded_at": store.Snapshot().LoadedAt,
		})
	})
}
