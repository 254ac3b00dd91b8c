package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"task-planner/adapters/rest"
	"task-planner/core"
	"task-planner/pkg/res"
)

func NewStatsHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, err := rest.CurrentUser(r, svc.Sessions())
		if err != nil {
			rest.WriteErr(w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		stats, err := svc.Stats(ctx, username)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, stats, http.StatusOK)
	}
}
