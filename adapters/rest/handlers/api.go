package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"task-planner/core"
)

func Register(mux *http.ServeMux, log *slog.Logger, svc *core.Service, timeout time.Duration) {
	// ping
	mux.Handle("GET /api/ping", NewPingHandler(log, map[string]core.Pinger{"storage": svc}, timeout))

	// accounts and sessions
	mux.Handle("POST /api/register", NewRegisterHandler(log, svc, timeout))
	mux.Handle("POST /api/login", NewLoginHandler(log, svc, timeout))
	mux.Handle("POST /api/logout", NewLogoutHandler(log, svc))
	mux.Handle("GET /api/me", NewMeHandler(log, svc))

	// tasks
	mux.Handle("GET /api/tasks", NewListTasksHandler(log, svc, timeout))
	mux.Handle("POST /api/tasks", NewCreateTaskHandler(log, svc, timeout))
	mux.Handle("PUT /api/tasks/{id}", NewUpdateTaskHandler(log, svc, timeout))
	mux.Handle("DELETE /api/tasks/{id}", NewDeleteTaskHandler(log, svc, timeout))
	mux.Handle("PUT /api/tasks/{id}/toggle", NewToggleTaskHandler(log, svc, timeout))

	// subtasks
	mux.Handle("GET /api/tasks/{id}/subtasks", NewListSubtasksHandler(log, svc, timeout))
	mux.Handle("POST /api/tasks/{id}/subtasks", NewCreateSubtaskHandler(log, svc, timeout))
	mux.Handle("PUT /api/tasks/{id}/subtasks/reorder", NewReorderSubtasksHandler(log, svc, timeout))
	mux.Handle("PUT /api/subtasks/{id}", NewUpdateSubtaskHandler(log, svc, timeout))
	mux.Handle("DELETE /api/subtasks/{id}", NewDeleteSubtaskHandler(log, svc, timeout))

	// stats
	mux.Handle("GET /api/stats", NewStatsHandler(log, svc, timeout))

	// pages
	mux.Handle("GET /{$}", NewIndexPageHandler(log, svc))
	mux.Handle("GET /login", NewLoginPageHandler(log, svc))
}
