package handlers

import (
	"log/slog"
	"net/http"

	"task-planner/adapters/rest"
	"task-planner/core"
	"task-planner/web"
)

// NewIndexPageHandler serves the app page; without a session it redirects
// to the login page instead.
func NewIndexPageHandler(_ *slog.Logger, svc *core.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := rest.CurrentUser(r, svc.Sessions()); err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(web.Index)
	}
}

// NewLoginPageHandler serves the login page; already-authenticated visitors
// are sent back to the app.
func NewLoginPageHandler(_ *slog.Logger, svc *core.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := rest.CurrentUser(r, svc.Sessions()); err == nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(web.Login)
	}
}
