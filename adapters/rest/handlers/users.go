package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"task-planner/adapters/rest"
	"task-planner/core"
	"task-planner/pkg/res"
)

func NewRegisterHandler(log *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.CredentialsIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		username, token, err := svc.Register(ctx, in.Username, in.Password)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}

		log.Info("user registered", "username", username)
		rest.SetSessionCookie(w, token)
		res.Json(w, map[string]any{"ok": true, "username": username}, http.StatusCreated)
	}
}

func NewLoginHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.CredentialsIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		username, token, err := svc.Login(ctx, in.Username, in.Password)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}

		rest.SetSessionCookie(w, token)
		res.Json(w, map[string]any{"ok": true, "username": username}, http.StatusOK)
	}
}

// Logout always succeeds, session or not.
func NewLogoutHandler(_ *slog.Logger, svc *core.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(rest.SessionCookie); err == nil {
			svc.Logout(c.Value)
		}
		rest.ClearSessionCookie(w)
		res.Json(w, map[string]any{"ok": true}, http.StatusOK)
	}
}

func NewMeHandler(_ *slog.Logger, svc *core.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(rest.SessionCookie)
		if err != nil {
			rest.WriteErr(w, core.ErrNotAuthenticated)
			return
		}
		username, err := svc.Whoami(c.Value)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, map[string]any{"username": username}, http.StatusOK)
	}
}
