package rest

import (
	"net/http"

	"task-planner/core"
)

const SessionCookie = "session"

// CurrentUser resolves the acting username from the request's session
// cookie. Missing or stale cookies yield ErrNotAuthenticated.
func CurrentUser(r *http.Request, sessions core.Sessions) (string, error) {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return "", core.ErrNotAuthenticated
	}
	username, ok := sessions.Resolve(c.Value)
	if !ok {
		return "", core.ErrNotAuthenticated
	}
	return username, nil
}

func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
