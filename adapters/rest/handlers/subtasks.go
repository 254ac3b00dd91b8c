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

func NewListSubtasksHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, err := rest.CurrentUser(r, svc.Sessions())
		if err != nil {
			rest.WriteErr(w, err)
			return
		}

		taskID, ok := pathID(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		subtasks, err := svc.ListSubtasks(ctx, username, taskID)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, subtasks, http.StatusOK)
	}
}

func NewCreateSubtaskHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, err := rest.CurrentUser(r, svc.Sessions())
		if err != nil {
			rest.WriteErr(w, err)
			return
		}

		taskID, ok := pathID(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		var in rest.CreateSubtaskIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		sub, err := svc.CreateSubtask(ctx, username, taskID, in.Title)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, sub, http.StatusCreated)
	}
}

func NewUpdateSubtaskHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, err := rest.CurrentUser(r, svc.Sessions())
		if err != nil {
			rest.WriteErr(w, err)
			return
		}

		id, ok := pathID(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		var in rest.UpdateSubtaskIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		sub, err := svc.UpdateSubtask(ctx, username, id, core.SubtaskPatch{
			Title:  in.Title,
			IsDone: in.IsDone,
			Order:  in.Order,
		})
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, sub, http.StatusOK)
	}
}

func NewDeleteSubtaskHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, err := rest.CurrentUser(r, svc.Sessions())
		if err != nil {
			rest.WriteErr(w, err)
			return
		}

		id, ok := pathID(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		if err := svc.DeleteSubtask(ctx, username, id); err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Success(w)
	}
}

func NewReorderSubtasksHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, err := rest.CurrentUser(r, svc.Sessions())
		if err != nil {
			rest.WriteErr(w, err)
			return
		}

		taskID, ok := pathID(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		var in rest.ReorderIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		subtasks, err := svc.ReorderSubtasks(ctx, username, taskID, in.Order)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, subtasks, http.StatusOK)
	}
}
