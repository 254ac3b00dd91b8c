package core

import (
	"context"
	"errors"
	"testing"
)

func TestCreateTask_Defaults(t *testing.T) {
	t.Parallel()

	svc := newTestService()

	task, err := svc.CreateTask(context.Background(), "alice", TaskInput{Title: "write report"})
	if err != nil {
		t.Fatalf("CreateTask returned error: %v", err)
	}

	if task.ID != 1 {
		t.Fatalf("expected id 1, got %d", task.ID)
	}
	if task.Category != "General" {
		t.Fatalf("expected default category General, got %q", task.Category)
	}
	if task.Priority != "Medium" {
		t.Fatalf("expected default priority Medium, got %q", task.Priority)
	}
	if task.Completed {
		t.Fatalf("new task must not be completed")
	}
	if task.DueDate != "" {
		t.Fatalf("expected empty due date, got %q", task.DueDate)
	}
	if task.Tags == nil || len(task.Tags) != 0 {
		t.Fatalf("expected empty tags slice, got %#v", task.Tags)
	}
	if task.CreatedAt == "" {
		t.Fatalf("expected created_at to be set")
	}
}

func TestCreateTask_IDIsMaxPlusOne(t *testing.T) {
	t.Parallel()

	svc := newTestService()

	mustCreateTask(t, svc, "alice", "one")
	second := mustCreateTask(t, svc, "alice", "two")
	third := mustCreateTask(t, svc, "alice", "three")

	if second.ID != 2 || third.ID != 3 {
		t.Fatalf("expected ids 2 and 3, got %d and %d", second.ID, third.ID)
	}

	// delete a non-max id: the sequence keeps counting from the max
	if err := svc.DeleteTask(context.Background(), "alice", second.ID); err != nil {
		t.Fatalf("DeleteTask returned error: %v", err)
	}
	next := mustCreateTask(t, svc, "alice", "four")
	if next.ID != 4 {
		t.Fatalf("expected id 4 after deletion, got %d", next.ID)
	}
}

func TestTaskIDs_IndependentPerUser(t *testing.T) {
	t.Parallel()

	svc := newTestService()

	a := mustCreateTask(t, svc, "alice", "hers")
	b := mustCreateTask(t, svc, "bob", "his")

	if a.ID != 1 || b.ID != 1 {
		t.Fatalf("expected both users to start at id 1, got %d and %d", a.ID, b.ID)
	}

	aliceTasks, err := svc.ListTasks(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ListTasks returned error: %v", err)
	}
	if len(aliceTasks) != 1 || aliceTasks[0].Title != "hers" {
		t.Fatalf("alice sees %#v", aliceTasks)
	}
}

func TestUpdateTask_PartialPatch(t *testing.T) {
	t.Parallel()

	svc := newTestService()

	task := mustCreateTask(t, svc, "alice", "old title")

	updated, err := svc.UpdateTask(context.Background(), "alice", task.ID, TaskPatch{
		Priority: strPtr("High"),
	})
	if err != nil {
		t.Fatalf("UpdateTask returned error: %v", err)
	}

	if updated.Priority != "High" {
		t.Fatalf("expected priority High, got %q", updated.Priority)
	}
	if updated.Title != "old title" {
		t.Fatalf("title must be preserved, got %q", updated.Title)
	}
	if updated.Category != "General" {
		t.Fatalf("category must be preserved, got %q", updated.Category)
	}
}

func TestUpdateTask_UnknownID(t *testing.T) {
	t.Parallel()

	svc := newTestService()

	_, err := svc.UpdateTask(context.Background(), "alice", 42, TaskPatch{Title: strPtr("x")})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestToggleTask_TwiceRestoresState(t *testing.T) {
	t.Parallel()

	svc := newTestService()

	task := mustCreateTask(t, svc, "alice", "flip me")

	once, err := svc.ToggleTask(context.Background(), "alice", task.ID)
	if err != nil {
		t.Fatalf("first toggle returned error: %v", err)
	}
	if !once.Completed {
		t.Fatalf("expected completed after first toggle")
	}

	twice, err := svc.ToggleTask(context.Background(), "alice", task.ID)
	if err != nil {
		t.Fatalf("second toggle returned error: %v", err)
	}
	if twice.Completed {
		t.Fatalf("expected pending after second toggle")
	}
}

func TestToggleTask_UnknownID(t *testing.T) {
	t.Parallel()

	svc := newTestService()

	_, err := svc.ToggleTask(context.Background(), "alice", 7)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteTask_CascadesToItsSubtasksOnly(t *testing.T) {
	t.Parallel()

	svc := newTestService()

	doomed := mustCreateTask(t, svc, "alice", "doomed")
	kept := mustCreateTask(t, svc, "alice", "kept")
	mustCreateSubtask(t, svc, "alice", doomed.ID, "a")
	mustCreateSubtask(t, svc, "alice", doomed.ID, "b")
	survivor := mustCreateSubtask(t, svc, "alice", kept.ID, "c")

	if err := svc.DeleteTask(context.Background(), "alice", doomed.ID); err != nil {
		t.Fatalf("DeleteTask returned error: %v", err)
	}

	gone, err := svc.ListSubtasks(context.Background(), "alice", doomed.ID)
	if err != nil {
		t.Fatalf("ListSubtasks returned error: %v", err)
	}
	if len(gone) != 0 {
		t.Fatalf("expected cascade delete, still have %#v", gone)
	}

	left, err := svc.ListSubtasks(context.Background(), "alice", kept.ID)
	if err != nil {
		t.Fatalf("ListSubtasks returned error: %v", err)
	}
	if len(left) != 1 || left[0].ID != survivor.ID {
		t.Fatalf("subtasks of other tasks must survive, got %#v", left)
	}
}

func TestDeleteTask_UnknownIDIsNoOp(t *testing.T) {
	t.Parallel()

	svc := newTestService()

	mustCreateTask(t, svc, "alice", "stays")

	if err := svc.DeleteTask(context.Background(), "alice", 99); err != nil {
		t.Fatalf("delete of unknown id must succeed, got %v", err)
	}

	tasks, err := svc.ListTasks(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ListTasks returned error: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
}

func TestListTasks_InsertionOrder(t *testing.T) {
	t.Parallel()

	svc := newTestService()

	mustCreateTask(t, svc, "alice", "first")
	mustCreateTask(t, svc, "alice", "second")
	mustCreateTask(t, svc, "alice", "third")

	tasks, err := svc.ListTasks(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ListTasks returned error: %v", err)
	}

	titles := []string{"first", "second", "third"}
	for i, want := range titles {
		if tasks[i].Title != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, tasks[i].Title)
		}
	}
}
