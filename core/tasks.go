package core

import (
	"context"
	"fmt"
	"time"
)

const (
	defaultCategory = "General"
	defaultPriority = "Medium"
)

// TaskInput carries the fields a create may set; everything else defaults.
type TaskInput struct {
	Title       string
	Description string
	Category    *string
	Priority    *string
	DueDate     *string
	Tags        []string
}

// ListTasks returns the user's tasks in store (insertion) order.
func (s *Service) ListTasks(ctx context.Context, username string) ([]Task, error) {
	tasks, err := s.storage.LoadTasks(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask appends a task with id = max existing id + 1. Ids are never
// reused, even after deletions.
func (s *Service) CreateTask(ctx context.Context, username string, in TaskInput) (Task, error) {
	unlock := s.locks.lock(username)
	defer unlock()

	tasks, err := s.storage.LoadTasks(ctx, username)
	if err != nil {
		return Task{}, fmt.Errorf("load tasks: %w", err)
	}

	t := Task{
		ID:          nextTaskID(tasks),
		Title:       in.Title,
		Description: in.Description,
		Category:    defaultCategory,
		Priority:    defaultPriority,
		Completed:   false,
		CreatedAt:   time.Now().Format(time.RFC3339),
		Tags:        []string{},
	}
	if in.Category != nil {
		t.Category = *in.Category
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}
	if in.DueDate != nil {
		t.DueDate = *in.DueDate
	}
	if in.Tags != nil {
		t.Tags = in.Tags
	}

	tasks = append(tasks, t)
	if err := s.storage.SaveTasks(ctx, username, tasks); err != nil {
		return Task{}, fmt.Errorf("save tasks: %w", err)
	}
	return t, nil
}

// UpdateTask applies a patch to the task with the given id. Nil patch fields
// keep their current value.
func (s *Service) UpdateTask(ctx context.Context, username string, id int64, p TaskPatch) (Task, error) {
	unlock := s.locks.lock(username)
	defer unlock()

	tasks, err := s.storage.LoadTasks(ctx, username)
	if err != nil {
		return Task{}, fmt.Errorf("load tasks: %w", err)
	}

	i := indexOfTask(tasks, id)
	if i < 0 {
		return Task{}, fmt.Errorf("%w: task %d", ErrNotFound, id)
	}

	t := &tasks[i]
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Tags != nil {
		t.Tags = *p.Tags
	}

	if err := s.storage.SaveTasks(ctx, username, tasks); err != nil {
		return Task{}, fmt.Errorf("save tasks: %w", err)
	}
	return *t, nil
}

// DeleteTask removes the task and every subtask referencing it. Deleting an
// unknown id succeeds; delete is idempotent.
func (s *Service) DeleteTask(ctx context.Context, username string, id int64) error {
	unlock := s.locks.lock(username)
	defer unlock()

	tasks, err := s.storage.LoadTasks(ctx, username)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if err := s.storage.SaveTasks(ctx, username, kept); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}

	subtasks, err := s.storage.LoadSubtasks(ctx, username)
	if err != nil {
		return fmt.Errorf("load subtasks: %w", err)
	}
	keptSubs := subtasks[:0]
	for _, sub := range subtasks {
		if sub.TaskID != id {
			keptSubs = append(keptSubs, sub)
		}
	}
	if err := s.storage.SaveSubtasks(ctx, username, keptSubs); err != nil {
		return fmt.Errorf("save subtasks: %w", err)
	}
	return nil
}

// ToggleTask flips the completed flag.
func (s *Service) ToggleTask(ctx context.Context, username string, id int64) (Task, error) {
	unlock := s.locks.lock(username)
	defer unlock()

	tasks, err := s.storage.LoadTasks(ctx, username)
	if err != nil {
		return Task{}, fmt.Errorf("load tasks: %w", err)
	}

	i := indexOfTask(tasks, id)
	if i < 0 {
		return Task{}, fmt.Errorf("%w: task %d", ErrNotFound, id)
	}

	tasks[i].Completed = !tasks[i].Completed
	if err := s.storage.SaveTasks(ctx, username, tasks); err != nil {
		return Task{}, fmt.Errorf("save tasks: %w", err)
	}
	return tasks[i], nil
}

func nextTaskID(tasks []Task) int64 {
	var max int64
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

func indexOfTask(tasks []Task, id int64) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
