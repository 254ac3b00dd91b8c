package core

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// ListSubtasks returns the subtasks of one task sorted ascending by order.
// The sort is stable, so equal orders keep their store order.
func (s *Service) ListSubtasks(ctx context.Context, username string, taskID int64) ([]Subtask, error) {
	subtasks, err := s.storage.LoadSubtasks(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("load subtasks: %w", err)
	}
	return subtasksOfTask(subtasks, taskID), nil
}

// CreateSubtask appends a subtask to a task. Subtask ids come from one
// sequence shared across all of the user's tasks; order starts at the
// current subtask count of the task.
func (s *Service) CreateSubtask(ctx context.Context, username string, taskID int64, title string) (Subtask, error) {
	unlock := s.locks.lock(username)
	defer unlock()

	tasks, err := s.storage.LoadTasks(ctx, username)
	if err != nil {
		return Subtask{}, fmt.Errorf("load tasks: %w", err)
	}
	if indexOfTask(tasks, taskID) < 0 {
		return Subtask{}, fmt.Errorf("%w: task %d", ErrNotFound, taskID)
	}

	subtasks, err := s.storage.LoadSubtasks(ctx, username)
	if err != nil {
		return Subtask{}, fmt.Errorf("load subtasks: %w", err)
	}

	count := 0
	for _, sub := range subtasks {
		if sub.TaskID == taskID {
			count++
		}
	}

	sub := Subtask{
		ID:     nextSubtaskID(subtasks),
		TaskID: taskID,
		Title:  strings.TrimSpace(title),
		IsDone: false,
		Order:  count,
	}
	subtasks = append(subtasks, sub)
	if err := s.storage.SaveSubtasks(ctx, username, subtasks); err != nil {
		return Subtask{}, fmt.Errorf("save subtasks: %w", err)
	}
	return sub, nil
}

// UpdateSubtask applies a patch; nil fields keep their current value.
func (s *Service) UpdateSubtask(ctx context.Context, username string, id int64, p SubtaskPatch) (Subtask, error) {
	unlock := s.locks.lock(username)
	defer unlock()

	subtasks, err := s.storage.LoadSubtasks(ctx, username)
	if err != nil {
		return Subtask{}, fmt.Errorf("load subtasks: %w", err)
	}

	i := indexOfSubtask(subtasks, id)
	if i < 0 {
		return Subtask{}, fmt.Errorf("%w: subtask %d", ErrNotFound, id)
	}

	sub := &subtasks[i]
	if p.Title != nil {
		sub.Title = *p.Title
	}
	if p.IsDone != nil {
		sub.IsDone = *p.IsDone
	}
	if p.Order != nil {
		sub.Order = *p.Order
	}

	if err := s.storage.SaveSubtasks(ctx, username, subtasks); err != nil {
		return Subtask{}, fmt.Errorf("save subtasks: %w", err)
	}
	return *sub, nil
}

// DeleteSubtask removes the subtask; unknown ids are a no-op.
func (s *Service) DeleteSubtask(ctx context.Context, username string, id int64) error {
	unlock := s.locks.lock(username)
	defer unlock()

	subtasks, err := s.storage.LoadSubtasks(ctx, username)
	if err != nil {
		return fmt.Errorf("load subtasks: %w", err)
	}

	kept := subtasks[:0]
	for _, sub := range subtasks {
		if sub.ID != id {
			kept = append(kept, sub)
		}
	}
	if err := s.storage.SaveSubtasks(ctx, username, kept); err != nil {
		return fmt.Errorf("save subtasks: %w", err)
	}
	return nil
}

// ReorderSubtasks renumbers every subtask of the task: ids named in
// orderedIDs take ranks 0..n-1 in the given sequence, the rest follow in
// their previous order. Ids in orderedIDs that belong to another task (or
// to nothing) are ignored. The result never holds duplicate order values.
func (s *Service) ReorderSubtasks(ctx context.Context, username string, taskID int64, orderedIDs []int64) ([]Subtask, error) {
	unlock := s.locks.lock(username)
	defer unlock()

	subtasks, err := s.storage.LoadSubtasks(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("load subtasks: %w", err)
	}

	rank := make(map[int64]int, len(orderedIDs))
	for i, id := range orderedIDs {
		rank[id] = i
	}

	ofTask := subtasksOfTask(subtasks, taskID)

	// named ids first in request order, the rest keep their relative order
	sort.SliceStable(ofTask, func(a, b int) bool {
		ra, aNamed := rank[ofTask[a].ID]
		rb, bNamed := rank[ofTask[b].ID]
		switch {
		case aNamed && bNamed:
			return ra < rb
		case aNamed:
			return true
		case bNamed:
			return false
		default:
			return false
		}
	})

	newOrder := make(map[int64]int, len(ofTask))
	for i, sub := range ofTask {
		newOrder[sub.ID] = i
	}
	for i := range subtasks {
		if subtasks[i].TaskID == taskID {
			subtasks[i].Order = newOrder[subtasks[i].ID]
		}
	}

	if err := s.storage.SaveSubtasks(ctx, username, subtasks); err != nil {
		return nil, fmt.Errorf("save subtasks: %w", err)
	}
	return subtasksOfTask(subtasks, taskID), nil
}

func nextSubtaskID(subtasks []Subtask) int64 {
	var max int64
	for _, sub := range subtasks {
		if sub.ID > max {
			max = sub.ID
		}
	}
	return max + 1
}

func indexOfSubtask(subtasks []Subtask, id int64) int {
	for i := range subtasks {
		if subtasks[i].ID == id {
			return i
		}
	}
	return -1
}

func subtasksOfTask(subtasks []Subtask, taskID int64) []Subtask {
	out := make([]Subtask, 0)
	for _, sub := range subtasks {
		if sub.TaskID == taskID {
			out = append(out, sub)
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Order < out[b].Order })
	return out
}
