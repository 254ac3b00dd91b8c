package core

import (
	"context"
	"fmt"
)

// Stats aggregates the user's tasks. priority_counts holds, for each of the
// three recognized priorities, the number of still-open tasks; tasks with
// any other priority string count toward the totals only.
func (s *Service) Stats(ctx context.Context, username string) (Stats, error) {
	tasks, err := s.storage.LoadTasks(ctx, username)
	if err != nil {
		return Stats{}, fmt.Errorf("load tasks: %w", err)
	}

	out := Stats{
		PriorityCounts: map[string]int{"High": 0, "Medium": 0, "Low": 0},
	}
	out.Total = len(tasks)
	for _, t := range tasks {
		if t.Completed {
			out.Completed++
			continue
		}
		if _, known := out.PriorityCounts[t.Priority]; known {
			out.PriorityCounts[t.Priority]++
		}
	}
	out.Pending = out.Total - out.Completed
	return out, nil
}
