package db

import (
	_ "embed"
	"fmt"
)

//go:embed migrations/01_create_users.up.sql
var createUsersUp string

//go:embed migrations/02_create_tasks.up.sql
var createTasksUp string

//go:embed migrations/03_create_subtasks.up.sql
var createSubtasksUp string

// Migrate applies the schema; statements are idempotent.
func (s *Storage) Migrate() error {
	s.log.Debug("running storage migrations")

	if _, err := s.conn.Exec(createUsersUp); err != nil {
		return fmt.Errorf("apply users migration: %w", err)
	}
	if _, err := s.conn.Exec(createTasksUp); err != nil {
		return fmt.Errorf("apply tasks migration: %w", err)
	}
	if _, err := s.conn.Exec(createSubtasksUp); err != nil {
		return fmt.Errorf("apply subtasks migration: %w", err)
	}

	s.log.Debug("storage migrations finished")
	return nil
}
