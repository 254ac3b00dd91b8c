// Package file persists collections as whole JSON files under one directory:
// users.json for the credential map, tasks_<user>.json / subtasks_<user>.json
// per user. A write replaces the whole file via a rename, so readers never
// see a partial collection.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"task-planner/core"
)

const usersFileName = "users.json"

type Storage struct {
	log *slog.Logger
	dir string
}

func New(log *slog.Logger, dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	log.Debug("file storage ready", "dir", dir)
	return &Storage{log: log, dir: dir}, nil
}

func (s *Storage) Ping(context.Context) error {
	_, err := os.Stat(s.dir)
	return err
}

func (s *Storage) LoadUsers(context.Context) (map[string]core.User, error) {
	users := make(map[string]core.User)
	if err := s.read(usersFileName, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Storage) SaveUsers(_ context.Context, users map[string]core.User) error {
	return s.write(usersFileName, users)
}

func (s *Storage) LoadTasks(_ context.Context, username string) ([]core.Task, error) {
	tasks := []core.Task{}
	if err := s.read(collectionFileName("tasks", username), &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Storage) SaveTasks(_ context.Context, username string, tasks []core.Task) error {
	return s.write(collectionFileName("tasks", username), tasks)
}

func (s *Storage) LoadSubtasks(_ context.Context, username string) ([]core.Subtask, error) {
	subtasks := []core.Subtask{}
	if err := s.read(collectionFileName("subtasks", username), &subtasks); err != nil {
		return nil, err
	}
	return subtasks, nil
}

func (s *Storage) SaveSubtasks(_ context.Context, username string, subtasks []core.Subtask) error {
	return s.write(collectionFileName("subtasks", username), subtasks)
}

// read unmarshals one collection file; a missing file is an empty collection.
func (s *Storage) read(name string, out any) error {
	b, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("unmarshal %s: %w", name, err)
	}
	return nil
}

func (s *Storage) write(name string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}

	p := filepath.Join(s.dir, name)
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, p); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}

// collectionFileName keeps only letters, digits, '-' and '_' of the username
// before building the file name.
func collectionFileName(kind, username string) string {
	var b strings.Builder
	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return fmt.Sprintf("%s_%s.json", kind, b.String())
}
