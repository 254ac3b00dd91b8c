// Package db is a Postgres drop-in for the flat-file store. It keeps the
// same contract: every save replaces one user's whole collection, inside a
// single transaction. Row position preserves the collection's store order.
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"task-planner/core"
)

type Storage struct {
	log  *slog.Logger
	conn *sqlx.DB
}

func New(log *slog.Logger, address string) (*Storage, error) {
	conn, err := sqlx.Connect("pgx", address)
	if err != nil {
		log.Error("connection problem", "address", address, "error", err)
		return nil, err
	}
	return &Storage{log: log, conn: conn}, nil
}

func (s *Storage) Close() error {
	return s.conn.Close()
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

func (s *Storage) LoadUsers(ctx context.Context) (map[string]core.User, error) {
	const q = `SELECT username, password, created_at FROM users`

	var rows []struct {
		Username  string `db:"username"`
		Password  string `db:"password"`
		CreatedAt string `db:"created_at"`
	}
	if err := s.conn.SelectContext(ctx, &rows, q); err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}

	users := make(map[string]core.User, len(rows))
	for _, r := range rows {
		users[r.Username] = core.User{Password: r.Password, CreatedAt: r.CreatedAt}
	}
	return users, nil
}

func (s *Storage) SaveUsers(ctx context.Context, users map[string]core.User) error {
	const q = `
		INSERT INTO users(username, password, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE
		SET password = EXCLUDED.password, created_at = EXCLUDED.created_at;
	`

	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for username, u := range users {
		if _, err := tx.ExecContext(ctx, q, username, u.Password, u.CreatedAt); err != nil {
			return fmt.Errorf("upsert user %s: %w", username, err)
		}
	}
	return tx.Commit()
}

type taskRow struct {
	ID          int64  `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Category    string `db:"category"`
	Priority    string `db:"priority"`
	DueDate     string `db:"due_date"`
	Completed   bool   `db:"completed"`
	CreatedAt   string `db:"created_at"`
	Tags        string `db:"tags"` // JSON-encoded list
}

func (s *Storage) LoadTasks(ctx context.Context, username string) ([]core.Task, error) {
	const q = `
		SELECT id, title, description, category, priority, due_date, completed, created_at, tags
		FROM tasks
		WHERE owner = $1
		ORDER BY pos ASC;
	`

	var rows []taskRow
	if err := s.conn.SelectContext(ctx, &rows, q, username); err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}

	tasks := make([]core.Task, 0, len(rows))
	for _, r := range rows {
		t := core.Task{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Category:    r.Category,
			Priority:    r.Priority,
			DueDate:     r.DueDate,
			Completed:   r.Completed,
			CreatedAt:   r.CreatedAt,
			Tags:        []string{},
		}
		if r.Tags != "" {
			if err := json.Unmarshal([]byte(r.Tags), &t.Tags); err != nil {
				return nil, fmt.Errorf("decode tags of task %d: %w", r.ID, err)
			}
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (s *Storage) SaveTasks(ctx context.Context, username string, tasks []core.Task) error {
	const ins = `
		INSERT INTO tasks(owner, pos, id, title, description, category, priority, due_date, completed, created_at, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`

	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE owner = $1`, username); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}
	for pos, t := range tasks {
		tags, err := json.Marshal(t.Tags)
		if err != nil {
			return fmt.Errorf("encode tags of task %d: %w", t.ID, err)
		}
		_, err = tx.ExecContext(ctx, ins,
			username, pos, t.ID, t.Title, t.Description, t.Category, t.Priority,
			t.DueDate, t.Completed, t.CreatedAt, string(tags))
		if err != nil {
			return fmt.Errorf("insert task %d: %w", t.ID, err)
		}
	}
	return tx.Commit()
}

func (s *Storage) LoadSubtasks(ctx context.Context, username string) ([]core.Subtask, error) {
	const q = `
		SELECT id, task_id, title, is_done, ord
		FROM subtasks
		WHERE owner = $1
		ORDER BY pos ASC;
	`

	var rows []struct {
		ID     int64  `db:"id"`
		TaskID int64  `db:"task_id"`
		Title  string `db:"title"`
		IsDone bool   `db:"is_done"`
		Ord    int    `db:"ord"`
	}
	if err := s.conn.SelectContext(ctx, &rows, q, username); err != nil {
		return nil, fmt.Errorf("select subtasks: %w", err)
	}

	subtasks := make([]core.Subtask, 0, len(rows))
	for _, r := range rows {
		subtasks = append(subtasks, core.Subtask{
			ID:     r.ID,
			TaskID: r.TaskID,
			Title:  r.Title,
			IsDone: r.IsDone,
			Order:  r.Ord,
		})
	}
	return subtasks, nil
}

func (s *Storage) SaveSubtasks(ctx context.Context, username string, subtasks []core.Subtask) error {
	const ins = `
		INSERT INTO subtasks(owner, pos, id, task_id, title, is_done, ord)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM subtasks WHERE owner = $1`, username); err != nil {
		return fmt.Errorf("clear subtasks: %w", err)
	}
	for pos, sub := range subtasks {
		_, err := tx.ExecContext(ctx, ins,
			username, pos, sub.ID, sub.TaskID, sub.Title, sub.IsDone, sub.Order)
		if err != nil {
			return fmt.Errorf("insert subtask %d: %w", sub.ID, err)
		}
	}
	return tx.Commit()
}
