package core

import "context"

type Pinger interface {
	Ping(ctx context.Context) error
}

// Storage persists whole collections. Every mutation in the services is a
// full load-modify-save of one collection; Storage never diffs.
type Storage interface {
	Pinger

	LoadUsers(ctx context.Context) (map[string]User, error)
	SaveUsers(ctx context.Context, users map[string]User) error

	LoadTasks(ctx context.Context, username string) ([]Task, error)
	SaveTasks(ctx context.Context, username string, tasks []Task) error

	LoadSubtasks(ctx context.Context, username string) ([]Subtask, error)
	SaveSubtasks(ctx context.Context, username string, subtasks []Subtask) error
}

// Sessions maps opaque tokens to usernames.
type Sessions interface {
	Create(username string) (token string)
	Resolve(token string) (username string, ok bool)
	Destroy(token string)
}
