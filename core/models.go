package core

type User struct {
	Password  string `json:"password"` // bcrypt hash
	CreatedAt string `json:"created_at"`
}

type Task struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Priority    string   `json:"priority"` // High | Medium | Low, not enforced
	DueDate     string   `json:"due_date"`
	Completed   bool     `json:"completed"`
	CreatedAt   string   `json:"created_at"`
	Tags        []string `json:"tags"`
}

type Subtask struct {
	ID     int64  `json:"id"`
	TaskID int64  `json:"task_id"`
	Title  string `json:"title"`
	IsDone bool   `json:"is_done"`
	Order  int    `json:"order"`
}

// TaskPatch carries the fields an update may change. Nil means "leave as is".
type TaskPatch struct {
	Title       *string
	Description *string
	Category    *string
	Priority    *string
	DueDate     *string
	Completed   *bool
	Tags        *[]string
}

type SubtaskPatch struct {
	Title  *string
	IsDone *bool
	Order  *int
}

type Stats struct {
	Total          int            `json:"total"`
	Completed      int            `json:"completed"`
	Pending        int            `json:"pending"`
	PriorityCounts map[string]int `json:"priority_counts"`
}
