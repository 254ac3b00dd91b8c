package rest

type CredentialsIn struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateTaskIn struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    *string  `json:"category,omitempty"`
	Priority    *string  `json:"priority,omitempty"`
	DueDate     *string  `json:"due_date,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type UpdateTaskIn struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Priority    *string   `json:"priority,omitempty"`
	DueDate     *string   `json:"due_date,omitempty"`
	Completed   *bool     `json:"completed,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}

type CreateSubtaskIn struct {
	Title string `json:"title"`
}

type UpdateSubtaskIn struct {
	Title  *string `json:"title,omitempty"`
	IsDone *bool   `json:"is_done,omitempty"`
	Order  *int    `json:"order,omitempty"`
}

type ReorderIn struct {
	Order []int64 `json:"order"`
}
