package todos

// CreateTodoRequest is the create payload. Due date and assignee are
// optional; blank strings become NULL in storage.
type CreateTodoRequest struct {
	PropertyID  uint   `json:"property_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"` // "2006-01-02", optional
	Assignee    string `json:"assignee"`
}

type SetStatusRequest struct {
	Status string `json:"status"`
}
