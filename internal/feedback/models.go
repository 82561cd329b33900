package feedback

// Item is one piece of feedback routed to a department. Status moves
// open -> assigned -> resolved, and any state can be archived.
type Item struct {
	ID           string `json:"id"`
	AuthorID     string `json:"author_id"`
	DepartmentID string `json:"department_id"`
	AssigneeID   string `json:"assignee_id,omitempty"`
	Subject      string `json:"subject"`
	Body         string `json:"body,omitempty"`
	Status       string `json:"status"` // open|assigned|resolved|archived
	CreatedAt    int64  `json:"created_at,omitempty"`
	UpdatedAt    int64  `json:"updated_at,omitempty"`
}

const (
	StatusOpen     = "open"
	StatusAssigned = "assigned"
	StatusResolved = "resolved"
	StatusArchived = "archived"
)
