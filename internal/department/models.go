package department

type Department struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ManagerID string `json:"manager_id,omitempty"`
	CreatedAt int64  `json:"created_at,omitempty"`
}

type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	DisplayName  string `json:"display_name,omitempty"`
	Role         string `json:"role"` // employee|manager|hr|admin
	DepartmentID string `json:"department_id,omitempty"`
	PasswordHash string `json:"-"` // bcrypt
	CreatedAt    int64  `json:"created_at,omitempty"`
}
