package department

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

type SQLStore struct {
	db     *sql.DB
	driver string
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) CreateDepartment(d Department) (Department, error) {
	if d.Name == "" {
		return Department{}, errors.New("department name required")
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	d.CreatedAt = time.Now().Unix()
	_, err := s.db.Exec(`INSERT INTO departments (id,name,manager_id,created_at) VALUES ($1,$2,$3,$4)
		ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, manager_id=EXCLUDED.manager_id`,
		d.ID, d.Name, d.ManagerID, d.CreatedAt)
	if err != nil {
		return Department{}, err
	}
	return d, nil
}

func (s *SQLStore) GetDepartment(id string) (Department, error) {
	row := s.db.QueryRow(`SELECT id,name,COALESCE(manager_id,''),created_at FROM departments WHERE id=$1`, id)
	var d Department
	if err := row.Scan(&d.ID, &d.Name, &d.ManagerID, &d.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Department{}, errors.New("department not found")
		}
		return Department{}, err
	}
	return d, nil
}

func (s *SQLStore) ListDepartments() ([]Department, error) {
	rows, err := s.db.Query(`SELECT id,name,COALESCE(manager_id,''),created_at FROM departments ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Department{}
	for rows.Next() {
		var d Department
		if err := rows.Scan(&d.ID, &d.Name, &d.ManagerID, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// UpsertUser creates or updates a user keyed by username. The password hash
// is only overwritten when a new one is supplied.
func (s *SQLStore) UpsertUser(u User) (User, error) {
	if u.Username == "" {
		return User{}, errors.New("username required")
	}
	if u.Role == "" {
		u.Role = "employee"
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt = time.Now().Unix()
	_, err := s.db.Exec(`INSERT INTO users (id,username,display_name,role,department_id,password_hash,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (username) DO UPDATE SET
			display_name=EXCLUDED.display_name,
			role=EXCLUDED.role,
			department_id=EXCLUDED.department_id,
			password_hash=CASE WHEN EXCLUDED.password_hash='' THEN users.password_hash ELSE EXCLUDED.password_hash END`,
		u.ID, u.Username, u.DisplayName, u.Role, u.DepartmentID, u.PasswordHash, u.CreatedAt)
	if err != nil {
		return User{}, err
	}
	return s.GetUserByUsername(u.Username)
}

func (s *SQLStore) GetUserByUsername(username string) (User, error) {
	row := s.db.QueryRow(`SELECT id,username,COALESCE(display_name,''),role,COALESCE(department_id,''),password_hash,created_at
		FROM users WHERE username=$1`, username)
	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.DisplayName, &u.Role, &u.DepartmentID, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, errors.New("user not found")
		}
		return User{}, err
	}
	return u, nil
}

func (s *SQLStore) ListUsers(departmentID string) ([]User, error) {
	query := `SELECT id,username,COALESCE(display_name,''),role,COALESCE(department_id,''),created_at FROM users`
	args := []interface{}{}
	if departmentID != "" {
		query += ` WHERE department_id=$1`
		args = append(args, departmentID)
	}
	query += ` ORDER BY username`
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []User{}
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Username, &u.DisplayName, &u.Role, &u.DepartmentID, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
