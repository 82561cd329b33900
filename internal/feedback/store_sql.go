package feedback

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"

	syncx "github.com/team-pulse/teampulse-hr/internal/sync"
)

type SQLStore struct {
	db     *sql.DB
	driver string
	events *syncx.EventRepo
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver, events: syncx.NewEventRepo(db)}
}

func (s *SQLStore) Create(it Item) (Item, error) {
	if it.Subject == "" {
		return Item{}, errors.New("subject required")
	}
	if it.DepartmentID == "" {
		return Item{}, errors.New("department_id required")
	}
	it.ID = uuid.NewString()
	it.Status = StatusOpen
	it.CreatedAt = time.Now().Unix()
	it.UpdatedAt = it.CreatedAt
	_, err := s.db.Exec(`INSERT INTO feedback (id,author_id,department_id,assignee_id,subject,body,status,created_at,updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		it.ID, it.AuthorID, it.DepartmentID, it.AssigneeID, it.Subject, it.Body, it.Status, it.CreatedAt, it.UpdatedAt)
	if err != nil {
		return Item{}, err
	}
	s.logEvent("FeedbackCreated", it)
	return it, nil
}

func (s *SQLStore) Get(id string) (Item, error) {
	row := s.db.QueryRow(`SELECT id,author_id,department_id,COALESCE(assignee_id,''),subject,COALESCE(body,''),status,created_at,updated_at
		FROM feedback WHERE id=$1`, id)
	var it Item
	if err := row.Scan(&it.ID, &it.AuthorID, &it.DepartmentID, &it.AssigneeID, &it.Subject, &it.Body, &it.Status, &it.CreatedAt, &it.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Item{}, errors.New("feedback not found")
		}
		return Item{}, err
	}
	return it, nil
}

// List filters by department and status; empty filters match everything.
// Archived items only show up when asked for explicitly.
func (s *SQLStore) List(departmentID, status string) ([]Item, error) {
	query := `SELECT id,author_id,department_id,COALESCE(assignee_id,''),subject,COALESCE(body,''),status,created_at,updated_at FROM feedback WHERE 1=1`
	args := []interface{}{}
	n := 0
	arg := func(v interface{}) string {
		n++
		args = append(args, v)
		return placeholder(n)
	}
	if departmentID != "" {
		query += ` AND department_id=` + arg(departmentID)
	}
	if status != "" {
		query += ` AND status=` + arg(status)
	} else {
		query += ` AND status<>'` + StatusArchived + `'`
	}
	query += ` ORDER BY created_at DESC`
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Item{}
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.AuthorID, &it.DepartmentID, &it.AssigneeID, &it.Subject, &it.Body, &it.Status, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (s *SQLStore) Assign(id, assigneeID string) (Item, error) {
	if assigneeID == "" {
		return Item{}, errors.New("assignee_id required")
	}
	return s.transition(id, StatusAssigned, "FeedbackAssigned", func(it *Item) error {
		if it.Status == StatusArchived {
			return errors.New("feedback is archived")
		}
		it.AssigneeID = assigneeID
		return nil
	})
}

func (s *SQLStore) Resolve(id string) (Item, error) {
	return s.transition(id, StatusResolved, "FeedbackResolved", func(it *Item) error {
		if it.Status == StatusArchived {
			return errors.New("feedback is archived")
		}
		return nil
	})
}

func (s *SQLStore) Archive(id string) (Item, error) {
	return s.transition(id, StatusArchived, "FeedbackArchived", func(it *Item) error { return nil })
}

func (s *SQLStore) transition(id, to, event string, check func(*Item) error) (Item, error) {
	it, err := s.Get(id)
	if err != nil {
		return Item{}, err
	}
	if err := check(&it); err != nil {
		return Item{}, err
	}
	it.Status = to
	it.UpdatedAt = time.Now().Unix()
	_, err = s.db.Exec(`UPDATE feedback SET status=$1, assignee_id=$2, updated_at=$3 WHERE id=$4`,
		it.Status, it.AssigneeID, it.UpdatedAt, it.ID)
	if err != nil {
		return Item{}, err
	}
	s.logEvent(event, it)
	return it, nil
}

func (s *SQLStore) logEvent(typ string, it Item) {
	data, _ := json.Marshal(map[string]string{
		"department_id": it.DepartmentID,
		"assignee_id":   it.AssigneeID,
		"status":        it.Status,
	})
	_ = s.events.Append(context.Background(), syncx.Event{Type: typ, Key: it.ID, DataJSON: string(data)})
}

func placeholder(n int) string {
	// Both supported drivers accept $n syntax.
	return "$" + strconv.Itoa(n)
}
