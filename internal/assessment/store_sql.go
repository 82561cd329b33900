package assessment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/team-pulse/teampulse-hr/internal/scoring"
	syncx "github.com/team-pulse/teampulse-hr/internal/sync"
)

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
	events *syncx.EventRepo
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver, events: syncx.NewEventRepo(db)}
}

func (s *SQLStore) PutAssessment(a Assessment) error {
	if a.ID == "" {
		return errors.New("assessment id required")
	}
	qj, err := json.Marshal(a.Questions)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO assessments (id,title,family,questions_json,created_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (id) DO UPDATE SET title=EXCLUDED.title, family=EXCLUDED.family, questions_json=EXCLUDED.questions_json`,
		a.ID, a.Title, string(a.Family), string(qj), time.Now().Unix())
	return err
}

func (s *SQLStore) GetAssessment(id string) (Assessment, error) {
	row := s.db.QueryRow(`SELECT id,title,family,questions_json,created_at FROM assessments WHERE id=$1`, id)
	var a Assessment
	var fam, qjson string
	if err := row.Scan(&a.ID, &a.Title, &fam, &qjson, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Assessment{}, errors.New("assessment not found")
		}
		return Assessment{}, err
	}
	a.Family = scoring.Family(fam)
	if err := json.Unmarshal([]byte(qjson), &a.Questions); err != nil {
		return Assessment{}, err
	}
	return a, nil
}

func (s *SQLStore) ListAssessments() ([]Assessment, error) {
	rows, err := s.db.Query(`SELECT id,title,family,created_at FROM assessments ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Assessment{}
	for rows.Next() {
		var a Assessment
		var fam string
		if err := rows.Scan(&a.ID, &a.Title, &fam, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Family = scoring.Family(fam)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *SQLStore) NewResponse(assessmentID, userID string) (Response, error) {
	var exist int
	if err := s.db.QueryRow(`SELECT 1 FROM assessments WHERE id=$1`, assessmentID).Scan(&exist); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Response{}, errors.New("assessment not found")
		}
		return Response{}, err
	}
	r := Response{
		ID:           uuid.NewString(),
		AssessmentID: assessmentID,
		UserID:       userID,
		Status:       "in_progress",
		Answers:      map[string]string{},
		StartedAt:    time.Now().Unix(),
	}
	aj, _ := json.Marshal(r.Answers)
	_, err := s.db.Exec(`INSERT INTO responses (id,assessment_id,user_id,status,answers_json,started_at)
		VALUES ($1,$2,$3,'in_progress',$4,$5)`,
		r.ID, r.AssessmentID, r.UserID, string(aj), r.StartedAt)
	if err != nil {
		return Response{}, err
	}
	return r, nil
}

func (s *SQLStore) SaveAnswers(responseID string, answers map[string]string) (Response, error) {
	r, err := s.GetResponse(responseID)
	if err != nil {
		return Response{}, err
	}
	if r.Status == "submitted" {
		return Response{}, errors.New("response already submitted")
	}
	if r.Answers == nil {
		r.Answers = map[string]string{}
	}
	for k, v := range answers {
		r.Answers[k] = v
	}
	buf, _ := json.Marshal(r.Answers)
	if _, err := s.db.Exec(`UPDATE responses SET answers_json=$1 WHERE id=$2`, string(buf), responseID); err != nil {
		return Response{}, err
	}
	return s.GetResponse(responseID)
}

func (s *SQLStore) Submit(responseID string) (Response, error) {
	r, err := s.GetResponse(responseID)
	if err != nil {
		return Response{}, err
	}
	if r.Status == "submitted" {
		return r, nil
	}
	a, err := s.GetAssessment(r.AssessmentID)
	if err != nil {
		return Response{}, err
	}
	out, err := ScoreSubmission(a, r.Answers)
	if err != nil {
		return Response{}, err
	}

	rj, err := json.Marshal(out)
	if err != nil {
		return Response{}, err
	}
	now := time.Now().Unix()
	if _, err := s.db.Exec(`UPDATE responses SET status='submitted', result_json=$1, submitted_at=$2 WHERE id=$3`,
		string(rj), now, responseID); err != nil {
		return Response{}, err
	}

	_ = s.events.Append(context.Background(), syncx.Event{
		Type:     "ResponseSubmitted",
		Key:      responseID,
		DataJSON: fmt.Sprintf(`{"assessment_id":%q,"user_id":%q,"score":%d,"personality":%q}`, r.AssessmentID, r.UserID, out.Score, out.Personality),
	})
	return s.GetResponse(responseID)
}

func (s *SQLStore) GetResponse(id string) (Response, error) {
	row := s.db.QueryRow(`SELECT id,assessment_id,user_id,status,answers_json,result_json,started_at,COALESCE(submitted_at,0)
		FROM responses WHERE id=$1`, id)
	var r Response
	var ajson string
	var rjson sql.NullString
	if err := row.Scan(&r.ID, &r.AssessmentID, &r.UserID, &r.Status, &ajson, &rjson, &r.StartedAt, &r.SubmittedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Response{}, errors.New("response not found")
		}
		return Response{}, err
	}
	if err := json.Unmarshal([]byte(ajson), &r.Answers); err != nil {
		r.Answers = map[string]string{}
	}
	if rjson.Valid && rjson.String != "" {
		var out scoring.Outcome
		if err := json.Unmarshal([]byte(rjson.String), &out); err == nil {
			r.Result = &out
		}
	}
	return r, nil
}

func (s *SQLStore) ListResponses(assessmentID string) ([]Response, error) {
	query := `SELECT id,assessment_id,user_id,status,answers_json,result_json,started_at,COALESCE(submitted_at,0) FROM responses`
	args := []interface{}{}
	if assessmentID != "" {
		query += ` WHERE assessment_id=$1`
		args = append(args, assessmentID)
	}
	query += ` ORDER BY started_at DESC`
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Response{}
	for rows.Next() {
		var r Response
		var ajson string
		var rjson sql.NullString
		if err := rows.Scan(&r.ID, &r.AssessmentID, &r.UserID, &r.Status, &ajson, &rjson, &r.StartedAt, &r.SubmittedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(ajson), &r.Answers); err != nil {
			r.Answers = map[string]string{}
		}
		if rjson.Valid && rjson.String != "" {
			var out scoring.Outcome
			if err := json.Unmarshal([]byte(rjson.String), &out); err == nil {
				r.Result = &out
			}
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
