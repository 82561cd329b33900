package assessment

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/team-pulse/teampulse-hr/internal/scoring"
)

type Store interface {
	PutAssessment(a Assessment) error
	GetAssessment(id string) (Assessment, error)
	ListAssessments() ([]Assessment, error)
	NewResponse(assessmentID, userID string) (Response, error)
	SaveAnswers(responseID string, answers map[string]string) (Response, error)
	Submit(responseID string) (Response, error)
	GetResponse(id string) (Response, error)
	ListResponses(assessmentID string) ([]Response, error)
}

type memoryStore struct {
	mu          sync.RWMutex
	assessments map[string]Assessment
	responses   map[string]Response
}

func NewInMemoryStore() Store {
	return &memoryStore{
		assessments: map[string]Assessment{},
		responses:   map[string]Response{},
	}
}

func (m *memoryStore) PutAssessment(a Assessment) error {
	if a.ID == "" {
		return errors.New("assessment id required")
	}
	if !scoring.KnownFamily(a.Family) {
		return fmt.Errorf("unknown assessment family %q", a.Family)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if a.CreatedAt == 0 {
		a.CreatedAt = time.Now().Unix()
	}
	m.assessments[a.ID] = a
	return nil
}

func (m *memoryStore) GetAssessment(id string) (Assessment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.assessments[id]
	if !ok {
		return Assessment{}, errors.New("assessment not found")
	}
	return a, nil
}

func (m *memoryStore) ListAssessments() ([]Assessment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Assessment, 0, len(m.assessments))
	for _, a := range m.assessments {
		out = append(out, a)
	}
	return out, nil
}

func (m *memoryStore) NewResponse(assessmentID, userID string) (Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.assessments[assessmentID]; !ok {
		return Response{}, errors.New("assessment not found")
	}
	r := Response{
		ID:           uuid.NewString(),
		AssessmentID: assessmentID,
		UserID:       userID,
		Status:       "in_progress",
		Answers:      map[string]string{},
		StartedAt:    time.Now().Unix(),
	}
	m.responses[r.ID] = r
	return r, nil
}

func (m *memoryStore) SaveAnswers(responseID string, answers map[string]string) (Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.responses[responseID]
	if !ok {
		return Response{}, errors.New("response not found")
	}
	if r.Status == "submitted" {
		return Response{}, errors.New("response already submitted")
	}
	merged := make(map[string]string, len(r.Answers)+len(answers))
	for k, v := range r.Answers {
		merged[k] = v
	}
	for k, v := range answers {
		merged[k] = v
	}
	r.Answers = merged
	m.responses[responseID] = r
	return r, nil
}

func (m *memoryStore) Submit(responseID string) (Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.responses[responseID]
	if !ok {
		return Response{}, errors.New("response not found")
	}
	if r.Status == "submitted" {
		return r, nil
	}
	a, ok := m.assessments[r.AssessmentID]
	if !ok {
		return Response{}, errors.New("assessment not found")
	}
	out, err := ScoreSubmission(a, r.Answers)
	if err != nil {
		return Response{}, err
	}
	r.Result = &out
	r.Status = "submitted"
	r.SubmittedAt = time.Now().Unix()
	m.responses[responseID] = r
	return r, nil
}

func (m *memoryStore) GetResponse(id string) (Response, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.responses[id]
	if !ok {
		return Response{}, errors.New("response not found")
	}
	return r, nil
}

func (m *memoryStore) ListResponses(assessmentID string) ([]Response, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Response{}
	for _, r := range m.responses {
		if assessmentID == "" || r.AssessmentID == assessmentID {
			out = append(out, r)
		}
	}
	return out, nil
}

// ScoreSubmission validates the answer set and runs the scoring engine.
// Unanswered required questions block submission; the validation itself is
// also reachable on its own via the validate endpoint.
func ScoreSubmission(a Assessment, answers map[string]string) (scoring.Outcome, error) {
	qs := a.ScoringQuestions()
	if missing := scoring.MissingAnswers(a.Family, qs, answers); len(missing) > 0 {
		return scoring.Outcome{}, fmt.Errorf("unanswered required questions: %s", strings.Join(missing, ", "))
	}
	return scoring.Score(a.Family, qs, answers)
}
