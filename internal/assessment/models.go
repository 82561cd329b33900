package assessment

import "github.com/team-pulse/teampulse-hr/internal/scoring"

// Assessment is a published questionnaire employees respond to.
type Assessment struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Family    scoring.Family `json:"family"` // mbti, disc, holland, msq, custom
	Questions []Question     `json:"questions"`
	CreatedAt int64          `json:"created_at,omitempty"`
}

// Question order is business data: the satisfaction family buckets items
// into intrinsic/extrinsic groups by literal order number.
type Question struct {
	ID       string   `json:"id"`
	Order    int      `json:"order"`
	Required bool     `json:"required,omitempty"`
	Prompt   string   `json:"prompt,omitempty"`
	Options  []Option `json:"options,omitempty"`
}

// Option.Score decodes both historical shapes (bare number or
// dimension-code object), see scoring.Weights.
type Option struct {
	Value string          `json:"value"`
	Text  string          `json:"text,omitempty"`
	Score scoring.Weights `json:"score"`
}

// Response is one employee's answer sheet for an assessment.
type Response struct {
	ID           string            `json:"id"`
	AssessmentID string            `json:"assessment_id"`
	UserID       string            `json:"user_id"`
	Status       string            `json:"status"` // in_progress|submitted
	Answers      map[string]string `json:"answers"`
	Result       *scoring.Outcome  `json:"result,omitempty"`
	StartedAt    int64             `json:"started_at,omitempty"`
	SubmittedAt  int64             `json:"submitted_at,omitempty"`
}

// ScoringQuestions projects the questionnaire onto the scoring engine's
// minimal view.
func (a Assessment) ScoringQuestions() []scoring.Question {
	out := make([]scoring.Question, len(a.Questions))
	for i, q := range a.Questions {
		opts := make([]scoring.Option, len(q.Options))
		for j, o := range q.Options {
			opts[j] = scoring.Option{Value: o.Value, Text: o.Text, Weights: o.Score}
		}
		out[i] = scoring.Question{ID: q.ID, Order: q.Order, Required: q.Required, Options: opts}
	}
	return out
}
