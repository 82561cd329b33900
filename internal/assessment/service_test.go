package assessment_test

import (
	"strings"
	"testing"

	"github.com/team-pulse/teampulse-hr/internal/assessment"
	"github.com/team-pulse/teampulse-hr/internal/scoring"
)

/* ---------------- Fixture builders ---------------- */

func mbtiAssessment(id string) assessment.Assessment {
	axes := [][2]string{{"E", "I"}, {"S", "N"}, {"T", "F"}, {"J", "P"}}
	qs := make([]assessment.Question, len(axes))
	for i, ax := range axes {
		qs[i] = assessment.Question{
			ID:       "q" + string(rune('1'+i)),
			Order:    i + 1,
			Required: true,
			Prompt:   "pick one",
			Options: []assessment.Option{
				{Value: "a", Text: "first", Score: scoring.DimWeights(map[string]int{ax[0]: 1})},
				{Value: "b", Text: "second", Score: scoring.DimWeights(map[string]int{ax[1]: 1})},
			},
		}
	}
	return assessment.Assessment{ID: id, Title: "Type Indicator", Family: scoring.FamilyMBTI, Questions: qs}
}

func customAssessment(id string) assessment.Assessment {
	return assessment.Assessment{
		ID:     id,
		Title:  "Onboarding Quiz",
		Family: scoring.FamilyCustom,
		Questions: []assessment.Question{
			{ID: "c1", Order: 1, Required: true, Options: []assessment.Option{
				{Value: "right", Score: scoring.PointWeight(2)},
				{Value: "wrong", Score: scoring.PointWeight(0)},
			}},
			{ID: "c2", Order: 2, Required: true, Options: []assessment.Option{
				{Value: "right", Score: scoring.PointWeight(2)},
				{Value: "wrong", Score: scoring.PointWeight(0)},
			}},
		},
	}
}

func mustPut(t *testing.T, store assessment.Store, a assessment.Assessment) {
	t.Helper()
	if err := store.PutAssessment(a); err != nil {
		t.Fatalf("put assessment %s: %v", a.ID, err)
	}
}

/* ---------------- Memory store ---------------- */

func TestMemoryStoreSubmitFlow(t *testing.T) {
	store := assessment.NewInMemoryStore()
	mustPut(t, store, mbtiAssessment("mbti-1"))

	resp, err := store.NewResponse("mbti-1", "alice")
	if err != nil {
		t.Fatalf("new response: %v", err)
	}
	if resp.Status != "in_progress" || resp.UserID != "alice" {
		t.Fatalf("unexpected fresh response: %+v", resp)
	}

	// Partial answers must block submission and name what is missing.
	if _, err := store.SaveAnswers(resp.ID, map[string]string{"q1": "a", "q2": "a"}); err != nil {
		t.Fatalf("save answers: %v", err)
	}
	if _, err := store.Submit(resp.ID); err == nil {
		t.Fatal("submit with unanswered required questions should fail")
	} else if !strings.Contains(err.Error(), "q3") || !strings.Contains(err.Error(), "q4") {
		t.Fatalf("error should name missing questions, got: %v", err)
	}

	if _, err := store.SaveAnswers(resp.ID, map[string]string{"q3": "a", "q4": "a"}); err != nil {
		t.Fatalf("save remaining answers: %v", err)
	}
	done, err := store.Submit(resp.ID)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if done.Status != "submitted" || done.SubmittedAt == 0 {
		t.Fatalf("submission not recorded: %+v", done)
	}
	if done.Result == nil {
		t.Fatal("submitted response has no result")
	}
	if done.Result.Personality != "ESTJ" || done.Result.Score != 100 {
		t.Fatalf("got personality %q score %d, want ESTJ 100", done.Result.Personality, done.Result.Score)
	}
}

func TestSubmitIsIdempotent(t *testing.T) {
	store := assessment.NewInMemoryStore()
	mustPut(t, store, customAssessment("quiz-1"))

	resp, _ := store.NewResponse("quiz-1", "bob")
	if _, err := store.SaveAnswers(resp.ID, map[string]string{"c1": "right", "c2": "wrong"}); err != nil {
		t.Fatalf("save answers: %v", err)
	}
	first, err := store.Submit(resp.ID)
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	second, err := store.Submit(resp.ID)
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if second.SubmittedAt != first.SubmittedAt || second.Result.Score != first.Result.Score {
		t.Fatalf("resubmit changed the record: %+v vs %+v", first, second)
	}
}

func TestSaveAfterSubmitRejected(t *testing.T) {
	store := assessment.NewInMemoryStore()
	mustPut(t, store, customAssessment("quiz-2"))

	resp, _ := store.NewResponse("quiz-2", "bob")
	_, _ = store.SaveAnswers(resp.ID, map[string]string{"c1": "right", "c2": "right"})
	if _, err := store.Submit(resp.ID); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := store.SaveAnswers(resp.ID, map[string]string{"c1": "wrong"}); err == nil {
		t.Fatal("saving into a submitted response should fail")
	}
}

func TestSaveAnswersMerges(t *testing.T) {
	store := assessment.NewInMemoryStore()
	mustPut(t, store, mbtiAssessment("mbti-2"))

	resp, _ := store.NewResponse("mbti-2", "alice")
	_, _ = store.SaveAnswers(resp.ID, map[string]string{"q1": "a"})
	_, _ = store.SaveAnswers(resp.ID, map[string]string{"q2": "b"})
	merged, err := store.SaveAnswers(resp.ID, map[string]string{"q1": "b"})
	if err != nil {
		t.Fatalf("save answers: %v", err)
	}
	if merged.Answers["q1"] != "b" || merged.Answers["q2"] != "b" {
		t.Fatalf("merge lost answers: %v", merged.Answers)
	}
}

func TestPutAssessmentRejectsUnknownFamily(t *testing.T) {
	store := assessment.NewInMemoryStore()
	err := store.PutAssessment(assessment.Assessment{ID: "x", Family: scoring.Family("enneagram")})
	if err == nil || !strings.Contains(err.Error(), "enneagram") {
		t.Fatalf("want unknown-family error naming the family, got %v", err)
	}
}

func TestNewResponseUnknownAssessment(t *testing.T) {
	store := assessment.NewInMemoryStore()
	if _, err := store.NewResponse("nope", "alice"); err == nil {
		t.Fatal("response against a missing assessment should fail")
	}
}

func TestListResponsesFilters(t *testing.T) {
	store := assessment.NewInMemoryStore()
	mustPut(t, store, customAssessment("quiz-a"))
	mustPut(t, store, customAssessment("quiz-b"))
	_, _ = store.NewResponse("quiz-a", "alice")
	_, _ = store.NewResponse("quiz-a", "bob")
	_, _ = store.NewResponse("quiz-b", "alice")

	all, err := store.ListResponses("")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("want 3 responses, got %d", len(all))
	}
	some, err := store.ListResponses("quiz-a")
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(some) != 2 {
		t.Fatalf("want 2 responses for quiz-a, got %d", len(some))
	}
	for _, r := range some {
		if r.AssessmentID != "quiz-a" {
			t.Fatalf("filter leaked response %+v", r)
		}
	}
}

/* ---------------- ScoreSubmission ---------------- */

func TestScoreSubmissionCustomPercent(t *testing.T) {
	a := customAssessment("quiz-3")
	out, err := assessment.ScoreSubmission(a, map[string]string{"c1": "right", "c2": "wrong"})
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if out.Score != 50 {
		t.Fatalf("want score 50, got %d", out.Score)
	}
	res, ok := out.Details.(scoring.CustomResult)
	if !ok {
		t.Fatalf("details type %T", out.Details)
	}
	if res.Score != 2 || res.Max != 4 || res.Label != "50%" {
		t.Fatalf("unexpected custom result: %+v", res)
	}
}

func TestScoreSubmissionBlocksMissingRequired(t *testing.T) {
	a := mbtiAssessment("mbti-3")
	if _, err := assessment.ScoreSubmission(a, map[string]string{"q1": "a"}); err == nil {
		t.Fatal("want error for unanswered required questions")
	}
}
