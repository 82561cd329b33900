package scoring_test

import (
	"testing"

	"github.com/team-pulse/teampulse-hr/internal/scoring"
)

func TestScoreCustom_HandComputedRoundTrip(t *testing.T) {
	// Two questions worth 2 each; respondent earns 3 of the 4 available.
	qs := []scoring.Question{
		q("c1", 1, pointOpt("full", 2), pointOpt("half", 1)),
		q("c2", 2, pointOpt("full", 2), pointOpt("half", 1)),
	}
	ans := scoring.Answers{"c1": "full", "c2": "half"}
	r := scoring.ScoreCustom(qs, ans)
	if r.Score != 3 || r.Max != 4 {
		t.Fatalf("score/max = %d/%d, want 3/4", r.Score, r.Max)
	}
	if r.Percent != 75 {
		t.Fatalf("percent = %d, want 75", r.Percent)
	}
	if r.Label != "75%" {
		t.Fatalf("label = %q, want \"75%%\"", r.Label)
	}
}

func TestScoreCustom_UnansweredQuestionsStillCountInMax(t *testing.T) {
	qs := []scoring.Question{
		q("c1", 1, pointOpt("a", 4)),
		q("c2", 2, pointOpt("a", 4)),
	}
	r := scoring.ScoreCustom(qs, scoring.Answers{"c1": "a"})
	if r.Score != 4 || r.Max != 8 {
		t.Fatalf("score/max = %d/%d, want 4/8", r.Score, r.Max)
	}
	if r.Percent != 50 {
		t.Fatalf("percent = %d, want 50", r.Percent)
	}
}

func TestScoreCustom_ZeroMax(t *testing.T) {
	qs := []scoring.Question{q("c1", 1, pointOpt("a", 0))}
	r := scoring.ScoreCustom(qs, scoring.Answers{"c1": "a"})
	if r.Percent != 0 {
		t.Fatalf("percent = %d, want 0 on a zero denominator", r.Percent)
	}
	if r.Label != "0%" {
		t.Fatalf("label = %q, want \"0%%\"", r.Label)
	}
}

func TestScoreCustom_RoundsToNearestInteger(t *testing.T) {
	// 1 of 3 points: 33.33 rounds to 33; 2 of 3: 66.67 rounds to 67.
	qs := []scoring.Question{q("c1", 1, pointOpt("one", 1), pointOpt("two", 2), pointOpt("three", 3))}
	if r := scoring.ScoreCustom(qs, scoring.Answers{"c1": "one"}); r.Percent != 33 {
		t.Errorf("1/3 percent = %d, want 33", r.Percent)
	}
	if r := scoring.ScoreCustom(qs, scoring.Answers{"c1": "two"}); r.Percent != 67 {
		t.Errorf("2/3 percent = %d, want 67", r.Percent)
	}
}
