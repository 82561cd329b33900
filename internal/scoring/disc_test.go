package scoring_test

import (
	"testing"

	"github.com/team-pulse/teampulse-hr/internal/scoring"
)

// One question whose single option carries the whole weight map keeps the
// arithmetic of each case easy to read.
func discCase(weights map[string]int) ([]scoring.Question, scoring.Answers) {
	qs := []scoring.Question{q("q1", 1, opt("a", weights))}
	return qs, scoring.Answers{"q1": "a"}
}

func TestScoreDISC_GapOf19Blends(t *testing.T) {
	// 59% vs 40%: gap 19, strictly under the threshold.
	qs, ans := discCase(map[string]int{"D": 59, "I": 40, "S": 1})
	r := scoring.ScoreDISC(qs, ans)
	if r.Type != "DI" {
		t.Fatalf("type = %q, want DI", r.Type)
	}
}

func TestScoreDISC_GapOf20DoesNotBlend(t *testing.T) {
	// 60% vs 40%: the boundary is exclusive.
	qs, ans := discCase(map[string]int{"D": 60, "I": 40})
	r := scoring.ScoreDISC(qs, ans)
	if r.Type != "D" {
		t.Fatalf("type = %q, want D", r.Type)
	}
}

func TestScoreDISC_BlendLettersInCanonicalOrder(t *testing.T) {
	// C outscores D; the blend code is still DC, never CD.
	qs, ans := discCase(map[string]int{"C": 55, "D": 45})
	r := scoring.ScoreDISC(qs, ans)
	if r.Type != "DC" {
		t.Fatalf("type = %q, want DC", r.Type)
	}
	if _, ok := map[string]bool{"DI": true, "DS": true, "DC": true, "IS": true, "IC": true, "SC": true}[r.Type]; !ok {
		t.Fatalf("blend %q is not one of the six fixed blends", r.Type)
	}
}

func TestScoreDISC_ZeroRunnerUpDoesNotBlend(t *testing.T) {
	qs, ans := discCase(map[string]int{"S": 10})
	r := scoring.ScoreDISC(qs, ans)
	if r.Type != "S" {
		t.Fatalf("type = %q, want S", r.Type)
	}
	if r.Percentages["S"] != 100 {
		t.Errorf("S%% = %d, want 100", r.Percentages["S"])
	}
}

func TestScoreDISC_AllZeroScores(t *testing.T) {
	r := scoring.ScoreDISC([]scoring.Question{q("q1", 1, opt("a", nil))}, scoring.Answers{})
	// Highest of four zeros in canonical order is D; no blend path runs.
	if r.Type != "D" {
		t.Fatalf("type = %q, want D", r.Type)
	}
	for code, p := range r.Percentages {
		if p != 0 {
			t.Errorf("pct[%s] = %d, want 0", code, p)
		}
	}
}

func TestScoreDISC_PercentagesOverFourDimensionTotal(t *testing.T) {
	qs, ans := discCase(map[string]int{"D": 2, "I": 2, "S": 2, "C": 2})
	r := scoring.ScoreDISC(qs, ans)
	for code, p := range r.Percentages {
		if p != 25 {
			t.Errorf("pct[%s] = %d, want 25", code, p)
		}
	}
	// Four-way tie: D and I are top1/top2 after the stable sort, gap 0.
	if r.Type != "DI" {
		t.Errorf("type = %q, want DI", r.Type)
	}
}

func TestScoreDISC_ProfileCoversAllCodes(t *testing.T) {
	cases := []map[string]int{
		{"D": 10}, {"I": 10}, {"S": 10}, {"C": 10},
		{"D": 5, "I": 5}, {"D": 5, "S": 5}, {"D": 5, "C": 5},
		{"I": 5, "S": 5}, {"I": 5, "C": 5}, {"S": 5, "C": 5},
	}
	for _, weights := range cases {
		qs, ans := discCase(weights)
		r := scoring.ScoreDISC(qs, ans)
		if r.Profile.Description == "" {
			t.Errorf("code %q has no profile", r.Type)
		}
	}
}
