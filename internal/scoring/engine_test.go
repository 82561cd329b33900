package scoring_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/team-pulse/teampulse-hr/internal/scoring"
)

func TestScore_UnknownFamilyIsTheOnlyError(t *testing.T) {
	_, err := scoring.Score(scoring.Family("enneagram"), nil, nil)
	if err == nil {
		t.Fatalf("expected an error for an unknown family")
	}
	if !strings.Contains(err.Error(), "enneagram") {
		t.Fatalf("error %q does not name the offending family", err)
	}
}

func TestScore_CategoricalFamiliesPinScoreAt100(t *testing.T) {
	qs := mbtiQuestions()
	ans := scoring.Answers{"q1": "a"}
	for _, fam := range []scoring.Family{scoring.FamilyMBTI, scoring.FamilyDISC, scoring.FamilyHolland} {
		out, err := scoring.Score(fam, qs, ans)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", fam, err)
		}
		if out.Score != 100 {
			t.Errorf("%s: envelope score = %d, want fixed 100", fam, out.Score)
		}
		if out.Personality == "" {
			t.Errorf("%s: personality code is empty", fam)
		}
	}
}

func TestScore_NumericFamiliesCarryRealPercentage(t *testing.T) {
	out, err := scoring.Score(scoring.FamilyMSQ, msqQuestions(), msqAnswersAll("4"))
	if err != nil {
		t.Fatalf("msq: %v", err)
	}
	if out.Score != 80 {
		t.Errorf("msq envelope score = %d, want 80", out.Score)
	}
	if out.Personality != "very high" {
		t.Errorf("msq personality = %q, want \"very high\"", out.Personality)
	}

	qs := []scoring.Question{q("c1", 1, pointOpt("a", 2), pointOpt("b", 1))}
	out, err = scoring.Score(scoring.FamilyCustom, qs, scoring.Answers{"c1": "b"})
	if err != nil {
		t.Fatalf("custom: %v", err)
	}
	if out.Score != 50 || out.Personality != "50%" {
		t.Errorf("custom envelope = %d/%q, want 50/\"50%%\"", out.Score, out.Personality)
	}
}

func TestScore_Deterministic(t *testing.T) {
	families := map[scoring.Family]struct {
		qs  []scoring.Question
		ans scoring.Answers
	}{
		scoring.FamilyMBTI:    {mbtiQuestions(), scoring.Answers{"q1": "a", "q3": "b"}},
		scoring.FamilyDISC:    {[]scoring.Question{q("q1", 1, opt("a", map[string]int{"D": 3, "S": 2}))}, scoring.Answers{"q1": "a"}},
		scoring.FamilyHolland: {[]scoring.Question{q("q1", 1, opt("a", map[string]int{"R": 2, "A": 1}))}, scoring.Answers{"q1": "a"}},
		scoring.FamilyMSQ:     {msqQuestions(), msqAnswersAll("3")},
		scoring.FamilyCustom:  {[]scoring.Question{q("q1", 1, pointOpt("a", 1))}, scoring.Answers{"q1": "a"}},
	}
	for fam, c := range families {
		first, err := scoring.Score(fam, c.qs, c.ans)
		if err != nil {
			t.Fatalf("%s: %v", fam, err)
		}
		for i := 0; i < 5; i++ {
			again, _ := scoring.Score(fam, c.qs, c.ans)
			if !reflect.DeepEqual(first, again) {
				t.Fatalf("%s: run %d differs", fam, i)
			}
		}
	}
}

// Every percentage any family returns stays inside [0,100].
func TestScore_PercentagesBounded(t *testing.T) {
	check := func(name string, pcts map[string]int) {
		t.Helper()
		for code, p := range pcts {
			if p < 0 || p > 100 {
				t.Errorf("%s: pct[%s] = %d out of [0,100]", name, code, p)
			}
		}
	}
	qs := []scoring.Question{
		q("q1", 1, opt("a", map[string]int{"E": 7, "I": 2, "D": 7, "S": 2, "R": 7, "A": 2})),
		q("q2", 2, opt("a", map[string]int{"N": 1, "C": 1, "T": 3, "F": 3})),
	}
	ans := scoring.Answers{"q1": "a", "q2": "a"}
	check("mbti", scoring.ScoreMBTI(qs, ans).Percentages)
	check("disc", scoring.ScoreDISC(qs, ans).Percentages)
	check("holland", scoring.ScoreHolland(qs, ans).Percentages)

	msq := scoring.ScoreMSQ(msqQuestions(), msqAnswersAll("5"))
	check("msq", map[string]int{
		"overall": msq.Percent, "intrinsic": msq.Intrinsic.Percent, "extrinsic": msq.Extrinsic.Percent,
	})
}
