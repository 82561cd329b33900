package scoring

import "fmt"

// scorer adapts one family's classifier to the uniform envelope.
type scorer func(questions []Question, answers Answers) Outcome

// The categorical families carry no overall numeric score; their envelope
// score is fixed at 100 and the classification lives in Personality.
var scorers = map[Family]scorer{
	FamilyMBTI: func(qs []Question, ans Answers) Outcome {
		r := ScoreMBTI(qs, ans)
		return Outcome{Score: 100, Personality: r.Type, Details: r}
	},
	FamilyDISC: func(qs []Question, ans Answers) Outcome {
		r := ScoreDISC(qs, ans)
		return Outcome{Score: 100, Personality: r.Type, Details: r}
	},
	FamilyHolland: func(qs []Question, ans Answers) Outcome {
		r := ScoreHolland(qs, ans)
		return Outcome{Score: 100, Personality: r.Type, Details: r}
	},
	FamilyMSQ: func(qs []Question, ans Answers) Outcome {
		r := ScoreMSQ(qs, ans)
		return Outcome{Score: r.Percent, Personality: r.Level, Details: r}
	},
	FamilyCustom: func(qs []Question, ans Answers) Outcome {
		r := ScoreCustom(qs, ans)
		return Outcome{Score: r.Percent, Personality: r.Label, Details: r}
	},
}

// KnownFamily reports whether a family tag has a registered classifier.
func KnownFamily(f Family) bool {
	_, ok := scorers[f]
	return ok
}

// Score routes an assessment to its family's classifier. An unrecognized
// family is the subsystem's only error.
func Score(family Family, questions []Question, answers Answers) (Outcome, error) {
	s, ok := scorers[family]
	if !ok {
		return Outcome{}, fmt.Errorf("unknown assessment family %q", family)
	}
	return s(questions, answers), nil
}
