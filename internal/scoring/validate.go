package scoring

// validator reports the IDs of questions that still need an answer before a
// family's result is meaningful. Missing answers are not an error: the
// caller decides whether to block scoring.
type validator func(questions []Question, answers Answers) []string

var validators = map[Family]validator{
	FamilyMBTI:    missingRequired,
	FamilyDISC:    missingRequired,
	FamilyHolland: missingRequired,
	// A satisfaction index over a partial questionnaire skews both subscales,
	// so every MSQ item counts as required.
	FamilyMSQ:    missingAll,
	FamilyCustom: missingRequired,
}

// MissingAnswers returns the unanswered question IDs the family treats as
// required, in question order. Empty means scoring may proceed. An unknown
// family has no validator and returns nil, leaving the error to Score.
func MissingAnswers(family Family, questions []Question, answers Answers) []string {
	v, ok := validators[family]
	if !ok {
		return nil
	}
	return v(questions, answers)
}

func missingRequired(questions []Question, answers Answers) []string {
	missing := []string{}
	for _, q := range questions {
		if !q.Required {
			continue
		}
		if _, ok := answers[q.ID]; !ok {
			missing = append(missing, q.ID)
		}
	}
	return missing
}

func missingAll(questions []Question, answers Answers) []string {
	missing := []string{}
	for _, q := range questions {
		if _, ok := answers[q.ID]; !ok {
			missing = append(missing, q.ID)
		}
	}
	return missing
}
