package scoring

import "strconv"

// CustomResult is the weighted score for assessments without a fixed
// dimension model: points earned against points achievable.
type CustomResult struct {
	Score   int    `json:"score"`
	Max     int    `json:"max"`
	Percent int    `json:"percent"`
	Label   string `json:"label"`
}

// ScoreCustom sums the selected option's score per answered question and,
// independently, the maximum available option score for every question,
// answered or not. The classification output is the rounded percentage
// formatted with a trailing percent sign.
func ScoreCustom(questions []Question, answers Answers) CustomResult {
	total, max := 0, 0
	for _, q := range questions {
		best := 0
		for _, o := range q.Options {
			if p := o.Weights.Point(); p > best {
				best = p
			}
		}
		max += best

		sel, ok := answers[q.ID]
		if !ok {
			continue
		}
		if opt, ok := findOption(q.Options, sel); ok {
			total += opt.Weights.Point()
		}
	}
	p := pct(total, max)
	return CustomResult{
		Score:   total,
		Max:     max,
		Percent: p,
		Label:   strconv.Itoa(p) + "%",
	}
}
