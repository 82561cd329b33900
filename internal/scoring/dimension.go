package scoring

import "math"

// dimSet is the closed set of dimension codes for one assessment family.
// Tallies are slices aligned with the set, so dimension lookups are index
// arithmetic instead of open string maps.
type dimSet []string

func (d dimSet) index(code string) (int, bool) {
	for i, c := range d {
		if c == code {
			return i, true
		}
	}
	return -1, false
}

// tally folds the answer set over the question list once and returns the
// per-dimension totals aligned with d. Every dimension is present (zero when
// nothing contributed). Answers that reference an unknown question or option,
// and weights under codes outside the set, contribute nothing.
func (d dimSet) tally(questions []Question, answers Answers) []int {
	totals := make([]int, len(d))
	for _, q := range questions {
		sel, ok := answers[q.ID]
		if !ok {
			continue
		}
		opt, ok := findOption(q.Options, sel)
		if !ok {
			continue
		}
		for code, w := range opt.Weights.Dims {
			if i, ok := d.index(code); ok {
				totals[i] += w
			}
		}
	}
	return totals
}

// scoreMap re-keys a tally by dimension code for the result payload.
func (d dimSet) scoreMap(totals []int) map[string]int {
	m := make(map[string]int, len(d))
	for i, code := range d {
		m[code] = totals[i]
	}
	return m
}

// findOption matches a stored answer token against the option value tokens
// first, then against display texts. Two explicit passes: an option whose
// text collides with another option's value must not shadow the value match.
func findOption(opts []Option, token string) (Option, bool) {
	for _, o := range opts {
		if o.Value == token {
			return o, true
		}
	}
	for _, o := range opts {
		if o.Text == token {
			return o, true
		}
	}
	return Option{}, false
}

// pct is round(100*part/total). A zero denominator means nothing was
// accumulated and is defined as 0%, not an error.
func pct(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}

func sum(totals []int) int {
	s := 0
	for _, v := range totals {
		s += v
	}
	return s
}
