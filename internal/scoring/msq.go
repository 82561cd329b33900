package scoring

// The MSQ short form has twenty fixed-order items scored 1..5. Items are
// partitioned into the two satisfaction groups by literal order number.
const (
	msqMaxPerItem       = 5
	msqIntrinsicLastOrd = 12
)

// MSQSubscale is one satisfaction group's totals.
type MSQSubscale struct {
	Score       int    `json:"score"`
	Max         int    `json:"max"`
	Percent     int    `json:"percent"`
	Description string `json:"description"`
}

// MSQResult is the job-satisfaction index: overall totals with a qualitative
// level, the intrinsic/extrinsic subscales, and the assembled advice list.
type MSQResult struct {
	Score           int         `json:"score"`
	Max             int         `json:"max"`
	Percent         int         `json:"percent"`
	Level           string      `json:"level"`
	Description     string      `json:"description"`
	Intrinsic       MSQSubscale `json:"intrinsic"`
	Extrinsic       MSQSubscale `json:"extrinsic"`
	Recommendations []string    `json:"recommendations"`
}

// ScoreMSQ totals each answered item into its group (orders 1-12 intrinsic,
// 13 and up extrinsic) and into the overall score. Group maxima count every
// question in the group, answered or not, at msqMaxPerItem points each.
func ScoreMSQ(questions []Question, answers Answers) MSQResult {
	var intScore, intCount, extScore, extCount int
	for _, q := range questions {
		intrinsic := q.Order <= msqIntrinsicLastOrd
		if intrinsic {
			intCount++
		} else {
			extCount++
		}
		sel, ok := answers[q.ID]
		if !ok {
			continue
		}
		opt, ok := findOption(q.Options, sel)
		if !ok {
			continue
		}
		p := opt.Weights.Point()
		if intrinsic {
			intScore += p
		} else {
			extScore += p
		}
	}

	intMax := intCount * msqMaxPerItem
	extMax := extCount * msqMaxPerItem
	overall := intScore + extScore
	overallMax := intMax + extMax

	overallPct := pct(overall, overallMax)
	intPct := pct(intScore, intMax)
	extPct := pct(extScore, extMax)

	level, desc := msqOverallBand(overallPct)
	return MSQResult{
		Score:       overall,
		Max:         overallMax,
		Percent:     overallPct,
		Level:       level,
		Description: desc,
		Intrinsic: MSQSubscale{
			Score:       intScore,
			Max:         intMax,
			Percent:     intPct,
			Description: msqSubscaleBand(intPct, intrinsicDescriptions),
		},
		Extrinsic: MSQSubscale{
			Score:       extScore,
			Max:         extMax,
			Percent:     extPct,
			Description: msqSubscaleBand(extPct, extrinsicDescriptions),
		},
		Recommendations: msqRecommendations(overallPct, intPct, extPct),
	}
}

// Bands are inclusive on their lower bound and checked highest first.
func msqOverallBand(p int) (level, description string) {
	switch {
	case p >= 80:
		return "very high", "You are very highly satisfied with your job. Your work gives you a strong sense of accomplishment and the conditions around it support you well."
	case p >= 65:
		return "high", "You are satisfied with your job overall. Most aspects of your work and workplace meet your expectations, with limited room for improvement."
	case p >= 50:
		return "medium", "Your job satisfaction is moderate. Some aspects of your work serve you well while others leave clear gaps worth addressing."
	case p >= 35:
		return "low", "Your job satisfaction is low. Several important aspects of your work or its conditions fall short of what you need."
	default:
		return "very low", "Your job satisfaction is very low. Most aspects of your current work situation are not meeting your needs, and a substantial change is worth considering."
	}
}

// Subscale prose has its own four-band thresholds, independent of the
// overall banding.
func msqSubscaleBand(p int, bands [4]string) string {
	switch {
	case p >= 75:
		return bands[0]
	case p >= 60:
		return bands[1]
	case p >= 45:
		return bands[2]
	default:
		return bands[3]
	}
}

var intrinsicDescriptions = [4]string{
	"The work itself suits you well: you feel able, useful and engaged by what you do.",
	"You find your work largely meaningful, though some tasks leave your abilities underused.",
	"The content of your work only partly satisfies you; meaning, variety or autonomy feel limited.",
	"The work itself is a significant source of dissatisfaction; it rarely uses your abilities or feels worthwhile.",
}

var extrinsicDescriptions = [4]string{
	"Working conditions, pay and recognition are serving you well.",
	"The conditions around your work are mostly acceptable, with minor irritations.",
	"Pay, conditions or recognition fall noticeably short of your expectations.",
	"The conditions around your work are a major source of dissatisfaction.",
}

// Advice blocks fire independently; several can apply at once and none
// excludes another.
func msqRecommendations(overall, intrinsic, extrinsic int) []string {
	recs := []string{}
	if overall < 50 {
		recs = append(recs, "Raise your overall dissatisfaction with your manager or HR partner in a dedicated conversation rather than letting it accumulate.")
	}
	if overall >= 80 {
		recs = append(recs, "Your satisfaction is a strength. Consider mentoring colleagues or sharing what works in your role with your team.")
	}
	if intrinsic < 60 {
		recs = append(recs, "Look for ways to reshape the content of your work: ask for tasks that use more of your abilities, more variety, or more say in how the work is done.")
	}
	if extrinsic < 60 {
		recs = append(recs, "Discuss the conditions around your work, such as pay, recognition and advancement prospects, with your manager and ask what a realistic path to improvement looks like.")
	}
	if extrinsic < 45 {
		recs = append(recs, "If working conditions do not improve after being raised, weigh internal transfer options before looking outside.")
	}
	return recs
}
