package scoring

import "sort"

var discDims = dimSet{"D", "I", "S", "C"}

// blendGap is the tie-break threshold: the top two dimensions blend when
// their percentage gap is strictly below this.
const blendGap = 20

// DISCResult carries the one- or two-letter style code, raw scores,
// percentages over the four-dimension total, and the style profile.
type DISCResult struct {
	Type        string         `json:"type"`
	Scores      map[string]int `json:"scores"`
	Percentages map[string]int `json:"percentages"`
	Profile     TypeProfile    `json:"profile"`
}

// ScoreDISC accumulates D/I/S/C and classifies by the highest dimension,
// blending in the runner-up when both are nonzero and within blendGap
// percentage points. Blend codes always carry their letters in canonical
// D, I, S, C order, matching the keys of the profile table.
func ScoreDISC(questions []Question, answers Answers) DISCResult {
	totals := discDims.tally(questions, answers)
	total := sum(totals)

	// Rank dimension indices by score, descending. The sort is stable so
	// equal scores keep canonical D, I, S, C order.
	order := []int{0, 1, 2, 3}
	sort.SliceStable(order, func(a, b int) bool {
		return totals[order[a]] > totals[order[b]]
	})
	top1, top2 := order[0], order[1]

	percentages := make(map[string]int, len(discDims))
	for i, code := range discDims {
		percentages[code] = pct(totals[i], total)
	}

	code := discDims[top1]
	if totals[top1] > 0 && totals[top2] > 0 &&
		percentages[discDims[top1]]-percentages[discDims[top2]] < blendGap {
		lo, hi := top1, top2
		if lo > hi {
			lo, hi = hi, lo
		}
		code = discDims[lo] + discDims[hi]
	}

	profile, ok := discProfiles[code]
	if !ok {
		profile = genericProfile(code)
	}
	return DISCResult{
		Type:        code,
		Scores:      discDims.scoreMap(totals),
		Percentages: percentages,
		Profile:     profile,
	}
}

// Four pure styles plus the six blends in canonical letter order.
var discProfiles = map[string]TypeProfile{
	"D": {
		Description: "Dominance. Direct, results-driven and competitive; takes charge, makes quick decisions and pushes through obstacles.",
		Strengths:   []string{"Decisive", "Goal-focused", "Confident", "Takes initiative"},
		Weaknesses:  []string{"Impatient", "Blunt", "Overrides others' input"},
		Careers:     []string{"Executive", "Sales director", "Project lead", "Entrepreneur"},
	},
	"I": {
		Description: "Influence. Outgoing, optimistic and persuasive; builds relationships easily and energizes the people around them.",
		Strengths:   []string{"Enthusiastic", "Persuasive", "Collaborative", "Optimistic"},
		Weaknesses:  []string{"Disorganized", "Talks more than listens", "Avoids detail work"},
		Careers:     []string{"Marketing manager", "Recruiter", "Public speaker", "Account manager"},
	},
	"S": {
		Description: "Steadiness. Patient, dependable and team-oriented; provides calm, consistent support and values stable relationships.",
		Strengths:   []string{"Reliable", "Good listener", "Calm", "Team player"},
		Weaknesses:  []string{"Resists change", "Avoids confrontation", "Slow to decide"},
		Careers:     []string{"HR specialist", "Customer support lead", "Counselor", "Operations coordinator"},
	},
	"C": {
		Description: "Conscientiousness. Precise, analytical and quality-focused; works within standards and wants the details right.",
		Strengths:   []string{"Accurate", "Systematic", "Objective", "High standards"},
		Weaknesses:  []string{"Overanalyzes", "Overly critical", "Uncomfortable with ambiguity"},
		Careers:     []string{"Analyst", "Accountant", "Quality engineer", "Researcher"},
	},
	"DI": {
		Description: "Dominance-Influence. A driven persuader: pushes for results while winning people over, at home in fast-moving, visible roles.",
		Strengths:   []string{"Energetic", "Convincing", "Action-oriented", "Inspires urgency"},
		Weaknesses:  []string{"Impulsive", "Overpromises", "Restless in routine"},
		Careers:     []string{"Sales executive", "Startup founder", "Business developer"},
	},
	"DS": {
		Description: "Dominance-Steadiness. Determined yet patient: drives steady progress toward goals without burning the team out.",
		Strengths:   []string{"Persistent", "Dependable under pressure", "Protective of the team"},
		Weaknesses:  []string{"Stubborn", "Keeps frustrations inside", "Slow to change course"},
		Careers:     []string{"Operations manager", "Production supervisor", "Team lead"},
	},
	"DC": {
		Description: "Dominance-Conscientiousness. A demanding perfectionist: sets the bar high for both pace and quality.",
		Strengths:   []string{"Results with rigor", "Independent", "Challenges weak ideas"},
		Weaknesses:  []string{"Harsh critic", "Hard to satisfy", "Distant from the team"},
		Careers:     []string{"Engineering manager", "Auditor", "Strategy consultant"},
	},
	"IS": {
		Description: "Influence-Steadiness. A warm supporter: builds trust easily and keeps groups cohesive and encouraged.",
		Strengths:   []string{"Approachable", "Encouraging", "Loyal", "Mediates well"},
		Weaknesses:  []string{"Avoids hard calls", "Needs harmony", "Overcommits to people"},
		Careers:     []string{"HR manager", "Teacher", "Community manager", "Customer success"},
	},
	"IC": {
		Description: "Influence-Conscientiousness. A polished communicator: presents careful work persuasively and reads the room while staying precise.",
		Strengths:   []string{"Articulate", "Diplomatic", "Detail-aware", "Creative within limits"},
		Weaknesses:  []string{"Worries about image", "Slow under conflicting demands"},
		Careers:     []string{"Product manager", "Communications specialist", "Consultant"},
	},
	"SC": {
		Description: "Steadiness-Conscientiousness. A careful stabilizer: methodical, modest and thorough, the keeper of standards and routines.",
		Strengths:   []string{"Meticulous", "Even-tempered", "Consistent", "Trustworthy"},
		Weaknesses:  []string{"Risk-averse", "Quiet about problems", "Needs clear expectations"},
		Careers:     []string{"Quality analyst", "Administrator", "Actuary", "Archivist"},
	},
}
