package scoring

import "sort"

var hollandDims = dimSet{"R", "I", "A", "S", "E", "C"}

// HollandResult carries the up-to-three-letter interest code, raw scores,
// percentages over the six-dimension total, and the matched profile.
type HollandResult struct {
	Type        string         `json:"type"`
	Scores      map[string]int `json:"scores"`
	Percentages map[string]int `json:"percentages"`
	Profile     TypeProfile    `json:"profile"`
}

// ScoreHolland accumulates the six RIASEC dimensions and builds the code
// from the top three scoring letters. Only dimensions with a nonzero score
// qualify, and the chosen letters are sorted alphabetically before
// concatenation, so the code is independent of accumulation order.
// Profile lookup tries the full combination first, then the single
// top-scoring letter, then the generic fallback.
func ScoreHolland(questions []Question, answers Answers) HollandResult {
	totals := hollandDims.tally(questions, answers)
	total := sum(totals)

	order := []int{0, 1, 2, 3, 4, 5}
	sort.SliceStable(order, func(a, b int) bool {
		return totals[order[a]] > totals[order[b]]
	})

	letters := make([]string, 0, 3)
	for _, i := range order {
		if len(letters) == 3 {
			break
		}
		if totals[i] > 0 {
			letters = append(letters, hollandDims[i])
		}
	}
	sort.Strings(letters)
	code := ""
	for _, l := range letters {
		code += l
	}

	percentages := make(map[string]int, len(hollandDims))
	for i, c := range hollandDims {
		percentages[c] = pct(totals[i], total)
	}

	profile, ok := hollandProfiles[code]
	if !ok {
		profile, ok = hollandProfiles[hollandDims[order[0]]]
		if !ok {
			profile = genericProfile(code)
		}
	}
	return HollandResult{
		Type:        code,
		Scores:      hollandDims.scoreMap(totals),
		Percentages: percentages,
		Profile:     profile,
	}
}

// Six single interest areas plus the combination codes observed in practice.
// Combinations are keyed by their alphabetically sorted letters; anything
// absent falls back to the top single letter.
var hollandProfiles = map[string]TypeProfile{
	"R": {
		Description: "Realistic. The Doer: prefers concrete, hands-on work with tools, machines and physical results over paperwork and meetings.",
		Strengths:   []string{"Practical", "Mechanically skilled", "Persistent", "Reliable"},
		Weaknesses:  []string{"Dislikes abstraction", "Reserved in groups", "Impatient with process"},
		Careers:     []string{"Mechanical technician", "Electrician", "Civil engineer", "Equipment operator"},
	},
	"I": {
		Description: "Investigative. The Thinker: drawn to analysis, research and understanding how things work; enjoys problems more than people management.",
		Strengths:   []string{"Analytical", "Curious", "Precise", "Independent"},
		Weaknesses:  []string{"Overthinks", "Avoids persuasion and sales", "Detached"},
		Careers:     []string{"Data scientist", "Lab researcher", "Software engineer", "Economist"},
	},
	"A": {
		Description: "Artistic. The Creator: values self-expression, originality and aesthetics; resists rigid structure and repetition.",
		Strengths:   []string{"Imaginative", "Expressive", "Intuitive", "Open to ideas"},
		Weaknesses:  []string{"Dislikes routine", "Disorganized", "Sensitive to critique"},
		Careers:     []string{"Graphic designer", "Copywriter", "Architect", "Content producer"},
	},
	"S": {
		Description: "Social. The Helper: energized by teaching, supporting and developing other people; measures success in others' growth.",
		Strengths:   []string{"Empathetic", "Cooperative", "Good communicator", "Patient"},
		Weaknesses:  []string{"Avoids technical depth", "Overextends for others", "Conflict-averse"},
		Careers:     []string{"HR partner", "Teacher", "Counselor", "Customer success manager"},
	},
	"E": {
		Description: "Enterprising. The Persuader: ambitious and sociable; likes leading, selling and taking calculated risks for visible wins.",
		Strengths:   []string{"Persuasive", "Energetic", "Decisive", "Ambitious"},
		Weaknesses:  []string{"Impatient with detail", "Dominates discussion", "Chases novelty"},
		Careers:     []string{"Sales manager", "Entrepreneur", "Product lead", "Realtor"},
	},
	"C": {
		Description: "Conventional. The Organizer: thrives on order, data and clear procedures; the person who keeps records right and processes running.",
		Strengths:   []string{"Organized", "Accurate", "Dependable", "Efficient with systems"},
		Weaknesses:  []string{"Rigid", "Avoids ambiguity", "Undervalues own ideas"},
		Careers:     []string{"Accountant", "Financial analyst", "Office manager", "Compliance officer"},
	},
	"AES": {
		Description: "Artistic-Enterprising-Social. A creative communicator who leads through ideas and connection: at their best shaping messages, experiences and teams.",
		Strengths:   []string{"Creative leadership", "Storytelling", "People-savvy"},
		Careers:     []string{"Creative director", "Brand manager", "Event producer"},
	},
	"EIS": {
		Description: "Enterprising-Investigative-Social. An analytical leader of people: comfortable turning research into decisions and decisions into buy-in.",
		Strengths:   []string{"Strategic", "Persuasive with evidence", "Mentoring"},
		Careers:     []string{"Management consultant", "Product manager", "Clinical director"},
	},
	"IRS": {
		Description: "Investigative-Realistic-Social. A practical problem solver who likes helping people with technical matters.",
		Strengths:   []string{"Technical depth", "Patient explainer", "Hands-on analysis"},
		Careers:     []string{"Field engineer", "Technical trainer", "Physiotherapist"},
	},
	"CIR": {
		Description: "Conventional-Investigative-Realistic. A systematic technician: precise, methodical work on concrete systems and data.",
		Strengths:   []string{"Rigorous", "Detail-driven", "Process-minded"},
		Careers:     []string{"QA engineer", "Lab technician", "Database administrator"},
	},
	"ACS": {
		Description: "Artistic-Conventional-Social. A structured creative who enjoys polishing work for an audience and keeping creative projects organized.",
		Strengths:   []string{"Craftsmanship", "Reliability", "Audience awareness"},
		Careers:     []string{"Editor", "Instructional designer", "Museum coordinator"},
	},
	"CES": {
		Description: "Conventional-Enterprising-Social. An organized coordinator of people and process: runs the machinery that keeps organizations moving.",
		Strengths:   []string{"Administration", "Coordination", "Service orientation"},
		Careers:     []string{"Office director", "Program coordinator", "Bank officer"},
	},
	"AIR": {
		Description: "Artistic-Investigative-Realistic. An inventive builder: combines imagination with analysis to make original, working things.",
		Strengths:   []string{"Inventive", "Self-directed", "Prototyping"},
		Careers:     []string{"Industrial designer", "R&D engineer", "Technical artist"},
	},
	"AEI": {
		Description: "Artistic-Enterprising-Investigative. A visionary strategist: generates original ideas and sells them with a grounding in evidence.",
		Strengths:   []string{"Idea generation", "Pitching", "Trend analysis"},
		Careers:     []string{"Innovation lead", "Market researcher", "Creative strategist"},
	},
	"ERS": {
		Description: "Enterprising-Realistic-Social. A front-line leader: directs practical work and keeps crews motivated on the ground.",
		Strengths:   []string{"Operational leadership", "Directness", "Team morale"},
		Careers:     []string{"Site manager", "Logistics lead", "Franchise owner"},
	},
	"CEI": {
		Description: "Conventional-Enterprising-Investigative. A data-driven operator: manages by the numbers and tightens processes for results.",
		Strengths:   []string{"Financial acumen", "Process optimization", "Decision support"},
		Careers:     []string{"Financial controller", "Business analyst", "Operations analyst"},
	},
}
