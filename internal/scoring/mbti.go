package scoring

// The eight MBTI letter dimensions, paired into four binary axes.
var mbtiDims = dimSet{"E", "I", "S", "N", "T", "F", "J", "P"}

// Axis pairs as indices into mbtiDims: first letter vs second letter.
var mbtiAxes = [4][2]int{{0, 1}, {2, 3}, {4, 5}, {6, 7}}

// MBTIResult carries the four-letter code, raw per-letter scores, per-axis
// percentages, and the static profile for the code.
type MBTIResult struct {
	Type        string         `json:"type"`
	Scores      map[string]int `json:"scores"`
	Percentages map[string]int `json:"percentages"`
	Profile     TypeProfile    `json:"profile"`
}

// ScoreMBTI accumulates the eight letter dimensions and derives the type code
// axis by axis. The first letter of a pair wins only on a strictly greater
// score; ties always go to the second letter (I, N, F, P). Percentages are
// relative to the two-letter sum of each axis, not the eight-dimension total.
func ScoreMBTI(questions []Question, answers Answers) MBTIResult {
	totals := mbtiDims.tally(questions, answers)

	code := ""
	percentages := make(map[string]int, len(mbtiDims))
	for _, ax := range mbtiAxes {
		first, second := ax[0], ax[1]
		if totals[first] > totals[second] {
			code += mbtiDims[first]
		} else {
			code += mbtiDims[second]
		}
		pairSum := totals[first] + totals[second]
		percentages[mbtiDims[first]] = pct(totals[first], pairSum)
		percentages[mbtiDims[second]] = pct(totals[second], pairSum)
	}

	profile, ok := mbtiProfiles[code]
	if !ok {
		profile = genericProfile(code)
	}
	return MBTIResult{
		Type:        code,
		Scores:      mbtiDims.scoreMap(totals),
		Percentages: percentages,
		Profile:     profile,
	}
}

// The 16 canonical MBTI types.
var mbtiProfiles = map[string]TypeProfile{
	"ISTJ": {
		Description: "The Inspector. Practical, fact-minded and dependable; values order, tradition and follow-through on commitments.",
		Strengths:   []string{"Reliable", "Detail-oriented", "Organized", "Calm under pressure"},
		Weaknesses:  []string{"Resistant to change", "Can be inflexible", "May overlook feelings"},
		Careers:     []string{"Accountant", "Auditor", "Operations manager", "Quality engineer"},
	},
	"ISFJ": {
		Description: "The Protector. Warm, conscientious and devoted; remembers the details that matter to people and quietly keeps things running.",
		Strengths:   []string{"Supportive", "Patient", "Observant", "Hardworking"},
		Weaknesses:  []string{"Avoids conflict", "Neglects own needs", "Reluctant to delegate"},
		Careers:     []string{"Nurse", "HR specialist", "Teacher", "Office administrator"},
	},
	"INFJ": {
		Description: "The Counselor. Insightful and principled; driven by a quiet vision of how things could be better for people.",
		Strengths:   []string{"Empathetic", "Visionary", "Committed", "Good listener"},
		Weaknesses:  []string{"Perfectionistic", "Private to a fault", "Burns out easily"},
		Careers:     []string{"Counselor", "Writer", "Organizational coach", "Social worker"},
	},
	"INTJ": {
		Description: "The Mastermind. Independent and strategic; sees the long game and builds systems to get there.",
		Strengths:   []string{"Strategic thinking", "Independent", "Decisive", "High standards"},
		Weaknesses:  []string{"Overly critical", "Dismissive of emotions", "Impatient with inefficiency"},
		Careers:     []string{"Software architect", "Strategy analyst", "Scientist", "Investment planner"},
	},
	"ISTP": {
		Description: "The Craftsman. Tolerant and flexible; a quiet observer until a problem appears, then acts quickly to find a workable solution.",
		Strengths:   []string{"Practical problem solver", "Calm in a crisis", "Adaptable", "Hands-on"},
		Weaknesses:  []string{"Easily bored", "Avoids commitment", "Risk-prone"},
		Careers:     []string{"Field engineer", "Pilot", "Systems technician", "Forensic analyst"},
	},
	"ISFP": {
		Description: "The Composer. Gentle, sensitive and present-focused; prefers to support others through actions rather than words.",
		Strengths:   []string{"Artistic sense", "Loyal", "Adaptable", "Considerate"},
		Weaknesses:  []string{"Avoids planning", "Overly modest", "Takes criticism personally"},
		Careers:     []string{"Designer", "Veterinarian", "Physical therapist", "Chef"},
	},
	"INFP": {
		Description: "The Healer. Idealistic and loyal to their values; wants an outer life congruent with who they are inside.",
		Strengths:   []string{"Empathetic", "Open-minded", "Creative", "Value-driven"},
		Weaknesses:  []string{"Unrealistic at times", "Self-critical", "Conflict-averse"},
		Careers:     []string{"Psychologist", "Editor", "UX researcher", "Nonprofit coordinator"},
	},
	"INTP": {
		Description: "The Architect. Analytical and curious; more interested in the idea behind the work than in the work's ceremony.",
		Strengths:   []string{"Analytical", "Original", "Objective", "Independent"},
		Weaknesses:  []string{"Absent-minded", "Dislikes rules", "Withdraws under stress"},
		Careers:     []string{"Researcher", "Software engineer", "Data scientist", "University lecturer"},
	},
	"ESTP": {
		Description: "The Dynamo. Energetic and pragmatic; learns by doing and thrives on immediate results.",
		Strengths:   []string{"Bold", "Perceptive", "Sociable", "Direct"},
		Weaknesses:  []string{"Impatient", "Risk-seeking", "Misses the big picture"},
		Careers:     []string{"Sales executive", "Entrepreneur", "Paramedic", "Project expediter"},
	},
	"ESFP": {
		Description: "The Performer. Outgoing and spontaneous; makes work fun and brings people along with genuine enthusiasm.",
		Strengths:   []string{"Enthusiastic", "Practical", "Observant of people", "Team spirit"},
		Weaknesses:  []string{"Easily distracted", "Avoids long-term planning", "Sensitive to criticism"},
		Careers:     []string{"Event coordinator", "Sales representative", "Flight attendant", "Trainer"},
	},
	"ENFP": {
		Description: "The Champion. Warmly enthusiastic and imaginative; sees life as full of possibilities and connects ideas with people quickly.",
		Strengths:   []string{"Creative", "Energetic", "Excellent communicator", "Curious"},
		Weaknesses:  []string{"Disorganized", "Overcommits", "Loses interest in routine"},
		Careers:     []string{"Marketing strategist", "Journalist", "Recruiter", "Product manager"},
	},
	"ENTP": {
		Description: "The Visionary. Quick, alert and outspoken; resourceful in solving new and challenging problems, bored by routine.",
		Strengths:   []string{"Inventive", "Quick thinker", "Charismatic", "Loves a challenge"},
		Weaknesses:  []string{"Argumentative", "Neglects follow-through", "Insensitive at times"},
		Careers:     []string{"Startup founder", "Consultant", "Lawyer", "Creative director"},
	},
	"ESTJ": {
		Description: "The Supervisor. Practical, decisive and organized; moves quickly to implement decisions and manage people toward results.",
		Strengths:   []string{"Organized", "Dedicated", "Direct", "Strong-willed"},
		Weaknesses:  []string{"Inflexible", "Judgmental", "Uncomfortable with ambiguity"},
		Careers:     []string{"Operations director", "Judge", "Financial officer", "Military officer"},
	},
	"ESFJ": {
		Description: "The Provider. Warmhearted and cooperative; works with determination to create harmony and take care of concrete needs.",
		Strengths:   []string{"Loyal", "Sociable", "Practical helper", "Sense of duty"},
		Weaknesses:  []string{"Needs approval", "Inflexible about norms", "Avoids hard conversations"},
		Careers:     []string{"HR manager", "Nurse", "Customer success lead", "School administrator"},
	},
	"ENFJ": {
		Description: "The Teacher. Empathetic and responsible; finds potential in everyone and helps others act on it.",
		Strengths:   []string{"Inspiring", "Persuasive", "Organized", "Altruistic"},
		Weaknesses:  []string{"Overly idealistic", "Too selfless", "Struggles with criticism"},
		Careers:     []string{"Team lead", "Trainer", "Public relations manager", "Counselor"},
	},
	"ENTJ": {
		Description: "The Commander. Frank, decisive and strategic; readily assumes leadership and pushes for long-range goals.",
		Strengths:   []string{"Confident", "Strategic", "Efficient", "Strong communicator"},
		Weaknesses:  []string{"Domineering", "Impatient", "Intolerant of perceived incompetence"},
		Careers:     []string{"Executive", "Management consultant", "Program director", "Entrepreneur"},
	},
}
