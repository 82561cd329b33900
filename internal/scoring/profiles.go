package scoring

// TypeProfile is the static descriptive bundle attached to a classified type
// code. The tables below are fixed business content; they are read-only after
// package init and safe to share across concurrent calls.
type TypeProfile struct {
	Description string   `json:"description"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Careers     []string `json:"careers"`
}

// genericProfile is the documented fallback for a code missing from a table.
func genericProfile(code string) TypeProfile {
	return TypeProfile{
		Description: "Personality type " + code,
		Strengths:   []string{},
		Weaknesses:  []string{},
		Careers:     []string{},
	}
}
