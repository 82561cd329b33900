// Package scoring turns a respondent's raw answers into a classified
// assessment result. It is pure computation: no I/O, no stored state, and
// safe for concurrent use. Callers load questions and answers however they
// like and persist the Outcome themselves.
package scoring

import (
	"encoding/json"
	"fmt"
)

// Family identifies one of the supported assessment scoring families.
type Family string

const (
	FamilyMBTI    Family = "mbti"
	FamilyDISC    Family = "disc"
	FamilyHolland Family = "holland"
	FamilyMSQ     Family = "msq"
	FamilyCustom  Family = "custom"
)

// Question is the minimal view of a question needed for scoring.
// Order is business data: the MSQ family buckets questions into intrinsic
// and extrinsic groups by literal order number.
type Question struct {
	ID       string
	Order    int
	Required bool
	Options  []Option
}

// Option is one selectable answer choice. The stored answer token is matched
// against Value first, then against Text (legacy answers predate value tokens).
type Option struct {
	Value   string
	Text    string
	Weights Weights
}

// Answers maps question ID to the selected option's value token. Unanswered
// questions are simply absent; there are no sentinel values.
type Answers map[string]string

// Weights is an option's score payload. Assessments have stored it in two
// shapes over time: a bare number, or an object mapping dimension codes to
// integer weights. Both shapes round-trip through JSON unchanged.
type Weights struct {
	Number   int
	IsNumber bool
	Dims     map[string]int
}

// DimWeights returns a Weights holding per-dimension contributions.
func DimWeights(dims map[string]int) Weights { return Weights{Dims: dims} }

// PointWeight returns a Weights holding a single bare score.
func PointWeight(n int) Weights { return Weights{Number: n, IsNumber: true} }

// Dim returns the weight this option contributes to a dimension code,
// defaulting to zero when the code is absent or the shape is numeric.
func (w Weights) Dim(code string) int {
	if w.IsNumber {
		return 0
	}
	return w.Dims[code]
}

// Point extracts the option's single numeric score. Three historical shapes
// are supported: a bare number, a "value" key, and an "msq" key, probed in
// that order. Anything else counts as zero.
func (w Weights) Point() int {
	if w.IsNumber {
		return w.Number
	}
	if v, ok := w.Dims["value"]; ok {
		return v
	}
	if v, ok := w.Dims["msq"]; ok {
		return v
	}
	return 0
}

func (w Weights) MarshalJSON() ([]byte, error) {
	if w.IsNumber {
		return json.Marshal(w.Number)
	}
	if w.Dims == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(w.Dims)
}

func (w *Weights) UnmarshalJSON(b []byte) error {
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		w.Number = int(n)
		w.IsNumber = true
		w.Dims = nil
		return nil
	}
	var dims map[string]float64
	if err := json.Unmarshal(b, &dims); err != nil {
		return fmt.Errorf("score must be a number or an object: %w", err)
	}
	w.IsNumber = false
	w.Number = 0
	w.Dims = make(map[string]int, len(dims))
	for k, v := range dims {
		w.Dims[k] = int(v)
	}
	return nil
}

// Outcome is the uniform result envelope returned for every family. Score is
// the real computed percentage for the satisfaction and custom families and
// is fixed at 100 for the categorical families, which classify rather than
// grade. Details holds the family-specific result value.
type Outcome struct {
	Score       int         `json:"score"`
	Personality string      `json:"personality"`
	Details     interface{} `json:"details"`
}
