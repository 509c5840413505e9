package prompt

// Generated is the result of one receptionist script generation.
// Immutable once produced; held until the operator re-generates or
// launches an agent from it.
type Generated struct {
	Prompt      string   `json:"prompt"`
	Suggestions []string `json:"suggestions"`
	Confidence  float64  `json:"confidence"`
}

// WellFormedConfidence is assigned to any syntactically well-formed
// model response. It is a placeholder, not a computed quality signal.
const WellFormedConfidence = 0.9
