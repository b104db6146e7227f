package guidance

// Protocol is a short guided exercise the upstream model recommends.
type Protocol string

// Recommended protocols.
const (
	ProtocolBreath  Protocol = "breath"
	ProtocolReverie Protocol = "reverie"
	ProtocolAffirm  Protocol = "affirm"
)

// IsValid reports whether p is one of the known protocols.
func (p Protocol) IsValid() bool {
	switch p {
	case ProtocolBreath, ProtocolReverie, ProtocolAffirm:
		return true
	}
	return false
}

// State is a target mind state the caller wants to move toward.
type State string

// Target states.
const (
	StateCalm       State = "Calm"
	StateClarity    State = "Clarity"
	StateConfidence State = "Confidence"
	StateGratitude  State = "Gratitude"
	StatePower      State = "Power"
)

// IsValid reports whether s is one of the known states.
func (s State) IsValid() bool {
	switch s {
	case StateCalm, StateClarity, StateConfidence, StateGratitude, StatePower:
		return true
	}
	return false
}

// Result is the JSON object the upstream model is instructed to produce.
// The gateway relays the content string without parsing it unless content
// validation is enabled.
type Result struct {
	// Reflection is a short empathetic mirror of the caller's situation.
	Reflection string `json:"reflection"`

	// Plan is an ordered sequence of concrete steps.
	Plan []string `json:"plan"`

	// Recommendation selects a protocol and target state.
	Recommendation Recommendation `json:"recommendation"`
}

// Recommendation is the protocol recommendation inside a Result.
type Recommendation struct {
	// Protocol is one of breath, reverie, affirm.
	Protocol Protocol `json:"protocol"`

	// ReframeMantra is a one-line mantra for the caller to repeat.
	ReframeMantra string `json:"reframe_mantra"`

	// StateAfter is the state the protocol aims to land the caller in.
	StateAfter State `json:"state_after"`
}
