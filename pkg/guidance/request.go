package guidance

// Request is the inbound guidance request payload. All fields are optional;
// missing fields receive defaults via ApplyDefaults. The typed decode fails
// closed: a field of the wrong JSON type is rejected at parse time instead
// of being interpolated into the prompt.
type Request struct {
	// MoodTags is a sequence of short mood labels (e.g., "anxious").
	MoodTags []string `json:"mood_tags"`

	// ContextText is free text describing the caller's situation.
	ContextText string `json:"context_text"`

	// DesiredState is the target state label. Defaults to "Calm".
	DesiredState string `json:"desired_state"`

	// ScoreBefore is the caller's self-reported intensity score. A pointer
	// so an explicit 0 is distinguishable from an omitted field.
	ScoreBefore *float64 `json:"score_before"`
}

// ApplyDefaults fills in missing fields. defaultState and defaultScore come
// from the gateway configuration.
func (r *Request) ApplyDefaults(defaultState string, defaultScore float64) {
	if r.MoodTags == nil {
		r.MoodTags = []string{}
	}
	if r.DesiredState == "" {
		r.DesiredState = defaultState
	}
	if r.ScoreBefore == nil {
		score := defaultScore
		r.ScoreBefore = &score
	}
}

// Score returns the intensity score, or the zero value if unset.
func (r *Request) Score() float64 {
	if r.ScoreBefore == nil {
		return 0
	}
	return *r.ScoreBefore
}
