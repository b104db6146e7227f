package guidance

import (
	"strings"
	"testing"
)

func TestUserPrompt_InterpolatesFields(t *testing.T) {
	score := 7.0
	req := &Request{
		MoodTags:     []string{"anxious", "restless"},
		ContextText:  "deadline tomorrow",
		DesiredState: "Clarity",
		ScoreBefore:  &score,
	}

	prompt := UserPrompt(req)

	for _, want := range []string{
		"anxious, restless",
		"deadline tomorrow",
		"Desired state: Clarity",
		"Intensity before (0-10): 7",
		`"reflection"`,
		`"plan"`,
		`"recommendation"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestUserPrompt_Defaults(t *testing.T) {
	req := &Request{}
	req.ApplyDefaults("Calm", 5)

	prompt := UserPrompt(req)

	if !strings.Contains(prompt, "Current mood tags: []") {
		t.Errorf("expected empty mood tags in prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Desired state: Calm") {
		t.Errorf("expected default desired state in prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Intensity before (0-10): 5") {
		t.Errorf("expected default score in prompt:\n%s", prompt)
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{5, "5"},
		{6.5, "6.5"},
		{0, "0"},
	}

	for _, tt := range tests {
		if got := formatScore(tt.score); got != tt.want {
			t.Errorf("formatScore(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestSystemPrompt_StatesOutputContract(t *testing.T) {
	for _, want := range []string{
		`"breath"`, `"reverie"`, `"affirm"`,
		"Calm", "Clarity", "Confidence", "Gratitude", "Power",
		"reframe_mantra", "state_after",
	} {
		if !strings.Contains(SystemPrompt, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}
