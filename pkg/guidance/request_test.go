package guidance

import (
	"encoding/json"
	"testing"
)

func TestRequest_ApplyDefaults(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantTags  int
		wantState string
		wantScore float64
	}{
		{
			name:      "empty object gets all defaults",
			body:      `{}`,
			wantTags:  0,
			wantState: "Calm",
			wantScore: 5,
		},
		{
			name:      "all fields set",
			body:      `{"mood_tags":["anxious"],"context_text":"deadline","desired_state":"Clarity","score_before":7}`,
			wantTags:  1,
			wantState: "Clarity",
			wantScore: 7,
		},
		{
			name:      "explicit zero score survives defaulting",
			body:      `{"score_before":0}`,
			wantTags:  0,
			wantState: "Calm",
			wantScore: 0,
		},
		{
			name:      "empty desired state gets default",
			body:      `{"desired_state":""}`,
			wantTags:  0,
			wantState: "Calm",
			wantScore: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req Request
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}

			req.ApplyDefaults("Calm", 5)

			if req.MoodTags == nil {
				t.Error("mood tags must never be nil after defaulting")
			}
			if len(req.MoodTags) != tt.wantTags {
				t.Errorf("expected %d mood tags, got %d", tt.wantTags, len(req.MoodTags))
			}
			if req.DesiredState != tt.wantState {
				t.Errorf("expected desired state %q, got %q", tt.wantState, req.DesiredState)
			}
			if req.Score() != tt.wantScore {
				t.Errorf("expected score %v, got %v", tt.wantScore, req.Score())
			}
		})
	}
}

func TestRequest_TypedDecodeFailsClosed(t *testing.T) {
	// Mis-typed fields are a decode error, not silent acceptance.
	bodies := []string{
		`{"mood_tags":"anxious"}`,
		`{"score_before":"high"}`,
		`{"desired_state":[1,2]}`,
	}

	for _, body := range bodies {
		var req Request
		if err := json.Unmarshal([]byte(body), &req); err == nil {
			t.Errorf("expected decode error for %s, got nil", body)
		}
	}
}
