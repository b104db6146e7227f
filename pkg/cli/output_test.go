package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestTextFormatter(t *testing.T) {
	f := &TextFormatter{}

	out, err := f.Format("hello")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if string(out) != "hello\n" {
		t.Errorf("Format() = %q, want %q", string(out), "hello\n")
	}

	var buf bytes.Buffer
	if err := f.FormatTo(&buf, "hello"); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}
	if buf.String() != "hello\n" {
		t.Errorf("FormatTo() = %q, want %q", buf.String(), "hello\n")
	}
}

func TestJSONFormatter(t *testing.T) {
	f := &JSONFormatter{Indent: true}

	data := map[string]interface{}{
		"valid": true,
		"model": "gpt-4o-mini",
	}

	out, err := f.Format(data)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["model"] != "gpt-4o-mini" {
		t.Errorf("model = %v, want gpt-4o-mini", decoded["model"])
	}

	// Indented output should contain newlines
	if !strings.Contains(string(out), "\n") {
		t.Error("indented JSON should span multiple lines")
	}
}

func TestJSONFormatterCompact(t *testing.T) {
	f := &JSONFormatter{Indent: false}

	out, err := f.Format(map[string]string{"status": "ok"})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if string(out) != `{"status":"ok"}` {
		t.Errorf("Format() = %q, want %q", string(out), `{"status":"ok"}`)
	}
}

func TestNewFormatter(t *testing.T) {
	if _, ok := NewFormatter(FormatJSON).(*JSONFormatter); !ok {
		t.Error("NewFormatter(FormatJSON) should return a JSONFormatter")
	}
	if _, ok := NewFormatter(FormatText).(*TextFormatter); !ok {
		t.Error("NewFormatter(FormatText) should return a TextFormatter")
	}
	if _, ok := NewFormatter("bogus").(*TextFormatter); !ok {
		t.Error("NewFormatter with unknown format should default to text")
	}
}
