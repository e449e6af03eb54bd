// ABOUTME: Tests for item kind parsing and validation.
// ABOUTME: The documented kind name "time" must resolve to duration.
package models

import "testing"

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"time", KindDuration, false},
		{"duration", KindDuration, false},
		{"count", KindCount, false},
		{"Time", "", true},
		{"seconds", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseKind(%q) = %q, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseKind(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsValidKind(t *testing.T) {
	if !IsValidKind("duration") || !IsValidKind("count") {
		t.Error("stored kind values rejected")
	}
	if IsValidKind("time") {
		t.Error("IsValidKind accepts the display alias; ParseKind owns aliases")
	}
}
