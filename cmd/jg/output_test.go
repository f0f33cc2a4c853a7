package main

import (
	"strings"
	"testing"
)

func TestSplitCSV(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple list",
			input: "python,sql,docker",
			want:  []string{"python", "sql", "docker"},
		},
		{
			name:  "whitespace trimmed",
			input: " python , sql ,  docker ",
			want:  []string{"python", "sql", "docker"},
		},
		{
			name:  "empty entries dropped",
			input: "python,,sql,",
			want:  []string{"python", "sql"},
		},
		{
			name:  "single value",
			input: "python",
			want:  []string{"python"},
		},
		{
			name:  "empty string",
			input: "",
			want:  nil,
		},
		{
			name:  "only separators",
			input: ", ,,  ,",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitCSV(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("splitCSV(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("splitCSV(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{
			name:   "shorter than max",
			input:  "short",
			maxLen: 10,
			want:   "short",
		},
		{
			name:   "exactly max",
			input:  "1234567890",
			maxLen: 10,
			want:   "1234567890",
		},
		{
			name:   "longer than max",
			input:  "this is a longer string",
			maxLen: 10,
			want:   "this is...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateString(tt.input, tt.maxLen)
			if got != tt.want {
				t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
			if len(got) > tt.maxLen {
				t.Errorf("truncateString(%q, %d) returned %d chars", tt.input, tt.maxLen, len(got))
			}
		})
	}
}

func TestTruncateString_RespectsSearchLimit(t *testing.T) {
	long := strings.Repeat("x", SearchDescriptionMaxLen*2)
	got := truncateString(long, SearchDescriptionMaxLen)
	if len(got) != SearchDescriptionMaxLen {
		t.Errorf("truncated length = %d, want %d", len(got), SearchDescriptionMaxLen)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated string %q missing ellipsis", got)
	}
}

func TestRedactSecret(t *testing.T) {
	if got := redactSecret(""); got != "(not set)" {
		t.Errorf("redactSecret(\"\") = %q, want %q", got, "(not set)")
	}
	if got := redactSecret("hf_abc123"); got != "(set)" {
		t.Errorf("redactSecret(token) = %q, want %q", got, "(set)")
	}
	if strings.Contains(redactSecret("hf_abc123"), "abc") {
		t.Error("redactSecret leaked the secret value")
	}
}

func TestFormatSkillList(t *testing.T) {
	if got := formatSkillList(nil); got != "(none)" {
		t.Errorf("formatSkillList(nil) = %q, want %q", got, "(none)")
	}
	if got := formatSkillList([]string{"Python"}); got != "Python" {
		t.Errorf("formatSkillList(one) = %q, want %q", got, "Python")
	}
	if got := formatSkillList([]string{"Python", "SQL"}); got != "Python, SQL" {
		t.Errorf("formatSkillList(two) = %q, want %q", got, "Python, SQL")
	}
}
