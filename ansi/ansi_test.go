package ansi

import "testing"

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		format   Format
		text     string
		expected string
	}{
		{
			name:     "Color with reset",
			format:   Red,
			text:     "boom",
			expected: "\033[31mboom\033[0m",
		},
		{
			name:     "Bright color with reset",
			format:   BrightYellow,
			text:     "careful",
			expected: "\033[1;33mcareful\033[0m",
		},
		{
			name:     "Default is an identity escape but still resets",
			format:   Default,
			text:     "plain",
			expected: "plain\033[0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format.Apply(tt.text); got != tt.expected {
				t.Errorf("Apply() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestApplyWith(t *testing.T) {
	tests := []struct {
		name     string
		format   Format
		text     string
		closer   string
		expected string
	}{
		{
			name:     "Escape closer",
			format:   Dim,
			text:     "20250101 12:00:01",
			closer:   string(Medium),
			expected: "\033[2m20250101 12:00:01\033[22m",
		},
		{
			name:     "Literal closer",
			format:   Bold,
			text:     "engine",
			closer:   ":",
			expected: "\033[1mengine:",
		},
		{
			name:     "Empty closer leaves formatting open",
			format:   Medium,
			text:     "body",
			closer:   "",
			expected: "\033[22mbody",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format.ApplyWith(tt.text, tt.closer); got != tt.expected {
				t.Errorf("ApplyWith() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "No escapes",
			input:    "plain text",
			expected: "plain text",
		},
		{
			name:     "Nested formatting",
			input:    BrightRed.Apply(Dim.ApplyWith("a", string(Medium)) + " " + Bold.ApplyWith("b", ":")),
			expected: "a b:",
		},
		{
			name:     "Escape-only input",
			input:    string(Reset) + string(Bold),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strip(tt.input); got != tt.expected {
				t.Errorf("Strip() = %q, want %q", got, tt.expected)
			}
		})
	}
}
