package main

import (
	"io"
	"strings"
	"testing"

	"github.com/irydacea/wescoco/config"
	"github.com/irydacea/wescoco/processor"
	"github.com/irydacea/wescoco/sources"
)

type mockSource struct {
	content string
	closed  bool
}

func (s *mockSource) Stream() (io.Reader, error) {
	return strings.NewReader(s.content), nil
}

func (s *mockSource) Close() error {
	s.closed = true
	return nil
}

func (s *mockSource) Name() string {
	return "mock"
}

func TestRunProcessesEveryLine(t *testing.T) {
	src := &mockSource{
		content: "Battle for Wesnoth v1.18.0\n" +
			"20250101 12:00:01 warning test_domain: something happened\n" +
			"garbage input\n" +
			"no trailing newline",
	}

	var out strings.Builder
	proc := processor.New(&out, true)

	if err := run(src, proc); err != nil {
		t.Fatalf("run() returned error: %v", err)
	}
	if !src.closed {
		t.Errorf("run() did not close the source")
	}

	got := out.String()
	if !strings.Contains(got, "\033[1;33m") {
		t.Errorf("Expected warning line to carry bright yellow, got %q", got)
	}
	if !strings.Contains(got, "garbage input\n") {
		t.Errorf("Expected garbage line passed through, got %q", got)
	}
	if !strings.Contains(got, "no trailing newline") {
		t.Errorf("Expected final unterminated line to be processed, got %q", got)
	}
}

func TestBuildSources(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		expected int
		first    string
	}{
		{
			name:     "Default is stdin",
			cfg:      config.Config{},
			expected: 1,
			first:    "stdin",
		},
		{
			name:     "One source per file",
			cfg:      config.Config{Files: []string{"a.log", "b.log"}},
			expected: 2,
			first:    "a.log",
		},
		{
			name:     "Command wins",
			cfg:      config.Config{Command: "wesnoth --log-info=general"},
			expected: 1,
			first:    "wesnoth",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srcs := buildSources(&tt.cfg)
			if len(srcs) != tt.expected {
				t.Fatalf("Expected %d sources, got %d", tt.expected, len(srcs))
			}
			if srcs[0].Name() != tt.first {
				t.Errorf("Expected first source %q, got %q", tt.first, srcs[0].Name())
			}
		})
	}
}

var _ sources.LogSource = (*mockSource)(nil)
