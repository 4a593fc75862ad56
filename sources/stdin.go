package sources

import (
	"io"
	"os"
)

// StdinSource streams standard input. Closing it is a no-op; the stream
// ends when the writing end of the pipe goes away.
type StdinSource struct{}

func NewStdinSource() *StdinSource {
	return &StdinSource{}
}

func (s *StdinSource) Stream() (io.Reader, error) {
	return os.Stdin, nil
}

func (s *StdinSource) Close() error {
	return nil
}

func (s *StdinSource) Name() string {
	return "stdin"
}
