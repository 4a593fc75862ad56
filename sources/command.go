package sources

import (
	"fmt"
	"io"
	"log"
	"os/exec"
)

// CommandSource runs a child command and streams its combined stdout and
// stderr, so the colorizer can wrap a live game session directly.
type CommandSource struct {
	name    string
	command string
	args    []string
	cmd     *exec.Cmd
}

func NewCommandSource(command string, args ...string) *CommandSource {
	return &CommandSource{
		name:    command,
		command: command,
		args:    args,
	}
}

func (s *CommandSource) Stream() (io.Reader, error) {
	// Create a new command instance for each stream start (allows restart)
	s.cmd = exec.Command(s.command, s.args...)

	pr, pw := io.Pipe()
	s.cmd.Stdout = pw
	s.cmd.Stderr = pw

	if err := s.cmd.Start(); err != nil {
		pw.Close()
		return nil, fmt.Errorf("failed to start command: %v", err)
	}

	// Reap the child and end the stream once it exits.
	go func() {
		if err := s.cmd.Wait(); err != nil {
			log.Printf("Command %s exited with error: %v", s.command, err)
		}
		pw.Close()
	}()

	return pr, nil
}

func (s *CommandSource) Close() error {
	if s.cmd != nil && s.cmd.Process != nil {
		// Try to kill the process
		return s.cmd.Process.Kill()
	}
	return nil
}

func (s *CommandSource) Name() string {
	return s.name
}
