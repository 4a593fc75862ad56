package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// Config is assembled entirely from command line flags. There is no
// configuration file and no environment lookup; every run starts fresh.
type Config struct {
	Files       []string
	Command     string
	Follow      bool
	Color       bool
	MetricsPort int
	Verbose     bool
}

var (
	command     = flag.String("command", "", "Run a command and colorize its output instead of reading stdin or files")
	follow      = flag.Bool("follow", false, "Keep reading as the input file grows")
	colorMode   = flag.String("color", "auto", "Colorize output: auto, always, never")
	metricsPort = flag.Int("metrics-port", 0, "Port to expose Prometheus metrics (0 to disable)")
	verbose     = flag.Bool("verbose", false, "Verbose logging")
)

// ParseFlags parses the command line flags.
// It must be called before Load.
func ParseFlags() {
	if !flag.Parsed() {
		flag.Usage = func() {
			out := flag.CommandLine.Output()
			fmt.Fprintf(out, "WesCoco - Wesnoth Console Colorizer\n")
			fmt.Fprintf(out, "Rewrites Wesnoth console output to stderr with ANSI coloring.\n\n")
			fmt.Fprintf(out, "Usage:\n  wescoco [flags] [file ...]\n\n")
			fmt.Fprintf(out, "Examples:\n")
			fmt.Fprintf(out, "  # Colorize a running game\n")
			fmt.Fprintf(out, "  wesnoth 2>&1 | wescoco\n\n")
			fmt.Fprintf(out, "  # Colorize a saved log\n")
			fmt.Fprintf(out, "  wescoco wesnoth.log\n\n")
			fmt.Fprintf(out, "  # Follow a log as the game writes it\n")
			fmt.Fprintf(out, "  wescoco --follow wesnoth.log\n\n")
			fmt.Fprintf(out, "  # Wrap the game directly\n")
			fmt.Fprintf(out, "  wescoco --command wesnoth\n\n")
			fmt.Fprintf(out, "Flags:\n")
			flag.PrintDefaults()
		}
		flag.Parse()
	}
}

func Load() (*Config, error) {
	// Ensure flags are parsed
	ParseFlags()

	cfg := &Config{
		Files:       flag.Args(),
		Command:     *command,
		Follow:      *follow,
		MetricsPort: *metricsPort,
		Verbose:     *verbose,
	}

	color, err := colorEnabled(*colorMode, isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()))
	if err != nil {
		return nil, err
	}
	cfg.Color = color

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// colorEnabled resolves a -color mode against whether stderr is a
// terminal.
func colorEnabled(mode string, tty bool) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		return tty, nil
	default:
		return false, fmt.Errorf("invalid -color mode %q (want auto, always or never)", mode)
	}
}

func (c *Config) Validate() error {
	if c.Command != "" && len(c.Files) > 0 {
		return fmt.Errorf("-command cannot be combined with file arguments")
	}
	if c.Follow && len(c.Files) != 1 {
		return fmt.Errorf("-follow requires exactly one file argument")
	}
	return nil
}
