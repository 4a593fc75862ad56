// Package processor classifies and colorizes Wesnoth console output one
// line at a time.
package processor

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/irydacea/wescoco/ansi"
	"github.com/irydacea/wescoco/metrics"
)

// Standard log message: DATE TIME LEVEL DOMAIN: MESSAGE.
// Matched against the line with its trailing newline removed; Go anchors
// $ at end of text, not before a final newline.
var standardRegexp = regexp.MustCompile(`^(\d{8}) (\d\d:\d\d:\d\d) (\S+) (\S+): (.*)$`)

var allLevels = []string{"debug", "info", "warning", "error"}

// info deliberately has no color of its own.
var levelFormats = map[string]ansi.Format{
	"debug":   ansi.BrightBlack,
	"warning": ansi.BrightYellow,
	"error":   ansi.BrightRed,
}

var levelPadding int

func init() {
	for _, level := range allLevels {
		if len(level) > levelPadding {
			levelPadding = len(level)
		}
	}
}

type flusher interface {
	Flush() error
}

// Processor rewrites one input stream. The only state it carries is the
// remaining banner catalog, so each stream gets its own Processor.
type Processor struct {
	out    io.Writer
	color  bool
	banner []bannerEntry
}

// New returns a Processor writing to out. With color disabled every line
// is passed through untouched.
func New(out io.Writer, color bool) *Processor {
	return &Processor{
		out:    out,
		color:  color,
		banner: newBannerCatalog(),
	}
}

// ProcessLine classifies one raw input line, including its terminator if
// present, and writes the rewritten form. Lines that match nothing are
// written back byte for byte.
func (p *Processor) ProcessLine(raw string) {
	if !p.color {
		metrics.ProcessedLinesTotal.WithLabelValues("passthrough").Inc()
		p.write(raw)
		return
	}

	line, _ := strings.CutSuffix(raw, "\n")
	m := standardRegexp.FindStringSubmatch(line)
	if m == nil {
		if len(p.banner) > 0 {
			p.processBanner(raw, line)
		} else {
			metrics.ProcessedLinesTotal.WithLabelValues("passthrough").Inc()
			p.write(raw)
		}
		return
	}

	date, tm, level, domain, body := m[1], m[2], m[3], m[4], m[5]

	format, ok := levelFormats[level]
	if !ok {
		format = ansi.Default
	}

	// The trailing newline is a joined segment of its own, so the line
	// ends in " \n" and the closing Reset lands after the newline.
	parts := []string{
		ansi.Dim.ApplyWith(date+" "+tm, string(ansi.Medium)),
		ansi.Italic.ApplyWith(fmt.Sprintf("%*s", levelPadding, level), string(ansi.NoItalic)),
		ansi.Bold.ApplyWith(domain, ":"),
		ansi.Medium.ApplyWith(body, ""),
		"\n",
	}

	metrics.ProcessedLinesTotal.WithLabelValues("standard").Inc()
	metrics.StandardLinesTotal.WithLabelValues(level).Inc()

	p.write(format.Apply(strings.Join(parts, " ")))
}

func (p *Processor) write(s string) {
	io.WriteString(p.out, s)
	// Output is interleaved with the wrapped application's own writes,
	// so nothing may sit in a buffer between lines.
	if f, ok := p.out.(flusher); ok {
		f.Flush()
	}
}
