// Package ansi provides the SGR escape sequences used to style terminal
// output, and helpers to wrap text in them.
package ansi

import "regexp"

// Format is an ANSI SGR escape sequence. The constant value is the
// sequence itself, so applying a Format is plain string concatenation.
type Format string

const (
	Default   Format = ""
	Reset     Format = "\033[0m"
	Bold      Format = "\033[1m"
	Dim       Format = "\033[2m"
	Medium    Format = "\033[22m" // cancels Bold/Dim only
	Italic    Format = "\033[3m"
	NoItalic  Format = "\033[23m"
	Underline Format = "\033[4m"
	Invert    Format = "\033[7m"

	Black   Format = "\033[30m"
	Red     Format = "\033[31m"
	Green   Format = "\033[32m"
	Yellow  Format = "\033[33m"
	Blue    Format = "\033[34m"
	Magenta Format = "\033[35m"
	Cyan    Format = "\033[36m"
	White   Format = "\033[37m"

	BrightBlack   Format = "\033[1;30m"
	BrightRed     Format = "\033[1;31m"
	BrightGreen   Format = "\033[1;32m"
	BrightYellow  Format = "\033[1;33m"
	BrightBlue    Format = "\033[1;34m"
	BrightMagenta Format = "\033[1;35m"
	BrightCyan    Format = "\033[1;36m"
	BrightWhite   Format = "\033[1;37m"
)

// Apply wraps text in the format, closed with a full Reset.
// Default is the empty sequence, so Default.Apply only appends the Reset.
func (f Format) Apply(text string) string {
	return string(f) + text + string(Reset)
}

// ApplyWith wraps text in the format, closed with an arbitrary closer
// instead of Reset. The closer may be another escape sequence (e.g.
// Medium to cancel Dim without resetting colors), a literal string that
// should follow the styled text, or "" to leave the formatting open for
// a later segment to close.
func (f Format) ApplyWith(text, closer string) string {
	return string(f) + text + closer
}

var sgrRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Strip removes all SGR escape sequences from s.
func Strip(s string) string {
	return sgrRegexp.ReplaceAllString(s, "")
}
