package consolehandler

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ColorMode selects whether labels are styled.
type ColorMode int

const (
	// ColorAuto styles output when the target supports it. The decision is
	// made once, never per entry.
	ColorAuto ColorMode = iota
	// ColorAlways forces styled labels
	ColorAlways
	// ColorNever forces plain "[LEVEL] ..." lines
	ColorNever
)

// String returns the string representation of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// stdoutStyled caches the capability of the process's stdout.
var stdoutStyled = detectStyled(os.Stdout)

// detectStyled reports whether f is a color-capable terminal. NO_COLOR and
// TERM=dumb opt out regardless of the file.
func detectStyled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// resolveStyled turns a mode into a fixed decision for writer w.
func resolveStyled(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if w == os.Stdout {
		return stdoutStyled
	}
	if f, ok := w.(*os.File); ok {
		return detectStyled(f)
	}
	return false
}
