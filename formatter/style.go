package formatter

import "github.com/philipp01105/scopelog/core"

// Label background colors
const (
	ColorNeutral = "#77828D"
	ColorInfo    = "#1389FD"
	ColorWarn    = "#FFDB6C"
	ColorError   = "#EE4744"
	ColorUnknown = "black"
)

// LabelStyle describes how a level or scope label is painted.
type LabelStyle struct {
	Background string
	Text       string
}

// ScopeStyle is the fixed style of scope labels.
var ScopeStyle = LabelStyle{Background: ColorNeutral, Text: "white"}

// CSS returns the style as a browser console declaration list. The first
// color declaration is always white and is overridden by the second.
func (s LabelStyle) CSS() string {
	return "background-color: " + s.Background +
		"; color: white; border: 4px solid " + s.Background +
		"; color: " + s.Text + ";"
}

// ColorForLevel returns the label background color of a level.
func ColorForLevel(l core.Level) string {
	switch l {
	case core.TraceLevel, core.DebugLevel:
		return ColorNeutral
	case core.InfoLevel:
		return ColorInfo
	case core.WarnLevel:
		return ColorWarn
	case core.ErrorLevel:
		return ColorError
	default:
		return ColorUnknown
	}
}

// TextColorForLevel returns the label text color of a level. Warn uses
// black for contrast against yellow.
func TextColorForLevel(l core.Level) string {
	if l == core.WarnLevel {
		return "black"
	}
	return "white"
}

// StyleForLevel returns the label style of a level.
func StyleForLevel(l core.Level) LabelStyle {
	return LabelStyle{Background: ColorForLevel(l), Text: TextColorForLevel(l)}
}
