package formatter

import (
	"strings"

	"github.com/philipp01105/scopelog/core"
)

// pre-formatted level strings to avoid per-call upper-casing
var levelLabels = [...]string{
	core.TraceLevel: "TRACE",
	core.DebugLevel: "DEBUG",
	core.InfoLevel:  "INFO",
	core.WarnLevel:  "WARN",
	core.ErrorLevel: "ERROR",
}

var levelBrackets = [...]string{
	core.TraceLevel: "[TRACE]",
	core.DebugLevel: "[DEBUG]",
	core.InfoLevel:  "[INFO]",
	core.WarnLevel:  "[WARN]",
	core.ErrorLevel: "[ERROR]",
}

// Label returns the uppercase level name, e.g. "INFO".
func Label(l core.Level) string {
	if l.Valid() {
		return levelLabels[l]
	}
	return strings.ToUpper(l.String())
}

// Bracket returns the bracketed level tag used by plain output, e.g. "[INFO]".
func Bracket(l core.Level) string {
	if l.Valid() {
		return levelBrackets[l]
	}
	return "[" + Label(l) + "]"
}
