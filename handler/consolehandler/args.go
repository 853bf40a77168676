package consolehandler

import (
	"github.com/philipp01105/scopelog/core"
	"github.com/philipp01105/scopelog/formatter"
)

var scopeCSS = formatter.ScopeStyle.CSS()

// ConsoleArgs builds the console.log argument list for an entry.
//
// Plain output is the bracketed level followed by the original values:
//
//	["[ERROR]", "fail", 42]
//
// Values that reference themselves are replaced by a "<cyclic T>"
// placeholder so printing them terminates.
//
// Styled output uses %c directives, one CSS string per directive, and the
// joined formatted message as the last argument:
//
//	["%cWARN%c %cDB", levelCSS, "", scopeCSS, "slow query"]
func ConsoleArgs(entry *core.Entry, styled bool) []any {
	if !styled {
		args := make([]any, 0, len(entry.Messages)+1)
		args = append(args, formatter.Bracket(entry.Level))
		for _, m := range entry.Messages {
			args = append(args, formatter.PlainValue(m))
		}
		return args
	}

	label := formatter.Label(entry.Level)
	levelCSS := formatter.StyleForLevel(entry.Level).CSS()
	text := formatter.Join(entry.Messages)

	if entry.Scope == "" {
		return []any{"%c" + label, levelCSS, text}
	}
	return []any{"%c" + label + "%c %c" + entry.Scope, levelCSS, "", scopeCSS, text}
}
