// Package consolehandler renders entries for humans.
//
// Two handlers share one layout, a level label, an optional scope label and
// the message:
//
//   - ConsoleHandler writes lines to an io.Writer (default: os.Stdout). When
//     styling is enabled the labels are painted with lipgloss using the
//     level's background color; otherwise lines read "[LEVEL] v1 v2".
//   - DevtoolsHandler calls a console.log-like function with an argument
//     list built by ConsoleArgs, using %c directives and CSS strings when
//     styled. On js/wasm builds it targets the browser console.
//
// Styling support is detected once: for stdout at package initialization,
// for other writers when the handler is built. NO_COLOR and TERM=dumb
// disable it; ColorAlways and ColorNever override detection.
package consolehandler
