//go:build js

package consolehandler

import (
	"syscall/js"

	"github.com/philipp01105/scopelog/formatter"
	"github.com/philipp01105/scopelog/handler"
)

// devtoolsStyled is false in worker runtimes, recognized by their
// HTMLRewriter global, whose consoles ignore %c.
var devtoolsStyled = js.Global().Get("HTMLRewriter").IsUndefined()

func consoleLog(args ...any) {
	values := make([]any, len(args))
	for i, a := range args {
		values[i] = jsValue(a)
	}
	js.Global().Get("console").Call("log", values...)
}

// jsValue converts a Go value for console.log, using its formatted text
// when syscall/js can't represent it.
func jsValue(v any) (out any) {
	defer func() {
		if recover() != nil {
			out = formatter.FormatValue(v)
		}
	}()
	return js.ValueOf(v)
}

// NewDefaultHandler returns the handler used by the default logger: the
// browser console.
func NewDefaultHandler() handler.Handler {
	return NewDevtoolsHandler(DevtoolsConfig{})
}
