//go:build !js

package consolehandler

import (
	"fmt"
	"os"

	"github.com/philipp01105/scopelog/handler"
)

// Outside a browser nothing interprets %c directives.
var devtoolsStyled = false

func consoleLog(args ...any) {
	fmt.Fprintln(os.Stdout, args...)
}

// NewDefaultHandler returns the handler used by the default logger: a
// console handler on stdout.
func NewDefaultHandler() handler.Handler {
	return NewConsoleHandler(ConsoleConfig{})
}
