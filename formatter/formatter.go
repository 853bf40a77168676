package formatter

import (
	"bytes"
	"fmt"
	"reflect"
	"sync"

	"github.com/pkg/errors"
)

// stackTracer is implemented by errors that captured a stack trace,
// e.g. those created with github.com/pkg/errors.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// FormatValue converts one message value into printable text. Cases are
// tried in order:
//
//  1. errors print their stack trace when they carry one, else Error()
//  2. structs, maps, slices, arrays and pointers print as 2-space indented
//     JSON, falling back to fmt on encoding failure
//  3. everything else prints with fmt.Sprint
//
// FormatValue never panics.
func FormatValue(v any) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = fmt.Sprintf("%%!v(PANIC=%v)", r)
		}
	}()

	switch val := v.(type) {
	case nil:
		return "<nil>"
	case error:
		return formatError(val)
	}

	if isObject(v) {
		out, err := encodeJSON(v)
		if err != nil {
			return fallback(v, err)
		}
		return out
	}
	return fmt.Sprint(v)
}

// Join formats every value and joins the results with single spaces.
func Join(values []any) string {
	switch len(values) {
	case 0:
		return ""
	case 1:
		return FormatValue(values[0])
	}

	buf := getBuffer()
	defer putBuffer(buf)

	for i, v := range values {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(FormatValue(v))
	}
	return buf.String()
}

// formatError prints the stack of the outermost error in the chain that
// captured one. Wrappers that don't format stacks themselves, such as
// fmt.Errorf with %w, get the message followed by the frames.
func formatError(err error) string {
	if _, ok := err.(stackTracer); ok {
		return fmt.Sprintf("%+v", err)
	}
	var st stackTracer
	if errors.As(err, &st) {
		return err.Error() + fmt.Sprintf("%+v", st.StackTrace())
	}
	return err.Error()
}

func isObject(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array, reflect.Pointer:
		return true
	default:
		return false
	}
}
