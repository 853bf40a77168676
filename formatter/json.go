package formatter

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// encodeJSON renders v as 2-space indented JSON. HTML characters are left
// unescaped so values read the same as they were logged.
func encodeJSON(v any) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("encode %T: panic: %v", v, r)
		}
	}()

	buf := getBuffer()
	defer putBuffer(buf)

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encode %T: %w", v, err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// fallback is used when v could not be encoded. Cyclic values get a type
// placeholder because fmt would recurse forever through self-referencing
// maps and slices.
func fallback(v any, err error) string {
	var unsupported *json.UnsupportedValueError
	if errors.As(err, &unsupported) && strings.HasPrefix(unsupported.Str, "encountered a cycle") {
		return cyclicPlaceholder(v)
	}
	if hasCycle(v) {
		return cyclicPlaceholder(v)
	}
	return fmt.Sprint(v)
}
