package formatter

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/philipp01105/scopelog/core"
)

type node struct {
	Name string
	Next *node
}

type panicMarshaler struct{}

func (panicMarshaler) MarshalJSON() ([]byte, error) {
	panic("boom")
}

type panicError struct{}

func (panicError) Error() string {
	panic("bad error")
}

func TestFormatValue_Primitives(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "hello", "hello"},
		{"int", 42, "42"},
		{"float", 3.5, "3.5"},
		{"bool", true, "true"},
		{"nil", nil, "<nil>"},
		{"duration", 5 * time.Second, "5s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.in); got != tt.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatValue_PlainError(t *testing.T) {
	got := FormatValue(stderrors.New("disk full"))
	if got != "disk full" {
		t.Errorf("Expected message text, got: %q", got)
	}
}

func TestFormatValue_ErrorWithStack(t *testing.T) {
	got := FormatValue(errors.New("connection reset"))
	if !strings.HasPrefix(got, "connection reset") {
		t.Errorf("Expected message first, got: %q", got)
	}
	if !strings.Contains(got, "TestFormatValue_ErrorWithStack") {
		t.Errorf("Expected stack trace in output, got: %q", got)
	}
}

func TestFormatValue_WrappedErrorWithStack(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want string
	}{
		{"with stack", errors.WithStack(stderrors.New("timeout")), "timeout"},
		{"fmt wrap", fmt.Errorf("save: %w", errors.New("disk full")), "save: disk full"},
		{"double wrap", fmt.Errorf("sync: %w", fmt.Errorf("save: %w", errors.New("disk full"))), "sync: save: disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatValue(tt.in)
			if !strings.HasPrefix(got, tt.want) {
				t.Errorf("Expected message %q first, got: %q", tt.want, got)
			}
			if !strings.Contains(got, "formatter_test.go") {
				t.Errorf("Expected stack trace in output, got: %q", got)
			}
		})
	}
}

func TestFormatValue_Object(t *testing.T) {
	got := FormatValue(map[string]int{"a": 1})
	want := "{\n  \"a\": 1\n}"
	if got != want {
		t.Errorf("FormatValue(map) = %q, want %q", got, want)
	}
}

func TestFormatValue_Struct(t *testing.T) {
	type server struct {
		Host string `json:"host"`
		Port int    `json:"port"`
	}
	got := FormatValue(server{Host: "<local>", Port: 3000})
	if !strings.Contains(got, `"port": 3000`) {
		t.Errorf("Expected indented port field, got: %s", got)
	}
	if !strings.Contains(got, `"host": "<local>"`) {
		t.Errorf("Expected unescaped HTML characters, got: %s", got)
	}
}

func TestFormatValue_NilPointer(t *testing.T) {
	var n *node
	if got := FormatValue(n); got != "null" {
		t.Errorf("FormatValue(nil pointer) = %q, want null", got)
	}
}

func TestFormatValue_CyclicPointer(t *testing.T) {
	n := &node{Name: "loop"}
	n.Next = n

	got := FormatValue(n)
	if got == "" {
		t.Fatal("Expected non-empty output for cyclic value")
	}
	if !strings.Contains(got, "cyclic") {
		t.Errorf("Expected cyclic placeholder, got: %q", got)
	}
}

func TestFormatValue_CyclicMap(t *testing.T) {
	m := map[string]any{"name": "self"}
	m["self"] = m

	if got := FormatValue(m); got == "" {
		t.Error("Expected non-empty output for cyclic map")
	}
}

func TestFormatValue_CyclicWithUnsupported(t *testing.T) {
	m := map[string]any{"c": make(chan int)}
	m["self"] = m

	if got := FormatValue(m); got != "<cyclic map[string]interface {}>" {
		t.Errorf("Expected cyclic placeholder, got: %q", got)
	}

	s := []any{func() {}, nil}
	s[1] = s
	if got := FormatValue(s); got != "<cyclic []interface {}>" {
		t.Errorf("Expected cyclic placeholder, got: %q", got)
	}
}

func TestPlainValue(t *testing.T) {
	shared := &node{Name: "leaf"}
	acyclic := []*node{shared, shared}
	if got := PlainValue(acyclic); fmt.Sprint(got) != fmt.Sprint(acyclic) {
		t.Errorf("Shared references should pass through, got: %v", got)
	}

	if got := PlainValue(42); got != 42 {
		t.Errorf("PlainValue(42) = %v", got)
	}

	m := map[string]any{"name": "node"}
	m["self"] = m
	if got := PlainValue(m); got != "<cyclic map[string]interface {}>" {
		t.Errorf("Expected cyclic placeholder, got: %v", got)
	}

	n := &node{Name: "loop"}
	n.Next = n
	if got := PlainValue(n); got != "<cyclic *formatter.node>" {
		t.Errorf("Expected cyclic placeholder, got: %v", got)
	}
}

func TestFormatValue_UnsupportedFallsBack(t *testing.T) {
	v := struct{ C chan int }{C: nil}
	got := FormatValue(v)
	if got != "{<nil>}" {
		t.Errorf("Expected fmt fallback, got: %q", got)
	}
}

func TestFormatValue_PanicsRecovered(t *testing.T) {
	if got := FormatValue(panicMarshaler{}); got == "" {
		t.Error("Expected output for panicking marshaler")
	}
	if got := FormatValue(panicError{}); !strings.Contains(got, "PANIC") {
		t.Errorf("Expected panic marker, got: %q", got)
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name string
		in   []any
		want string
	}{
		{"empty", nil, ""},
		{"single", []any{"only"}, "only"},
		{"mixed", []any{"fail", 42, true}, "fail 42 true"},
		{"object", []any{"Started", map[string]int{"port": 3000}}, "Started {\n  \"port\": 3000\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Join(tt.in); got != tt.want {
				t.Errorf("Join() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLabelAndBracket(t *testing.T) {
	if got := Label(core.WarnLevel); got != "WARN" {
		t.Errorf("Label(warn) = %q", got)
	}
	if got := Bracket(core.ErrorLevel); got != "[ERROR]" {
		t.Errorf("Bracket(error) = %q", got)
	}
	if got := Bracket(core.Level(9)); got != "[LEVEL(9)]" {
		t.Errorf("Bracket(invalid) = %q", got)
	}
}

func BenchmarkFormatValue_Object(b *testing.B) {
	v := map[string]any{"port": 3000, "host": "localhost"}
	for i := 0; i < b.N; i++ {
		_ = FormatValue(v)
	}
}

func BenchmarkJoin(b *testing.B) {
	values := []any{"request handled", 200, 1.5}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Join(values)
	}
}
