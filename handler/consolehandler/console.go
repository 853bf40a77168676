package consolehandler

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/philipp01105/scopelog/core"
	"github.com/philipp01105/scopelog/formatter"
	"github.com/philipp01105/scopelog/handler"
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Color selects styled or plain output (default: ColorAuto)
	Color ColorMode
}

// ConsoleHandler writes one line per entry to a terminal or any other
// io.Writer. Styled lines paint the level and scope labels with the same
// colors browser consoles get; plain lines look like "[INFO] a b".
type ConsoleHandler struct {
	writer io.Writer
	styled bool
	stats  *handler.Stats

	levelStyles [5]lipgloss.Style
	unknown     lipgloss.Style
	scope       lipgloss.Style

	mu  sync.Mutex // protects buf and writer
	buf bytes.Buffer
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
}

// NewConsoleHandler creates a new console handler. Color support is
// resolved here once and kept for the handler's lifetime.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)

	h := &ConsoleHandler{
		writer: cfg.Writer,
		styled: resolveStyled(cfg.Color, cfg.Writer),
		stats:  handler.NewStats(),
	}
	h.buf.Grow(256)

	if h.styled {
		// Capability is already decided, so lipgloss must not probe again.
		r := lipgloss.NewRenderer(cfg.Writer)
		r.SetColorProfile(termenv.TrueColor)
		for _, l := range core.Levels() {
			h.levelStyles[l] = labelStyle(r, formatter.StyleForLevel(l))
		}
		h.unknown = labelStyle(r, formatter.StyleForLevel(core.Level(-1)))
		h.scope = labelStyle(r, formatter.ScopeStyle)
	}
	return h
}

// Styled reports whether the handler writes color-styled labels.
func (h *ConsoleHandler) Styled() bool {
	return h.styled
}

// Handle writes the entry as a single line.
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.buf.Reset()
	if h.styled {
		h.formatStyled(entry)
	} else {
		fmt.Fprintln(&h.buf, ConsoleArgs(entry, false)...)
	}

	_, err := h.writer.Write(h.buf.Bytes())
	h.stats.Record(err)
	return err
}

func (h *ConsoleHandler) formatStyled(entry *core.Entry) {
	style := h.unknown
	if entry.Level.Valid() {
		style = h.levelStyles[entry.Level]
	}
	h.buf.WriteString(style.Render(formatter.Label(entry.Level)))

	if entry.Scope != "" {
		h.buf.WriteByte(' ')
		h.buf.WriteString(h.scope.Render(entry.Scope))
	}

	if text := formatter.Join(entry.Messages); text != "" {
		h.buf.WriteByte(' ')
		h.buf.WriteString(text)
	}
	h.buf.WriteByte('\n')
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close is a no-op; the writer is owned by the caller.
func (h *ConsoleHandler) Close() error {
	return nil
}

func labelStyle(r *lipgloss.Renderer, s formatter.LabelStyle) lipgloss.Style {
	return r.NewStyle().
		Background(terminalColor(s.Background)).
		Foreground(terminalColor(s.Text)).
		Padding(0, 1)
}

// terminalColor maps CSS color names used by label styles to hex, which
// lipgloss understands.
func terminalColor(c string) lipgloss.Color {
	switch c {
	case "white":
		return lipgloss.Color("#FFFFFF")
	case "black":
		return lipgloss.Color("#000000")
	default:
		return lipgloss.Color(c)
	}
}
