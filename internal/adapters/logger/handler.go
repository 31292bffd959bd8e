package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/shrink/internal/ui/style"
)

// levelStyle is the icon and colour of the first line of a record.
type levelStyle struct {
	icon  string
	color lipgloss.Color
}

func styleFor(level slog.Level) levelStyle {
	switch {
	case level >= slog.LevelError:
		return levelStyle{icon: style.Cross, color: style.Red}
	case level >= slog.LevelWarn:
		return levelStyle{icon: style.Warning, color: style.Yellow}
	case level >= slog.LevelInfo:
		return levelStyle{icon: style.Check, color: style.Green}
	default:
		return levelStyle{icon: style.Dot, color: style.Mist}
	}
}

// ColorProfile returns Ascii when NO_COLOR is set and the detected terminal
// profile otherwise.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// PrettyHandler is a slog.Handler that produces human-readable, coloured output.
//
// The JS and CSS branches log concurrently, so every record is written with a
// single call under a lock shared by all handlers derived from the same root.
// Continuation lines of multi-line messages, such as error causes, are dimmed.
type PrettyHandler struct {
	mu     *sync.Mutex
	out    *termenv.Output
	level  slog.Leveler
	attrs  []string
	groups []string
}

// NewPrettyHandler creates a new PrettyHandler writing to w, or to stderr when w is nil.
// The level is read on every record, so a *slog.LevelVar can change it later.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		mu:    &sync.Mutex{},
		out:   termenv.NewOutput(w, termenv.WithProfile(ColorProfile()), termenv.WithTTY(true)),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	ls := styleFor(r.Level)
	lines := strings.Split(r.Message, "\n")

	attrs := append([]string(nil), h.attrs...)
	r.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, h.formatAttr(attr))
		return true
	})

	var b strings.Builder

	head := ls.icon + " " + lines[0]
	b.WriteString(h.out.String(head).Foreground(h.out.Color(string(ls.color))).String())
	if len(attrs) > 0 {
		b.WriteString(" ")
		b.WriteString(h.out.String(strings.Join(attrs, " ")).Foreground(h.out.Color(string(style.Slate))).String())
	}
	b.WriteString("\n")

	for _, line := range lines[1:] {
		b.WriteString(h.out.String("  " + line).Foreground(h.out.Color(string(style.Slate))).String())
		b.WriteString("\n")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.out.WriteString(b.String())
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := h.clone()
	for _, attr := range attrs {
		next.attrs = append(next.attrs, h.formatAttr(attr))
	}
	return next
}

// WithGroup returns a new Handler that nests subsequent attributes under name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := h.clone()
	next.groups = append(next.groups, name)
	return next
}

func (h *PrettyHandler) clone() *PrettyHandler {
	return &PrettyHandler{
		mu:     h.mu,
		out:    h.out,
		level:  h.level,
		attrs:  append([]string(nil), h.attrs...),
		groups: append([]string(nil), h.groups...),
	}
}

func (h *PrettyHandler) formatAttr(attr slog.Attr) string {
	key := attr.Key
	if len(h.groups) > 0 {
		key = strings.Join(h.groups, ".") + "." + key
	}
	return key + "=" + attr.Value.String()
}
