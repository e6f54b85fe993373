package logging

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

type buffer struct {
	mu    sync.Mutex
	lines []string
}

// BufferedHandler is a slog.Handler that keeps formatted records in memory,
// one line per record, for inspection in tests.
type BufferedHandler struct {
	level  slog.Leveler
	buf    *buffer
	attrs  []slog.Attr
	prefix string
}

var _ slog.Handler = (*BufferedHandler)(nil)

// NewBufferedHandler returns a handler recording all records at or above
// level. A nil level records everything.
func NewBufferedHandler(level slog.Leveler) *BufferedHandler {
	return &BufferedHandler{level: level, buf: &buffer{}}
}

func (h *BufferedHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.level == nil || level >= h.level.Level()
}

func format_attr(b *strings.Builder, prefix string, a slog.Attr) {
	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.String())
}

func (h *BufferedHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Level.String())
	b.WriteByte(' ')
	b.WriteString(r.Message)
	// attrs added by WithAttrs already carry the prefix of their group
	for _, a := range h.attrs {
		format_attr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		format_attr(&b, h.prefix, a)
		return true
	})
	h.buf.mu.Lock()
	defer h.buf.mu.Unlock()
	h.buf.lines = append(h.buf.lines, b.String())
	return nil
}

func (h *BufferedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	ans := *h
	ans.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	ans.attrs = append(ans.attrs, h.attrs...)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		ans.attrs = append(ans.attrs, a)
	}
	return &ans
}

func (h *BufferedHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	ans := *h
	ans.prefix = h.prefix + name + "."
	return &ans
}

// Lines returns a copy of the recorded lines.
func (h *BufferedHandler) Lines() []string {
	h.buf.mu.Lock()
	defer h.buf.mu.Unlock()
	return append([]string(nil), h.buf.lines...)
}

func (h *BufferedHandler) String() string {
	return strings.Join(h.Lines(), "\n")
}

func (h *BufferedHandler) Contains(s string) bool {
	return strings.Contains(h.String(), s)
}

func (h *BufferedHandler) Reset() {
	h.buf.mu.Lock()
	defer h.buf.mu.Unlock()
	h.buf.lines = nil
}
