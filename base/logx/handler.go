// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record in the
// form "LEVEL message key=value ...", with the level colored according
// to the capabilities of the output terminal.
type Handler struct {
	opts   slog.HandlerOptions
	out    *termenv.Output
	mu     *sync.Mutex
	pre    string // preformatted attrs from WithAttrs
	groups []string
}

// NewHandler returns a new [Handler] writing to w. A nil opts
// logs at [slog.LevelInfo] and above. The termenv options can be used
// to force a color profile, for example [termenv.Ascii] in tests.
func NewHandler(w io.Writer, opts *slog.HandlerOptions, topts ...termenv.OutputOption) *Handler {
	h := &Handler{
		out: termenv.NewOutput(w, topts...),
		mu:  &sync.Mutex{},
	}
	if opts != nil {
		h.opts = *opts
	}
	return h
}

// SetDefaultLogger sets the default [slog] logger to a [Handler]
// on stderr at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, &slog.HandlerOptions{Level: UserLevel})))
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	min := slog.LevelInfo
	if h.opts.Level != nil {
		min = h.opts.Level.Level()
	}
	return level >= min
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(h.levelString(r.Level))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	sb.WriteString(h.pre)
	prefix := h.groupPrefix()
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, prefix, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	nh := *h
	var sb strings.Builder
	sb.WriteString(h.pre)
	prefix := h.groupPrefix()
	for _, a := range attrs {
		appendAttr(&sb, prefix, a)
	}
	nh.pre = sb.String()
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}

func (h *Handler) groupPrefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

// levelString returns the level name styled for the output.
func (h *Handler) levelString(l slog.Level) string {
	s := h.out.String(l.String())
	switch {
	case l >= slog.LevelError:
		s = s.Foreground(termenv.ANSIRed).Bold()
	case l >= slog.LevelWarn:
		s = s.Foreground(termenv.ANSIYellow)
	case l >= slog.LevelInfo:
	default:
		s = s.Faint()
	}
	return s.String()
}

func appendAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		gp := prefix
		if a.Key != "" {
			gp += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(sb, gp, ga)
		}
		return
	}
	sb.WriteByte(' ')
	sb.WriteString(prefix)
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	v := a.Value.String()
	if v == "" || strings.ContainsAny(v, " \t\n\"=") {
		v = strconv.Quote(v)
	}
	sb.WriteString(v)
}
