// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"io"
	"log/slog"
)

// NewLogger creates the command logger writing to w. When w is a
// terminal it uses slog.TextHandler for human-readable output, otherwise
// slog.JSONHandler for machine-parseable output. The level is Warn, or
// Debug when debug is set, so by default the library's request and
// polling logs stay quiet.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	options := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if IsTerminal(w) {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}
