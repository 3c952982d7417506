// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Mode is a tri-state terminal feature switch. It implements pflag.Value
// so it can back --color and --progress directly.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

// String returns the mode name.
func (m *Mode) String() string {
	if *m == "" {
		return string(ModeAuto)
	}
	return string(*m)
}

// Set parses a mode name.
func (m *Mode) Set(value string) error {
	switch Mode(value) {
	case ModeAuto, ModeAlways, ModeNever:
		*m = Mode(value)
		return nil
	}
	return fmt.Errorf("invalid value %q (want auto, always or never)", value)
}

// Type names the value in flag usage.
func (m *Mode) Type() string { return "when" }

// Enabled reports whether the feature is on for output written to w.
// In auto mode that is whenever w is a terminal.
func (m Mode) Enabled(w io.Writer) bool {
	switch m {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	return IsTerminal(w)
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	fd, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(fd.Fd()))
}

// colorProfile returns the color profile for output to w. When color is
// forced on w is usually not a terminal, so detection would report no
// colors; 256 colors are assumed instead.
func colorProfile(w io.Writer, mode Mode) termenv.Profile {
	if !mode.Enabled(w) {
		return termenv.Ascii
	}
	profile := termenv.NewOutput(w).EnvColorProfile()
	if profile == termenv.Ascii && mode == ModeAlways {
		return termenv.ANSI256
	}
	return profile
}
