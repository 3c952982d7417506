// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"io"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/muesli/termenv"
)

// Languages for Highlight.
const (
	LanguageC    = "c"
	LanguageJSON = "json"
)

// highlightStyle is the chroma style for all highlighted output.
const highlightStyle = "monokai"

// Highlight writes code to w, syntax-highlighted as language when color
// is enabled for w. Code that chroma cannot highlight is written as is.
func Highlight(w io.Writer, code, language string, color Mode) error {
	formatter := chromaFormatter(colorProfile(w, color))
	if formatter == "" {
		_, err := io.WriteString(w, code)
		return err
	}
	return quick.Highlight(w, code, language, formatter, highlightStyle)
}

// chromaFormatter maps a termenv profile to a chroma terminal formatter,
// or "" for no color.
func chromaFormatter(profile termenv.Profile) string {
	switch profile {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	case termenv.ANSI:
		return "terminal"
	}
	return ""
}
