// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ErrorChain splits err into one message per wrap layer, outermost
// first. Each layer contributes its own text with the wrapped error's
// text stripped from the end. Layers that only re-label the next one
// (same text) are dropped.
func ErrorChain(err error) []string {
	var layers []string
	for err != nil {
		text := err.Error()
		next := errors.Unwrap(err)
		if next != nil {
			nextText := next.Error()
			if text == nextText {
				err = next
				continue
			}
			text = strings.TrimSuffix(text, ": "+nextText)
		}
		if text != "" && (len(layers) == 0 || layers[len(layers)-1] != text) {
			layers = append(layers, text)
		}
		err = next
	}
	return layers
}

// PrintError writes err to w as
//
//	error: <outermost message>
//	  caused by: <cause>
//	  caused by: <innermost cause>
//
// The prefixes are colored when color is enabled for w.
func PrintError(w io.Writer, err error, color Mode) {
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(colorProfile(w, color)))
	renderer.SetColorProfile(colorProfile(w, color))
	errorPrefix := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("9")).Render("error:")
	causePrefix := renderer.NewStyle().Faint(true).Render("caused by:")

	layers := ErrorChain(err)
	if len(layers) == 0 {
		layers = []string{"unknown error"}
	}
	fmt.Fprintf(w, "%s %s\n", errorPrefix, layers[0])
	for _, cause := range layers[1:] {
		fmt.Fprintf(w, "  %s %s\n", causePrefix, cause)
	}
}
