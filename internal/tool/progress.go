// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// waitDoneMsg tells the spinner that the wait has returned.
type waitDoneMsg struct{}

// waitModel renders a spinner and a label until waitDoneMsg arrives.
type waitModel struct {
	spinner spinner.Model
	label   string
	done    bool
}

func newWaitModel(label string) waitModel {
	return waitModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		label:   label,
	}
}

func (m waitModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m waitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case waitDoneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m waitModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.label + "\n"
}

// WaitWithSpinner runs wait and returns its error. While wait runs, a
// spinner with label is drawn on w when progress is enabled for w. The
// spinner never reads input and installs no signal handlers, so
// cancellation stays with ctx.
func WaitWithSpinner(ctx context.Context, w io.Writer, label string, progress Mode, wait func(context.Context) error) error {
	if !progress.Enabled(w) {
		return wait(ctx)
	}

	program := tea.NewProgram(newWaitModel(label),
		tea.WithOutput(w),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	result := make(chan error, 1)
	go func() {
		err := wait(ctx)
		result <- err
		program.Send(waitDoneMsg{})
	}()

	// A spinner that fails to start only loses the animation; the wait
	// itself carries on.
	_, _ = program.Run()
	return <-result
}
