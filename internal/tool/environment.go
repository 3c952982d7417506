// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"io"
	"os"

	"github.com/retdec-client/retdec-go/lib/clock"
	"github.com/retdec-client/retdec-go/lib/config"
)

// Environment is what a command reads from and writes to outside its
// arguments. Tests substitute buffers, a fixed environment and a fast
// clock.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
	Getenv config.Lookup
	Clock  clock.Clock
}

// ProcessEnvironment returns the environment of the running process.
func ProcessEnvironment() Environment {
	return Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
		Clock:  clock.Real(),
	}
}
