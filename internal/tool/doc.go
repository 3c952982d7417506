// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

// Package tool holds the plumbing shared by the decompiler and fileinfo
// commands: connection flags and settings resolution, the command
// logger, terminal color decisions, syntax highlighting of results, the
// progress spinner shown while a job runs, and error rendering.
//
// Only this package and cmd/ read the process environment or inspect the
// terminal. The library packages under lib/ take everything explicitly.
package tool
