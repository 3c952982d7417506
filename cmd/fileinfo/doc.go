// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

// Fileinfo analyzes a binary file through the retdec API and prints the
// analysis to standard output:
//
//	fileinfo [-k KEY] [-u URL] [-f plain|json] [-v] FILE
//
// Settings are resolved the same way as for the decompiler command. JSON
// output is syntax-highlighted on a terminal.
package main
