// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

// Decompiler decompiles a binary file through the retdec API and prints
// the resulting C code to standard output:
//
//	decompiler [-k KEY] [-u URL] [-o DIR] FILE
//
// The API key and URL default to RETDEC_API_KEY and RETDEC_API_URL, then
// to a .env file in the working directory, then to the file named by
// --config or RETDEC_CONFIG. With --output-dir the code is saved into
// DIR under the name the service gives it, and the saved path is
// printed instead.
//
// On a terminal the code is syntax-highlighted and a spinner runs while
// the decompilation is in progress. The exit status is 0 on success and
// 1 on any error.
package main
