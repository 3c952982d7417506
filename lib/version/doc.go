// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for the library and
// its tools, and the client identifier sent with every API request.
//
// Version, GitCommit and BuildTime can be injected at build time:
//
//	go build -ldflags "-X github.com/retdec-client/retdec-go/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
// [UserAgent] combines the library name, [Version] and [Platform] into
// the identifier the API uses to tell clients apart, for example
// "retdec-go/0.1.0-dev (Linux)".
package version
