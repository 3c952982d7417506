// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides HTTP I/O helpers for the API transport.
//
// Response bodies are read whole (the API returns JSON documents,
// analysis reports and decompiled sources), so every read is bounded by
// MaxResponseSize to keep a misbehaving server from exhausting memory.
package netutil

import (
	"fmt"
	"io"
)

// MaxResponseSize bounds response body reads: 256 MB. Decompiled output
// of large binaries is measured in megabytes; the limit only exists to
// stop a pathological response.
const MaxResponseSize int64 = 256 << 20

// ReadResponse reads a response body. Bodies larger than MaxResponseSize
// are an error rather than silently truncated, since a cut-off output
// file would look like a valid result.
func ReadResponse(body io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(body, MaxResponseSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > MaxResponseSize {
		return nil, fmt.Errorf("response body exceeds %d bytes", MaxResponseSize)
	}
	return data, nil
}
