// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

package api

import "context"

// Connection sends requests to the retdec API.
type Connection interface {
	// APIURL returns the root URL of the API, without a trailing slash.
	APIURL() string

	// Get sends a GET request with args as query parameters.
	Get(ctx context.Context, url string, args *Arguments) (*Response, error)

	// Post sends a POST request with args as a multipart body.
	Post(ctx context.Context, url string, args *Arguments) (*Response, error)
}

// GetWithoutArgs sends a GET request with no query parameters.
func GetWithoutArgs(ctx context.Context, conn Connection, url string) (*Response, error) {
	return conn.Get(ctx, url, nil)
}

