// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"

	"github.com/retdec-client/retdec-go/lib/apierror"
)

// VerifyingConnection wraps a Connection and turns every non-2xx
// response into an *apierror.RequestFailedError.
type VerifyingConnection struct {
	conn Connection
}

// Verifying wraps conn. Wrapping a connection that already verifies
// returns it unchanged.
func Verifying(conn Connection) *VerifyingConnection {
	if verifying, ok := conn.(*VerifyingConnection); ok {
		return verifying
	}
	return &VerifyingConnection{conn: conn}
}

// Unwrap returns the connection that is being verified.
func (connection *VerifyingConnection) Unwrap() Connection {
	return connection.conn
}

// APIURL returns the wrapped connection's API URL.
func (connection *VerifyingConnection) APIURL() string {
	return connection.conn.APIURL()
}

// Get sends a GET request and verifies that it succeeded.
func (connection *VerifyingConnection) Get(ctx context.Context, url string, args *Arguments) (*Response, error) {
	response, err := connection.conn.Get(ctx, url, args)
	if err != nil {
		return nil, err
	}
	if err := EnsureSucceeded(url, response); err != nil {
		return nil, err
	}
	return response, nil
}

// Post sends a POST request and verifies that it succeeded.
func (connection *VerifyingConnection) Post(ctx context.Context, url string, args *Arguments) (*Response, error) {
	response, err := connection.conn.Post(ctx, url, args)
	if err != nil {
		return nil, err
	}
	if err := EnsureSucceeded(url, response); err != nil {
		return nil, err
	}
	return response, nil
}

// EnsureSucceeded returns an *apierror.RequestFailedError describing
// response when its status is not 2xx.
func EnsureSucceeded(url string, response *Response) error {
	if response.Succeeded() {
		return nil
	}
	return &apierror.RequestFailedError{
		URL:        url,
		StatusCode: response.StatusCode,
		Reason:     response.ErrorReason(),
	}
}
