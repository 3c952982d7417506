// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

// Package tester is the client for the retdec test service, which
// checks credentials and echoes request parameters.
package tester

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/retdec-client/retdec-go/lib/api"
	"github.com/retdec-client/retdec-go/lib/apierror"
)

// Tester calls the test endpoints.
type Tester struct {
	conn   api.Connection
	logger *slog.Logger
}

// New creates a Tester. A nil logger means slog.Default(). A verifying
// connection is unwrapped, since Auth must see a 401 response to report
// it as an authentication failure.
func New(conn api.Connection, logger *slog.Logger) *Tester {
	if logger == nil {
		logger = slog.Default()
	}
	if verifying, ok := conn.(*api.VerifyingConnection); ok {
		conn = verifying.Unwrap()
	}
	return &Tester{conn: conn, logger: logger}
}

// Auth checks that the API key is accepted. It returns nil on any 2xx
// response and a KindAuthentication error on 401.
func (tester *Tester) Auth(ctx context.Context) error {
	url := tester.conn.APIURL() + "/test"
	response, err := api.GetWithoutArgs(ctx, tester.conn, url)
	if err != nil {
		return err
	}
	if response.Succeeded() {
		tester.logger.Debug("authentication succeeded")
		return nil
	}
	if response.StatusCode == http.StatusUnauthorized {
		return apierror.New(apierror.KindAuthentication, "authentication failed")
	}
	return api.EnsureSucceeded(url, response)
}

// Echo sends params to the echo endpoint and returns the string members
// of the JSON object it answers with.
func (tester *Tester) Echo(ctx context.Context, params map[string]string) (map[string]string, error) {
	url := tester.conn.APIURL() + "/test/echo"
	args := api.NewArguments()
	for name, value := range params {
		args.AddString(name, value)
	}

	response, err := api.Verifying(tester.conn).Get(ctx, url, args)
	if err != nil {
		return nil, err
	}
	body, err := response.BodyAsJSON()
	if err != nil {
		return nil, err
	}
	object, ok := body.(map[string]any)
	if !ok {
		return nil, apierror.New(apierror.KindInvalidResponse, "%s returned invalid JSON response", url)
	}

	echoed := make(map[string]string, len(object))
	for name, value := range object {
		if text, ok := value.(string); ok {
			echoed[name] = text
		}
	}
	return echoed, nil
}
