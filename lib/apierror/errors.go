// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

// Package apierror defines the error kinds returned by the retdec client
// library.
//
// Every failure the library reports carries a [Kind], either through an
// [*Error] wrapper or, for non-2xx HTTP responses, a [*RequestFailedError].
// Callers classify errors with [KindOf] or [Is], which walk the whole
// wrap chain:
//
//	if apierror.Is(err, apierror.KindNotSucceeded) {
//	    // the job failed or is still running
//	}
//
// Nothing in the library retries; an error surfaces at the first failed
// call.
package apierror

import (
	"errors"
	"fmt"
)

// Kind classifies library errors.
type Kind string

const (
	// KindConfig indicates missing or invalid client configuration,
	// such as an unset API key.
	KindConfig Kind = "config"

	// KindTransport indicates a malformed URL, a request that could not
	// be built, or a network failure.
	KindTransport Kind = "transport"

	// KindDecode indicates a body that is not valid UTF-8 or not valid
	// JSON.
	KindDecode Kind = "decode"

	// KindInvalidResponse indicates well-formed JSON that lacks a
	// required field or has it with the wrong type.
	KindInvalidResponse Kind = "invalid_response"

	// KindMissingInput indicates a submission without an input file.
	KindMissingInput Kind = "missing_input"

	// KindRequestFailed indicates a non-2xx HTTP response.
	KindRequestFailed Kind = "request_failed"

	// KindNotSucceeded indicates an output request on a job that is
	// still running or has failed.
	KindNotSucceeded Kind = "not_succeeded"

	// KindNotAFile indicates a response without an attachment
	// disposition header.
	KindNotAFile Kind = "not_a_file"

	// KindAuthentication indicates that the API rejected the API key.
	KindAuthentication Kind = "authentication"
)

// Error is a library error of a known kind. The message lives in Err so
// that the full wrap chain survives errors.Is and errors.As.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

// New creates an error of the given kind. The format accepts %w.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Wrap attaches a kind to err. Returns nil when err is nil.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// RequestFailedError is returned when the API answers with a non-2xx
// status. Reason is the most descriptive explanation found in the
// response (see api.Response.ErrorReason).
type RequestFailedError struct {
	// URL is the requested URL.
	URL string

	// StatusCode is the HTTP status code, or 0 when unknown.
	StatusCode int

	// Reason is the human-readable failure description.
	Reason string
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("request to %s failed: %s", e.URL, e.Reason)
}

// KindOf returns the kind of the outermost classified error in err's
// chain, or "" when err carries no kind.
func KindOf(err error) Kind {
	for err != nil {
		switch typed := err.(type) {
		case *Error:
			return typed.Kind
		case *RequestFailedError:
			return KindRequestFailed
		}
		err = errors.Unwrap(err)
	}
	return ""
}

// Is reports whether any error in err's chain has the given kind.
func Is(err error, kind Kind) bool {
	for err != nil {
		switch typed := err.(type) {
		case *Error:
			if typed.Kind == kind {
				return true
			}
		case *RequestFailedError:
			if kind == KindRequestFailed {
				return true
			}
		}
		err = errors.Unwrap(err)
	}
	return false
}

// StatusCode returns the HTTP status of a RequestFailedError in err's
// chain, or 0.
func StatusCode(err error) int {
	var requestFailed *RequestFailedError
	if errors.As(err, &requestFailed) {
		return requestFailed.StatusCode
	}
	return 0
}
