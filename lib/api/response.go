// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/retdec-client/retdec-go/lib/apierror"
	"github.com/retdec-client/retdec-go/lib/file"
)

// Response is a normalized API response. It is immutable once built.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// StatusMessage is the reason phrase, such as "Not Found".
	StatusMessage string

	// Header holds the response headers. Lookups return the first value
	// of a header that appears more than once.
	Header http.Header

	// Body is the full response body.
	Body []byte
}

// NewResponse builds a response. A nil header is replaced by an empty
// one.
func NewResponse(statusCode int, statusMessage string, header http.Header, body []byte) *Response {
	if header == nil {
		header = make(http.Header)
	}
	return &Response{
		StatusCode:    statusCode,
		StatusMessage: statusMessage,
		Header:        header,
		Body:          body,
	}
}

// statusMessage extracts the reason phrase from a net/http status line
// such as "404 Not Found".
func statusMessage(status string, code int) string {
	message := strings.TrimPrefix(status, strconv.Itoa(code))
	return strings.TrimSpace(message)
}

// Succeeded reports whether the status code is in the 2xx range.
func (response *Response) Succeeded() bool {
	return response.StatusCode >= 200 && response.StatusCode <= 299
}

// Failed is the complement of Succeeded.
func (response *Response) Failed() bool {
	return !response.Succeeded()
}

// HeaderValue returns the first value of the named header, or "".
func (response *Response) HeaderValue(name string) string {
	return response.Header.Get(name)
}

// BodyAsText returns the body as a string. Fails if the body is not
// valid UTF-8.
func (response *Response) BodyAsText() (string, error) {
	if !utf8.Valid(response.Body) {
		return "", apierror.New(apierror.KindDecode, "failed to decode API response body as UTF-8")
	}
	return string(response.Body), nil
}

// BodyAsJSON parses the body as JSON. There are no partial results: the
// body either parses completely or the call fails.
func (response *Response) BodyAsJSON() (any, error) {
	text, err := response.BodyAsText()
	if err != nil {
		return nil, err
	}
	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return nil, apierror.New(apierror.KindDecode, "failed to parse API response body as JSON: %w", err)
	}
	return value, nil
}

// jsonObject returns the body as a JSON object, or nil when the body is
// not one.
func (response *Response) jsonObject() map[string]any {
	value, err := response.BodyAsJSON()
	if err != nil {
		return nil
	}
	object, _ := value.(map[string]any)
	return object
}

// JSONValueAsString returns a string member of the JSON object in the
// body. A missing member, a member of another type, and a body that is
// not a JSON object all report false.
func (response *Response) JSONValueAsString(key string) (string, bool) {
	value, ok := response.jsonObject()[key].(string)
	return value, ok
}

// JSONValueAsBool returns a boolean member of the JSON object in the
// body, with the same rules as JSONValueAsString.
func (response *Response) JSONValueAsBool(key string) (bool, bool) {
	value, ok := response.jsonObject()[key].(bool)
	return value, ok
}

// BodyAsFile returns the body as a file named by the
// "Content-Disposition: attachment; filename=..." header. Any other
// disposition, or a missing file name, is a KindNotAFile error.
func (response *Response) BodyAsFile() (*file.File, error) {
	disposition := response.HeaderValue("Content-Disposition")
	if disposition == "" {
		return nil, apierror.New(apierror.KindNotAFile, "response has no Content-Disposition header")
	}
	mediaType, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return nil, apierror.New(apierror.KindNotAFile, "malformed Content-Disposition header %q: %w", disposition, err)
	}
	if mediaType != "attachment" {
		return nil, apierror.New(apierror.KindNotAFile, "response is not an attachment (disposition %q)", mediaType)
	}
	name := params["filename"]
	if name == "" {
		return nil, apierror.New(apierror.KindNotAFile, "attachment has no file name")
	}
	return file.FromContent(response.Body, name), nil
}

// ErrorReason returns the most descriptive explanation of a failed
// response: the "description" member of a JSON body, then its
// "message" member, then the status message, then "unknown error". The
// status code is appended as " (HTTP N)" when known.
func (response *Response) ErrorReason() string {
	reason, ok := response.JSONValueAsString("description")
	if !ok || reason == "" {
		reason, ok = response.JSONValueAsString("message")
	}
	if !ok || reason == "" {
		reason = response.StatusMessage
	}
	if reason == "" {
		reason = "unknown error"
	}
	if response.StatusCode != 0 {
		reason = fmt.Sprintf("%s (HTTP %d)", reason, response.StatusCode)
	}
	return reason
}
