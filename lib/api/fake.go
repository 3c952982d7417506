// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/retdec-client/retdec-go/lib/apierror"
)

// Request is a request recorded by Fake.
type Request struct {
	Method string
	URL    string
	Args   *Arguments
}

type fakeResult struct {
	response *Response
	err      error
}

// Fake is an in-memory Connection for tests. Responses are queued per
// method and URL with AddResponse and consumed in order; every request
// is recorded whether or not a response was queued for it. A request
// with nothing queued fails with a KindTransport error.
//
// Fake is safe for concurrent use.
type Fake struct {
	apiURL string

	mu       sync.Mutex
	queued   map[string][]fakeResult
	requests []Request
}

// NewFake returns a Fake whose APIURL is apiURL.
func NewFake(apiURL string) *Fake {
	return &Fake{
		apiURL: apiURL,
		queued: make(map[string][]fakeResult),
	}
}

func fakeKey(method, url string) string {
	return method + " " + url
}

// AddResponse queues a result for the next request with the given method
// and URL. Exactly one of response and err is normally non-nil; a result
// with neither fails the request with a KindTransport error.
func (fake *Fake) AddResponse(method, url string, response *Response, err error) {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	key := fakeKey(method, url)
	fake.queued[key] = append(fake.queued[key], fakeResult{response: response, err: err})
}

// AddJSON queues a response with the given status code and body
// marshaled as JSON.
func (fake *Fake) AddJSON(method, url string, statusCode int, body any) {
	fake.AddResponse(method, url, JSONResponse(statusCode, body), nil)
}

// APIURL returns the URL given to NewFake.
func (fake *Fake) APIURL() string { return fake.apiURL }

// Get records the request and returns the next queued result.
func (fake *Fake) Get(ctx context.Context, url string, args *Arguments) (*Response, error) {
	return fake.send(ctx, http.MethodGet, url, args)
}

// Post records the request and returns the next queued result.
func (fake *Fake) Post(ctx context.Context, url string, args *Arguments) (*Response, error) {
	return fake.send(ctx, http.MethodPost, url, args)
}

func (fake *Fake) send(ctx context.Context, method, url string, args *Arguments) (*Response, error) {
	fake.mu.Lock()
	defer fake.mu.Unlock()

	fake.requests = append(fake.requests, Request{Method: method, URL: url, Args: args})

	if err := ctx.Err(); err != nil {
		return nil, apierror.Wrap(apierror.KindTransport, err)
	}

	key := fakeKey(method, url)
	queue := fake.queued[key]
	if len(queue) == 0 {
		return nil, apierror.New(apierror.KindTransport, "no response queued for %s %s", method, url)
	}
	fake.queued[key] = queue[1:]
	result := queue[0]
	if result.response == nil && result.err == nil {
		return nil, apierror.New(apierror.KindTransport, "empty result queued for %s %s", method, url)
	}
	return result.response, result.err
}

// Requests returns a copy of every recorded request, oldest first.
func (fake *Fake) Requests() []Request {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	return append([]Request(nil), fake.requests...)
}

// RequestCount returns how many requests were sent with the given
// method and URL.
func (fake *Fake) RequestCount(method, url string) int {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	count := 0
	for _, request := range fake.requests {
		if request.Method == method && request.URL == url {
			count++
		}
	}
	return count
}

// RequestSent reports whether at least one request was sent with the
// given method and URL.
func (fake *Fake) RequestSent(method, url string) bool {
	return fake.RequestCount(method, url) > 0
}

// LastRequest returns the most recent request with the given method and
// URL.
func (fake *Fake) LastRequest(method, url string) (Request, bool) {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	for i := len(fake.requests) - 1; i >= 0; i-- {
		request := fake.requests[i]
		if request.Method == method && request.URL == url {
			return request, true
		}
	}
	return Request{}, false
}

// JSONResponse builds a response whose body is value marshaled as JSON.
// It panics if value cannot be marshaled.
func JSONResponse(statusCode int, value any) *Response {
	body, err := json.Marshal(value)
	if err != nil {
		panic("api.JSONResponse: " + err.Error())
	}
	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	return NewResponse(statusCode, http.StatusText(statusCode), header, body)
}

// TextResponse builds a response with a plain body.
func TextResponse(statusCode int, body string) *Response {
	return NewResponse(statusCode, http.StatusText(statusCode), nil, []byte(body))
}
