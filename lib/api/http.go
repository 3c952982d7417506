// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/retdec-client/retdec-go/lib/apierror"
	"github.com/retdec-client/retdec-go/lib/config"
	"github.com/retdec-client/retdec-go/lib/netutil"
	"github.com/retdec-client/retdec-go/lib/version"
)

// HTTPConfig holds configuration for creating an HTTPConnection.
type HTTPConfig struct {
	// Settings carry the API key and URL. The URL defaults to
	// config.DefaultAPIURL when empty. The key is checked per request,
	// so a connection without one fails with a KindConfig error on its
	// first request rather than at construction.
	Settings config.Settings

	// HTTPClient is used for all HTTP requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// HTTPConnection is a Connection over net/http.
type HTTPConnection struct {
	settings   config.Settings
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger
}

// NewHTTPConnection creates a connection from the given configuration.
func NewHTTPConnection(cfg HTTPConfig) *HTTPConnection {
	settings := config.Default().Override(cfg.Settings).Normalize()

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &HTTPConnection{
		settings:   settings,
		httpClient: httpClient,
		userAgent:  version.UserAgent(),
		logger:     logger,
	}
}

// APIURL returns the configured API URL.
func (connection *HTTPConnection) APIURL() string {
	return connection.settings.APIURL
}

// Get sends a GET request with args as query parameters. File arguments
// are ignored.
func (connection *HTTPConnection) Get(ctx context.Context, rawURL string, args *Arguments) (*Response, error) {
	requestURL, err := parseURL(rawURL)
	if err != nil {
		return nil, err
	}
	if args.Len() > 0 {
		query := requestURL.Query()
		for _, name := range args.Names() {
			value, _ := args.Arg(name)
			query.Set(name, value)
		}
		requestURL.RawQuery = query.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL.String(), nil)
	if err != nil {
		return nil, apierror.New(apierror.KindTransport, "creating request for %s: %w", rawURL, err)
	}
	return connection.do(request)
}

// Post sends a POST request. String arguments become form fields and
// file arguments become file parts named by file.File.SafeName. The body
// is streamed with an exact Content-Length; file content is not copied.
func (connection *HTTPConnection) Post(ctx context.Context, rawURL string, args *Arguments) (*Response, error) {
	requestURL, err := parseURL(rawURL)
	if err != nil {
		return nil, err
	}

	body, err := newMultipartBody(args)
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL.String(), body.reader())
	if err != nil {
		return nil, apierror.New(apierror.KindTransport, "creating request for %s: %w", rawURL, err)
	}
	request.ContentLength = body.length
	request.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(body.reader()), nil
	}
	request.Header.Set("Content-Type", body.contentType)
	return connection.do(request)
}

// do authenticates and sends the request, then reads the whole response.
func (connection *HTTPConnection) do(request *http.Request) (*Response, error) {
	if connection.settings.APIKey == "" {
		return nil, apierror.New(apierror.KindConfig, "missing API key")
	}
	request.SetBasicAuth(connection.settings.APIKey, "")
	request.Header.Set("User-Agent", connection.userAgent)

	response, err := connection.httpClient.Do(request)
	if err != nil {
		return nil, apierror.New(apierror.KindTransport, "%s request to %s failed: %w",
			request.Method, request.URL.Redacted(), err)
	}
	defer response.Body.Close()

	body, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return nil, apierror.New(apierror.KindTransport, "reading response from %s: %w", request.URL.Redacted(), err)
	}

	connection.logger.Debug("api request",
		"method", request.Method,
		"url", request.URL.Redacted(),
		"status", response.StatusCode,
		"bytes", len(body),
	)

	return NewResponse(
		response.StatusCode,
		statusMessage(response.Status, response.StatusCode),
		response.Header,
		body,
	), nil
}

// parseURL accepts only absolute http and https URLs.
func parseURL(rawURL string) (*url.URL, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, apierror.New(apierror.KindTransport, "invalid URL %q: %w", rawURL, err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, apierror.New(apierror.KindTransport, "invalid URL %q: expected an absolute http or https URL", rawURL)
	}
	return parsed, nil
}
