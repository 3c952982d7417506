// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

// Package api is the transport layer of the retdec client library.
//
// A [Connection] sends one authenticated GET or POST request and returns
// a [*Response]. Two implementations exist:
//
//   - [*HTTPConnection] talks to the real service over net/http. Every
//     request carries HTTP Basic credentials (the API key as user name,
//     an empty password) and a User-Agent built by version.UserAgent.
//   - [*Fake] is an in-memory double that replays queued responses and
//     records every request, for tests of the layers above.
//
// [*VerifyingConnection] decorates either of them and turns any non-2xx
// response into an *apierror.RequestFailedError. The service façades use
// it for every request whose body they intend to parse.
//
// Connections never retry. A failed request surfaces at once.
package api
