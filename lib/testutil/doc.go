// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers.
//
// [RequireReceive] wraps the select-with-timeout pattern used when a test
// drives a blocking call (such as a status polling loop) from another
// goroutine. It is the only place in the test suite where a real
// wall-clock timeout is used; polling itself always runs on a fake clock.
//
// [RequireNotReady] asserts that a channel has nothing to deliver yet,
// for example that a wait has not returned before the clock advanced.
//
// Helpers call t.Fatalf on failure rather than returning errors.
//
// This package has no internal dependencies.
package testutil
