// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides the injectable time source used by status
// polling.
//
// Code that waits between requests accepts a Clock instead of calling
// time.After or time.Sleep directly. Real() is used in production;
// Fake() lets tests drive a polling loop step by step:
//
//	fake := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	go analysis.WaitUntilFinished(ctx)
//	fake.WaitForTimers(1)                 // the loop is now sleeping
//	fake.Advance(resource.PollInterval)   // wake it up
//
// WaitForTimers removes the race between a goroutine registering its
// wait and the test advancing time.
package clock
