// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Real returns a Clock backed by the standard time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

func (realClock) Sleep(d time.Duration) { time.Sleep(d) }

// Instant returns a Clock that reports real time but never waits: After
// channels are ready at once and Sleep returns immediately. It lets
// end-to-end tests run polling loops at full speed.
func Instant() Clock { return instantClock{} }

type instantClock struct{}

func (instantClock) Now() time.Time { return time.Now() }

func (instantClock) After(time.Duration) <-chan time.Time {
	channel := make(chan time.Time, 1)
	channel <- time.Now()
	return channel
}

func (instantClock) Sleep(time.Duration) {}
