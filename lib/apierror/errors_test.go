// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

package apierror

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOfWalksWrapChain(t *testing.T) {
	inner := New(KindInvalidResponse, "%s returned invalid JSON response", "https://host/api/status")
	outer := fmt.Errorf("failed to start an analysis: %w", inner)

	if got := KindOf(outer); got != KindInvalidResponse {
		t.Errorf("KindOf() = %q, want %q", got, KindInvalidResponse)
	}
	if !Is(outer, KindInvalidResponse) {
		t.Error("Is(KindInvalidResponse) = false, want true")
	}
	if Is(outer, KindTransport) {
		t.Error("Is(KindTransport) = true, want false")
	}
	if outer.Error() != "failed to start an analysis: https://host/api/status returned invalid JSON response" {
		t.Errorf("Error() = %q", outer.Error())
	}
}

func TestKindOfOutermostWins(t *testing.T) {
	err := Wrap(KindTransport, New(KindConfig, "missing API key"))

	if got := KindOf(err); got != KindTransport {
		t.Errorf("KindOf() = %q, want %q", got, KindTransport)
	}
	if !Is(err, KindConfig) {
		t.Error("Is(KindConfig) = false, want true for inner kind")
	}
}

func TestKindOfUnclassified(t *testing.T) {
	if got := KindOf(errors.New("plain")); got != "" {
		t.Errorf("KindOf(plain) = %q, want empty", got)
	}
	if got := KindOf(nil); got != "" {
		t.Errorf("KindOf(nil) = %q, want empty", got)
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(KindDecode, nil); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
}

func TestRequestFailedError(t *testing.T) {
	err := fmt.Errorf("failed to start a decompilation: %w", &RequestFailedError{
		URL:        "https://retdec.com/service/api/decompiler/decompilations",
		StatusCode: 404,
		Reason:     "Not Found (HTTP 404)",
	})

	if !Is(err, KindRequestFailed) {
		t.Error("Is(KindRequestFailed) = false, want true")
	}
	if got := StatusCode(err); got != 404 {
		t.Errorf("StatusCode() = %d, want 404", got)
	}
	want := "failed to start a decompilation: request to https://retdec.com/service/api/decompiler/decompilations failed: Not Found (HTTP 404)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestErrorsAsFindsKindedError(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", New(KindNotSucceeded, "analysis has not succeeded"))

	var kinded *Error
	if !errors.As(err, &kinded) {
		t.Fatal("errors.As did not find *Error")
	}
	if kinded.Kind != KindNotSucceeded {
		t.Errorf("Kind = %q, want %q", kinded.Kind, KindNotSucceeded)
	}
}
