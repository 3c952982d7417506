// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"net/http"
	"testing"

	"github.com/retdec-client/retdec-go/lib/apierror"
)

func TestResponseSucceeded(t *testing.T) {
	tests := []struct {
		code      int
		succeeded bool
	}{
		{199, false},
		{200, true},
		{201, true},
		{299, true},
		{300, false},
		{404, false},
		{500, false},
	}
	for _, test := range tests {
		response := NewResponse(test.code, "", nil, nil)
		if response.Succeeded() != test.succeeded {
			t.Errorf("Succeeded() for %d = %v, want %v", test.code, response.Succeeded(), test.succeeded)
		}
		if response.Failed() == test.succeeded {
			t.Errorf("Failed() for %d = %v, want %v", test.code, response.Failed(), !test.succeeded)
		}
	}
}

func TestResponseBodyAsText(t *testing.T) {
	text, err := TextResponse(200, "int main() {}").BodyAsText()
	if err != nil {
		t.Fatalf("BodyAsText: %v", err)
	}
	if text != "int main() {}" {
		t.Errorf("BodyAsText() = %q", text)
	}

	_, err = NewResponse(200, "OK", nil, []byte{0xff, 0xfe}).BodyAsText()
	if !apierror.Is(err, apierror.KindDecode) {
		t.Fatalf("BodyAsText() error = %v, want a decode error", err)
	}
	if err.Error() != "failed to decode API response body as UTF-8" {
		t.Errorf("error = %q", err)
	}
}

func TestResponseBodyAsJSON(t *testing.T) {
	value, err := TextResponse(200, `{"id": "abc"}`).BodyAsJSON()
	if err != nil {
		t.Fatalf("BodyAsJSON: %v", err)
	}
	object, ok := value.(map[string]any)
	if !ok || object["id"] != "abc" {
		t.Errorf("BodyAsJSON() = %#v", value)
	}

	for _, body := range []string{"", "{", `{"id": "abc"} trailing`} {
		_, err := TextResponse(200, body).BodyAsJSON()
		if !apierror.Is(err, apierror.KindDecode) {
			t.Errorf("BodyAsJSON(%q) error = %v, want a decode error", body, err)
		}
	}
}

func TestResponseJSONValueAsString(t *testing.T) {
	response := TextResponse(200, `{"id": "abc", "count": 1}`)

	if value, ok := response.JSONValueAsString("id"); !ok || value != "abc" {
		t.Errorf(`JSONValueAsString("id") = %q, %v`, value, ok)
	}
	if _, ok := response.JSONValueAsString("count"); ok {
		t.Error(`JSONValueAsString("count") reported a non-string member`)
	}
	if _, ok := response.JSONValueAsString("missing"); ok {
		t.Error(`JSONValueAsString("missing") reported a missing member`)
	}
	if _, ok := TextResponse(200, `["id"]`).JSONValueAsString("id"); ok {
		t.Error("JSONValueAsString on a JSON array reported a member")
	}
	if _, ok := TextResponse(200, "not json").JSONValueAsString("id"); ok {
		t.Error("JSONValueAsString on a non-JSON body reported a member")
	}
}

func TestResponseJSONValueAsBool(t *testing.T) {
	response := TextResponse(200, `{"finished": true, "failed": false, "key": 1}`)

	if value, ok := response.JSONValueAsBool("finished"); !ok || !value {
		t.Errorf(`JSONValueAsBool("finished") = %v, %v`, value, ok)
	}
	if value, ok := response.JSONValueAsBool("failed"); !ok || value {
		t.Errorf(`JSONValueAsBool("failed") = %v, %v`, value, ok)
	}
	if _, ok := response.JSONValueAsBool("key"); ok {
		t.Error(`JSONValueAsBool("key") reported a number as a bool`)
	}
	if _, ok := response.JSONValueAsBool("absent"); ok {
		t.Error(`JSONValueAsBool("absent") reported a missing member`)
	}
}

func TestResponseBodyAsFile(t *testing.T) {
	header := make(http.Header)
	header.Set("Content-Disposition", `attachment; filename="test.c"`)
	response := NewResponse(200, "OK", header, []byte("int main() {}"))

	f, err := response.BodyAsFile()
	if err != nil {
		t.Fatalf("BodyAsFile: %v", err)
	}
	if f.Name() != "test.c" {
		t.Errorf("Name() = %q, want %q", f.Name(), "test.c")
	}
	if string(f.Content()) != "int main() {}" {
		t.Errorf("Content() = %q", f.Content())
	}
}

func TestResponseBodyAsFileRejectsNonAttachments(t *testing.T) {
	tests := []struct {
		name        string
		disposition string
	}{
		{"no header", ""},
		{"inline", `inline; filename="test.c"`},
		{"no file name", "attachment"},
		{"malformed", "attachment; filename="},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			header := make(http.Header)
			if test.disposition != "" {
				header.Set("Content-Disposition", test.disposition)
			}
			_, err := NewResponse(200, "OK", header, []byte("data")).BodyAsFile()
			if !apierror.Is(err, apierror.KindNotAFile) {
				t.Errorf("BodyAsFile() error = %v, want a not-a-file error", err)
			}
		})
	}
}

func TestResponseHeaderValueReturnsFirst(t *testing.T) {
	header := http.Header{"X-Job": {"first", "second"}}
	response := NewResponse(200, "OK", header, nil)

	if value := response.HeaderValue("x-job"); value != "first" {
		t.Errorf("HeaderValue() = %q, want %q", value, "first")
	}
}

func TestResponseErrorReason(t *testing.T) {
	tests := []struct {
		name     string
		response *Response
		want     string
	}{
		{
			name:     "description wins",
			response: NewResponse(400, "Bad Request", nil, []byte(`{"message": "Bad input.", "description": "Missing input file."}`)),
			want:     "Missing input file. (HTTP 400)",
		},
		{
			name:     "message when no description",
			response: NewResponse(401, "Unauthorized", nil, []byte(`{"message": "Invalid API key."}`)),
			want:     "Invalid API key. (HTTP 401)",
		},
		{
			name:     "status message for non-JSON body",
			response: NewResponse(404, "Not Found", nil, []byte("<html>")),
			want:     "Not Found (HTTP 404)",
		},
		{
			name:     "fallback",
			response: NewResponse(0, "", nil, nil),
			want:     "unknown error",
		},
		{
			name:     "fallback with code",
			response: NewResponse(503, "", nil, []byte(`{"description": 7}`)),
			want:     "unknown error (HTTP 503)",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.response.ErrorReason(); got != test.want {
				t.Errorf("ErrorReason() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestStatusMessage(t *testing.T) {
	if got := statusMessage("404 Not Found", 404); got != "Not Found" {
		t.Errorf("statusMessage() = %q, want %q", got, "Not Found")
	}
	if got := statusMessage("", 500); got != "" {
		t.Errorf("statusMessage() = %q, want empty", got)
	}
}
