// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

package decompiler

import (
	"context"
	"net/http"
	"testing"

	"github.com/retdec-client/retdec-go/lib/api"
	"github.com/retdec-client/retdec-go/lib/apierror"
	"github.com/retdec-client/retdec-go/lib/file"
)

const (
	apiURL            = "https://retdec.com/service/api"
	decompilationsURL = apiURL + "/decompiler/decompilations"
	statusURL         = decompilationsURL + "/ID/status"
	hllURL            = decompilationsURL + "/ID/outputs/hll"
)

var (
	succeededStatus = map[string]any{"finished": true, "succeeded": true, "failed": false}
	failedStatus    = map[string]any{"finished": true, "succeeded": false, "failed": true, "error": "unsupported file format"}
)

func startTestDecompilation(t *testing.T) (*Decompilation, *api.Fake) {
	t.Helper()
	fake := api.NewFake(apiURL)
	fake.AddJSON(http.MethodPost, decompilationsURL, 200, map[string]string{"id": "ID"})

	service := New(Config{Connection: fake})
	decompilation, err := service.StartDecompilation(context.Background(), DecompilationArguments{
		InputFile: file.FromContent([]byte("\x7fELF"), "file.elf"),
	})
	if err != nil {
		t.Fatalf("StartDecompilation: %v", err)
	}
	return decompilation, fake
}

func TestStartDecompilationSendsBinaryMode(t *testing.T) {
	decompilation, fake := startTestDecompilation(t)

	if decompilation.ID() != "ID" {
		t.Errorf("ID() = %q, want %q", decompilation.ID(), "ID")
	}
	if decompilation.URL() != decompilationsURL+"/ID" {
		t.Errorf("URL() = %q", decompilation.URL())
	}
	request, ok := fake.LastRequest(http.MethodPost, decompilationsURL)
	if !ok {
		t.Fatal("no POST to the decompilations collection")
	}
	if mode, _ := request.Args.Arg("mode"); mode != "bin" {
		t.Errorf("mode = %q, want %q", mode, "bin")
	}
	if input, ok := request.Args.File("input"); !ok || input.Name() != "file.elf" {
		t.Errorf("input = %v, %v", input, ok)
	}
}

func TestStartDecompilationWithoutInputFile(t *testing.T) {
	fake := api.NewFake(apiURL)
	service := New(Config{Connection: fake})

	_, err := service.StartDecompilation(context.Background(), DecompilationArguments{})
	if !apierror.Is(err, apierror.KindMissingInput) {
		t.Fatalf("StartDecompilation() error = %v, want a missing-input error", err)
	}
	if len(fake.Requests()) != 0 {
		t.Errorf("sent %d requests, want 0", len(fake.Requests()))
	}
}

func TestStartDecompilationWithoutID(t *testing.T) {
	fake := api.NewFake(apiURL)
	fake.AddJSON(http.MethodPost, decompilationsURL, 200, map[string]any{"id": 42})
	service := New(Config{Connection: fake})

	_, err := service.StartDecompilation(context.Background(), DecompilationArguments{
		InputFile: file.FromContent(nil, "empty"),
	})
	if want := decompilationsURL + " returned invalid JSON response"; err == nil || err.Error() != want {
		t.Errorf("StartDecompilation() error = %v, want %q", err, want)
	}
}

func TestStartDecompilationTransportError(t *testing.T) {
	fake := api.NewFake(apiURL)
	fake.AddResponse(http.MethodPost, decompilationsURL, nil, apierror.New(apierror.KindTransport, "connection refused"))
	service := New(Config{Connection: fake})

	_, err := service.StartDecompilation(context.Background(), DecompilationArguments{
		InputFile: file.FromContent(nil, "empty"),
	})
	if err == nil || err.Error() != "failed to start a decompilation: connection refused" {
		t.Errorf("StartDecompilation() error = %v", err)
	}
	if apierror.KindOf(err) != apierror.KindTransport {
		t.Errorf("KindOf() = %q, want %q", apierror.KindOf(err), apierror.KindTransport)
	}
}

func TestOutputHLL(t *testing.T) {
	decompilation, fake := startTestDecompilation(t)
	fake.AddJSON(http.MethodGet, statusURL, 200, succeededStatus)
	fake.AddResponse(http.MethodGet, hllURL, api.TextResponse(200, "int main() { return 0; }"), nil)

	code, err := decompilation.OutputHLL(context.Background())
	if err != nil {
		t.Fatalf("OutputHLL: %v", err)
	}
	if code != "int main() { return 0; }" {
		t.Errorf("OutputHLL() = %q", code)
	}
}

func TestOutputHLLOfFailedDecompilation(t *testing.T) {
	decompilation, fake := startTestDecompilation(t)
	fake.AddJSON(http.MethodGet, statusURL, 200, failedStatus)

	_, err := decompilation.OutputHLL(context.Background())
	if !apierror.Is(err, apierror.KindNotSucceeded) || err.Error() != "decompilation has not succeeded" {
		t.Fatalf("OutputHLL() error = %v, want %q", err, "decompilation has not succeeded")
	}
	if fake.RequestSent(http.MethodGet, hllURL) {
		t.Error("OutputHLL() requested the output of a failed decompilation")
	}
	if message := decompilation.ErrorMessage(); message != "unsupported file format" {
		t.Errorf("ErrorMessage() = %q", message)
	}
}

func TestOutputHLLFile(t *testing.T) {
	decompilation, fake := startTestDecompilation(t)
	fake.AddJSON(http.MethodGet, statusURL, 200, succeededStatus)
	header := http.Header{"Content-Disposition": {`attachment; filename="file.c"`}}
	fake.AddResponse(http.MethodGet, hllURL, api.NewResponse(200, "OK", header, []byte("int main() {}")), nil)

	output, err := decompilation.OutputHLLFile(context.Background())
	if err != nil {
		t.Fatalf("OutputHLLFile: %v", err)
	}
	if output.Name() != "file.c" {
		t.Errorf("Name() = %q, want %q", output.Name(), "file.c")
	}
}

func TestOutputHLLFileWithoutDisposition(t *testing.T) {
	decompilation, fake := startTestDecompilation(t)
	fake.AddJSON(http.MethodGet, statusURL, 200, succeededStatus)
	fake.AddResponse(http.MethodGet, hllURL, api.TextResponse(200, "int main() {}"), nil)

	_, err := decompilation.OutputHLLFile(context.Background())
	if !apierror.Is(err, apierror.KindNotAFile) {
		t.Errorf("OutputHLLFile() error = %v, want a not-a-file error", err)
	}
}
