// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

// Package decompiler is the client for the retdec decompilation service.
// Only binary-mode decompilation is supported.
package decompiler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/retdec-client/retdec-go/lib/api"
	"github.com/retdec-client/retdec-go/lib/apierror"
	"github.com/retdec-client/retdec-go/lib/clock"
	"github.com/retdec-client/retdec-go/lib/file"
	"github.com/retdec-client/retdec-go/lib/resource"
)

// Config holds configuration for creating a Decompiler.
type Config struct {
	// Connection sends the requests. Required.
	Connection api.Connection

	// Clock times the polling of started decompilations. Defaults to
	// clock.Real().
	Clock clock.Clock

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Decompiler starts decompilations.
type Decompiler struct {
	conn   api.Connection
	clock  clock.Clock
	logger *slog.Logger
}

// New creates the service.
func New(cfg Config) *Decompiler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Decompiler{
		conn:   api.Verifying(cfg.Connection),
		clock:  cfg.Clock,
		logger: logger,
	}
}

// DecompilationArguments are the parameters of one decompilation.
type DecompilationArguments struct {
	// InputFile is the binary to decompile. Required.
	InputFile *file.File
}

// StartDecompilation submits a binary-mode decompilation and returns its
// handle.
func (service *Decompiler) StartDecompilation(ctx context.Context, args DecompilationArguments) (*Decompilation, error) {
	if args.InputFile == nil {
		return nil, apierror.New(apierror.KindMissingInput, "no input file given")
	}

	url := service.conn.APIURL() + "/decompiler/decompilations"
	apiArgs := api.NewArguments()
	apiArgs.AddString("mode", "bin")
	apiArgs.AddFile("input", args.InputFile)

	service.logger.Debug("starting decompilation",
		"input", args.InputFile.Name(),
		"size", args.InputFile.Len(),
		"blake3", args.InputFile.Checksum(),
	)

	response, err := service.conn.Post(ctx, url, apiArgs)
	if err != nil {
		return nil, fmt.Errorf("failed to start a decompilation: %w", err)
	}
	id, ok := response.JSONValueAsString("id")
	if !ok {
		return nil, apierror.New(apierror.KindInvalidResponse, "%s returned invalid JSON response", url)
	}

	service.logger.Info("decompilation started", "id", id, "input", args.InputFile.Name())

	return &Decompilation{
		Resource: resource.New(resource.Config{
			Connection: service.conn,
			Service:    "decompiler",
			Collection: "decompilations",
			ID:         id,
			Clock:      service.clock,
			Logger:     service.logger,
		}),
	}, nil
}

// Decompilation is a handle to a running or finished decompilation.
type Decompilation struct {
	*resource.Resource
}

// OutputHLL returns the decompiled high-level code. The decompilation
// must have succeeded.
func (decompilation *Decompilation) OutputHLL(ctx context.Context) (string, error) {
	response, err := decompilation.FetchOutput(ctx, "decompilation", "outputs/hll")
	if err != nil {
		return "", err
	}
	return response.BodyAsText()
}

// OutputHLLFile returns the decompiled high-level code as a file named
// by the service.
func (decompilation *Decompilation) OutputHLLFile(ctx context.Context) (*file.File, error) {
	response, err := decompilation.FetchOutput(ctx, "decompilation", "outputs/hll")
	if err != nil {
		return nil, err
	}
	return response.BodyAsFile()
}
