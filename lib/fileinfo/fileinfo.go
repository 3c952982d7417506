// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

// Package fileinfo is the client for the retdec file analysis service.
//
//	service := fileinfo.New(fileinfo.Config{Connection: conn})
//	analysis, err := service.StartAnalysis(ctx, fileinfo.AnalysisArguments{
//	    InputFile: input,
//	    OutputFormat: fileinfo.FormatJSON,
//	})
//	...
//	err = analysis.WaitUntilFinished(ctx)
//	...
//	output, err := analysis.Output(ctx)
package fileinfo

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

// Output formats accepted by the service.
const (
	FormatPlain = "plain"
	FormatJSON  = "json"
)

// Config holds configuration for creating a Fileinfo service.
type Config struct {
	// Connection sends the requests. Required.
	Connection api.Connection

	// Clock times the polling of started analyses. Defaults to
	// clock.Real().
	Clock clock.Clock

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Fileinfo starts analyses.
type Fileinfo struct {
	conn   api.Connection
	clock  clock.Clock
	logger *slog.Logger
}

// New creates the service. Every request goes through an
// api.VerifyingConnection.
func New(cfg Config) *Fileinfo {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Fileinfo{
		conn:   api.Verifying(cfg.Connection),
		clock:  cfg.Clock,
		logger: logger,
	}
}

// AnalysisArguments are the parameters of one analysis. Zero-valued
// optional fields are left out of the request.
type AnalysisArguments struct {
	// InputFile is the file to analyze. Required.
	InputFile *file.File

	// OutputFormat is FormatPlain or FormatJSON. Empty leaves the choice
	// to the service.
	OutputFormat string

	// Verbose requests the verbose output when non-nil and true.
	Verbose *bool
}

// StartAnalysis submits an analysis and returns its handle. The input
// file is checked before anything is sent.
func (service *Fileinfo) StartAnalysis(ctx context.Context, args AnalysisArguments) (*Analysis, error) {
	if args.InputFile == nil {
		return nil, apierror.New(apierror.KindMissingInput, "no input file given")
	}

	url := service.conn.APIURL() + "/fileinfo/analyses"
	apiArgs := api.NewArguments()
	if args.OutputFormat != "" {
		apiArgs.AddString("output_format", args.OutputFormat)
	}
	apiArgs.AddOptionalBool("verbose", args.Verbose)
	apiArgs.AddFile("input", args.InputFile)

	service.logger.Debug("starting analysis",
		"input", args.InputFile.Name(),
		"size", args.InputFile.Len(),
		"blake3", args.InputFile.Checksum(),
	)

	response, err := service.conn.Post(ctx, url, apiArgs)
	if err != nil {
		return nil, fmt.Errorf("failed to start an analysis: %w", err)
	}
	id, ok := response.JSONValueAsString("id")
	if !ok {
		return nil, apierror.New(apierror.KindInvalidResponse, "%s returned invalid JSON response", url)
	}

	service.logger.Info("analysis started", "id", id, "input", args.InputFile.Name())

	return &Analysis{
		Resource: resource.New(resource.Config{
			Connection: service.conn,
			Service:    "fileinfo",
			Collection: "analyses",
			ID:         id,
			Clock:      service.clock,
			Logger:     service.logger,
		}),
	}, nil
}

// Analysis is a handle to a running or finished analysis. The embedded
// Resource provides the status queries and WaitUntilFinished.
type Analysis struct {
	*resource.Resource
}

// Output returns the analysis output as text. Fails with a
// KindNotSucceeded error, without requesting the output, unless the
// analysis has succeeded.
func (analysis *Analysis) Output(ctx context.Context) (string, error) {
	response, err := analysis.FetchOutput(ctx, "analysis", "output")
	if err != nil {
		return "", err
	}
	return response.BodyAsText()
}

// OutputFile returns the analysis output as a file named by the
// service.
func (analysis *Analysis) OutputFile(ctx context.Context) (*file.File, error) {
	response, err := analysis.FetchOutput(ctx, "analysis", "output")
	if err != nil {
		return nil, err
	}
	return response.BodyAsFile()
}
