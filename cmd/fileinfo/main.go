// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/retdec-client/retdec-go/internal/tool"
	"github.com/retdec-client/retdec-go/lib/api"
	"github.com/retdec-client/retdec-go/lib/apierror"
	"github.com/retdec-client/retdec-go/lib/file"
	"github.com/retdec-client/retdec-go/lib/fileinfo"
	"github.com/retdec-client/retdec-go/lib/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], tool.ProcessEnvironment())
	stop()
	os.Exit(code)
}

type options struct {
	connection   tool.ConnectionFlags
	output       tool.OutputFlags
	outputFormat string
	verbose      *bool
	input        string
}

func run(ctx context.Context, args []string, env tool.Environment) int {
	var opts options
	var verbose, showVersion, showHelp bool

	flagSet := pflag.NewFlagSet("fileinfo", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	opts.connection.AddFlags(flagSet)
	opts.output.AddFlags(flagSet)
	flagSet.StringVarP(&opts.outputFormat, "output-format", "f", "", "output format: plain or json (default: the service's choice)")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "ask for the verbose analysis")
	flagSet.BoolVar(&showVersion, "version", false, "print version information and exit")
	flagSet.BoolVarP(&showHelp, "help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		tool.PrintError(env.Stderr, fmt.Errorf("%w (see fileinfo --help)", err), opts.output.Color)
		return 1
	}
	if showHelp {
		fmt.Fprintf(env.Stdout, "Analyzes FILE via the retdec API and prints the result.\n\n")
		fmt.Fprintf(env.Stdout, "usage: fileinfo [flags] FILE\n\n")
		fmt.Fprintf(env.Stdout, "flags:\n%s", flagSet.FlagUsages())
		return 0
	}
	if showVersion {
		fmt.Fprintf(env.Stdout, "fileinfo %s\n", version.Info())
		return 0
	}

	var err error
	switch {
	case flagSet.NArg() != 1:
		err = errors.New("expected exactly one FILE to analyze (see fileinfo --help)")
	case opts.outputFormat != "" && opts.outputFormat != fileinfo.FormatPlain && opts.outputFormat != fileinfo.FormatJSON:
		err = fmt.Errorf("invalid output format %q (want plain or json)", opts.outputFormat)
	}
	if err != nil {
		tool.PrintError(env.Stderr, err, opts.output.Color)
		return 1
	}
	opts.input = flagSet.Arg(0)
	if flagSet.Changed("verbose") {
		opts.verbose = &verbose
	}

	if err := analyze(ctx, opts, env); err != nil {
		tool.PrintError(env.Stderr, err, opts.output.Color)
		return 1
	}
	return 0
}

func analyze(ctx context.Context, opts options, env tool.Environment) error {
	settings, err := opts.connection.Settings(env.Getenv)
	if err != nil {
		return err
	}
	logger := tool.NewLogger(env.Stderr, opts.output.Debug).With("command", "fileinfo")

	input, err := file.FromPath(opts.input)
	if err != nil {
		return err
	}

	service := fileinfo.New(fileinfo.Config{
		Connection: api.NewHTTPConnection(api.HTTPConfig{Settings: settings, Logger: logger}),
		Clock:      env.Clock,
		Logger:     logger,
	})
	analysis, err := service.StartAnalysis(ctx, fileinfo.AnalysisArguments{
		InputFile:    input,
		OutputFormat: opts.outputFormat,
		Verbose:      opts.verbose,
	})
	if err != nil {
		return err
	}

	label := "analyzing " + input.Name()
	if err := tool.WaitWithSpinner(ctx, env.Stderr, label, opts.output.Progress, analysis.WaitUntilFinished); err != nil {
		return err
	}
	if status := analysis.Status(); status.Failed {
		return apierror.New(apierror.KindNotSucceeded, "analysis %s failed: %s", analysis.ID(), status.Error)
	}

	output, err := analysis.Output(ctx)
	if err != nil {
		return err
	}
	if opts.outputFormat == fileinfo.FormatJSON {
		err = tool.Highlight(env.Stdout, output, tool.LanguageJSON, opts.output.Color)
	} else {
		_, err = io.WriteString(env.Stdout, output)
	}
	if err != nil {
		return fmt.Errorf("failed to print the result on the standard output: %w", err)
	}
	return nil
}
