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
	"github.com/retdec-client/retdec-go/lib/decompiler"
	"github.com/retdec-client/retdec-go/lib/file"
	"github.com/retdec-client/retdec-go/lib/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], tool.ProcessEnvironment())
	stop()
	os.Exit(code)
}

type options struct {
	connection tool.ConnectionFlags
	output     tool.OutputFlags
	outputDir  string
	input      string
}

// run executes the command and returns the exit status. Errors are
// printed to env.Stderr.
func run(ctx context.Context, args []string, env tool.Environment) int {
	var opts options
	var showVersion, showHelp bool

	flagSet := pflag.NewFlagSet("decompiler", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	opts.connection.AddFlags(flagSet)
	opts.output.AddFlags(flagSet)
	flagSet.StringVarP(&opts.outputDir, "output-dir", "o", "", "save the code into this directory instead of printing it")
	flagSet.BoolVar(&showVersion, "version", false, "print version information and exit")
	flagSet.BoolVarP(&showHelp, "help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		tool.PrintError(env.Stderr, fmt.Errorf("%w (see decompiler --help)", err), opts.output.Color)
		return 1
	}
	if showHelp {
		printHelp(env.Stdout, flagSet)
		return 0
	}
	if showVersion {
		fmt.Fprintf(env.Stdout, "decompiler %s\n", version.Info())
		return 0
	}
	if flagSet.NArg() != 1 {
		tool.PrintError(env.Stderr, errors.New("expected exactly one FILE to decompile (see decompiler --help)"), opts.output.Color)
		return 1
	}
	opts.input = flagSet.Arg(0)

	if err := decompile(ctx, opts, env); err != nil {
		tool.PrintError(env.Stderr, err, opts.output.Color)
		return 1
	}
	return 0
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, "Decompiles FILE via the retdec API and prints the C code.\n\n")
	fmt.Fprintf(w, "usage: decompiler [flags] FILE\n\n")
	fmt.Fprintf(w, "flags:\n%s", flagSet.FlagUsages())
}

func decompile(ctx context.Context, opts options, env tool.Environment) error {
	settings, err := opts.connection.Settings(env.Getenv)
	if err != nil {
		return err
	}
	logger := tool.NewLogger(env.Stderr, opts.output.Debug).With("command", "decompiler")

	input, err := file.FromPath(opts.input)
	if err != nil {
		return err
	}

	service := decompiler.New(decompiler.Config{
		Connection: api.NewHTTPConnection(api.HTTPConfig{Settings: settings, Logger: logger}),
		Clock:      env.Clock,
		Logger:     logger,
	})
	decompilation, err := service.StartDecompilation(ctx, decompiler.DecompilationArguments{InputFile: input})
	if err != nil {
		return err
	}

	label := "decompiling " + input.Name()
	if err := tool.WaitWithSpinner(ctx, env.Stderr, label, opts.output.Progress, decompilation.WaitUntilFinished); err != nil {
		return err
	}
	if status := decompilation.Status(); status.Failed {
		return apierror.New(apierror.KindNotSucceeded, "decompilation %s failed: %s", decompilation.ID(), status.Error)
	}

	if opts.outputDir != "" {
		output, err := decompilation.OutputHLLFile(ctx)
		if err != nil {
			return err
		}
		path, err := output.SaveInto(opts.outputDir)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(env.Stdout, path)
		return err
	}

	code, err := decompilation.OutputHLL(ctx)
	if err != nil {
		return err
	}
	if err := tool.Highlight(env.Stdout, code, tool.LanguageC, opts.output.Color); err != nil {
		return fmt.Errorf("failed to print the result on the standard output: %w", err)
	}
	return nil
}
