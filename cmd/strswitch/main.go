// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// strswitch generates enums and string matchers from lists of keys.
//
// In its simplest form it is a filter: it reads keys, one per line, from a
// file or from stdin and prints C code to stdout.
//
//	strswitch keys.txt > values.h
//
// The generate subcommand processes config sidecars instead, and is meant to
// be used from go:generate:
//
//	//go:generate go run github.com/bufbuild/strswitch/cmd/strswitch generate method.go.yaml
//
// See package github.com/bufbuild/strswitch/internal/config for the format.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bufbuild/strswitch"
	"github.com/bufbuild/strswitch/emit"
	"github.com/bufbuild/strswitch/keyset"
)

// generatorName is recorded in the header of generated files.
const generatorName = "strswitch"

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if err := newCommand(stdin, stdout, stderr).Run(ctx, args); err != nil {
		fmt.Fprintf(stderr, "strswitch: %s\n", err)
		return 1
	}
	return 0
}

func newCommand(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "strswitch",
		Usage:       "generate enums and trie-based string matchers",
		ArgsUsage:   "[KEYS]",
		Description: "Reads keys, one per line, from KEYS or stdin, and writes an enum and a matcher function to stdout.",
		HideVersion: true,
		Reader:      stdin,
		Writer:      stdout,
		ErrWriter:   stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "lang",
				Usage: "language to generate: c or go",
				Value: string(emit.C),
			},
			&cli.StringFlag{
				Name:    "package",
				Usage:   "package clause for generated Go code",
				Sources: cli.EnvVars("GOPACKAGE"),
			},
			&cli.StringFlag{
				Name:  "type",
				Usage: "name of the enum type",
				Value: "Values",
			},
			&cli.StringFlag{
				Name:  "func",
				Usage: "name of the matcher function",
				Value: "convert",
			},
			&cli.StringFlag{
				Name:  "prefix",
				Usage: "prefix for constant names",
				Value: keyset.DefaultPrefix,
			},
			&cli.BoolFlag{
				Name:  "stringer",
				Usage: "generate a String method (Go only)",
			},
			&cli.StringFlag{
				Name:      "output",
				Aliases:   []string{"o"},
				Usage:     "write to this file instead of stdout",
				TakesFile: true,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log debugging information to stderr",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return filter(ctx, cmd, stdin, stdout, stderr)
		},
		Commands: []*cli.Command{
			{
				Name:      "generate",
				Usage:     "generate files from config sidecars",
				ArgsUsage: "CONFIG...",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "parallelism",
						Aliases: []string{"j"},
						Usage:   "maximum number of configs to process at once; defaults to the number of CPUs",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return generate(ctx, cmd, stderr)
				},
			},
		},
	}
}

// filter implements the root command.
func filter(ctx context.Context, cmd *cli.Command, stdin io.Reader, stdout, stderr io.Writer) error {
	if cmd.NArg() > 1 {
		return fmt.Errorf("expected at most one key file, got %d", cmd.NArg())
	}

	lang, err := emit.ParseLang(cmd.String("lang"))
	if err != nil {
		return err
	}

	in := stdin
	if path := cmd.Args().First(); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	keys, err := keyset.Read(in)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.Bool("verbose"), stderr)
	defer logger.Sync() //nolint:errcheck

	g := &strswitch.Generator{
		Package: cmd.String("package"),
		Logger:  logger,
	}
	opts := strswitch.Options{
		Lang:     lang,
		Type:     cmd.String("type"),
		Func:     cmd.String("func"),
		Prefix:   cmd.String("prefix"),
		Stringer: cmd.Bool("stringer"),
	}

	output := cmd.String("output")
	if output == "" {
		return g.Keys(ctx, stdout, keys, opts)
	}

	var buf bytes.Buffer
	if err := g.Keys(ctx, &buf, keys, opts); err != nil {
		return err
	}
	return os.WriteFile(output, buf.Bytes(), 0o644)
}

// generate implements the generate subcommand.
func generate(ctx context.Context, cmd *cli.Command, stderr io.Writer) error {
	if cmd.NArg() == 0 {
		return errors.New("expected at least one config file")
	}

	logger := newLogger(cmd.Bool("verbose"), stderr)
	defer logger.Sync() //nolint:errcheck

	g := &strswitch.Generator{
		Name:           generatorName,
		Package:        cmd.String("package"),
		MaxParallelism: cmd.Int("parallelism"),
		Logger:         logger,
	}
	return g.Run(ctx, cmd.Args().Slice()...)
}

// newLogger builds a human-readable logger writing to w. Only warnings and
// errors are shown unless verbose is set.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoder := zap.NewDevelopmentEncoderConfig()
	encoder.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoder),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}
