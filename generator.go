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

package strswitch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/strswitch/decision"
	"github.com/bufbuild/strswitch/emit"
	"github.com/bufbuild/strswitch/internal/config"
	"github.com/bufbuild/strswitch/keyset"
)

// Generator turns key sets into code.
//
// The zero value is ready to use: it reads and writes the local file system,
// logs nothing, and uses as much parallelism as there are CPUs.
type Generator struct {
	// The name of the generator, recorded in a "Code generated by" header at
	// the top of every generated file. If empty, no header is emitted.
	Name string

	// The package clause for generated Go files. Required when generating Go.
	Package string

	// The maximum number of config files to process at once. If unspecified
	// or set to a non-positive value, then min(runtime.NumCPU(),
	// runtime.GOMAXPROCS(-1)) will be used.
	MaxParallelism int

	// Where to log progress. If nil, nothing is logged.
	Logger *zap.Logger

	// Opens config and key files. Defaults to os.Open.
	Accessor func(path string) (io.ReadCloser, error)

	// Creates generated files. Defaults to os.Create.
	Creator func(path string) (io.WriteCloser, error)
}

// Options configures a single switch for [Generator.Keys].
type Options struct {
	Lang emit.Lang // Defaults to C.

	Type, Func string
	Prefix     string
	Docs       string
	FuncDocs   string
	Stringer   bool
}

// Keys generates a single switch over keys and writes it to w.
func (g *Generator) Keys(ctx context.Context, w io.Writer, keys []string, opts Options) error {
	sw, err := g.compile(ctx, keys, keyset.Namer{Prefix: opts.Prefix})
	if err != nil {
		return err
	}
	sw.Type = opts.Type
	sw.Func = opts.Func
	sw.Docs = opts.Docs
	sw.FuncDocs = opts.FuncDocs
	sw.Stringer = opts.Stringer

	lang := opts.Lang
	if lang == "" {
		lang = emit.C
	}
	f := &emit.File{
		Lang:      lang,
		Package:   g.Package,
		Generator: g.Name,
		Switches:  []emit.Switch{sw},
	}
	return f.Render(w)
}

// Run processes each of the given config files, writing out the files they
// describe. Stops at the first error.
func (g *Generator) Run(ctx context.Context, configs ...string) error {
	if len(configs) == 0 {
		return nil
	}

	par := g.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(par)
	for _, path := range configs {
		eg.Go(func() error {
			return g.generate(ctx, path)
		})
	}
	return eg.Wait()
}

// generate processes a single config file.
func (g *Generator) generate(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg, err := config.Load(path, g.accessor())
	if err != nil {
		return err
	}

	f := &emit.File{
		Lang:      cfg.Lang,
		Package:   g.Package,
		Generator: g.Name,
	}
	for i, s := range cfg.Switches {
		sw, err := g.compile(ctx, s.Keys, s.Namer())
		if err != nil {
			return fmt.Errorf("%s: switch %d: %w", path, i, err)
		}
		sw.Type = s.Type
		sw.Func = s.Func
		sw.Docs = s.Docs
		sw.FuncDocs = s.FuncDocs
		sw.Stringer = s.Stringer
		f.Switches = append(f.Switches, sw)
	}

	// Render everything before touching the output, so that a failure does
	// not leave a truncated file behind.
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	out, err := g.creator()(cfg.Output)
	if err != nil {
		return err
	}
	if _, err := out.Write(buf.Bytes()); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	g.logger().Info("generated file",
		zap.String("config", path),
		zap.String("output", cfg.Output),
		zap.String("lang", string(cfg.Lang)),
		zap.Int("switches", len(f.Switches)),
		zap.Int("bytes", buf.Len()),
	)
	return nil
}

// compile validates keys and compiles them into a switch with no names
// filled in.
func (g *Generator) compile(ctx context.Context, keys []string, namer keyset.Namer) (emit.Switch, error) {
	if err := ctx.Err(); err != nil {
		return emit.Switch{}, err
	}

	set, err := keyset.New(keys, namer)
	if err != nil {
		return emit.Switch{}, err
	}
	root, err := decision.Compile(set.Keys())
	if err != nil {
		return emit.Switch{}, err
	}

	// This should never fail; if it does, the generated code would be wrong,
	// so refuse to emit it.
	for _, k := range set.Keys() {
		if got, ok := decision.Match(root, k); !ok || got != k {
			return emit.Switch{}, fmt.Errorf("internal error: key %q does not round-trip (got %q, %v)", k, got, ok)
		}
	}

	stats := decision.Count(root)
	g.logger().Debug("compiled switch",
		zap.Int("keys", set.Len()),
		zap.Int("leaves", stats.Leaves),
		zap.Int("guards", stats.Guards),
		zap.Int("dispatches", stats.Dispatches),
		zap.Int("depth", stats.Depth),
	)

	return emit.Switch{Set: set, Root: root}, nil
}

func (g *Generator) logger() *zap.Logger {
	if g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}

func (g *Generator) accessor() config.Opener {
	if g.Accessor == nil {
		return func(path string) (io.ReadCloser, error) { return os.Open(path) }
	}
	return g.Accessor
}

func (g *Generator) creator() func(string) (io.WriteCloser, error) {
	if g.Creator == nil {
		return func(path string) (io.WriteCloser, error) { return os.Create(path) }
	}
	return g.Creator
}
