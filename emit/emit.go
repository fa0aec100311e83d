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

// Package emit renders compiled decision trees as source code.
//
// Two languages are supported. [C] reproduces the classic shape of this
// generator: an enum and a function over a NUL-terminated string built out of
// switch statements. [Go] produces the equivalent Go code, with explicit length
// checks in place of a terminator byte.
package emit

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/bufbuild/strswitch/decision"
	"github.com/bufbuild/strswitch/keyset"
)

// Lang is a target language.
type Lang string

const (
	C  Lang = "c"
	Go Lang = "go"
)

// ParseLang parses a language name, as accepted on the command line.
func ParseLang(s string) (Lang, error) {
	switch Lang(strings.ToLower(s)) {
	case C:
		return C, nil
	case Go, "golang":
		return Go, nil
	default:
		return "", fmt.Errorf("emit: unknown language %q", s)
	}
}

// LangForPath picks a language based on the extension of the file being
// generated.
func LangForPath(path string) (Lang, bool) {
	switch filepath.Ext(path) {
	case ".go":
		return Go, true
	case ".c", ".h":
		return C, true
	default:
		return "", false
	}
}

// File is a generated file, containing one or more switches.
type File struct {
	Lang Lang

	// The Go package clause. Required for Go, ignored for C.
	Package string

	// If set, a "Code generated by ... DO NOT EDIT." header naming this
	// generator is emitted.
	Generator string

	Switches []Switch
}

// Switch is one enum together with its matcher function.
type Switch struct {
	Set  *keyset.Set
	Root decision.Node

	Type string // Name of the enum type. Defaults to "Values".
	Func string // Name of the matcher. Defaults to "convert".

	Docs     string // Documentation for the type (Go only).
	FuncDocs string // Documentation for the matcher (Go only).

	// If set, generate a String method for the enum (Go only).
	Stringer bool
}

// Render writes the code for f to w.
func (f *File) Render(w io.Writer) error {
	var (
		out []byte
		err error
	)
	switch f.Lang {
	case C:
		out, err = renderC(f)
	case Go:
		out, err = renderGo(f)
	default:
		err = fmt.Errorf("emit: unknown language %q", f.Lang)
	}
	if err != nil {
		return err
	}

	_, err = w.Write(out)
	return err
}

// fileView and switchView are the inputs to the templates.
type fileView struct {
	Generator, Package string
	NeedFmt            bool
	Switches           []switchView
}

type switchView struct {
	Type, Func, Unknown string
	Docs, FuncDocs      string
	Stringer            bool
	Symbols             []symbolView
	Body                string
}

type symbolView struct {
	Name, Quoted string
}

//go:embed c.tmpl
var cTmplText string

//go:embed go.tmpl
var goTmplText string

func execute(name, text string, view *fileView) ([]byte, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func newView(f *File, body func(*Switch) (string, error)) (*fileView, error) {
	view := &fileView{
		Generator: f.Generator,
		Package:   f.Package,
	}
	for i := range f.Switches {
		s := &f.Switches[i]
		if s.Set == nil || s.Root == nil {
			return nil, fmt.Errorf("emit: switch %d has no keys", i)
		}

		sv := switchView{
			Type:     s.Type,
			Func:     s.Func,
			Unknown:  s.Set.Unknown(),
			Stringer: s.Stringer,
		}
		if sv.Type == "" {
			sv.Type = "Values"
		}
		if sv.Func == "" {
			sv.Func = "convert"
		}
		funcDocs := s.FuncDocs
		if funcDocs == "" {
			funcDocs = fmt.Sprintf("%s returns the %s named by s, or %s if there is none.", sv.Func, sv.Type, sv.Unknown)
		}
		sv.Docs = makeDocs(s.Docs)
		sv.FuncDocs = makeDocs(funcDocs)
		keys := s.Set.Keys()
		for i, name := range s.Set.Symbols() {
			sv.Symbols = append(sv.Symbols, symbolView{
				Name:   name,
				Quoted: fmt.Sprintf("%q", keys[i]),
			})
		}
		view.NeedFmt = view.NeedFmt || s.Stringer

		var err error
		if sv.Body, err = body(s); err != nil {
			return nil, fmt.Errorf("emit: rendering %s: %w", sv.Func, err)
		}

		view.Switches = append(view.Switches, sv)
	}
	return view, nil
}

// makeDocs renders text as a block of line comments. Blank lines become
// bare "//" lines so that paragraphs survive.
func makeDocs(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight("// "+line, " \t")
	}
	return strings.Join(lines, "\n") + "\n"
}
