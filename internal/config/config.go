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

// Package config loads the sidecar files that drive code generation.
//
// A sidecar is named after the file it generates, plus a .yaml (or .yml, or
// .toml) extension: values.go.yaml generates values.go, and tokens.h.toml
// generates tokens.h. The language to generate is picked from the extension
// of the generated file.
//
// A YAML sidecar holds a list of [Switch]es:
//
//	- type: Method
//	  func: ParseMethod
//	  prefix: Method
//	  keys: [GET, PUT, POST]
//
// A TOML sidecar holds the same data as an array of tables named "switch":
//
//	[[switch]]
//	type = "Method"
//	keys_file = "methods.txt"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/strswitch/emit"
	"github.com/bufbuild/strswitch/keyset"
)

// File is a loaded sidecar.
type File struct {
	Path   string    // Path to the sidecar itself.
	Output string    // Path to the file to generate.
	Lang   emit.Lang // Language of Output.

	Switches []Switch
}

// Switch configures one enum and its matcher.
type Switch struct {
	Type     string `yaml:"type"      toml:"type"`      // Name of the enum type.
	Func     string `yaml:"func"      toml:"func"`      // Name of the matcher function.
	Prefix   string `yaml:"prefix"    toml:"prefix"`    // Prefix for constant names.
	Docs     string `yaml:"docs"      toml:"docs"`      // Documentation for the type.
	FuncDocs string `yaml:"func_docs" toml:"func_docs"` // Documentation for the matcher.
	Stringer bool   `yaml:"stringer"  toml:"stringer"`  // Whether to generate a String method.

	// The keys, given inline or as a path to a file with one key per line.
	// The path is relative to the sidecar. Exactly one must be set.
	Keys     []string `yaml:"keys"      toml:"keys"`
	KeysFile string   `yaml:"keys_file" toml:"keys_file"`
}

// Namer returns the naming rule for this switch's constants.
func (s *Switch) Namer() keyset.Namer {
	return keyset.Namer{Prefix: s.Prefix}
}

// Opener opens a file for reading.
type Opener func(path string) (io.ReadCloser, error)

// Load loads the sidecar at path, using open to read it and any key files
// it refers to.
func Load(path string, open Opener) (*File, error) {
	ext := filepath.Ext(path)
	switch ext {
	case ".yaml", ".yml", ".toml":
	default:
		return nil, fmt.Errorf("%s: config file must end in .yaml or .toml", path)
	}

	f := &File{Path: path, Output: strings.TrimSuffix(path, ext)}
	lang, ok := emit.LangForPath(f.Output)
	if !ok {
		return nil, fmt.Errorf("%s: cannot tell which language %q is in", path, f.Output)
	}
	f.Lang = lang

	text, err := readAll(path, open)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if ext == ".toml" {
		err = decodeTOML(text, f)
	} else {
		err = decodeYAML(text, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if err := f.resolve(open); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func decodeYAML(text []byte, f *File) error {
	dec := yaml.NewDecoder(bytes.NewReader(text))
	dec.KnownFields(true)
	if err := dec.Decode(&f.Switches); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func decodeTOML(text []byte, f *File) error {
	var doc struct {
		Switch []Switch `toml:"switch"`
	}
	md, err := toml.NewDecoder(bytes.NewReader(text)).Decode(&doc)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown field %q", undecoded[0].String())
	}
	f.Switches = doc.Switch
	return nil
}

// resolve loads key files and checks that the switches are consistent.
func (f *File) resolve(open Opener) error {
	if len(f.Switches) == 0 {
		return errors.New("no switches defined")
	}

	types := make(map[string]int)
	funcs := make(map[string]int)
	consts := make(map[string]int)
	for i := range f.Switches {
		s := &f.Switches[i]
		if s.Type == "" {
			s.Type = "Values"
		}
		if s.Func == "" {
			s.Func = "convert"
		}

		if j, ok := types[s.Type]; ok {
			return fmt.Errorf("switch %d: type %s already defined by switch %d", i, s.Type, j)
		}
		types[s.Type] = i
		if j, ok := funcs[s.Func]; ok {
			return fmt.Errorf("switch %d: func %s already defined by switch %d", i, s.Func, j)
		}
		funcs[s.Func] = i

		switch {
		case s.KeysFile != "" && s.Keys != nil:
			return fmt.Errorf("switch %d: keys and keys_file are mutually exclusive", i)
		case s.KeysFile != "":
			path := s.KeysFile
			if !filepath.IsAbs(path) {
				path = filepath.Join(filepath.Dir(f.Path), path)
			}
			text, err := readAll(path, open)
			if err != nil {
				return fmt.Errorf("switch %d: %w", i, err)
			}
			if s.Keys, err = keyset.Read(bytes.NewReader(text)); err != nil {
				return fmt.Errorf("switch %d: %w", i, err)
			}
		case s.Keys == nil:
			return fmt.Errorf("switch %d: no keys given; set keys or keys_file", i)
		}

		// Constants of all switches share one scope in both C and Go.
		// Collisions within a single switch are reported by keyset.
		namer := s.Namer()
		names := []string{namer.Unknown()}
		for _, key := range s.Keys {
			names = append(names, namer.Name(key))
		}
		for _, name := range names {
			if j, ok := consts[name]; ok && j != i {
				return fmt.Errorf("switch %d: constant %s already defined by switch %d", i, name, j)
			}
			consts[name] = i
		}
	}
	return nil
}

func readAll(path string, open Opener) ([]byte, error) {
	r, err := open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
