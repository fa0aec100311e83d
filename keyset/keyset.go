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

// Package keyset turns raw input into a validated set of keys, and assigns
// each key the name of the constant that represents it in generated code.
package keyset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"go.uber.org/multierr"
)

// DefaultPrefix is the prefix used by the zero [Namer].
const DefaultPrefix = "k"

// ErrEmpty is reported by [New] when there are no keys.
var ErrEmpty = errors.New("keyset: no keys")

// Namer derives constant names from keys by prepending a prefix to the key
// text verbatim.
//
// The zero value uses [DefaultPrefix].
type Namer struct {
	Prefix string
}

// Name returns the name of the constant for key.
func (n Namer) Name(key string) string {
	return n.prefix() + key
}

// Unknown returns the name of the reserved constant that means "no key
// matched".
func (n Namer) Unknown() string {
	return n.prefix() + "Unknown"
}

func (n Namer) prefix() string {
	if n.Prefix == "" {
		return DefaultPrefix
	}
	return n.Prefix
}

// Read reads keys from r, one per line.
//
// Surrounding whitespace is trimmed from each line. Blank lines, and lines
// starting with #, are skipped.
func Read(r io.Reader) ([]string, error) {
	var keys []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keys = append(keys, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("keyset: reading keys: %w", err)
	}
	return keys, nil
}

// Set is a validated, ordered set of keys. The order is the order in which the
// keys were given, and is the order their constants are declared in.
type Set struct {
	keys  []string
	namer Namer
}

// New validates keys and builds a set out of them.
//
// Every problem with keys is reported, not just the first one: an empty set,
// each repeated key, and each key whose constant name collides with the
// unknown constant.
func New(keys []string, namer Namer) (*Set, error) {
	if len(keys) == 0 {
		return nil, ErrEmpty
	}

	var err error
	seen := make(map[string]int, len(keys))
	for i, k := range keys {
		if j, ok := seen[k]; ok {
			err = multierr.Append(err, fmt.Errorf("keyset: duplicate key %q at index %d, first seen at index %d", k, i, j))
			continue
		}
		seen[k] = i

		if namer.Name(k) == namer.Unknown() {
			err = multierr.Append(err, fmt.Errorf("keyset: key %q collides with %s", k, namer.Unknown()))
		}
	}
	if err != nil {
		return nil, err
	}

	return &Set{keys: slices.Clone(keys), namer: namer}, nil
}

// Keys returns the keys in this set. The caller must not modify the result.
func (s *Set) Keys() []string {
	return s.keys
}

// Len returns the number of keys.
func (s *Set) Len() int {
	return len(s.keys)
}

// Symbols returns the constant names of all keys, in order.
func (s *Set) Symbols() []string {
	out := make([]string, len(s.keys))
	for i, k := range s.keys {
		out[i] = s.namer.Name(k)
	}
	return out
}

// Unknown returns the name of the unknown constant.
func (s *Set) Unknown() string {
	return s.namer.Unknown()
}
