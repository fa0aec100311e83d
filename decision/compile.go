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

package decision

import (
	"errors"
	"fmt"

	"github.com/tidwall/btree"
)

// ErrNoKeys is returned by [Compile] when given an empty key set.
var ErrNoKeys = errors.New("decision: no keys to compile")

// DuplicateKeyError is returned by [Compile] when a key appears more than
// once.
type DuplicateKeyError struct {
	Key string
	// Indices of the first two occurrences of Key.
	First, Second int
}

// Error implements [error].
func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("decision: duplicate key %q at indices %d and %d", e.Key, e.First, e.Second)
}

// Compile builds the decision tree for keys, which must be non-empty and
// pairwise distinct.
//
// The shape of the result depends only on the set of keys, not on their
// order.
func Compile(keys []string) (Node, error) {
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}

	seen := make(map[string]int, len(keys))
	for i, k := range keys {
		if j, ok := seen[k]; ok {
			return nil, &DuplicateKeyError{Key: k, First: j, Second: i}
		}
		seen[k] = i
	}

	return Build(keys, 0), nil
}

// Build builds the subtree that discriminates survivors, all of which are
// known to agree on their first pos characters.
//
// survivors must not be empty. Unlike [Compile], Build does not reject
// duplicates: if several copies of a key survive to the end, the first one
// wins.
func Build(survivors []string, pos int) Node {
	if len(survivors) == 0 {
		panic(fmt.Sprintf("decision: Build called with no survivors at position %d", pos))
	}

	// All survivors matched the same terminator on the way here, so they are
	// all the same key.
	if first := survivors[0]; pos > len(first) {
		return &Leaf{Key: first, At: pos}
	}

	groups := partition(survivors, pos)
	if groups.Len() == 1 {
		c, next, _ := groups.Min()
		return &Guard{At: pos, Char: c, Next: Build(next, pos+1)}
	}

	d := &Dispatch{At: pos, Cases: make([]Case, 0, groups.Len())}
	groups.Scan(func(c Char, next []string) bool {
		d.Cases = append(d.Cases, Case{Char: c, Next: Build(next, pos+1)})
		return true
	})
	return d
}

// partition groups keys by their character at pos. Keys keep their relative
// order within each group.
func partition(keys []string, pos int) *btree.Map[Char, []string] {
	groups := new(btree.Map[Char, []string])
	for _, k := range keys {
		c := CharAt(k, pos)
		group, _ := groups.Get(c)
		groups.Set(c, append(group, k))
	}
	return groups
}
