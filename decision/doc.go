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

// Package decision compiles a set of distinct strings into a discrimination
// tree: a trie that inspects one byte of the input at a time and is meant to
// be rendered as nested if and switch statements rather than walked as a data
// structure.
//
// Every path through the tree ends by checking the terminator, i.e. the
// position one past the last byte of a key. This is what separates a key from
// the other keys it is a prefix of: given "a" and "ab", the input "a" only
// selects "a" after the matcher has seen that there is no byte at position 1.
//
// The tree is built by [Compile]. Its three node types are [Leaf], [Guard] and
// [Dispatch]; code generators switch on them directly.
package decision
