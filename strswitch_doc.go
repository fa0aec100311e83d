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

// Package strswitch generates code that maps strings to enum constants
// without hashing.
//
// Given a set of distinct keys, strswitch emits an enum with one constant per
// key plus a reserved unknown constant, and a function that decides which
// constant an input names by looking at one byte at a time. The function is a
// trie compiled into nested if and switch statements, so a lookup costs
// O(len(input)) comparisons and allocates nothing.
//
// The work happens in phases, each in its own package:
//  1. Read and validate keys, and name their constants.
//     Also see: keyset.Read, keyset.New
//  2. Compile the keys into a decision tree.
//     Also see: decision.Compile
//  3. Render the tree and the enum as C or Go.
//     Also see: emit.File
//
// # Generator
//
// A [Generator] runs all phases. It can either turn a plain list of keys into
// code (see [Generator.Keys]), or process sidecar config files of the kind
// used with go:generate (see [Generator.Run]):
//
//	//go:generate go run github.com/bufbuild/strswitch/cmd/strswitch generate method.go.yaml
//
// Config files are independent of each other, so a Generator processes them
// in parallel.
package strswitch
