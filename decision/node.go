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

// Node is a node in a decision tree: one of [*Leaf], [*Guard] or [*Dispatch].
type Node interface {
	// Pos returns the position in the input that this node inspects. For a
	// leaf, this is one past the terminator of its key.
	Pos() int

	isNode()
}

// Leaf is reached once exactly one key survives and its terminator has been
// matched.
type Leaf struct {
	Key string
	At  int
}

// Guard is a node where only one character can appear at Pos. Any other
// input character means the input is unknown.
type Guard struct {
	At   int
	Char Char
	Next Node
}

// Dispatch is a node where two or more characters can appear at Pos. Inputs
// whose character does not match any case are unknown.
type Dispatch struct {
	At int

	// Cases in ascending order of Char. There are always at least two.
	Cases []Case
}

// Case is a single arm of a [Dispatch].
type Case struct {
	Char Char
	Next Node
}

// Pos implements [Node].
func (l *Leaf) Pos() int { return l.At }

// Pos implements [Node].
func (g *Guard) Pos() int { return g.At }

// Pos implements [Node].
func (d *Dispatch) Pos() int { return d.At }

// HasEnd returns whether one of the cases is the terminator. If so, it is
// always the first case.
func (d *Dispatch) HasEnd() bool {
	return len(d.Cases) > 0 && d.Cases[0].Char.IsEnd()
}

func (*Leaf) isNode()     {}
func (*Guard) isNode()    {}
func (*Dispatch) isNode() {}
