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
	"fmt"
	"slices"
	"strings"
)

// Match evaluates the tree rooted at root on input, the same way the code
// rendered from it would. Returns the matched key, or false if input is
// unknown.
func Match(root Node, input string) (key string, ok bool) {
	n := root
	for {
		switch node := n.(type) {
		case *Leaf:
			return node.Key, true

		case *Guard:
			if CharAt(input, node.At) != node.Char {
				return "", false
			}
			n = node.Next

		case *Dispatch:
			c := CharAt(input, node.At)
			i, found := slices.BinarySearchFunc(node.Cases, c, func(cs Case, c Char) int {
				return int(cs.Char) - int(c)
			})
			if !found {
				return "", false
			}
			n = node.Cases[i].Next

		default:
			panic(fmt.Sprintf("decision: unexpected node type %T", n))
		}
	}
}

// Stats summarizes the shape of a tree.
type Stats struct {
	Leaves, Guards, Dispatches int

	// The number of nodes on the longest path from the root to a leaf,
	// including both.
	Depth int
}

// Count computes [Stats] for the tree rooted at root.
func Count(root Node) Stats {
	var s Stats
	var walk func(Node, int)
	walk = func(n Node, depth int) {
		s.Depth = max(s.Depth, depth)
		switch n := n.(type) {
		case *Leaf:
			s.Leaves++
		case *Guard:
			s.Guards++
			walk(n.Next, depth+1)
		case *Dispatch:
			s.Dispatches++
			for _, c := range n.Cases {
				walk(c.Next, depth+1)
			}
		}
	}
	walk(root, 1)
	return s
}

// Dump renders the tree in an indented, human-readable format. This is
// intended for debugging.
func Dump(root Node) string {
	var buf strings.Builder
	dump(&buf, root, "")
	return buf.String()
}

func dump(buf *strings.Builder, n Node, indent string) {
	switch n := n.(type) {
	case *Leaf:
		fmt.Fprintf(buf, "%sleaf %q\n", indent, n.Key)
	case *Guard:
		fmt.Fprintf(buf, "%s[%d] == %v\n", indent, n.At, n.Char)
		dump(buf, n.Next, indent)
	case *Dispatch:
		fmt.Fprintf(buf, "%s[%d] switch\n", indent, n.At)
		for _, c := range n.Cases {
			fmt.Fprintf(buf, "%s  %v:\n", indent, c.Char)
			dump(buf, c.Next, indent+"    ")
		}
	}
}
