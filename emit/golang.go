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

package emit

import (
	"errors"
	"fmt"
	"go/format"
	"strconv"
	"strings"

	"github.com/bufbuild/strswitch/decision"
)

func renderGo(f *File) ([]byte, error) {
	if f.Package == "" {
		return nil, errors.New("emit: Go output requires a package name")
	}

	view, err := newView(f, func(s *Switch) (string, error) {
		p := goPrinter{unknown: s.Set.Unknown(), symbol: s.Set.Symbol}
		p.node(s.Root, "\t")
		return p.buf.String(), nil
	})
	if err != nil {
		return nil, err
	}

	text, err := execute("go.tmpl", goTmplText, view)
	if err != nil {
		return nil, err
	}

	out, err := format.Source(text)
	if err != nil {
		return nil, fmt.Errorf("emit: generated invalid Go code: %w", err)
	}
	return out, nil
}

// goPrinter renders a decision tree as the body of a Go function over s.
//
// Go strings are not NUL-terminated, so the terminator becomes a length
// check. Every node at position p is only reached once len(s) >= p is known.
type goPrinter struct {
	buf     strings.Builder
	unknown string
	symbol  func(string) string
}

func (p *goPrinter) node(n decision.Node, indent string) {
	switch n := n.(type) {
	case *decision.Leaf:
		fmt.Fprintf(&p.buf, "%sreturn %s\n", indent, p.symbol(n.Key))

	case *decision.Guard:
		if n.Char.IsEnd() {
			fmt.Fprintf(&p.buf, "%sif len(s) != %d {\n", indent, n.At)
		} else {
			fmt.Fprintf(&p.buf, "%sif len(s) == %d || s[%d] != %s {\n", indent, n.At, n.At, goChar(n.Char))
		}
		p.fail(indent + "\t")
		fmt.Fprintf(&p.buf, "%s}\n", indent)
		p.node(n.Next, indent)

	case *decision.Dispatch:
		cases := n.Cases
		fmt.Fprintf(&p.buf, "%sif len(s) == %d {\n", indent, n.At)
		if n.HasEnd() {
			p.node(cases[0].Next, indent+"\t")
			cases = cases[1:]
		} else {
			p.fail(indent + "\t")
		}
		fmt.Fprintf(&p.buf, "%s}\n", indent)

		fmt.Fprintf(&p.buf, "%sswitch s[%d] {\n", indent, n.At)
		for _, c := range cases {
			fmt.Fprintf(&p.buf, "%scase %s:\n", indent, goChar(c.Char))
			p.node(c.Next, indent+"\t")
		}
		fmt.Fprintf(&p.buf, "%sdefault:\n", indent)
		p.fail(indent + "\t")
		fmt.Fprintf(&p.buf, "%s}\n", indent)
	}
}

func (p *goPrinter) fail(indent string) {
	fmt.Fprintf(&p.buf, "%sreturn %s\n", indent, p.unknown)
}

// goChar renders c as a Go rune literal comparable with a byte.
func goChar(c decision.Char) string {
	b := c.Byte()
	if b >= 0x80 {
		return fmt.Sprintf(`'\x%02x'`, b)
	}
	return strconv.QuoteRune(rune(b))
}
