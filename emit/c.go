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
	"fmt"
	"strings"

	"github.com/bufbuild/strswitch/decision"
)

func renderC(f *File) ([]byte, error) {
	view, err := newView(f, func(s *Switch) (string, error) {
		for _, k := range s.Set.Keys() {
			if strings.IndexByte(k, 0) >= 0 {
				return "", fmt.Errorf("key %q contains a NUL byte, which C strings cannot represent", k)
			}
		}

		p := cPrinter{unknown: s.Set.Unknown(), symbol: s.Set.Symbol}
		p.node(s.Root, "  ")
		return p.buf.String(), nil
	})
	if err != nil {
		return nil, err
	}
	return execute("c.tmpl", cTmplText, view)
}

type cPrinter struct {
	buf     strings.Builder
	unknown string
	symbol  func(string) string
}

func (p *cPrinter) node(n decision.Node, indent string) {
	switch n := n.(type) {
	case *decision.Leaf:
		fmt.Fprintf(&p.buf, "%sreturn %s;\n", indent, p.symbol(n.Key))

	case *decision.Guard:
		fmt.Fprintf(&p.buf, "%sif(query[%d] != %s) { return %s; }\n", indent, n.At, cChar(n.Char), p.unknown)
		p.node(n.Next, indent)

	case *decision.Dispatch:
		fmt.Fprintf(&p.buf, "%sswitch(query[%d]) {\n", indent, n.At)
		for _, c := range n.Cases {
			fmt.Fprintf(&p.buf, "%s  case %s:\n", indent, cChar(c.Char))
			p.node(c.Next, indent+"    ")
		}
		fmt.Fprintf(&p.buf, "%s  default:\n", indent)
		fmt.Fprintf(&p.buf, "%s    return %s;\n", indent, p.unknown)
		fmt.Fprintf(&p.buf, "%s}\n", indent)
	}
}

// cChar renders c as a C character literal. The terminator is the NUL
// character.
func cChar(c decision.Char) string {
	switch b := c.Byte(); {
	case c.IsEnd():
		return `'\0'`
	case b == '\'' || b == '\\':
		return `'\` + string(b) + `'`
	case b >= 0x20 && b < 0x7f:
		return "'" + string(b) + "'"
	default:
		return fmt.Sprintf(`'\x%02x'`, b)
	}
}
