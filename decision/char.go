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

import "fmt"

// Char is the value of a key at some position: either one of its bytes, or
// [End] if the position is past the last byte.
//
// Chars are totally ordered by value, and End sorts before every byte.
type Char int16

// End is the terminator sentinel. It plays the role that the NUL byte plays
// for C strings, but unlike NUL it can never occur inside a key.
const End Char = -1

// CharAt returns the character of key at pos, or [End] if pos >= len(key).
func CharAt(key string, pos int) Char {
	if pos < len(key) {
		return Char(key[pos])
	}
	return End
}

// IsEnd returns whether this is the terminator.
func (c Char) IsEnd() bool {
	return c == End
}

// Byte returns the byte value of c. The terminator is reported as zero.
func (c Char) Byte() byte {
	if c.IsEnd() {
		return 0
	}
	return byte(c)
}

// String implements [fmt.Stringer].
func (c Char) String() string {
	if c.IsEnd() {
		return "$"
	}
	if c >= 0x80 {
		return fmt.Sprintf(`'\x%02x'`, byte(c))
	}
	return fmt.Sprintf("%q", rune(c))
}
