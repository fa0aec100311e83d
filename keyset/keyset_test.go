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

package keyset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/bufbuild/strswitch/keyset"
)

func TestRead(t *testing.T) {
	t.Parallel()

	keys, err := keyset.Read(strings.NewReader("foo\n  bar \n\n# comment\r\nbaz\r\n   \nqux"))
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar", "baz", "qux"}, keys)

	keys, err = keyset.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestNamer(t *testing.T) {
	t.Parallel()

	var zero keyset.Namer
	assert.Equal(t, "kfoo", zero.Name("foo"))
	assert.Equal(t, "kUnknown", zero.Unknown())

	tok := keyset.Namer{Prefix: "Token"}
	assert.Equal(t, "Tokenfoo", tok.Name("foo"))
	assert.Equal(t, "Token", tok.Name(""))
	assert.Equal(t, "TokenUnknown", tok.Unknown())
}

func TestNew(t *testing.T) {
	t.Parallel()

	set, err := keyset.New([]string{"foo", "bar", ""}, keyset.Namer{})
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())
	assert.Equal(t, []string{"foo", "bar", ""}, set.Keys())
	assert.Equal(t, []string{"kfoo", "kbar", "k"}, set.Symbols())
	assert.Equal(t, "kUnknown", set.Unknown())

	_, err = keyset.New(nil, keyset.Namer{})
	require.ErrorIs(t, err, keyset.ErrEmpty)

	_, err = keyset.New([]string{"a", "Unknown", "a", "b", "b"}, keyset.Namer{})
	require.Error(t, err)
	errs := multierr.Errors(err)
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0].Error(), `"Unknown" collides with kUnknown`)
	assert.Contains(t, errs[1].Error(), `duplicate key "a" at index 2, first seen at index 0`)
	assert.Contains(t, errs[2].Error(), `duplicate key "b" at index 4, first seen at index 3`)
}
