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

package golden

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorpus(t *testing.T) {
	t.Parallel()

	corpus := Corpus{
		Root:       "testdata",
		Refresh:    "STRSWITCH_REFRESH",
		Extensions: []string{"txt"},
		Outputs: []Output{
			{Extension: "upper"},
			{Extension: "len"},
			{Extension: "missing"},
		},
	}

	var ran []string
	corpus.Run(t, func(t *testing.T, path, text string, outputs []string) {
		ran = append(ran, path)
		outputs[0] = strings.ToUpper(text)
		outputs[1] = fmt.Sprintln(len(text))
	})
	assert.Equal(t, []string{"testdata/hello.txt"}, ran)
}

func TestDefaultCompare(t *testing.T) {
	t.Parallel()

	assert.Empty(t, defaultCompare("a\nb\n", "a\nb\n"))

	diff := defaultCompare("a\nc\n", "a\nb\n")
	assert.Contains(t, diff, "--- want")
	assert.Contains(t, diff, "+++ got")
	assert.Contains(t, diff, "\033[1;91m-b\033[0m")
	assert.Contains(t, diff, "\033[1;92m+c\033[0m")
}
