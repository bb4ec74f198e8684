//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package commander

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelheaven/gopad/search"
)

func TestParseSubstitution(t *testing.T) {
	pattern, replacement, options, ok := ParseSubstitution("s/old/new/", search.Options{})
	require.True(t, ok)
	assert.Equal(t, "old", pattern)
	assert.Equal(t, "new", replacement)
	assert.False(t, options.Regex)
}

func TestParseSubstitutionWithoutTrailingSlash(t *testing.T) {
	pattern, replacement, _, ok := ParseSubstitution("s/old/new", search.Options{})
	require.True(t, ok)
	assert.Equal(t, "old", pattern)
	assert.Equal(t, "new", replacement)
}

func TestParseSubstitutionPercentPrefix(t *testing.T) {
	pattern, _, _, ok := ParseSubstitution("%s/old/new/g", search.Options{})
	require.True(t, ok)
	assert.Equal(t, "old", pattern)
}

func TestParseSubstitutionFlags(t *testing.T) {
	_, _, options, ok := ParseSubstitution("s/a/b/iwr", search.Options{CaseSensitive: true})
	require.True(t, ok)
	assert.False(t, options.CaseSensitive)
	assert.True(t, options.WholeWord)
	assert.True(t, options.Regex)

	_, _, options, ok = ParseSubstitution("s/a/b/I", search.Options{})
	require.True(t, ok)
	assert.True(t, options.CaseSensitive)
}

func TestParseSubstitutionEscapedSlash(t *testing.T) {
	pattern, replacement, _, ok := ParseSubstitution(`s/a\/b/c\/d/`, search.Options{})
	require.True(t, ok)
	assert.Equal(t, "a/b", pattern)
	assert.Equal(t, "c/d", replacement)
}

func TestParseSubstitutionKeepsOtherEscapes(t *testing.T) {
	pattern, _, _, ok := ParseSubstitution(`s/\d+/N/r`, search.Options{})
	require.True(t, ok)
	assert.Equal(t, `\d+`, pattern)
}

func TestParseSubstitutionRejectsMalformed(t *testing.T) {
	for _, command := range []string{
		"w file.txt",
		"stats",
		"s/",
		"s//replacement/",
		"s/a/b/x",
		"sub/a/b/",
	} {
		_, _, _, ok := ParseSubstitution(command, search.Options{})
		assert.False(t, ok, "command %q should not parse", command)
	}
}
