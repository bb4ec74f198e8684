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
package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAllLiteral(t *testing.T) {
	matches, err := FindAll("the cat sat on the mat", "the", Options{})
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, Match{Start: 0, End: 3}, matches[0])
	assert.Equal(t, Match{Start: 15, End: 18}, matches[1])
}

func TestFindAllCaseSensitivity(t *testing.T) {
	count, err := Count("The the THE", "the", Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = Count("The the THE", "the", Options{CaseSensitive: true})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestFindAllWholeWord(t *testing.T) {
	count, err := Count("cat catalog concatenate", "cat", Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = Count("cat catalog concatenate", "cat", Options{WholeWord: true})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLiteralMetacharacters(t *testing.T) {
	// metacharacters in a literal pattern match themselves
	count, err := Count("a.c abc", "a.c", Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = Count("a.c abc", "a.c", Options{Regex: true})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestEmptyPattern(t *testing.T) {
	matches, err := FindAll("anything", "", Options{})
	require.NoError(t, err)
	assert.Empty(t, matches)

	out, count, err := ReplaceAll("anything", "", "x", Options{})
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, "anything", out)
}

func TestReplaceAllLiteral(t *testing.T) {
	out, count, err := ReplaceAll("one fish two fish", "fish", "cat", Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, "one cat two cat", out)
}

func TestReplaceAllLiteralReplacementIsLiteral(t *testing.T) {
	// $1 in the replacement is not a group reference in literal mode
	out, count, err := ReplaceAll("abc", "b", "$1", Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, "a$1c", out)
}

func TestReplaceAllRegexGroups(t *testing.T) {
	out, count, err := ReplaceAll("john smith", `(\w+) (\w+)`, "$2 $1", Options{Regex: true})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, "smith john", out)
}

func TestReplaceAllNoMatchLeavesTextAlone(t *testing.T) {
	out, count, err := ReplaceAll("unchanged", "zebra", "lion", Options{})
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, "unchanged", out)
}

func TestInvalidRegex(t *testing.T) {
	_, err := FindAll("text", "[unclosed", Options{Regex: true})
	assert.Error(t, err)

	// the same pattern is fine as a literal
	count, err := Count("a [unclosed bracket", "[unclosed", Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
