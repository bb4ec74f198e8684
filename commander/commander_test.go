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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelheaven/gopad/editor"
	"github.com/pixelheaven/gopad/recent"
	gopad "github.com/pixelheaven/gopad/types"
)

func typeString(t *testing.T, c *Commander, s string) {
	t.Helper()
	for _, ch := range s {
		event := &gopad.Event{Type: gopad.EventKey, Ch: ch}
		if ch == ' ' {
			event = &gopad.Event{Type: gopad.EventKey, Key: gopad.KeySpace}
		}
		require.NoError(t, c.ProcessEvent(event))
	}
}

func typeKey(t *testing.T, c *Commander, k gopad.Key) {
	t.Helper()
	require.NoError(t, c.ProcessEvent(&gopad.Event{Type: gopad.EventKey, Key: k}))
}

func command(t *testing.T, c *Commander, s string) {
	t.Helper()
	typeString(t, c, ":"+s)
	typeKey(t, c, gopad.KeyEnter)
}

func TestQuitWithCleanBuffer(t *testing.T) {
	e := editor.NewEditor()
	c := NewCommander(e)

	require.True(t, c.IsRunning())
	command(t, c, "q")
	assert.False(t, c.IsRunning())
}

func TestQuitProtectsUnsavedChanges(t *testing.T) {
	e := editor.NewEditor()
	e.LoadBytes([]byte("hello"))
	c := NewCommander(e)
	require.True(t, e.IsDirty())

	command(t, c, "q")
	assert.True(t, c.IsRunning())
	assert.Contains(t, c.GetMessage(), "unsaved changes")

	command(t, c, "q!")
	assert.False(t, c.IsRunning())
}

func TestWriteQuit(t *testing.T) {
	e := editor.NewEditor()
	e.LoadBytes([]byte("hello"))
	c := NewCommander(e)

	path := filepath.Join(t.TempDir(), "out.txt")
	command(t, c, "wq "+path)
	assert.False(t, c.IsRunning())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestWriteWithoutFileName(t *testing.T) {
	e := editor.NewEditor()
	e.LoadBytes([]byte("hello"))
	c := NewCommander(e)

	command(t, c, "w")
	assert.Contains(t, c.GetMessage(), "no file name")
	assert.True(t, e.IsDirty())
}

func TestInsertMode(t *testing.T) {
	e := editor.NewEditor()
	c := NewCommander(e)

	typeString(t, c, "i")
	assert.Equal(t, gopad.ModeInsert, c.GetMode())
	typeString(t, c, "hi")
	typeKey(t, c, gopad.KeyEsc)

	assert.Equal(t, gopad.ModeEdit, c.GetMode())
	assert.Equal(t, "hi", string(e.Bytes()))
}

func TestSearchMode(t *testing.T) {
	e := editor.NewEditor()
	e.LoadBytes([]byte("alpha\nbeta\ngamma"))
	c := NewCommander(e)

	typeString(t, c, "/beta")
	assert.Equal(t, gopad.ModeSearch, c.GetMode())
	typeKey(t, c, gopad.KeyEnter)

	assert.Equal(t, gopad.ModeEdit, c.GetMode())
	assert.Equal(t, gopad.Point{Row: 1, Col: 0}, e.GetCursor())

	// n repeats the search, wrapping around the buffer
	typeString(t, c, "n")
	assert.Equal(t, gopad.Point{Row: 1, Col: 0}, e.GetCursor())
}

func TestSearchNotFound(t *testing.T) {
	e := editor.NewEditor()
	e.LoadBytes([]byte("alpha"))
	c := NewCommander(e)

	typeString(t, c, "/zebra")
	typeKey(t, c, gopad.KeyEnter)
	assert.Contains(t, c.GetMessage(), "not found")
}

func TestSubstituteCommand(t *testing.T) {
	e := editor.NewEditor()
	e.LoadBytes([]byte("the cat sat\ncat nap"))
	c := NewCommander(e)

	command(t, c, "s/cat/dog/")
	assert.Equal(t, "the dog sat\ndog nap", string(e.Bytes()))
	assert.Equal(t, "replaced 2 occurrences", c.GetMessage())

	// a substitution is a single undoable operation
	typeString(t, c, "u")
	assert.Equal(t, "the cat sat\ncat nap", string(e.Bytes()))
}

func TestSubstituteNoMatch(t *testing.T) {
	e := editor.NewEditor()
	e.LoadBytes([]byte("alpha"))
	c := NewCommander(e)

	command(t, c, "s/zebra/lion/")
	assert.Equal(t, "alpha", string(e.Bytes()))
	assert.Contains(t, c.GetMessage(), "no matches")
}

func TestStatsCommand(t *testing.T) {
	e := editor.NewEditor()
	e.LoadBytes([]byte("one two\n\nthree"))
	c := NewCommander(e)

	command(t, c, "stats")
	assert.Equal(t, "3 lines, 3 words, 14 chars (11 without spaces), 2 paragraphs", c.GetMessage())
}

func TestLineJumpCommand(t *testing.T) {
	e := editor.NewEditor()
	e.LoadBytes([]byte("one\ntwo\nthree"))
	c := NewCommander(e)

	command(t, c, "2")
	assert.Equal(t, gopad.Point{Row: 1, Col: 0}, e.GetCursor())

	// past the end clamps to the last row
	command(t, c, "99")
	assert.Equal(t, gopad.Point{Row: 2, Col: 0}, e.GetCursor())

	command(t, c, "$")
	assert.Equal(t, gopad.Point{Row: 2, Col: 0}, e.GetCursor())
}

func TestRecentCommand(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	require.NoError(t, os.WriteFile(first, []byte("first contents"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("second contents"), 0644))

	registry, err := recent.Load(filepath.Join(dir, "recent.json"), 10)
	require.NoError(t, err)
	registry.Add(first)
	registry.Add(second)

	e := editor.NewEditor()
	c := NewCommander(e)
	c.SetRecentRegistry(registry)

	command(t, c, "recent")
	assert.Equal(t, "recent 1:second.txt 2:first.txt", c.GetMessage())

	command(t, c, "recent 2")
	assert.Equal(t, "first contents", string(e.Bytes()))
	// the opened file moves to the front of the list
	assert.Equal(t, first, registry.Entries()[0].Path)
}

func TestRecentCommandOutOfRange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	registry, err := recent.Load(filepath.Join(dir, "recent.json"), 10)
	require.NoError(t, err)
	registry.Add(path)

	e := editor.NewEditor()
	c := NewCommander(e)
	c.SetRecentRegistry(registry)

	command(t, c, "recent 5")
	assert.Contains(t, c.GetMessage(), "recent takes a number")
}

func TestMultiplier(t *testing.T) {
	e := editor.NewEditor()
	e.LoadBytes([]byte("one\ntwo\nthree\nfour"))
	c := NewCommander(e)

	typeString(t, c, "3j")
	assert.Equal(t, 3, e.GetCursor().Row)
}

func TestHalfPageKeys(t *testing.T) {
	e := editor.NewEditor()
	e.LoadBytes([]byte(strings.Repeat("line\n", 29) + "line"))
	e.SetSize(gopad.Size{Rows: 10, Cols: 80})
	c := NewCommander(e)

	typeKey(t, c, gopad.KeyCtrlD)
	assert.Equal(t, 14, e.GetCursor().Row)

	typeKey(t, c, gopad.KeyCtrlU)
	assert.Equal(t, 0, e.GetCursor().Row)
}

func TestDeleteRowKeys(t *testing.T) {
	e := editor.NewEditor()
	e.LoadBytes([]byte("one\ntwo\nthree"))
	c := NewCommander(e)

	typeString(t, c, "dd")
	assert.Equal(t, "two\nthree", string(e.Bytes()))

	typeString(t, c, "u")
	assert.Equal(t, "one\ntwo\nthree", string(e.Bytes()))
}
