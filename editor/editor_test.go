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
package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelheaven/gopad/operations"
	"github.com/pixelheaven/gopad/search"
	gopad "github.com/pixelheaven/gopad/types"
)

const source = "testdata/gettysburg.txt"

func setup(t *testing.T) *Editor {
	t.Helper()
	editor := NewEditor()
	require.NoError(t, editor.ReadFile(source))
	return editor
}

// final writes the buffer out and verifies that it matches the original.
func final(t *testing.T, editor *Editor) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "final.txt")
	require.NoError(t, editor.WriteFile(path))
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	original, err := os.ReadFile(source)
	require.NoError(t, err)
	assert.Equal(t, string(original), string(written))
}

// read and write a file without changing it
func TestReadWriteInvariance(t *testing.T) {
	editor := setup(t)
	final(t, editor)
}

func TestDeleteRow(t *testing.T) {
	editor := setup(t)
	editor.Cursor = gopad.Point{Row: 20, Col: 0}
	editor.Perform(&operations.DeleteRow{}, 20)
	assert.Equal(t, 20, editor.Buffer.GetRowCount())
	editor.PerformUndo()
	final(t, editor)
}

func TestDeleteWord(t *testing.T) {
	editor := setup(t)
	editor.Cursor = gopad.Point{Row: 20, Col: 0}
	editor.Perform(&operations.DeleteWord{}, 5)
	expected := "the great task remaining before us--that from these"
	assert.Equal(t, expected, editor.Buffer.TextAfter(20, 0))
	editor.PerformUndo()
	final(t, editor)
}

func TestDeleteCharacter(t *testing.T) {
	editor := setup(t)
	editor.Cursor = gopad.Point{Row: 20, Col: 0}
	editor.Perform(&operations.DeleteCharacter{}, 28)
	expected := "great task remaining before us--that from these"
	assert.Equal(t, expected, editor.Buffer.TextAfter(20, 0))
	editor.PerformUndo()
	final(t, editor)
}

func TestInsert(t *testing.T) {
	editor := setup(t)
	editor.Cursor = gopad.Point{Row: 1, Col: 0}
	insert := &operations.Insert{Position: gopad.InsertAtCursor, Text: "hello, world!"}
	editor.Perform(insert, 1)
	assert.Equal(t, "hello, world!", editor.Buffer.TextAfter(1, 0))

	editor.Cursor = gopad.Point{Row: 0, Col: 3}
	insert = &operations.Insert{Position: gopad.InsertAfterCursor, Text: "BIG LEAGUE "}
	editor.Perform(insert, 1)
	assert.Equal(t, "THE BIG LEAGUE GETTYSBURG ADDRESS:", editor.Buffer.TextAfter(0, 0))

	editor.Cursor = gopad.Point{Row: 2, Col: 3}
	insert = &operations.Insert{Position: gopad.InsertAfterEndOfLine, Text: " very"}
	editor.Perform(insert, 1)
	assert.Equal(t,
		"Four score and seven years ago our fathers brought forth on this very",
		editor.Buffer.TextAfter(2, 0))

	editor.Cursor = gopad.Point{Row: 3, Col: 3}
	insert = &operations.Insert{Position: gopad.InsertAtStartOfLine, Text: "nice "}
	editor.Perform(insert, 1)
	assert.Equal(t,
		"nice continent a new nation, conceived in liberty and dedicated to the",
		editor.Buffer.TextAfter(3, 0))

	editor.Cursor = gopad.Point{Row: 21, Col: 3}
	insert = &operations.Insert{Position: gopad.InsertAtNewLineAboveCursor, Text: "most"}
	editor.Perform(insert, 1)
	assert.Equal(t, "most", editor.Buffer.TextAfter(21, 0))

	editor.Cursor = gopad.Point{Row: 22, Col: 3}
	insert = &operations.Insert{Position: gopad.InsertAtNewLineBelowCursor, Text: "excellent"}
	editor.Perform(insert, 1)
	assert.Equal(t, "excellent", editor.Buffer.TextAfter(23, 0))

	editor.PerformUndo()
	editor.PerformUndo()
	editor.PerformUndo()
	editor.PerformUndo()
	editor.PerformUndo()
	editor.PerformUndo()
	final(t, editor)
}

func TestReverseCase(t *testing.T) {
	editor := setup(t)
	editor.Cursor = gopad.Point{Row: 0, Col: 1}
	editor.Perform(&operations.ReverseCaseCharacter{}, 20)
	assert.Equal(t, "The gettysburg addresS:", editor.Buffer.TextAfter(0, 0))
	editor.PerformUndo()
	final(t, editor)
}

func TestReplaceCharacter(t *testing.T) {
	editor := setup(t)
	editor.Cursor = gopad.Point{Row: 0, Col: 0}
	editor.Perform(&operations.ReplaceCharacter{Character: 'X'}, 1)
	editor.Cursor = gopad.Point{Row: 0, Col: 1}
	editor.Perform(&operations.ReplaceCharacter{Character: 'X'}, 1)
	editor.Cursor = gopad.Point{Row: 0, Col: 2}
	editor.Perform(&operations.ReplaceCharacter{Character: 'X'}, 1)
	assert.Equal(t, "XXX GETTYSBURG ADDRESS:", editor.Buffer.TextAfter(0, 0))
	editor.PerformUndo()
	editor.PerformUndo()
	editor.PerformUndo()
	final(t, editor)
}

func TestDirtyFlag(t *testing.T) {
	editor := setup(t)
	assert.False(t, editor.IsDirty())

	editor.Cursor = gopad.Point{Row: 1, Col: 0}
	editor.Perform(&operations.Insert{Position: gopad.InsertAtCursor, Text: "hello"}, 1)
	assert.True(t, editor.IsDirty())

	// undoing back to the saved state reports clean
	editor.PerformUndo()
	assert.False(t, editor.IsDirty())
}

func TestWriteFileMarksClean(t *testing.T) {
	editor := setup(t)
	editor.Cursor = gopad.Point{Row: 1, Col: 0}
	editor.Perform(&operations.Insert{Position: gopad.InsertAtCursor, Text: "hello"}, 1)
	require.True(t, editor.IsDirty())

	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, editor.WriteFile(path))
	assert.False(t, editor.IsDirty())
	assert.Equal(t, path, editor.Buffer.GetFileName())
}

func TestSearch(t *testing.T) {
	editor := setup(t)

	found := editor.PerformSearch("nation", search.Options{})
	require.True(t, found)
	assert.Equal(t, gopad.Point{Row: 3, Col: 16}, editor.Cursor)

	// a repeated search moves past the current match
	found = editor.PerformSearch("nation", search.Options{})
	require.True(t, found)
	assert.Equal(t, 6, editor.Cursor.Row)

	// searches wrap around the end of the buffer
	editor.Cursor = gopad.Point{Row: 29, Col: 0}
	found = editor.PerformSearch("Four score", search.Options{})
	require.True(t, found)
	assert.Equal(t, 2, editor.Cursor.Row)
}

func TestSearchOptions(t *testing.T) {
	editor := setup(t)

	assert.True(t, editor.PerformSearch("gettysburg", search.Options{}))
	editor.Cursor = gopad.Point{}
	assert.False(t, editor.PerformSearch("gettysburg", search.Options{CaseSensitive: true}))

	// whole-word matching skips partial matches
	editor.Cursor = gopad.Point{}
	assert.True(t, editor.PerformSearch("dedicate", search.Options{}))
	editor.Cursor = gopad.Point{}
	require.True(t, editor.PerformSearch("dedicate", search.Options{WholeWord: true}))
	assert.Equal(t, 8, editor.Cursor.Row)

	editor.Cursor = gopad.Point{}
	assert.False(t, editor.PerformSearch("zebra", search.Options{}))
}

func TestReplaceAll(t *testing.T) {
	editor := setup(t)
	original := string(editor.Bytes())

	replace := &operations.ReplaceAll{
		Pattern:     "nation",
		Replacement: "NATION",
		Options:     search.Options{CaseSensitive: true},
	}
	editor.Perform(replace, 1)
	require.NoError(t, replace.Err)
	assert.Equal(t, 5, replace.Count)
	assert.True(t, editor.IsDirty())
	assert.NotEqual(t, original, string(editor.Bytes()))

	editor.PerformUndo()
	assert.Equal(t, original, string(editor.Bytes()))
	assert.False(t, editor.IsDirty())
}

func TestReplaceAllNoMatch(t *testing.T) {
	editor := setup(t)
	original := string(editor.Bytes())

	count, err := editor.ReplaceAllText("zebra", "lion", search.Options{})
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, original, string(editor.Bytes()))
	assert.False(t, editor.IsDirty())
}

func TestAutoSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("before\n"), 0644))

	editor := NewEditor()
	require.NoError(t, editor.ReadFile(path))

	// nothing to do while the buffer is clean
	_, saved, err := editor.AutoSave()
	require.NoError(t, err)
	assert.False(t, saved)

	editor.Cursor = gopad.Point{Row: 0, Col: 0}
	editor.Perform(&operations.Insert{Position: gopad.InsertAtCursor, Text: "hello "}, 1)
	require.True(t, editor.IsDirty())

	savedPath, saved, err := editor.AutoSave()
	require.NoError(t, err)
	assert.True(t, saved)
	assert.Equal(t, path, savedPath)
	assert.False(t, editor.IsDirty())

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello before\n", string(written))
}

func TestAutoSaveConcurrentEditing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("start\n"), 0644))

	editor := NewEditor()
	require.NoError(t, editor.ReadFile(path))

	// auto-save runs on its own goroutine; edits and renders read buffer
	// state under the editor lock
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			editor.AutoSave()
		}
	}()

	for i := 0; i < 100; i++ {
		editor.Lock()
		editor.Cursor = gopad.Point{}
		editor.Perform(&operations.Insert{Position: gopad.InsertAtCursor, Text: "x"}, 1)
		_ = editor.IsDirty()
		_ = editor.Bytes()
		editor.Unlock()
	}
	<-done
}

func TestAutoSaveFormatsGoSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.go")

	editor := NewEditor()
	editor.LoadBytes([]byte("package main\n\nfunc   main() {\n}\n"))
	editor.Buffer.SetFileName(path)
	require.True(t, editor.IsDirty())

	_, saved, err := editor.AutoSave()
	require.NoError(t, err)
	require.True(t, saved)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package main\n\nfunc main() {\n}\n", string(written))
	assert.Equal(t, string(written), string(editor.Bytes()))
	assert.False(t, editor.IsDirty())
}

func TestHalfPageScroll(t *testing.T) {
	editor := setup(t)
	editor.SetSize(gopad.Size{Rows: 10, Cols: 80})

	editor.HalfPageDown()
	assert.Equal(t, 14, editor.Cursor.Row)

	editor.HalfPageUp()
	assert.Equal(t, 0, editor.Cursor.Row)
}

func TestAutoSaveWithoutFileName(t *testing.T) {
	editor := NewEditor()
	editor.LoadBytes([]byte("scratch"))

	_, saved, err := editor.AutoSave()
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestAutoSaveFailureStaysDirty(t *testing.T) {
	editor := NewEditor()
	editor.LoadBytes([]byte("content"))
	editor.Buffer.SetFileName(filepath.Join(t.TempDir(), "missing", "notes.txt"))

	_, saved, err := editor.AutoSave()
	require.Error(t, err)
	assert.False(t, saved)
	assert.True(t, editor.IsDirty())
}
