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
	"sync"
	"unicode"

	"github.com/pixelheaven/gopad/search"
	"github.com/pixelheaven/gopad/storage"
	gopad "github.com/pixelheaven/gopad/types"
)

// The Editor manages the editing of text in a Buffer.
//
// All mutation happens on the event loop; the mutex only serializes that
// loop against auto-save snapshots taken from a background goroutine.
type Editor struct {
	mu         sync.Mutex
	Cursor     gopad.Point           // cursor position
	Offset     gopad.Size            // display offset
	Buffer     *Buffer               // the document being edited
	size       gopad.Size            // size of editing area
	pasteText  string                // used to cut/copy and paste
	pasteMode  int                   // how to paste the string on the pasteboard
	previous   gopad.Operation       // last operation performed, available to repeat
	undo       []gopad.Operation     // stack of operations to undo
	insert     gopad.InsertOperation // when in insert mode, the current insert operation
	backupDir  string                // where saves put backups ("" disables them)
	maxBackups int
}

func NewEditor() *Editor {
	e := &Editor{}
	e.Buffer = NewBuffer()
	return e
}

// Lock serializes buffer access between the event loop and auto-save.
func (e *Editor) Lock() {
	e.mu.Lock()
}

func (e *Editor) Unlock() {
	e.mu.Unlock()
}

// SetBackupPolicy enables backups of overwritten files on save.
func (e *Editor) SetBackupPolicy(dir string, enabled bool, keep int) {
	if enabled {
		e.backupDir = dir
		e.maxBackups = keep
	} else {
		e.backupDir = ""
	}
}

func (e *Editor) ReadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	e.Buffer.LoadBytes(b)
	e.Buffer.SetFileName(path)
	// tabs were expanded on load; mark the normalized content as saved
	e.Buffer.MarkSaved(e.Buffer.Bytes())
	e.Cursor = gopad.Point{}
	e.Offset = gopad.Size{}
	return nil
}

func (e *Editor) Bytes() []byte {
	return e.Buffer.Bytes()
}

func (e *Editor) LoadBytes(bytes []byte) {
	e.Buffer.LoadBytes(bytes)
	e.KeepCursorInRow()
}

func (e *Editor) IsDirty() bool {
	return e.Buffer.IsDirty()
}

func (e *Editor) WriteFile(path string) error {
	b := e.Bytes()
	if isGoFile(path) {
		if out, err := e.Gofmt(e.Buffer.GetFileName(), b); err == nil {
			b = out
			e.Buffer.LoadBytes(b)
			e.KeepCursorInRow()
		}
	}
	if err := storage.WriteDocument(path, b, e.backupDir, e.maxBackups); err != nil {
		return err
	}
	if path != e.Buffer.GetFileName() {
		e.Buffer.SetFileName(path)
	}
	e.Buffer.MarkSaved(b)
	return nil
}

// AutoSave persists the document if it is dirty and has a path. Go files
// get the same gofmt treatment as an explicit write. The snapshot is taken
// under the lock; the disk write happens outside it so a slow
// disk does not block editing. It reports the path written and whether a
// write happened; on error the document stays dirty and the caller is
// expected to retry on its next tick.
func (e *Editor) AutoSave() (string, bool, error) {
	e.Lock()
	path := e.Buffer.GetFileName()
	if path == "" || !e.Buffer.IsDirty() {
		e.Unlock()
		return "", false, nil
	}
	data := e.Bytes()
	if isGoFile(path) {
		if out, err := e.Gofmt(path, data); err == nil {
			data = out
			e.Buffer.LoadBytes(data)
			e.KeepCursorInRow()
		}
	}
	e.Unlock()

	if err := storage.WriteDocument(path, data, e.backupDir, e.maxBackups); err != nil {
		return path, false, err
	}

	e.Lock()
	e.Buffer.MarkSaved(data)
	e.Unlock()
	return path, true, nil
}

func (e *Editor) Perform(op gopad.Operation, multiplier int) {
	// perform the operation
	inverse := op.Perform(e, multiplier)
	// save the operation for repeats
	e.previous = op
	// save the inverse of the operation for undo
	if inverse != nil {
		e.undo = append(e.undo, inverse)
	}
}

func (e *Editor) Repeat() {
	if e.previous != nil {
		inverse := e.previous.Perform(e, 0)
		if inverse != nil {
			e.undo = append(e.undo, inverse)
		}
	}
}

func (e *Editor) PerformUndo() {
	if len(e.undo) > 0 {
		last := len(e.undo) - 1
		undo := e.undo[last]
		e.undo = e.undo[0:last]
		undo.Perform(e, 0)
	}
}

// PerformSearch moves the cursor to the next match of text, wrapping at
// the end of the buffer. It reports whether a match was found.
func (e *Editor) PerformSearch(text string, options search.Options) bool {
	if e.Buffer.GetRowCount() == 0 || text == "" {
		return false
	}
	re, err := search.Compile(text, options)
	if err != nil {
		return false
	}
	row := e.Cursor.Row
	col := e.Cursor.Col + 1
	for i := 0; i <= e.Buffer.GetRowCount(); i++ {
		s := e.Buffer.TextAfter(row, col)
		if loc := re.FindStringIndex(s); loc != nil {
			e.Cursor.Row = row
			e.Cursor.Col = col + len([]rune(s[:loc[0]]))
			return true
		}
		col = 0
		row = row + 1
		if row == e.Buffer.GetRowCount() {
			row = 0
		}
	}
	return false
}

// ReplaceAllText replaces every match of pattern in the buffer and returns
// the number of replacements. Zero matches leaves the buffer untouched.
func (e *Editor) ReplaceAllText(pattern string, replacement string, options search.Options) (int, error) {
	text := string(e.Bytes())
	out, count, err := search.ReplaceAll(text, pattern, replacement, options)
	if err != nil || count == 0 {
		return 0, err
	}
	e.Buffer.LoadBytes([]byte(out))
	e.KeepCursorInRow()
	return count, nil
}

func (e *Editor) Scroll() {
	if e.Cursor.Row < e.Offset.Rows {
		e.Offset.Rows = e.Cursor.Row
	}
	if e.Cursor.Row-e.Offset.Rows >= e.size.Rows {
		e.Offset.Rows = e.Cursor.Row - e.size.Rows + 1
	}
	if e.Cursor.Col < e.Offset.Cols {
		e.Offset.Cols = e.Cursor.Col
	}
	if e.Cursor.Col-e.Offset.Cols >= e.size.Cols {
		e.Offset.Cols = e.Cursor.Col - e.size.Cols + 1
	}
}

func (e *Editor) MoveCursor(direction int) {
	switch direction {
	case gopad.MoveLeft:
		if e.Cursor.Col > 0 {
			e.Cursor.Col--
		}
	case gopad.MoveRight:
		if e.Cursor.Row < e.Buffer.GetRowCount() {
			rowLength := e.Buffer.GetRowLength(e.Cursor.Row)
			if e.Cursor.Col < rowLength-1 {
				e.Cursor.Col++
			}
		}
	case gopad.MoveUp:
		if e.Cursor.Row > 0 {
			e.Cursor.Row--
		}
	case gopad.MoveDown:
		if e.Cursor.Row < e.Buffer.GetRowCount()-1 {
			e.Cursor.Row++
		}
	}
	// don't go past the end of the current line
	if e.Cursor.Row < e.Buffer.GetRowCount() {
		rowLength := e.Buffer.GetRowLength(e.Cursor.Row)
		if e.Cursor.Col > rowLength-1 {
			e.Cursor.Col = rowLength - 1
			if e.Cursor.Col < 0 {
				e.Cursor.Col = 0
			}
		}
	}
}

// These editor primitives make changes in insert mode and associate them with the current operation.

func (e *Editor) InsertChar(c rune) {
	if e.insert != nil {
		e.insert.AddCharacter(c)
	}
	if c == '\n' {
		e.InsertRow()
		e.Cursor.Row++
		e.Cursor.Col = 0
		return
	}
	// if the cursor is past the number of rows, add a row
	for e.Cursor.Row >= e.Buffer.GetRowCount() {
		e.AppendBlankRow()
	}
	e.Buffer.InsertCharacter(e.Cursor.Row, e.Cursor.Col, c)
	e.Cursor.Col += 1
}

func (e *Editor) InsertRow() {
	e.Buffer.Highlighted = false
	if e.Cursor.Row >= e.Buffer.GetRowCount() {
		e.AppendBlankRow()
	} else {
		newRow := e.Buffer.rows[e.Cursor.Row].Split(e.Cursor.Col)
		i := e.Cursor.Row + 1
		// add a dummy row at the end of the Rows slice
		e.AppendBlankRow()
		// move rows to make room for the one we are adding
		copy(e.Buffer.rows[i+1:], e.Buffer.rows[i:])
		// add the new row
		e.Buffer.rows[i] = newRow
	}
}

func (e *Editor) BackspaceChar() rune {
	if e.Buffer.GetRowCount() == 0 {
		return rune(0)
	}
	if e.insert == nil || e.insert.Length() == 0 {
		return rune(0)
	}
	e.insert.DeleteCharacter()
	e.Buffer.Highlighted = false
	if e.Cursor.Col > 0 {
		c := e.Buffer.rows[e.Cursor.Row].DeleteChar(e.Cursor.Col - 1)
		e.Cursor.Col--
		return c
	} else if e.Cursor.Row > 0 {
		// remove the current row and join it with the previous one
		newCol := len(e.Buffer.rows[e.Cursor.Row-1].Text)
		e.Buffer.rows[e.Cursor.Row-1].Join(e.Buffer.rows[e.Cursor.Row])
		e.Buffer.rows = append(e.Buffer.rows[0:e.Cursor.Row], e.Buffer.rows[e.Cursor.Row+1:]...)
		e.Cursor.Row--
		e.Cursor.Col = newCol
		return rune('\n')
	}
	return rune(0)
}

func (e *Editor) YankRow(multiplier int) {
	if e.Buffer.GetRowCount() == 0 {
		return
	}
	pasteText := ""
	for i := 0; i < multiplier; i++ {
		position := e.Cursor.Row + i
		if position < e.Buffer.GetRowCount() {
			pasteText += string(e.Buffer.rows[position].Text) + "\n"
		}
	}
	e.SetPasteBoard(pasteText, gopad.PasteNewLine)
}

func (e *Editor) KeepCursorInRow() {
	if e.Buffer.GetRowCount() == 0 {
		e.Cursor.Col = 0
	} else {
		if e.Cursor.Row >= e.Buffer.GetRowCount() {
			e.Cursor.Row = e.Buffer.GetRowCount() - 1
		}
		if e.Cursor.Row < 0 {
			e.Cursor.Row = 0
		}
		lastIndexInRow := e.Buffer.rows[e.Cursor.Row].Length() - 1
		if e.Cursor.Col > lastIndexInRow {
			e.Cursor.Col = lastIndexInRow
		}
		if e.Cursor.Col < 0 {
			e.Cursor.Col = 0
		}
	}
}

func (e *Editor) AppendBlankRow() {
	e.Buffer.rows = append(e.Buffer.rows, NewRow(""))
}

func (e *Editor) InsertLineAboveCursor() {
	e.Buffer.Highlighted = false
	e.AppendBlankRow()
	copy(e.Buffer.rows[e.Cursor.Row+1:], e.Buffer.rows[e.Cursor.Row:])
	e.Buffer.rows[e.Cursor.Row] = NewRow("")
	e.Cursor.Col = 0
}

func (e *Editor) InsertLineBelowCursor() {
	e.Buffer.Highlighted = false
	e.AppendBlankRow()
	copy(e.Buffer.rows[e.Cursor.Row+2:], e.Buffer.rows[e.Cursor.Row+1:])
	e.Buffer.rows[e.Cursor.Row+1] = NewRow("")
	e.Cursor.Row += 1
	e.Cursor.Col = 0
}

func (e *Editor) MoveCursorToStartOfLine() {
	e.Cursor.Col = 0
}

func (e *Editor) MoveCursorToStartOfLineBelowCursor() {
	e.Cursor.Col = 0
	e.Cursor.Row += 1
}

// editable

func (e *Editor) GetCursor() gopad.Point {
	return e.Cursor
}

func (e *Editor) SetCursor(cursor gopad.Point) {
	e.Cursor = cursor
}

func (e *Editor) ReplaceCharacterAtCursor(cursor gopad.Point, c rune) rune {
	e.Buffer.Highlighted = false
	if cursor.Row < e.Buffer.GetRowCount() {
		return e.Buffer.rows[cursor.Row].ReplaceChar(cursor.Col, c)
	}
	return rune(0)
}

func (e *Editor) DeleteRowsAtCursor(multiplier int) string {
	deletedText := ""
	for i := 0; i < multiplier; i++ {
		row := e.Cursor.Row
		if row < e.Buffer.GetRowCount() {
			if i > 0 {
				deletedText += "\n"
			}
			deletedText += string(e.Buffer.rows[row].Text)
			e.Buffer.DeleteRow(row)
		} else {
			break
		}
	}
	e.Cursor.Row = clipToRange(e.Cursor.Row, 0, e.Buffer.GetRowCount()-1)
	e.SetPasteBoard(deletedText+"\n", gopad.PasteNewLine)
	return deletedText
}

func (e *Editor) SetPasteBoard(text string, mode int) {
	e.pasteText = text
	e.pasteMode = mode
}

func (e *Editor) DeleteWordsAtCursor(multiplier int) string {
	deletedText := ""
	for i := 0; i < multiplier; i++ {
		if e.Buffer.GetRowCount() == 0 {
			break
		}
		// if the cursor is past the end of the row, delete the row
		row := e.Cursor.Row
		col := e.Cursor.Col
		if col >= e.Buffer.rows[row].Length() {
			e.Buffer.DeleteRow(row)
			deletedText += "\n"
			e.KeepCursorInRow()
			continue
		}
		c := e.Buffer.rows[e.Cursor.Row].DeleteChar(e.Cursor.Col)
		deletedText += string(c)
		for {
			if e.Cursor.Col > e.Buffer.rows[e.Cursor.Row].Length()-1 {
				break
			}
			if c == ' ' {
				break
			}
			c = e.Buffer.rows[e.Cursor.Row].DeleteChar(e.Cursor.Col)
			deletedText += string(c)
		}
		if e.Cursor.Col > e.Buffer.rows[e.Cursor.Row].Length()-1 {
			e.Cursor.Col--
		}
		if e.Cursor.Col < 0 {
			e.Cursor.Col = 0
		}
		e.Buffer.Highlighted = false
	}
	return deletedText
}

func (e *Editor) DeleteCharactersAtCursor(multiplier int, undo bool, finallyDeleteRow bool) string {
	deletedText := e.Buffer.DeleteCharacters(e.Cursor.Row, e.Cursor.Col, multiplier, undo)
	if e.Buffer.GetRowCount() > 0 {
		if e.Cursor.Col > e.Buffer.rows[e.Cursor.Row].Length()-1 {
			e.Cursor.Col--
		}
		if e.Cursor.Col < 0 {
			e.Cursor.Col = 0
		}
	}
	if finallyDeleteRow && e.Buffer.GetRowCount() > 0 {
		e.Buffer.DeleteRow(e.Cursor.Row)
	}
	return deletedText
}

// ChangeWordAtCursor deletes words at the cursor and either inserts the
// replacement text or opens an insert. It returns the deleted text and the
// mode the editor should be in afterwards.
func (e *Editor) ChangeWordAtCursor(multiplier int, text string) (string, int) {
	deleted := e.DeleteWordsAtCursor(multiplier)
	if text != "" {
		r := e.Cursor.Row
		c := e.Cursor.Col
		for _, ch := range text {
			e.InsertChar(ch)
		}
		e.Cursor.Row = r
		e.Cursor.Col = c
		return deleted, gopad.ModeEdit
	}
	return deleted, gopad.ModeInsert
}

// JoinRow joins the current row with the one below it, returning the
// cursor positions where the newlines were removed.
func (e *Editor) JoinRow(multiplier int) []gopad.Point {
	cursors := make([]gopad.Point, 0, multiplier)
	for i := 0; i < multiplier; i++ {
		row := e.Cursor.Row
		if row >= e.Buffer.GetRowCount()-1 {
			break
		}
		col := e.Buffer.rows[row].Length()
		e.Buffer.rows[row].Join(e.Buffer.rows[row+1])
		e.Buffer.DeleteRow(row + 1)
		cursors = append(cursors, gopad.Point{Row: row, Col: col})
		e.Cursor.Col = col
	}
	return cursors
}

func (e *Editor) InsertText(text string, position int) (gopad.Point, int) {
	if e.Buffer.GetRowCount() == 0 {
		e.AppendBlankRow()
	}
	switch position {
	case gopad.InsertAtCursor:
		break
	case gopad.InsertAfterCursor:
		e.Cursor.Col++
		e.Cursor.Col = clipToRange(e.Cursor.Col, 0, e.Buffer.rows[e.Cursor.Row].Length())
	case gopad.InsertAtStartOfLine:
		e.Cursor.Col = 0
	case gopad.InsertAfterEndOfLine:
		e.Cursor.Col = e.Buffer.rows[e.Cursor.Row].Length()
	case gopad.InsertAtNewLineBelowCursor:
		e.InsertLineBelowCursor()
	case gopad.InsertAtNewLineAboveCursor:
		e.InsertLineAboveCursor()
	}
	var mode int
	if text != "" {
		r := e.Cursor.Row
		c := e.Cursor.Col
		for _, c := range text {
			e.InsertChar(c)
		}
		e.Cursor.Row = r
		e.Cursor.Col = c
		mode = gopad.ModeEdit
	} else {
		mode = gopad.ModeInsert
	}
	return e.Cursor, mode
}

func (e *Editor) SetInsertOperation(insert gopad.InsertOperation) {
	e.insert = insert
}

func (e *Editor) GetPasteMode() int {
	return e.pasteMode
}

func (e *Editor) GetPasteText() string {
	return e.pasteText
}

func (e *Editor) ReverseCaseCharactersAtCursor(multiplier int) {
	if e.Buffer.GetRowCount() == 0 {
		return
	}
	e.Buffer.Highlighted = false
	row := e.Buffer.rows[e.Cursor.Row]
	for i := 0; i < multiplier; i++ {
		c := row.Text[e.Cursor.Col]
		if unicode.IsUpper(c) {
			row.ReplaceChar(e.Cursor.Col, unicode.ToLower(c))
		}
		if unicode.IsLower(c) {
			row.ReplaceChar(e.Cursor.Col, unicode.ToUpper(c))
		}
		if e.Cursor.Col < row.Length()-1 {
			e.Cursor.Col++
		}
	}
}

func (e *Editor) PageUp() {
	// move to the top of the screen
	e.Cursor.Row = e.Offset.Rows
	// move up by a page
	for i := 0; i < e.size.Rows; i++ {
		e.MoveCursor(gopad.MoveUp)
	}
}

func (e *Editor) PageDown() {
	// move to the bottom of the screen
	e.Cursor.Row = e.Offset.Rows + e.size.Rows - 1
	// move down by a page
	for i := 0; i < e.size.Rows; i++ {
		e.MoveCursor(gopad.MoveDown)
	}
}

func (e *Editor) HalfPageUp() {
	e.Cursor.Row = e.Offset.Rows
	for i := 0; i < e.size.Rows/2; i++ {
		e.MoveCursor(gopad.MoveUp)
	}
}

func (e *Editor) HalfPageDown() {
	e.Cursor.Row = e.Offset.Rows + e.size.Rows - 1
	for i := 0; i < e.size.Rows/2; i++ {
		e.MoveCursor(gopad.MoveDown)
	}
}

func (e *Editor) SetSize(s gopad.Size) {
	e.size = s
}

func (e *Editor) CloseInsert() {
	if e.insert != nil {
		e.insert.Close()
		e.insert = nil
	}
}

func (e *Editor) MoveToBeginningOfLine() {
	e.Cursor.Col = 0
}

func (e *Editor) MoveToEndOfLine() {
	e.Cursor.Col = 0
	if e.Cursor.Row < e.Buffer.GetRowCount() {
		e.Cursor.Col = e.Buffer.GetRowLength(e.Cursor.Row) - 1
		if e.Cursor.Col < 0 {
			e.Cursor.Col = 0
		}
	}
}

func (e *Editor) GetBuffer() gopad.Buffer {
	return e.Buffer
}

func (e *Editor) GetOffset() gopad.Size {
	return e.Offset
}

func clipToRange(i, min, max int) int {
	if i > max {
		i = max
	}
	if i < min {
		i = min
	}
	return i
}
