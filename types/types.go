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
package types

import (
	"github.com/pixelheaven/gopad/search"
)

// Editor modes
const (
	ModeEdit    = 0
	ModeInsert  = 1
	ModeCommand = 2
	ModeSearch  = 3
	ModeQuit    = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Insert positions
const (
	InsertAtCursor             = 0
	InsertAfterCursor          = 1
	InsertAtStartOfLine        = 2
	InsertAfterEndOfLine       = 3
	InsertAtNewLineBelowCursor = 4
	InsertAtNewLineAboveCursor = 5
)

// Paste modes
const (
	PasteAtCursor = 0
	PasteNewLine  = 1
)

// Event types
const (
	EventKey = iota
	EventResize
	EventInterrupt
	EventUnsupported
)

// A Key identifies a non-character key press.
type Key int

const (
	KeyUnsupported Key = iota
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyBackspace2
	KeyCtrlA
	KeyCtrlB
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlU
	KeyEnd
	KeyEnter
	KeyEsc
	KeyHome
	KeyPgdn
	KeyPgup
	KeySpace
	KeyTab
)

// An Event is a user input delivered by the screen.
type Event struct {
	Type int
	Key  Key
	Ch   rune
}

// A Color indexes the terminal's 256-color palette.
type Color uint16

const ColorWhite Color = 0xff

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// A Display draws colored cells; it is implemented by the screen.
type Display interface {
	SetCell(x int, y int, c rune, color Color)
}

type Editor interface {
	GetCursor() Point
	SetCursor(cursor Point)
	SetSize(size Size)
	GetOffset() Size
	GetBuffer() Buffer

	MoveCursor(direction int)
	MoveToBeginningOfLine()
	MoveToEndOfLine()
	MoveCursorToStartOfLine()
	MoveCursorToStartOfLineBelowCursor()
	PageUp()
	PageDown()
	HalfPageUp()
	HalfPageDown()
	Scroll()
	KeepCursorInRow()

	InsertChar(c rune)
	InsertText(text string, position int) (Point, int)
	BackspaceChar() rune
	CloseInsert()
	SetInsertOperation(insert InsertOperation)

	ReplaceCharacterAtCursor(cursor Point, c rune) rune
	DeleteRowsAtCursor(multiplier int) string
	DeleteWordsAtCursor(multiplier int) string
	DeleteCharactersAtCursor(multiplier int, undo bool, finallyDeleteRow bool) string
	ChangeWordAtCursor(multiplier int, text string) (string, int)
	JoinRow(multiplier int) []Point
	ReverseCaseCharactersAtCursor(multiplier int)

	SetPasteBoard(text string, mode int)
	GetPasteMode() int
	GetPasteText() string
	YankRow(multiplier int)

	Perform(op Operation, multiplier int)
	PerformUndo()
	Repeat()
	PerformSearch(text string, options search.Options) bool
	ReplaceAllText(pattern string, replacement string, options search.Options) (int, error)

	ReadFile(path string) error
	WriteFile(path string) error
	LoadBytes(bytes []byte)
	Bytes() []byte
	IsDirty() bool

	Gofmt(filename string, inputBytes []byte) (outputBytes []byte, err error)
}

type Buffer interface {
	Render(origin Point, size Size, offset Size, display Display)
	GetRowCount() int
	GetFileName() string
	LoadBytes(bytes []byte)
}

type Operation interface {
	Perform(e Editor, multiplier int) Operation // performs the operation and returns its inverse
}

type InsertOperation interface {
	Operation
	AddCharacter(c rune)
	DeleteCharacter()
	Close()
	Length() int
}

type Commander interface {
	SetMode(int)
	GetMode() int
	GetSearchText() string
	GetCommand() string
	GetMessage() string
}
