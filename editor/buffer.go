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
	"strings"
	"time"

	"github.com/zeebo/xxh3"

	gopad "github.com/pixelheaven/gopad/types"
)

// A Buffer holds the document being edited: its rows, its file path, and
// the checksum of the content as it was last loaded or saved. The dirty
// flag is derived by comparing that checksum against the current content,
// so undoing back to the saved state reports clean.
type Buffer struct {
	rows         []*Row
	fileName     string
	savedSum     uint64
	savedAt      time.Time
	Highlighted  bool
	Highlighting bool
	highlighter  *Highlighter
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.rows = make([]*Row, 0)
	b.savedSum = xxh3.Hash(nil)
	return b
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
	b.highlighter = NewHighlighter(name)
	b.Highlighted = false
}

func (b *Buffer) LoadBytes(bytes []byte) {
	lines := strings.Split(string(bytes), "\n")
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
	b.Highlighted = false
}

func (b *Buffer) Bytes() []byte {
	var sb strings.Builder
	for i, row := range b.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row.Text))
	}
	return []byte(sb.String())
}

// MarkSaved records data as the persisted content; until the buffer
// diverges from it, IsDirty reports false.
func (b *Buffer) MarkSaved(data []byte) {
	b.savedSum = xxh3.Hash(data)
	b.savedAt = time.Now()
}

func (b *Buffer) IsDirty() bool {
	return xxh3.Hash(b.Bytes()) != b.savedSum
}

func (b *Buffer) SavedAt() time.Time {
	return b.savedAt
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(i int) int {
	if i < len(b.rows) {
		return b.rows[i].Length()
	}
	return 0
}

func (b *Buffer) TextAfter(row, col int) string {
	if row < len(b.rows) {
		return b.rows[row].TextAfter(col)
	}
	return ""
}

func (b *Buffer) InsertCharacter(row, col int, c rune) {
	b.Highlighted = false
	if row < len(b.rows) {
		b.rows[row].InsertChar(col, c)
	}
}

func (b *Buffer) DeleteRow(row int) {
	b.Highlighted = false
	if row < len(b.rows) {
		b.rows = append(b.rows[0:row], b.rows[row+1:]...)
	}
}

func (b *Buffer) DeleteCharacters(row int, col int, count int, joinLines bool) string {
	b.Highlighted = false
	deletedText := ""
	if b.GetRowCount() == 0 {
		return deletedText
	}
	for i := 0; i < count; i++ {
		if col < b.rows[row].Length() {
			c := b.rows[row].DeleteChar(col)
			deletedText += string(c)
		} else if joinLines && row < b.GetRowCount()-1 {
			// join the next row to this one
			nextRow := b.rows[row+1]
			b.rows[row].Join(nextRow)
			b.DeleteRow(row + 1)
			deletedText += "\n"
		}
	}
	return deletedText
}

// draw text in an area defined by origin and size with a specified offset into the buffer
func (b *Buffer) Render(origin gopad.Point, size gopad.Size, offset gopad.Size, display gopad.Display) {
	if b.Highlighting && !b.Highlighted && b.highlighter != nil {
		b.highlighter.Highlight(b)
		b.Highlighted = true
	}

	for i := origin.Row; i < origin.Row+size.Rows; i++ {
		var line string
		var colors []gopad.Color
		if (i + offset.Rows) < len(b.rows) {
			line = b.rows[i+offset.Rows].DisplayText()
			colors = b.rows[i+offset.Rows].Colors
			if offset.Cols < len(line) {
				line = line[offset.Cols:]
				colors = colors[offset.Cols:]
			} else {
				line = ""
			}
		} else {
			line = "~"
			colors = []gopad.Color{gopad.ColorWhite}
		}
		// truncate the line to fit the screen
		if len(line) > size.Cols {
			line = line[0:size.Cols]
			colors = colors[0:size.Cols]
		}
		for j, c := range line {
			color := gopad.ColorWhite
			if j < len(colors) {
				color = colors[j]
			}
			display.SetCell(j+origin.Col, i, c, color)
		}
	}
}
