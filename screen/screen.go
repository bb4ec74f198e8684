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
package screen

import (
	"fmt"
	"strconv"

	"github.com/nsf/termbox-go"

	"github.com/pixelheaven/gopad/stats"
	gopad "github.com/pixelheaven/gopad/types"
)

// The Screen draws the state of an Editor.
type Screen struct {
	size        gopad.Size // screen size
	lineNumbers bool
}

func NewScreen() (*Screen, error) {
	// Open the terminal.
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{}, nil
}

func (s *Screen) SetLineNumbers(enabled bool) {
	s.lineNumbers = enabled
}

func (s *Screen) Close() {
	termbox.Close()
}

// Interrupt wakes the event loop so a message posted from another
// goroutine is rendered without waiting for a key press.
func (s *Screen) Interrupt() {
	termbox.Interrupt()
}

func (s *Screen) Render(e gopad.Editor, c gopad.Commander) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	var screenSize gopad.Size
	screenSize.Cols, screenSize.Rows = termbox.Size()
	s.size = screenSize

	gutter := 0
	if s.lineNumbers {
		gutter = len(strconv.Itoa(e.GetBuffer().GetRowCount())) + 1
	}

	editSize := screenSize
	editSize.Rows -= 2
	editSize.Cols -= gutter
	e.SetSize(editSize)

	e.Scroll()
	s.RenderInfoBar(e, c)
	s.RenderMessageBar(e, c)
	if gutter > 0 {
		s.renderLineNumbers(e, gutter)
	}
	bufferOrigin := gopad.Point{Row: 0, Col: gutter}
	bufferSize := gopad.Size{Rows: s.size.Rows - 2, Cols: s.size.Cols - gutter}
	e.GetBuffer().Render(bufferOrigin, bufferSize, e.GetOffset(), s)
	termbox.SetCursor(e.GetCursor().Col-e.GetOffset().Cols+gutter, e.GetCursor().Row-e.GetOffset().Rows)
	termbox.Flush()
}

func (s *Screen) SetCell(j int, i int, c rune, color gopad.Color) {
	termbox.SetCell(j, i, c, termbox.Attribute(color), 0x01)
}

func (s *Screen) renderLineNumbers(e gopad.Editor, gutter int) {
	rowCount := e.GetBuffer().GetRowCount()
	for i := 0; i < s.size.Rows-2; i++ {
		row := i + e.GetOffset().Rows
		if row >= rowCount {
			break
		}
		number := fmt.Sprintf("%*d ", gutter-1, row+1)
		for x, ch := range number {
			termbox.SetCell(x, i, ch, termbox.ColorBlue, 0x01)
		}
	}
}

func (s *Screen) RenderInfoBar(e gopad.Editor, c gopad.Commander) {
	name := e.GetBuffer().GetFileName()
	if name == "" {
		name = "[no name]"
	}
	if e.IsDirty() {
		name += " [+]"
	}
	cursor := e.GetCursor()
	finalText := fmt.Sprintf(" %d words  Ln %d/%d Col %d ",
		stats.Count(string(e.Bytes())).Words,
		cursor.Row+1, e.GetBuffer().GetRowCount(), cursor.Col+1)
	text := " gopad - " + name + " "
	for len(text) < s.size.Cols-len(finalText)-1 {
		text = text + " "
	}
	text += finalText
	for x, ch := range text {
		termbox.SetCell(x, s.size.Rows-2,
			rune(ch),
			termbox.ColorBlack, termbox.ColorWhite)
	}
}

func (s *Screen) RenderMessageBar(e gopad.Editor, c gopad.Commander) {
	var line string
	switch c.GetMode() {
	case gopad.ModeCommand:
		line += ":" + c.GetCommand()
	case gopad.ModeSearch:
		line += "/" + c.GetSearchText()
	default:
		line += c.GetMessage()
	}
	if len(line) > s.size.Cols {
		line = line[0:s.size.Cols]
	}
	for x, ch := range line {
		termbox.SetCell(x, s.size.Rows-1, rune(ch), termbox.ColorWhite, termbox.ColorBlack)
	}
}

func (s *Screen) GetNextEvent() *gopad.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
	}
	return &gopad.Event{
		Type: eventType(event.Type),
		Key:  key(event.Key),
		Ch:   event.Ch,
	}
}

func eventType(t termbox.EventType) int {
	switch t {
	case termbox.EventKey:
		return gopad.EventKey
	case termbox.EventResize:
		return gopad.EventResize
	case termbox.EventInterrupt:
		return gopad.EventInterrupt
	default:
		return gopad.EventUnsupported
	}
}

func key(k termbox.Key) gopad.Key {
	switch k {
	case termbox.KeyArrowDown:
		return gopad.KeyArrowDown
	case termbox.KeyArrowLeft:
		return gopad.KeyArrowLeft
	case termbox.KeyArrowRight:
		return gopad.KeyArrowRight
	case termbox.KeyArrowUp:
		return gopad.KeyArrowUp
	case termbox.KeyBackspace2:
		return gopad.KeyBackspace2
	case termbox.KeyCtrlA:
		return gopad.KeyCtrlA
	case termbox.KeyCtrlB:
		return gopad.KeyCtrlB
	case termbox.KeyCtrlD:
		return gopad.KeyCtrlD
	case termbox.KeyCtrlE:
		return gopad.KeyCtrlE
	case termbox.KeyCtrlF:
		return gopad.KeyCtrlF
	case termbox.KeyCtrlU:
		return gopad.KeyCtrlU
	case termbox.KeyEnd:
		return gopad.KeyEnd
	case termbox.KeyEnter:
		return gopad.KeyEnter
	case termbox.KeyEsc:
		return gopad.KeyEsc
	case termbox.KeyHome:
		return gopad.KeyHome
	case termbox.KeyPgdn:
		return gopad.KeyPgdn
	case termbox.KeyPgup:
		return gopad.KeyPgup
	case termbox.KeySpace:
		return gopad.KeySpace
	case termbox.KeyTab:
		return gopad.KeyTab
	default:
		return gopad.KeyUnsupported
	}
}
