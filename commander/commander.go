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
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/pixelheaven/gopad/operations"
	"github.com/pixelheaven/gopad/recent"
	"github.com/pixelheaven/gopad/search"
	"github.com/pixelheaven/gopad/stats"
	gopad "github.com/pixelheaven/gopad/types"
)

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor        gopad.Editor
	mode          int    // editor mode
	debug         bool   // debug mode displays information about events (key codes, etc)
	editKeys      string // edit key sequences in progress
	command       string // command as it is being typed on the command line
	searchText    string // text for searches as it is being typed
	message       string // status message
	messageMu     sync.Mutex
	multiplier    string // multiplier string as it is being entered
	searchOptions search.Options
	registry      *recent.Registry
}

func NewCommander(e gopad.Editor) *Commander {
	return &Commander{editor: e, mode: gopad.ModeEdit}
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) IsRunning() bool {
	return c.mode != gopad.ModeQuit
}

// SetSearchOptions sets the options applied to searches and substitutions.
func (c *Commander) SetSearchOptions(options search.Options) {
	c.searchOptions = options
}

// SetRecentRegistry sets the registry that records opened and saved files.
func (c *Commander) SetRecentRegistry(r *recent.Registry) {
	c.registry = r
}

func (c *Commander) ProcessEvent(event *gopad.Event) error {
	if c.debug {
		c.SetMessage(fmt.Sprintf("event=%+v", event))
	}
	switch event.Type {
	case gopad.EventKey:
		return c.ProcessKey(event)
	case gopad.EventResize:
		return c.ProcessResize(event)
	case gopad.EventInterrupt:
		// a background save posted a message; rendering picks it up
		return nil
	default:
		return nil
	}
}

func (c *Commander) ProcessResize(event *gopad.Event) error {
	return nil
}

func (c *Commander) ProcessKeyEditMode(event *gopad.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch

	// multikey commands have highest precedence
	if len(c.editKeys) > 0 {
		switch c.editKeys {
		case "c":
			switch ch {
			case 'w':
				e.Perform(&operations.ChangeWord{Commander: c}, c.Multiplier())
			}
		case "d":
			switch ch {
			case 'd':
				e.Perform(&operations.DeleteRow{}, c.Multiplier())
			case 'w':
				e.Perform(&operations.DeleteWord{}, c.Multiplier())
			}
		case "r":
			if key != 0 {
				if key == gopad.KeySpace {
					e.Perform(&operations.ReplaceCharacter{Character: rune(' ')}, c.Multiplier())
				}
			} else if ch != 0 {
				e.Perform(&operations.ReplaceCharacter{Character: rune(event.Ch)}, c.Multiplier())
			}
		case "y":
			switch ch {
			case 'y': // YankRow
				e.YankRow(c.Multiplier())
			default:
				break
			}
		}
		c.editKeys = ""
		return nil
	}
	if key != 0 {
		switch key {
		case gopad.KeyEsc:
			break
		case gopad.KeyCtrlB, gopad.KeyPgup:
			c.repeat(e.PageUp)
		case gopad.KeyCtrlF, gopad.KeyPgdn:
			c.repeat(e.PageDown)
		case gopad.KeyCtrlD:
			c.repeat(e.HalfPageDown)
		case gopad.KeyCtrlU:
			c.repeat(e.HalfPageUp)
		case gopad.KeyCtrlA, gopad.KeyHome:
			e.MoveToBeginningOfLine()
		case gopad.KeyCtrlE, gopad.KeyEnd:
			e.MoveToEndOfLine()
		case gopad.KeyArrowUp:
			c.move(gopad.MoveUp)
		case gopad.KeyArrowDown:
			c.move(gopad.MoveDown)
		case gopad.KeyArrowLeft:
			c.move(gopad.MoveLeft)
		case gopad.KeyArrowRight:
			c.move(gopad.MoveRight)
		}
	}
	if ch != 0 {
		switch ch {
		//
		// command multipliers are saved when operations are created
		//
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			c.multiplier += string(ch)
		//
		// commands go to the message bar
		//
		case ':':
			c.mode = gopad.ModeCommand
			c.command = ""
		//
		// search queries go to the message bar
		//
		case '/':
			c.mode = gopad.ModeSearch
			c.searchText = ""
		case 'n': // repeat the last search
			c.search()
		//
		// cursor movement isn't logged
		//
		case 'h':
			c.move(gopad.MoveLeft)
		case 'j':
			c.move(gopad.MoveDown)
		case 'k':
			c.move(gopad.MoveUp)
		case 'l':
			c.move(gopad.MoveRight)
		//
		// "performed" operations are saved for undo and repetition
		//
		case 'i':
			e.Perform(&operations.Insert{Position: gopad.InsertAtCursor, Commander: c}, c.Multiplier())
		case 'a':
			e.Perform(&operations.Insert{Position: gopad.InsertAfterCursor, Commander: c}, c.Multiplier())
		case 'I':
			e.Perform(&operations.Insert{Position: gopad.InsertAtStartOfLine, Commander: c}, c.Multiplier())
		case 'A':
			e.Perform(&operations.Insert{Position: gopad.InsertAfterEndOfLine, Commander: c}, c.Multiplier())
		case 'o':
			e.Perform(&operations.Insert{Position: gopad.InsertAtNewLineBelowCursor, Commander: c}, c.Multiplier())
		case 'O':
			e.Perform(&operations.Insert{Position: gopad.InsertAtNewLineAboveCursor, Commander: c}, c.Multiplier())
		case 'x':
			e.Perform(&operations.DeleteCharacter{}, c.Multiplier())
		case 'J':
			e.Perform(&operations.JoinLine{}, c.Multiplier())
		case 'p': // PasteText
			e.Perform(&operations.Paste{}, c.Multiplier())
		case '~': // reverse case
			e.Perform(&operations.ReverseCaseCharacter{}, c.Multiplier())
		//
		// a few keys open multi-key commands
		//
		case 'c':
			c.editKeys = "c"
		case 'd':
			c.editKeys = "d"
		case 'y':
			c.editKeys = "y"
		case 'r':
			c.editKeys = "r"
		//
		// undo
		//
		case 'u':
			e.PerformUndo()
		//
		// repeat
		//
		case '.':
			e.Repeat()
		}
	}
	return nil
}

func (c *Commander) move(direction int) {
	for i := c.Multiplier(); i > 0; i-- {
		c.editor.MoveCursor(direction)
	}
}

func (c *Commander) repeat(f func()) {
	for i := c.Multiplier(); i > 0; i-- {
		f()
	}
}

func (c *Commander) search() {
	if c.searchText == "" {
		return
	}
	if !c.editor.PerformSearch(c.searchText, c.searchOptions) {
		c.SetMessage(fmt.Sprintf("not found: %s", c.searchText))
	} else {
		c.SetMessage("")
	}
}

func (c *Commander) ProcessKeyInsertMode(event *gopad.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gopad.KeyEsc: // end an insert operation.
			e.CloseInsert()
			c.mode = gopad.ModeEdit
			e.KeepCursorInRow()
		case gopad.KeyBackspace2:
			e.BackspaceChar()
		case gopad.KeyTab:
			e.InsertChar(' ')
			for {
				if e.GetCursor().Col%8 == 0 {
					break
				}
				e.InsertChar(' ')
			}
		case gopad.KeyEnter:
			e.InsertChar('\n')
		case gopad.KeySpace:
			e.InsertChar(' ')
		}
	}
	if ch != 0 {
		e.InsertChar(ch)
	}
	return nil
}

func (c *Commander) ProcessKeyCommandMode(event *gopad.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gopad.KeyEsc:
			c.mode = gopad.ModeEdit
		case gopad.KeyEnter:
			c.PerformCommand()
		case gopad.KeyBackspace2:
			if len(c.command) > 0 {
				c.command = c.command[0 : len(c.command)-1]
			}
		case gopad.KeySpace:
			c.command += " "
		}
	}
	if ch != 0 {
		c.command = c.command + string(ch)
	}
	return nil
}

func (c *Commander) ProcessKeySearchMode(event *gopad.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gopad.KeyEsc:
			c.mode = gopad.ModeEdit
		case gopad.KeyEnter:
			c.search()
			c.mode = gopad.ModeEdit
		case gopad.KeyBackspace2:
			if len(c.searchText) > 0 {
				c.searchText = c.searchText[0 : len(c.searchText)-1]
			}
		case gopad.KeySpace:
			c.searchText += " "
		}
	}
	if ch != 0 {
		c.searchText = c.searchText + string(ch)
	}
	return nil
}

func (c *Commander) ProcessKey(event *gopad.Event) error {
	var err error
	switch c.mode {
	case gopad.ModeEdit:
		err = c.ProcessKeyEditMode(event)
	case gopad.ModeInsert:
		err = c.ProcessKeyInsertMode(event)
	case gopad.ModeCommand:
		err = c.ProcessKeyCommandMode(event)
	case gopad.ModeSearch:
		err = c.ProcessKeySearchMode(event)
	}
	return err
}

func (c *Commander) PerformCommand() {

	e := c.editor

	// substitutions carry slashes, so they are parsed before splitting
	if pattern, replacement, options, ok := ParseSubstitution(c.command, c.searchOptions); ok {
		c.substitute(pattern, replacement, options)
		c.command = ""
		c.mode = gopad.ModeEdit
		return
	}

	parts := strings.Split(c.command, " ")
	if len(parts) > 0 {

		i, err := strconv.ParseInt(parts[0], 10, 64)
		if err == nil {
			newRow := int(i - 1)
			if newRow > e.GetBuffer().GetRowCount()-1 {
				newRow = e.GetBuffer().GetRowCount() - 1
			}
			if newRow < 0 {
				newRow = 0
			}
			cursor := e.GetCursor()
			cursor.Row = newRow
			cursor.Col = 0
			e.SetCursor(cursor)
		}
		switch parts[0] {
		case "q":
			if e.IsDirty() {
				c.SetMessage("unsaved changes; use :q! to discard or :wq to save")
			} else {
				c.mode = gopad.ModeQuit
				return
			}
		case "q!":
			c.mode = gopad.ModeQuit
			return
		case "e", "r":
			if len(parts) == 2 {
				filename := parts[1]
				if err := e.ReadFile(filename); err != nil {
					c.SetMessage(err.Error())
				} else {
					c.rememberFile(filename)
					c.SetMessage("")
				}
			}
		case "debug":
			if len(parts) == 2 {
				if parts[1] == "on" {
					c.debug = true
				} else if parts[1] == "off" {
					c.debug = false
					c.SetMessage("")
				}
			}
		case "w":
			c.write(parts)
		case "wq":
			if c.write(parts) {
				c.mode = gopad.ModeQuit
				return
			}
		case "fmt":
			out, err := e.Gofmt(e.GetBuffer().GetFileName(), e.Bytes())
			if err == nil {
				e.GetBuffer().LoadBytes(out)
			} else {
				c.SetMessage(err.Error())
			}
		case "stats":
			st := stats.Count(string(e.Bytes()))
			c.SetMessage(fmt.Sprintf("%d lines, %d words, %d chars (%d without spaces), %d paragraphs",
				st.Lines, st.Words, st.Characters, st.CharactersNoSpace, st.Paragraphs))
		case "recent":
			c.performRecent(parts)
		case "$":
			newRow := e.GetBuffer().GetRowCount() - 1
			if newRow < 0 {
				newRow = 0
			}
			cursor := e.GetCursor()
			cursor.Row = newRow
			cursor.Col = 0
			e.SetCursor(cursor)
		default:
			c.SetMessage("")
		}
	}
	c.command = ""
	c.mode = gopad.ModeEdit
}

func (c *Commander) write(parts []string) bool {
	e := c.editor
	var filename string
	if len(parts) == 2 {
		filename = parts[1]
	} else {
		filename = e.GetBuffer().GetFileName()
	}
	if filename == "" {
		c.SetMessage("no file name; use :w <file>")
		return false
	}
	if err := e.WriteFile(filename); err != nil {
		c.SetMessage(err.Error())
		return false
	}
	c.rememberFile(filename)
	c.SetMessage(fmt.Sprintf("wrote %s", filename))
	return true
}

func (c *Commander) substitute(pattern, replacement string, options search.Options) {
	replace := &operations.ReplaceAll{Pattern: pattern, Replacement: replacement, Options: options}
	c.editor.Perform(replace, 1)
	switch {
	case replace.Err != nil:
		c.SetMessage(replace.Err.Error())
	case replace.Count == 0:
		c.SetMessage(fmt.Sprintf("no matches for %s", pattern))
	case replace.Count == 1:
		c.SetMessage("replaced 1 occurrence")
	default:
		c.SetMessage(fmt.Sprintf("replaced %d occurrences", replace.Count))
	}
}

func (c *Commander) performRecent(parts []string) {
	if c.registry == nil {
		return
	}
	entries := c.registry.Existing()
	if len(entries) == 0 {
		c.SetMessage("no recent files")
		return
	}
	if len(parts) == 2 {
		n, err := strconv.Atoi(parts[1])
		if err != nil || n < 1 || n > len(entries) {
			c.SetMessage(fmt.Sprintf("recent takes a number from 1 to %d", len(entries)))
			return
		}
		filename := entries[n-1].Path
		if err := c.editor.ReadFile(filename); err != nil {
			c.SetMessage(err.Error())
			return
		}
		c.rememberFile(filename)
		c.SetMessage("")
		return
	}
	names := make([]string, 0, len(entries))
	for i, entry := range entries {
		names = append(names, fmt.Sprintf("%d:%s", i+1, filepath.Base(entry.Path)))
	}
	c.SetMessage("recent " + strings.Join(names, " "))
}

func (c *Commander) rememberFile(path string) {
	if c.registry == nil {
		return
	}
	c.registry.Add(path)
	c.registry.Save()
}

func (c *Commander) Multiplier() int {
	if c.multiplier == "" {
		return 1
	}
	i, err := strconv.ParseInt(c.multiplier, 10, 64)
	if err != nil {
		c.multiplier = ""
		return 1
	}
	c.multiplier = ""
	return int(i)
}

func (c *Commander) GetSearchText() string {
	return c.searchText
}

func (c *Commander) GetCommand() string {
	return c.command
}

func (c *Commander) GetMessage() string {
	c.messageMu.Lock()
	defer c.messageMu.Unlock()
	return c.message
}

// SetMessage sets the message bar text. It is safe to call from the
// auto-save goroutine.
func (c *Commander) SetMessage(message string) {
	c.messageMu.Lock()
	defer c.messageMu.Unlock()
	c.message = message
}
