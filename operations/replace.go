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
package operations

import (
	"github.com/pixelheaven/gopad/search"
	gopad "github.com/pixelheaven/gopad/types"
)

// ReplaceCharacter replaces a character at the current cursor position.
type ReplaceCharacter struct {
	op
	Character rune
}

func (o *ReplaceCharacter) Perform(e gopad.Editor, multiplier int) gopad.Operation {
	o.init(e, multiplier)
	old := e.ReplaceCharacterAtCursor(o.Cursor, o.Character)
	inverse := &ReplaceCharacter{}
	inverse.copyForUndo(&o.op)
	inverse.Character = old
	return inverse
}

// ReplaceAll replaces every match of a pattern in the buffer. Count holds
// the number of replacements after the operation runs. Its inverse
// restores the buffer content from before the replacement.
type ReplaceAll struct {
	op
	Pattern     string
	Replacement string
	Options     search.Options
	Count       int
	Err         error
}

func (o *ReplaceAll) Perform(e gopad.Editor, multiplier int) gopad.Operation {
	o.init(e, multiplier)
	previous := e.Bytes()
	o.Count, o.Err = e.ReplaceAllText(o.Pattern, o.Replacement, o.Options)
	if o.Err != nil || o.Count == 0 {
		return nil
	}
	inverse := &RestoreBuffer{Content: previous}
	inverse.copyForUndo(&o.op)
	return inverse
}

// RestoreBuffer swaps in a saved copy of the buffer content. It is the
// inverse of ReplaceAll, and is its own inverse.
type RestoreBuffer struct {
	op
	Content []byte
}

func (o *RestoreBuffer) Perform(e gopad.Editor, multiplier int) gopad.Operation {
	o.init(e, multiplier)
	previous := e.Bytes()
	e.LoadBytes(o.Content)
	e.SetCursor(o.Cursor)
	e.KeepCursorInRow()
	inverse := &RestoreBuffer{Content: previous}
	inverse.copyForUndo(&o.op)
	return inverse
}
