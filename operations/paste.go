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
	gopad "github.com/pixelheaven/gopad/types"
)

// Paste pastes the contents of the pasteboard into the buffer.
type Paste struct {
	op
}

func (o *Paste) Perform(e gopad.Editor, multiplier int) gopad.Operation {
	if e.GetPasteMode() == gopad.PasteNewLine {
		e.MoveCursorToStartOfLineBelowCursor()
	}

	o.init(e, multiplier)

	cursor := o.Cursor

	for i := 0; i < o.Multiplier; i++ {
		for _, c := range e.GetPasteText() {
			e.InsertChar(c)
		}
	}
	if e.GetPasteMode() == gopad.PasteNewLine {
		e.SetCursor(cursor)
		inverse := &DeleteCharacter{}
		inverse.copyForUndo(&o.op)
		inverse.Multiplier = len(e.GetPasteText()) * o.Multiplier
		inverse.Cursor.Col = 0
		return inverse
	}
	return nil
}
