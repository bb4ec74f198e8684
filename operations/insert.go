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

// Insert inserts text at a position relative to the cursor. With empty
// Text it opens an interactive insert that collects typed characters.
type Insert struct {
	op
	Position  int
	Text      string
	Inverse   *DeleteCharacter
	Commander gopad.Commander
}

func (o *Insert) Perform(e gopad.Editor, multiplier int) gopad.Operation {
	o.init(e, multiplier)

	if o.Text != "" {
		e.SetCursor(o.Cursor)
	} else {
		o.Cursor = e.GetCursor()
		e.SetInsertOperation(o)
	}

	var newMode int
	o.Cursor, newMode = e.InsertText(o.Text, o.Position)
	if o.Commander != nil {
		o.Commander.SetMode(newMode)
	}

	inverse := &DeleteCharacter{}
	inverse.copyForUndo(&o.op)
	inverse.Multiplier = len(o.Text)
	if o.Position == gopad.InsertAtNewLineBelowCursor ||
		o.Position == gopad.InsertAtNewLineAboveCursor {
		inverse.FinallyDeleteRow = true
	}
	o.Inverse = inverse
	return inverse
}

func (o *Insert) Length() int {
	return len(o.Text)
}

func (o *Insert) AddCharacter(c rune) {
	o.Text += string(c)
}

func (o *Insert) DeleteCharacter() {
	o.Text = o.Text[0 : len(o.Text)-1]
}

func (o *Insert) Close() {
	o.Inverse.Multiplier = len(o.Text)
}
