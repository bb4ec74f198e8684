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

// ChangeWord deletes words at the cursor and inserts replacement text.
type ChangeWord struct {
	op
	Text      string
	Commander gopad.Commander
}

func (o *ChangeWord) Perform(e gopad.Editor, multiplier int) gopad.Operation {
	o.init(e, multiplier)

	if o.Text != "" {
		e.SetCursor(o.Cursor)
	} else {
		o.Cursor = e.GetCursor()
		e.SetInsertOperation(o)
	}

	deleted, newMode := e.ChangeWordAtCursor(o.Multiplier, o.Text)
	if o.Commander != nil {
		o.Commander.SetMode(newMode)
	}

	// first delete the inserted characters, then reinsert the deleted words
	remove := &DeleteCharacter{}
	remove.copyForUndo(&o.op)
	remove.Multiplier = len(o.Text)

	reinsert := &Insert{Position: gopad.InsertAtCursor, Text: deleted}
	reinsert.copyForUndo(&o.op)
	reinsert.Multiplier = 1

	inverse := &Sequence{Operations: []gopad.Operation{remove, reinsert}}
	inverse.copyForUndo(&o.op)
	inverse.Multiplier = 1
	return inverse
}

func (o *ChangeWord) Length() int {
	return len(o.Text)
}

func (o *ChangeWord) AddCharacter(c rune) {
	o.Text += string(c)
}

func (o *ChangeWord) DeleteCharacter() {
	o.Text = o.Text[0 : len(o.Text)-1]
}

func (o *ChangeWord) Close() {
}
