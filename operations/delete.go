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

// DeleteCharacter deletes characters at the cursor, joining lines when it
// runs as an undo of an insert.
type DeleteCharacter struct {
	op
	FinallyDeleteRow bool
}

func (o *DeleteCharacter) Perform(e gopad.Editor, multiplier int) gopad.Operation {
	o.init(e, multiplier)
	deleted := e.DeleteCharactersAtCursor(o.Multiplier, o.Undo, o.FinallyDeleteRow)
	if deleted == "" {
		return nil
	}
	inverse := &Insert{Position: gopad.InsertAtCursor, Text: deleted}
	inverse.copyForUndo(&o.op)
	return inverse
}

// DeleteRow deletes rows at the cursor, placing them on the pasteboard.
type DeleteRow struct {
	op
}

func (o *DeleteRow) Perform(e gopad.Editor, multiplier int) gopad.Operation {
	o.init(e, multiplier)
	deleted := e.DeleteRowsAtCursor(o.Multiplier)
	if deleted == "" {
		return nil
	}
	inverse := &Insert{Position: gopad.InsertAtNewLineAboveCursor, Text: deleted}
	inverse.copyForUndo(&o.op)
	return inverse
}

// DeleteWord deletes words at the cursor.
type DeleteWord struct {
	op
}

func (o *DeleteWord) Perform(e gopad.Editor, multiplier int) gopad.Operation {
	o.init(e, multiplier)
	deleted := e.DeleteWordsAtCursor(o.Multiplier)
	if deleted == "" {
		return nil
	}
	inverse := &Insert{Position: gopad.InsertAtCursor, Text: deleted}
	inverse.copyForUndo(&o.op)
	return inverse
}
