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

// JoinLine joins the current line with the next one.
type JoinLine struct {
	op
}

func (o *JoinLine) Perform(e gopad.Editor, multiplier int) gopad.Operation {
	o.init(e, multiplier)
	cursors := e.JoinRow(o.Multiplier)
	operations := make([]gopad.Operation, 0, len(cursors))
	for i := len(cursors) - 1; i >= 0; i-- {
		insert := &Insert{}
		insert.Cursor = cursors[i]
		insert.Multiplier = 1
		insert.Undo = true
		insert.Position = gopad.InsertAtCursor
		insert.Text = "\n"
		operations = append(operations, insert)
	}
	if len(operations) == 0 {
		return nil
	}
	inverse := &Sequence{Operations: operations}
	inverse.copyForUndo(&o.op)
	inverse.Multiplier = 1
	return inverse
}
