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

// op carries the state every operation shares: the cursor where it was
// performed, its multiplier, and whether it is running as an undo.
type op struct {
	Cursor     gopad.Point
	Multiplier int
	Undo       bool
}

func (o *op) init(e gopad.Editor, multiplier int) {
	if o.Undo {
		e.SetCursor(o.Cursor)
	} else {
		o.Cursor = e.GetCursor()
		if o.Multiplier == 0 {
			o.Multiplier = multiplier
		}
	}
}

func (o *op) copyForUndo(other *op) {
	o.Cursor = other.Cursor
	o.Multiplier = other.Multiplier
	o.Undo = true
}
