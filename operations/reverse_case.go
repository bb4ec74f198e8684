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

// ReverseCaseCharacter reverses the case of characters at the cursor.
// Running it again at the same cursor is its own inverse.
type ReverseCaseCharacter struct {
	op
}

func (o *ReverseCaseCharacter) Perform(e gopad.Editor, multiplier int) gopad.Operation {
	o.init(e, multiplier)
	e.ReverseCaseCharactersAtCursor(o.Multiplier)
	inverse := &ReverseCaseCharacter{}
	inverse.copyForUndo(&o.op)
	return inverse
}
