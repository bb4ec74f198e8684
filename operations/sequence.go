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

// A Sequence performs a list of operations as a unit.
type Sequence struct {
	op
	Operations []gopad.Operation
}

func (o *Sequence) Perform(e gopad.Editor, multiplier int) gopad.Operation {
	o.init(e, multiplier)
	inverses := make([]gopad.Operation, 0, len(o.Operations))
	for _, each := range o.Operations {
		if inverse := each.Perform(e, 1); inverse != nil {
			// inverses run in the opposite order
			inverses = append([]gopad.Operation{inverse}, inverses...)
		}
	}
	if len(inverses) == 0 {
		return nil
	}
	inverse := &Sequence{Operations: inverses}
	inverse.copyForUndo(&o.op)
	return inverse
}
