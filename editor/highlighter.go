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
package editor

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	gopad "github.com/pixelheaven/gopad/types"
)

// 256-color palette entries for token classes
const (
	colorKeyword     gopad.Color = 0x70
	colorPunctuation gopad.Color = 0x71
	colorNumber      gopad.Color = 0x83
	colorString      gopad.Color = 0xe0
	colorComment     gopad.Color = 0xf8
)

// A Highlighter colors buffer rows using the chroma lexer that matches
// the buffer's file name.
type Highlighter struct {
	lexer chroma.Lexer
}

// NewHighlighter returns nil when no lexer matches; plain text stays uncolored.
func NewHighlighter(filename string) *Highlighter {
	lexer := lexers.Match(filename)
	if lexer == nil {
		return nil
	}
	return &Highlighter{lexer: chroma.Coalesce(lexer)}
}

func (h *Highlighter) Highlight(b *Buffer) {
	for _, r := range b.rows {
		for j := range r.Colors {
			r.Colors[j] = gopad.ColorWhite
		}
	}
	iterator, err := h.lexer.Tokenise(nil, string(b.Bytes()))
	if err != nil {
		return
	}
	row, col := 0, 0
	for _, token := range iterator.Tokens() {
		color := tokenColor(token.Type)
		for _, c := range token.Value {
			if c == '\n' {
				row++
				col = 0
				continue
			}
			if row < len(b.rows) && col < len(b.rows[row].Colors) {
				b.rows[row].Colors[col] = color
			}
			col++
		}
	}
}

func tokenColor(t chroma.TokenType) gopad.Color {
	switch {
	case t.InCategory(chroma.Keyword):
		return colorKeyword
	case t.InCategory(chroma.LiteralString):
		return colorString
	case t.InCategory(chroma.LiteralNumber):
		return colorNumber
	case t.InCategory(chroma.Comment):
		return colorComment
	case t.InCategory(chroma.Operator), t.InCategory(chroma.Punctuation):
		return colorPunctuation
	}
	return gopad.ColorWhite
}
