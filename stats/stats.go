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

// Package stats derives document statistics from text in a single scan.
package stats

import (
	"strings"
	"unicode"
)

// Stats are the counts for one document. Empty text yields all zeros.
type Stats struct {
	Characters        int
	CharactersNoSpace int
	Words             int
	Lines             int
	Paragraphs        int
}

// Count computes statistics for the given text.
func Count(text string) Stats {
	var s Stats
	if text == "" {
		return s
	}
	inWord := false
	for _, c := range text {
		s.Characters++
		if c == '\n' {
			s.Lines++
		}
		if unicode.IsSpace(c) {
			inWord = false
		} else {
			s.CharactersNoSpace++
			if !inWord {
				s.Words++
				inWord = true
			}
		}
	}
	s.Lines++ // the final line has no trailing newline in the count above
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			s.Paragraphs++
		}
	}
	return s
}
