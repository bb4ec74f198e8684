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
package commander

import (
	"strings"

	"github.com/pixelheaven/gopad/search"
)

// ParseSubstitution parses a substitution command of the form
// s/pattern/replacement/flags (an optional leading % is accepted).
// A slash inside the pattern or replacement can be escaped with a
// backslash. The flags modify the base options: i makes the match
// case-insensitive, I case-sensitive, w matches whole words, r treats
// the pattern as a regular expression, and g is accepted for
// familiarity (substitutions always apply to the whole buffer).
func ParseSubstitution(command string, base search.Options) (pattern string, replacement string, options search.Options, ok bool) {
	body := strings.TrimPrefix(command, "%")
	if !strings.HasPrefix(body, "s/") {
		return "", "", base, false
	}
	fields := splitUnescaped(body[2:], '/')
	if len(fields) < 2 || len(fields) > 3 || fields[0] == "" {
		return "", "", base, false
	}

	options = base
	if len(fields) == 3 {
		for _, flag := range fields[2] {
			switch flag {
			case 'g':
				// always global
			case 'i':
				options.CaseSensitive = false
			case 'I':
				options.CaseSensitive = true
			case 'w':
				options.WholeWord = true
			case 'r':
				options.Regex = true
			default:
				return "", "", base, false
			}
		}
	}
	return fields[0], fields[1], options, true
}

// splitUnescaped splits s on sep, treating a backslash-escaped sep as a
// literal character.
func splitUnescaped(s string, sep rune) []string {
	var fields []string
	var current strings.Builder
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			if r != sep {
				current.WriteRune('\\')
			}
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == sep:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	if escaped {
		current.WriteRune('\\')
	}
	fields = append(fields, current.String())
	return fields
}
