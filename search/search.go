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

// Package search matches and replaces patterns in text. Patterns are
// literal by default; options turn on regular expressions, whole-word
// matching, and case sensitivity. A pattern that matches nothing is a
// success with count zero.
package search

import (
	"regexp"
)

// Options configure how a pattern is interpreted.
type Options struct {
	CaseSensitive bool
	WholeWord     bool
	Regex         bool
}

// A Match is a byte-offset span within the searched text.
type Match struct {
	Start int
	End   int
}

// Compile builds the regular expression for a pattern under the given options.
func Compile(pattern string, options Options) (*regexp.Regexp, error) {
	expr := pattern
	if !options.Regex {
		expr = regexp.QuoteMeta(pattern)
	}
	if options.WholeWord {
		expr = `\b(?:` + expr + `)\b`
	}
	if !options.CaseSensitive {
		expr = `(?i)` + expr
	}
	return regexp.Compile(expr)
}

// FindAll returns every match of the pattern in text.
func FindAll(text string, pattern string, options Options) ([]Match, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := Compile(pattern, options)
	if err != nil {
		return nil, err
	}
	locations := re.FindAllStringIndex(text, -1)
	matches := make([]Match, 0, len(locations))
	for _, loc := range locations {
		matches = append(matches, Match{Start: loc[0], End: loc[1]})
	}
	return matches, nil
}

// Count returns the number of matches of the pattern in text.
func Count(text string, pattern string, options Options) (int, error) {
	matches, err := FindAll(text, pattern, options)
	if err != nil {
		return 0, err
	}
	return len(matches), nil
}

// ReplaceAll replaces every match of the pattern with the replacement and
// returns the new text and the number of replacements made. In regex mode
// the replacement may reference capture groups ($1, ...); otherwise it is
// taken literally.
func ReplaceAll(text string, pattern string, replacement string, options Options) (string, int, error) {
	if pattern == "" {
		return text, 0, nil
	}
	re, err := Compile(pattern, options)
	if err != nil {
		return text, 0, err
	}
	count := len(re.FindAllStringIndex(text, -1))
	if count == 0 {
		return text, 0, nil
	}
	if options.Regex {
		return re.ReplaceAllString(text, replacement), count, nil
	}
	return re.ReplaceAllLiteralString(text, replacement), count, nil
}
