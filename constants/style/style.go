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

// Package style defines the terminal styles used by the CLI output.
package style

import "github.com/charmbracelet/lipgloss"

var (
	Red    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	Green  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	Yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
	Gray   = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	Bold   = lipgloss.NewStyle().Bold(true)
)
