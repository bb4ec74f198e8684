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
package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/pixelheaven/gopad/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats FILE...",
	Short: "Show document statistics for one or more files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := pterm.TableData{
			{"File", "Lines", "Words", "Chars", "Chars (no spaces)", "Paragraphs"},
		}
		var total stats.Stats
		for _, filename := range args {
			data, err := os.ReadFile(filename)
			if err != nil {
				return err
			}
			st := stats.Count(string(data))
			rows = append(rows, []string{
				filename,
				fmt.Sprintf("%d", st.Lines),
				fmt.Sprintf("%d", st.Words),
				fmt.Sprintf("%d", st.Characters),
				fmt.Sprintf("%d", st.CharactersNoSpace),
				fmt.Sprintf("%d", st.Paragraphs),
			})
			total.Lines += st.Lines
			total.Words += st.Words
			total.Characters += st.Characters
			total.CharactersNoSpace += st.CharactersNoSpace
			total.Paragraphs += st.Paragraphs
		}
		if len(args) > 1 {
			rows = append(rows, []string{
				"total",
				fmt.Sprintf("%d", total.Lines),
				fmt.Sprintf("%d", total.Words),
				fmt.Sprintf("%d", total.Characters),
				fmt.Sprintf("%d", total.CharactersNoSpace),
				fmt.Sprintf("%d", total.Paragraphs),
			})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
