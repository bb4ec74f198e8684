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

	"github.com/spf13/cobra"

	"github.com/pixelheaven/gopad/config"
	"github.com/pixelheaven/gopad/constants/style"
	"github.com/pixelheaven/gopad/search"
	"github.com/pixelheaven/gopad/storage"
)

var (
	replaceRegex         bool
	replaceWholeWord     bool
	replaceCaseSensitive bool
	replaceWrite         bool
)

var replaceCmd = &cobra.Command{
	Use:   "replace PATTERN REPLACEMENT FILE...",
	Short: "Replace every match of a pattern in one or more files",
	Long: `Replace every match of a pattern in one or more files.

The pattern is matched literally unless --regex is given. Without
--write the files are left untouched and only the match counts are
printed.`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, replacement, files := args[0], args[1], args[2:]
		options := search.Options{
			CaseSensitive: replaceCaseSensitive,
			WholeWord:     replaceWholeWord,
			Regex:         replaceRegex,
		}

		cfg, err := config.Load(cmd)
		if err != nil {
			return err
		}

		total := 0
		for _, filename := range files {
			data, err := os.ReadFile(filename)
			if err != nil {
				return err
			}
			replaced, count, err := search.ReplaceAll(string(data), pattern, replacement, options)
			if err != nil {
				return err
			}
			total += count
			if count > 0 && replaceWrite {
				backupDir := ""
				if cfg.CreateBackups {
					backupDir = config.BackupDir()
				}
				if err := storage.WriteDocument(filename, []byte(replaced), backupDir, cfg.MaxBackups); err != nil {
					return err
				}
			}
			name := filename
			if count > 0 {
				name = style.Green.Render(filename)
			}
			fmt.Printf("%s: %d\n", name, count)
		}
		if !replaceWrite && total > 0 {
			fmt.Println(style.Yellow.Render("no files changed; use --write to apply"))
		}
		return nil
	},
}

func init() {
	replaceCmd.Flags().BoolVar(&replaceRegex, "regex", false, "treat the pattern as a regular expression")
	replaceCmd.Flags().BoolVar(&replaceWholeWord, "word", false, "match whole words only")
	replaceCmd.Flags().BoolVar(&replaceCaseSensitive, "case-sensitive", false, "match case exactly")
	replaceCmd.Flags().BoolVar(&replaceWrite, "write", false, "write changes back to the files")
	rootCmd.AddCommand(replaceCmd)
}
