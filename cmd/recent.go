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

	"github.com/spf13/cobra"

	"github.com/pixelheaven/gopad/config"
	"github.com/pixelheaven/gopad/constants/style"
	"github.com/pixelheaven/gopad/recent"
)

var (
	recentAll   bool
	recentClear bool
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently edited files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd)
		if err != nil {
			return err
		}
		registry, err := recent.Load(config.RecentPath(), cfg.MaxRecentFiles)
		if err != nil {
			return err
		}
		if recentClear {
			registry.Clear()
			return registry.Save()
		}
		entries := registry.Existing()
		if recentAll {
			entries = registry.Entries()
		}
		if len(entries) == 0 {
			fmt.Println(style.Gray.Render("no recent files"))
			return nil
		}
		for i, entry := range entries {
			fmt.Printf("%s %s %s\n",
				style.Bold.Render(fmt.Sprintf("%2d", i+1)),
				entry.Path,
				style.Gray.Render(entry.OpenedAt.Format("2006-01-02 15:04")))
		}
		return nil
	},
}

func init() {
	recentCmd.Flags().BoolVar(&recentAll, "all", false, "include files that no longer exist")
	recentCmd.Flags().BoolVar(&recentClear, "clear", false, "clear the recent file list")
	rootCmd.AddCommand(recentCmd)
}
