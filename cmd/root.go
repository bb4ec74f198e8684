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

// Package cmd defines the gopad command line interface.
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pixelheaven/gopad/autosave"
	"github.com/pixelheaven/gopad/commander"
	"github.com/pixelheaven/gopad/config"
	"github.com/pixelheaven/gopad/constants/style"
	"github.com/pixelheaven/gopad/editor"
	"github.com/pixelheaven/gopad/recent"
	"github.com/pixelheaven/gopad/screen"
	"github.com/pixelheaven/gopad/search"
)

var rootCmd = &cobra.Command{
	Use:   "gopad [file]",
	Short: "gopad is a modal text editor for the terminal",
	Long: `gopad is a modal text editor for the terminal.

It saves your work automatically, keeps backups of overwritten files,
and remembers the files you edit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd)
		if err != nil {
			return err
		}
		filename := ""
		if len(args) == 1 {
			filename = args[0]
		}
		return runEditor(cfg, filename)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	config.InitFlags(rootCmd)
}

func runEditor(cfg *config.Config, filename string) error {
	// the terminal is busy, so session logs go to a file
	if err := os.MkdirAll(config.Dir(), 0755); err == nil {
		if logfile, err := os.OpenFile(config.LogPath(), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644); err == nil {
			log.SetOutput(logfile)
			defer logfile.Close()
		}
	}

	e := editor.NewEditor()
	e.SetBackupPolicy(config.BackupDir(), cfg.CreateBackups, cfg.MaxBackups)

	registry, err := recent.Load(config.RecentPath(), cfg.MaxRecentFiles)
	if err != nil {
		log.Printf("recent files unavailable: %s", err)
	}

	if filename != "" {
		if _, err := os.Stat(filename); os.IsNotExist(err) {
			f, err := os.Create(filename)
			if err != nil {
				return fmt.Errorf("unable to create file %s: %w", filename, err)
			}
			f.Close()
		}
		if err := e.ReadFile(filename); err != nil {
			return err
		}
		if registry != nil {
			registry.Add(filename)
			if err := registry.Save(); err != nil {
				log.Printf("unable to save recent files: %s", err)
			}
		}
	}
	e.Buffer.Highlighting = cfg.SyntaxHighlighting

	c := commander.NewCommander(e)
	c.SetSearchOptions(search.Options{CaseSensitive: cfg.CaseSensitiveSearch})
	c.SetRecentRegistry(registry)

	s, err := screen.NewScreen()
	if err != nil {
		return fmt.Errorf("unable to open terminal: %w", err)
	}
	s.SetLineNumbers(cfg.ShowLineNumbers)
	defer s.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.AutoSave && cfg.AutoSaveInterval > 0 {
		interval := time.Duration(cfg.AutoSaveInterval) * time.Second
		runner := autosave.New(e, interval, func(message string) {
			c.SetMessage(message)
			s.Interrupt()
		})
		go runner.Run(ctx)
	}

	// main loop; rendering reads buffer state, so it holds the lock too
	for c.IsRunning() {
		e.Lock()
		s.Render(e, c)
		e.Unlock()
		event := s.GetNextEvent()
		e.Lock()
		err = c.ProcessEvent(event)
		e.Unlock()
		if err != nil {
			log.Printf("event error: %s", err)
		}
	}
	return nil
}

// Execute runs the selected command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(style.Red.Render(fmt.Sprintf("error: %s", err)))
		os.Exit(1)
	}
}
