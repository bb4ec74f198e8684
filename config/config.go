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

// Package config loads editor settings from flags, environment
// variables, and an optional gopad.yaml file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the editor settings.
type Config struct {
	AutoSave            bool `mapstructure:"auto_save"`
	AutoSaveInterval    int  `mapstructure:"auto_save_interval"`
	CreateBackups       bool `mapstructure:"create_backups"`
	MaxBackups          int  `mapstructure:"max_backups"`
	MaxRecentFiles      int  `mapstructure:"max_recent_files"`
	ShowLineNumbers     bool `mapstructure:"show_line_numbers"`
	SyntaxHighlighting  bool `mapstructure:"syntax_highlighting"`
	CaseSensitiveSearch bool `mapstructure:"case_sensitive_search"`
}

var cfgFile string

func setDefaults() {
	viper.SetDefault("auto_save", true)
	viper.SetDefault("auto_save_interval", 30)
	viper.SetDefault("create_backups", true)
	viper.SetDefault("max_backups", 10)
	viper.SetDefault("max_recent_files", 10)
	viper.SetDefault("show_line_numbers", true)
	viper.SetDefault("syntax_highlighting", true)
	viper.SetDefault("case_sensitive_search", false)
}

// InitFlags registers the configuration flags on the root command.
func InitFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file (default gopad.yaml)")
	rootCmd.PersistentFlags().Bool("auto_save", true, "save modified files automatically")
	rootCmd.PersistentFlags().Int("auto_save_interval", 30, "seconds between automatic saves")
	rootCmd.PersistentFlags().Bool("create_backups", true, "keep timestamped backups of overwritten files")
	rootCmd.PersistentFlags().Bool("show_line_numbers", true, "show a line number gutter")
	rootCmd.PersistentFlags().Bool("syntax_highlighting", true, "highlight recognized file types")
}

// Load reads the configuration, layering defaults, the config file,
// GOPAD_* environment variables, and any flags set on cmd.
func Load(cmd *cobra.Command) (*Config, error) {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("gopad")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath(Dir())
	}

	viper.SetEnvPrefix("GOPAD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if cmd != nil {
		if err := bindFlags(cmd); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func bindFlags(cmd *cobra.Command) error {
	for _, name := range []string{
		"auto_save",
		"auto_save_interval",
		"create_backups",
		"show_line_numbers",
		"syntax_highlighting",
	} {
		if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
			if err := viper.BindPFlag(name, flag); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}
	return nil
}

// Dir returns the per-user configuration directory.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "gopad")
}

// RecentPath returns the path of the recent-files registry.
func RecentPath() string {
	return filepath.Join(Dir(), "recent.json")
}

// BackupDir returns the directory where file backups are kept.
func BackupDir() string {
	return filepath.Join(Dir(), "backups")
}

// LogPath returns the path of the session log file.
func LogPath() string {
	return filepath.Join(Dir(), "gopad.log")
}
