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
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reset() {
	viper.Reset()
	cfgFile = ""
}

func TestLoadDefaults(t *testing.T) {
	reset()
	t.Cleanup(reset)

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.True(t, cfg.AutoSave)
	assert.Equal(t, 30, cfg.AutoSaveInterval)
	assert.True(t, cfg.CreateBackups)
	assert.Equal(t, 10, cfg.MaxBackups)
	assert.Equal(t, 10, cfg.MaxRecentFiles)
	assert.True(t, cfg.ShowLineNumbers)
	assert.True(t, cfg.SyntaxHighlighting)
	assert.False(t, cfg.CaseSensitiveSearch)
}

func TestLoadFromFile(t *testing.T) {
	reset()
	t.Cleanup(reset)

	path := filepath.Join(t.TempDir(), "gopad.yaml")
	content := "auto_save: false\nauto_save_interval: 5\nmax_recent_files: 3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	cfgFile = path

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.False(t, cfg.AutoSave)
	assert.Equal(t, 5, cfg.AutoSaveInterval)
	assert.Equal(t, 3, cfg.MaxRecentFiles)
	// unset keys keep their defaults
	assert.True(t, cfg.CreateBackups)
	assert.True(t, cfg.ShowLineNumbers)
}

func TestLoadFromEnvironment(t *testing.T) {
	reset()
	t.Cleanup(reset)

	t.Setenv("GOPAD_AUTO_SAVE_INTERVAL", "7")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.AutoSaveInterval)
}

func TestPaths(t *testing.T) {
	assert.Equal(t, filepath.Join(Dir(), "recent.json"), RecentPath())
	assert.Equal(t, filepath.Join(Dir(), "backups"), BackupDir())
	assert.Equal(t, filepath.Join(Dir(), "gopad.log"), LogPath())
}
