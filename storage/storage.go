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

// Package storage writes documents to disk, keeping timestamped backups
// of files that are about to be overwritten.
package storage

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const backupTimeFormat = "20060102-150405"

// WriteDocument writes data to path. If backupDir is non-empty and path
// already exists, the old content is copied into backupDir first and only
// the keep most recent backups for that file are retained. A failed backup
// is logged but does not block the write.
func WriteDocument(path string, data []byte, backupDir string, keep int) error {
	if backupDir != "" {
		if _, err := os.Stat(path); err == nil {
			if err := Backup(path, backupDir, keep); err != nil {
				log.Printf("backup of %s failed: %v", path, err)
			}
		}
	}
	return os.WriteFile(path, data, 0644)
}

// Backup copies path into dir as name.<timestamp>.backup and prunes older
// backups of the same file beyond keep.
func Backup(path string, dir string, keep int) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	name := filepath.Base(path)
	target := filepath.Join(dir, fmt.Sprintf("%s.%s.backup", name, time.Now().Format(backupTimeFormat)))
	if err := copyFile(path, target); err != nil {
		return err
	}
	return CleanupBackups(dir, name, keep)
}

// CleanupBackups removes all but the keep most recent backups of name in dir.
func CleanupBackups(dir string, name string, keep int) error {
	if keep <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	type backup struct {
		path    string
		modTime time.Time
	}
	backups := make([]backup, 0)
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), name+".") || !strings.HasSuffix(entry.Name(), ".backup") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, backup{filepath.Join(dir, entry.Name()), info.ModTime()})
	}
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].modTime.After(backups[j].modTime)
	})
	for _, b := range backups[min(keep, len(backups)):] {
		if err := os.Remove(b.path); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
