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

// Package recent maintains the recent-files registry: a bounded,
// deduplicated, most-recent-first list of file paths persisted across
// runs as a JSON file.
package recent

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// DefaultCapacity bounds the registry when no capacity is configured.
const DefaultCapacity = 10

// An Entry records one previously opened file.
type Entry struct {
	Path     string    `json:"path"`
	OpenedAt time.Time `json:"opened_at"`
}

// A Registry holds the list and knows where it is persisted.
type Registry struct {
	path     string
	capacity int
	entries  []Entry
}

// Load reads the registry file at path, returning an empty registry if the
// file does not exist yet.
func Load(path string, capacity int) (*Registry, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	r := &Registry{path: path, capacity: capacity}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return r, nil
	}
	if err != nil {
		return r, err
	}
	if err := json.Unmarshal(data, &r.entries); err != nil {
		return r, err
	}
	if len(r.entries) > r.capacity {
		r.entries = r.entries[:r.capacity]
	}
	return r, nil
}

// Add puts a path at the front of the list, removing any prior occurrence
// and truncating to capacity.
func (r *Registry) Add(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	entries := make([]Entry, 0, len(r.entries)+1)
	entries = append(entries, Entry{Path: path, OpenedAt: time.Now()})
	for _, e := range r.entries {
		if e.Path != path {
			entries = append(entries, e)
		}
	}
	if len(entries) > r.capacity {
		entries = entries[:r.capacity]
	}
	r.entries = entries
}

// Entries returns the list, most recent first.
func (r *Registry) Entries() []Entry {
	return r.entries
}

// Existing returns the entries whose paths still exist on disk.
func (r *Registry) Existing() []Entry {
	entries := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if _, err := os.Stat(e.Path); err == nil {
			entries = append(entries, e)
		}
	}
	return entries
}

// Clear empties the list.
func (r *Registry) Clear() {
	r.entries = nil
}

// Save writes the registry to its file, creating the directory if needed.
func (r *Registry) Save() error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(r.entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0644)
}
