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

// Package autosave periodically writes modified documents back to disk.
package autosave

import (
	"context"
	"fmt"
	"path/filepath"
	"time"
)

// A Saver writes its current document to disk if it has unsaved changes.
// It reports the path written and whether a write actually happened.
type Saver interface {
	AutoSave() (path string, saved bool, err error)
}

// A Runner drives a Saver on a fixed interval until its context ends.
type Runner struct {
	saver    Saver
	interval time.Duration
	notify   func(message string)
}

// New returns a Runner that saves on the given interval. The notify
// callback receives a short status message after each save attempt that
// did something; it may be nil.
func New(saver Saver, interval time.Duration, notify func(string)) *Runner {
	return &Runner{
		saver:    saver,
		interval: interval,
		notify:   notify,
	}
}

// Run blocks, saving on each tick, until ctx is canceled.
func (r *Runner) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.save()
		}
	}
}

func (r *Runner) save() {
	path, saved, err := r.saver.AutoSave()
	if err != nil {
		r.send(fmt.Sprintf("auto-save failed: %s", err))
		return
	}
	if saved {
		r.send(fmt.Sprintf("auto-saved %s", filepath.Base(path)))
	}
}

func (r *Runner) send(message string) {
	if r.notify != nil {
		r.notify(message)
	}
}
