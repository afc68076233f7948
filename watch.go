// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package iconset

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

var watchReadyHook func() // used in tests, called when Watch started watching

// debouncer delays execution of a function until a specified duration
// has passed without any new events.
type debouncer struct {
	d  time.Duration
	mu sync.Mutex
	f  func()
	t  *time.Timer
}

// newDebouncer creates a new debouncer.
func newDebouncer(d time.Duration, f func()) *debouncer {
	return &debouncer{
		d: d,
		f: f,
	}
}

// Do schedules a function to be executed.
func (d *debouncer) Do() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.t != nil {
		d.t.Stop()
	}

	d.t = time.AfterFunc(d.d, d.f)
}

// Watch generates the icon set, then watches the master image and
// regenerates the set whenever it changes, until ctx is done.
//
// Generation rewrites the master in place while normalizing it, which
// the watcher would see as a change of its own making. Those writes are
// told apart from real ones by hashing the master after every run and
// skipping regeneration when the hash hasn't moved.
func Watch(ctx context.Context, c *Config) error {
	if c == nil {
		c = &Config{}
	}
	c.setDefaults()

	c.Logf("Performing an initial generation.")
	if _, err := Generate(ctx, c); err != nil {
		c.Logf("Initial generation failed: %v", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(c.Dir); err != nil {
		return err
	}

	master := filepath.Join(c.Dir, c.Master)
	last, _ := fileSum(master)

	regen := make(chan struct{}, 1)
	trigger := func() {
		select {
		case regen <- struct{}{}:
		default:
		}
	}
	// It's better to have a bit of delay, so that we don't start
	// regenerating on each keystroke.
	debouncer := newDebouncer(250*time.Millisecond, trigger)

	go func() {
		for {
			select {
			case event := <-watcher.Events:
				if !shouldRegenerate(event.Name, event.Op, c.Master) {
					continue
				}
				debouncer.Do()
			case <-ctx.Done():
				return
			}
		}
	}()

	c.Logf("Watching %s for changes.", master)
	if watchReadyHook != nil {
		watchReadyHook()
	}

	for {
		select {
		case <-regen:
			sum, err := fileSum(master)
			if err == nil && sum == last {
				continue
			}
			c.Logf("Changed %s, regenerating.", master)
			if _, err := Generate(ctx, c); err != nil {
				c.Logf("Failed to regenerate the icon set: %v", err)
			}
			last, _ = fileSum(master)
		case <-ctx.Done():
			c.Logf("Stopped watching %s.", master)
			return nil
		}
	}
}

// shouldRegenerate reports whether a filesystem event warrants a new
// generation. Only changes to the master image qualify; everything else
// in the directory, including the generated files, is ignored.
func shouldRegenerate(path string, op fsnotify.Op, master string) bool {
	if filepath.Base(path) != master {
		return false
	}

	/*
		Listen for creates, writes and removes only. Rationale:

		* chmod: doesn't affect the generated output.

		* rename: will produce a following create event as well, so just
		listen for that instead.
	*/
	return op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove) != 0
}

func fileSum(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
