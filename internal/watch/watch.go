// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package watch reports changes to the files of a config directory.
package watch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nilswg/use-config/internal/logger"
)

// DefaultDebounce is the quiet period after the last event before a change
// is reported.
const DefaultDebounce = 100 * time.Millisecond

// ErrClosed is returned by [Watcher.Watch] when the watcher is closed while
// watching.
var ErrClosed = errors.New("watcher closed")

// Watcher watches one directory. Bursts of events are coalesced into one
// change notification.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
}

// New creates a Watcher. A non-positive debounce means [DefaultDebounce].
func New(debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{fsw: fsw, debounce: debounce}, nil
}

// Watch blocks until ctx is done, calling onChange after every burst of
// events on files in dir for which match returns true. onChange runs on the
// calling goroutine, so calls never overlap.
//
// The directory is watched rather than the file so that editors replacing
// the file by rename are seen. The logger attached to ctx is used for events
// and watcher errors.
func (w *Watcher) Watch(ctx context.Context, dir string, match func(name string) bool, onChange func()) error {
	log := logger.FromContext(ctx)

	if err := w.fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %q: %w", dir, err)
	}
	log.Debug().Str("dir", dir).Dur("debounce", w.debounce).Msg("watching config directory")

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("watcher stopped")
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return ErrClosed
			}
			if !relevant(event) || !match(event.Name) {
				continue
			}
			log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("config file event")

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			onChange()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return ErrClosed
			}
			log.Error().Err(err).Msg("config watcher error")
		}
	}
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func relevant(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename) ||
		event.Has(fsnotify.Remove)
}
