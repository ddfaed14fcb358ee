package main

import "time"
import "context"
import "path/filepath"

import "github.com/fsnotify/fsnotify"

import "github.com/tinne26/fixmath/internal/log"

// Editors often fire several events for a single save, so
// events are merged until none arrives for this long.
const watchSettleTime = 100*time.Millisecond

// Calls rerun each time the file at path changes, until the
// context is done. Errors returned by rerun are logged, not
// returned, so a broken script can be fixed while watching.
func watchFile(ctx context.Context, path string, logger *log.Logger, rerun func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil { return err }
	defer watcher.Close()

	// watching the directory survives editors that replace the file
	err = watcher.Add(filepath.Dir(path))
	if err != nil { return err }
	logger.Infof("watching %s", path)
	return watchLoop(ctx, filepath.Clean(path), watcher.Events, watcher.Errors, watchSettleTime, logger, rerun)
}

func watchLoop(ctx context.Context, path string, events <-chan fsnotify.Event, errs <-chan error, settle time.Duration, logger *log.Logger, rerun func() error) error {
	timer := time.NewTimer(settle)
	if !timer.Stop() { <-timer.C }
	pending := false

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case event, ok := <-events:
			if !ok { return nil }
			if filepath.Clean(event.Name) != path { continue }
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) { continue }
			logger.Debugf("watch: %s", event)
			if pending && !timer.Stop() { <-timer.C }
			timer.Reset(settle)
			pending = true
		case err, ok := <-errs:
			if !ok { return nil }
			logger.Infof("watch error: %s", err)
		case <-timer.C:
			pending = false
			if err := rerun(); err != nil {
				logger.Infof("%s", err)
			}
		}
	}
}
