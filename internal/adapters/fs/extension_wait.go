// Package fs holds file-system adapters for the host.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/yqrt/internal/ports"
)

// ErrWaitTimeout is returned when the watched file does not appear in time.
var ErrWaitTimeout = errors.New("timed out waiting for file")

// WaitForFile blocks until path exists, the timeout expires, or ctx is canceled.
// It watches the parent directory, so the file may be created, written or
// renamed into place.
func WaitForFile(ctx context.Context, path string, timeout time.Duration, logger ports.Logger) error {
	if FileExists(path) {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	// The file may have landed between the first check and Add.
	if FileExists(path) {
		return nil
	}

	logger.Info("waiting for extension",
		ports.String("path", path),
		ports.Duration("timeout", timeout),
	)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return fmt.Errorf("%w: %s after %s", ErrWaitTimeout, path, timeout)
		case event, ok := <-watcher.Events:
			if !ok {
				return errors.New("watcher closed")
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			if FileExists(path) {
				logger.Debug("extension appeared", ports.String("path", path))
				return nil
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return errors.New("watcher closed")
			}
			logger.Warn("watcher error", ports.Err(err))
		}
	}
}

// FileExists checks if a regular file exists at the given path.
func FileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
