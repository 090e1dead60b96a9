package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watch monitors dir for created or rewritten DIMACS instance files
// (*.dimacs, *.max) and invokes handle for each one. Handler failures are
// logged and do not stop the watch; the loop runs until ctx is canceled or
// the underlying watcher dies.
//
// Hidden files are skipped, which also covers the dot-prefixed temporary
// files the atomic DIMACS writer creates.
func Watch(ctx context.Context, dir string, logger *log.Logger, handle func(path string) error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("cli: watcher: %w", err)
	}
	defer w.Close()

	if err = w.Add(dir); err != nil {
		return fmt.Errorf("cli: watch %s: %w", dir, err)
	}
	logger.Info("watching for instance files", "dir", dir)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 || !isInstanceFile(ev.Name) {
				continue
			}
			logger.Debug("instance file event", "op", ev.Op.String(), "path", ev.Name)
			if err = handle(ev.Name); err != nil {
				logger.Error("handler failed", "path", ev.Name, "err", err)
			}
		case werr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "err", werr)
		}
	}
}

// isInstanceFile reports whether path names a visible DIMACS instance file.
func isInstanceFile(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	switch filepath.Ext(base) {
	case ".dimacs", ".max":
		return true
	}

	return false
}
