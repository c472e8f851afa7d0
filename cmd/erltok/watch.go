package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchFile re-tokenizes path every time it changes on disk, printing the
// new token stream to out. It blocks until the watcher's event channel
// closes (never, in practice — callers Ctrl+C out). Debounced the same way
// this codebase's dev-mode reload watcher debounces rapid saves.
func watchFile(out, errOut io.Writer, path, encoding string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	logInfo(out, "watching %s", path)
	runOnce(out, errOut, path, encoding)

	const debounce = 100 * time.Millisecond
	var mu sync.Mutex
	var lastChange time.Time

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			mu.Lock()
			if time.Since(lastChange) < debounce {
				mu.Unlock()
				continue
			}
			lastChange = time.Now()
			mu.Unlock()

			logInfo(out, "changed: %s", path)
			runOnce(out, errOut, path, encoding)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logError(errOut, "watcher error: %v", err)
		}
	}
}

func runOnce(out, errOut io.Writer, path, encoding string) {
	data, err := os.ReadFile(path)
	if err != nil {
		logError(errOut, "reading %s: %v", path, err)
		return
	}
	text, err := decodeSource(data, encoding)
	if err != nil {
		logError(errOut, "%v", err)
		return
	}
	tokenizeAndPrint(out, text, path)
}

func logInfo(out io.Writer, format string, args ...any) {
	fmt.Fprintf(out, "[watch] "+format+"\n", args...)
}

func logError(errOut io.Writer, format string, args ...any) {
	fmt.Fprintf(errOut, "[watch error] "+format+"\n", args...)
}
