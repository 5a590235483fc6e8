package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/syssam/butterflyc/compiler/gen"
)

// watchAndRegenerate blocks, regenerating whenever the document changes.
// Generation failures are reported and watching continues; editors often
// save intermediate states that do not parse.
func watchAndRegenerate(ctx context.Context, file, out string, backends []gen.Backend, opts []gen.Option) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files on save,
	// which drops a watch registered on the file itself.
	dir := filepath.Dir(file)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	target, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	fmt.Printf("watching %s\n", file)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != target {
				continue
			}
			if err := run(ctx, file, out, backends, opts, false); err != nil {
				fmt.Fprintf(os.Stderr, "butterflyc: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "butterflyc: watch: %v\n", err)
		}
	}
}
