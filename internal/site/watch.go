package site

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/romdo/go-debounce"

	"github.com/Zachkp/cvsite/internal/cv"
)

const (
	rebuildWait    = 200 * time.Millisecond
	rebuildMaxWait = 2 * time.Second
)

// Watch rebuilds the site whenever the document, the shell directory or the
// asset directory changes. It blocks until ctx is done.
func (b *Builder) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer w.Close()

	var docPath string
	var dirs []string
	if b.opts.Source != "" && !cv.IsRemote(b.opts.Source) {
		if docPath, err = filepath.Abs(b.opts.Source); err != nil {
			return fmt.Errorf("resolve %q: %w", b.opts.Source, err)
		}
		// Editors often replace the file, so watch its directory.
		dirs = append(dirs, filepath.Dir(docPath))
	}
	for _, d := range []string{b.opts.TemplatesDir, b.opts.AssetsDir} {
		if d == "" {
			continue
		}
		if _, err := os.Stat(d); err != nil {
			b.log.Debug().Str("dir", d).Msg("not watching missing directory")
			continue
		}
		dirs = append(dirs, d)
	}
	if len(dirs) == 0 {
		return errors.New("site: nothing to watch")
	}
	for _, d := range dirs {
		if err := w.Add(d); err != nil {
			return fmt.Errorf("watch %q: %w", d, err)
		}
	}

	outDir, err := filepath.Abs(b.opts.OutputDir)
	if err != nil {
		return fmt.Errorf("resolve %q: %w", b.opts.OutputDir, err)
	}

	rebuild, cancel := debounce.NewWithMaxWait(rebuildWait, rebuildMaxWait, func() {
		if _, err := b.Build(ctx); err != nil {
			b.log.Error().Err(err).Msg("rebuild failed")
		}
	})
	defer cancel()

	b.log.Info().Strs("dirs", dirs).Msg("watching for changes")
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevant(ev, docPath, outDir) {
				continue
			}
			b.log.Debug().Str("file", ev.Name).Str("op", ev.Op.String()).Msg("change detected")
			rebuild()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			b.log.Warn().Err(err).Msg("file watcher error")
		}
	}
}

// relevant drops events from the build's own output and from unrelated files
// next to the document.
func relevant(ev fsnotify.Event, docPath, outDir string) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	if abs == outDir || strings.HasPrefix(abs, outDir+string(filepath.Separator)) {
		return false
	}
	if docPath == "" || filepath.Dir(abs) != filepath.Dir(docPath) {
		return true
	}
	return abs == docPath
}
