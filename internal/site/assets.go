package site

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/otiai10/copy"
)

// copyAssets mirrors src into dst, skipping paths matched by any exclude glob.
// A missing src is not an error.
func copyAssets(src, dst string, exclude []string) (int, error) {
	if src == "" {
		return 0, nil
	}
	info, err := os.Stat(src)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("stat assets %q: %w", src, err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("assets %q is not a directory", src)
	}

	copied := 0
	opts := copy.Options{
		Skip: func(srcinfo os.FileInfo, path, _ string) (bool, error) {
			rel, err := filepath.Rel(src, path)
			if err != nil || rel == "." {
				return false, err
			}
			if excluded(filepath.ToSlash(rel), exclude) {
				return true, nil
			}
			if !srcinfo.IsDir() {
				copied++
			}
			return false, nil
		},
	}
	if err := copy.Copy(src, dst, opts); err != nil {
		return copied, fmt.Errorf("copy assets: %w", err)
	}
	return copied, nil
}

func excluded(rel string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(p, filepath.Base(rel)); ok {
			return true
		}
	}
	return false
}
