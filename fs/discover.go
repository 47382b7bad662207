package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/mirrordoc"
)

// cacheDir is where HTTrack keeps its own bookkeeping inside a mirror.
const cacheDir = "hts-cache"

// Discover expands paths into the list of pages to process. Files are
// returned as given, whatever their extension. Directories are walked for
// .html and .htm files, sorted, skipping HTTrack's cache directory.
// Returns ENOTFOUND for a path that does not exist.
func Discover(paths []string) ([]string, error) {
	var pages []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if errors.Is(err, os.ErrNotExist) {
			return nil, mirrordoc.Errorf(mirrordoc.ENOTFOUND, "input %q not found", path)
		} else if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			pages = append(pages, path)
			continue
		}

		found, err := walkPages(path)
		if err != nil {
			return nil, err
		}
		pages = append(pages, found...)
	}
	return pages, nil
}

func walkPages(root string) ([]string, error) {
	var pages []string
	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == cacheDir && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if IsPage(path) {
			pages = append(pages, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(pages)
	return pages, nil
}

// IsPage reports whether path names an HTML page.
func IsPage(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}
