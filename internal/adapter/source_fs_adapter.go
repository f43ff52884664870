// Package adapter contains UI and infrastructure adapters for the jia CLI.
package adapter

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	m "github.com/LukeInkster/JavaInheritanceAnalysis/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain
// layer relies on when scanning a corpus. It hides direct `os` access so the
// scanning logic can be tested against temporary trees.
type SourceFSAdapter interface {
	// ListProjectDirs returns the immediate subdirectories of root, sorted by
	// name. Each one is a project.
	ListProjectDirs(ctx context.Context, root m.Path) ([]m.Path, error)

	// ListSources recursively collects the files under dir whose name ends
	// with ext, skipping any path (relative to dir) that matches one of the
	// exclude globs. The result is sorted.
	ListSources(ctx context.Context, dir m.Path, ext string, exclude []string) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// WriteFile writes content to path, creating missing parent directories.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error
}

// LocalSourceFSAdapter backs SourceFSAdapter with the local filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ListProjectDirs implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) ListProjectDirs(ctx context.Context, root m.Path) ([]m.Path, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(string(root))
	if err != nil {
		return nil, fmt.Errorf("listing projects in %s: %w", root, err)
	}

	var dirs []m.Path

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dirs = append(dirs, m.Path(filepath.Join(string(root), entry.Name())))
	}

	sort.Slice(dirs, func(i, j int) bool { return dirs[i] < dirs[j] })

	return dirs, nil
}

// ListSources implements SourceFSAdapter. Unreadable subdirectories are
// skipped rather than failing the whole project.
func (a *LocalSourceFSAdapter) ListSources(ctx context.Context, dir m.Path, ext string, exclude []string) ([]m.Path, error) {
	for _, pattern := range exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	root := string(dir)

	var files []m.Path

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			if path == root {
				return err
			}

			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}

		if rel != "." && excluded(filepath.ToSlash(rel), exclude) {
			if d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if d.IsDir() || !strings.HasSuffix(d.Name(), ext) {
			return nil
		}

		files = append(files, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing sources in %s: %w", dir, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}

func excluded(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}

	return false
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}
