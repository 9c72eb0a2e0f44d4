// Package adapter contains parser and infrastructure adapters for rooze.
package adapter

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	lru "github.com/hashicorp/golang-lru/v2"

	m "gooze.dev/pkg/rooze/internal/model"
)

// defaultProbeCacheSize bounds the number of remembered IsFile answers.
const defaultProbeCacheSize = 4096

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects. It intentionally hides direct `os`
// access so the discovery logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// IsFile reports whether path exists and is a regular file.
	IsFile(ctx context.Context, path m.Path) bool

	// Glob returns the slash-separated paths under root matching pattern,
	// relative to root and sorted.
	Glob(ctx context.Context, root m.Path, pattern string) ([]string, error)

	// JoinPath joins a root and a slash-separated relative path.
	JoinPath(root m.Path, rel string) m.Path
}

// LocalSourceFSAdapter is the concrete implementation that backs the
// SourceFSAdapter interface with the local disk.
type LocalSourceFSAdapter struct {
	probes *lru.Cache[m.Path, bool]
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into discovery.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	probes, err := lru.New[m.Path, bool](defaultProbeCacheSize)
	if err != nil {
		// Only reachable with a non-positive size.
		panic(err)
	}

	return &LocalSourceFSAdapter{probes: probes}
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.ReadFile(string(path))
}

// IsFile reports whether path is an existing regular file. Answers are
// cached, since module resolution probes the same candidates repeatedly.
func (a *LocalSourceFSAdapter) IsFile(_ context.Context, path m.Path) bool {
	if isFile, ok := a.probes.Get(path); ok {
		return isFile
	}

	info, err := os.Stat(string(path))
	isFile := err == nil && info.Mode().IsRegular()
	a.probes.Add(path, isFile)

	return isFile
}

// Glob expands a doublestar pattern below root.
func (a *LocalSourceFSAdapter) Glob(ctx context.Context, root m.Path, pattern string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matches, err := doublestar.Glob(os.DirFS(string(root)), pattern)
	if err != nil {
		return nil, err
	}

	sort.Strings(matches)

	return matches, nil
}

// JoinPath joins root with a slash-separated relative path.
func (a *LocalSourceFSAdapter) JoinPath(root m.Path, rel string) m.Path {
	return m.Path(filepath.Join(string(root), filepath.FromSlash(rel)))
}
