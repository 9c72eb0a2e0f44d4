package adapter

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sort"

	"github.com/pelletier/go-toml/v2"

	m "gooze.dev/pkg/rooze/internal/model"
)

const manifestName = "Cargo.toml"

// Tool knows how a build system lays out a source tree: which files are the
// roots of the module graph, and how to load a file discovered later.
type Tool interface {
	// RootFiles returns the entry files of every target under root.
	RootFiles(ctx context.Context, root m.Path) ([]*m.SourceFile, error)

	// NewSourceFile loads a file found by following a module reference. It
	// belongs to the same package as the file that referenced it.
	NewSourceFile(ctx context.Context, root m.Path, relativePath string, pkg *m.Package) (*m.SourceFile, error)
}

// CargoTool finds root files by reading Cargo manifests directly, without
// running cargo.
type CargoTool struct {
	fs SourceFSAdapter
}

// NewCargoTool constructs a CargoTool reading through fs.
func NewCargoTool(fs SourceFSAdapter) *CargoTool {
	return &CargoTool{fs: fs}
}

type cargoManifest struct {
	Package   *cargoPackage   `toml:"package"`
	Lib       *cargoTarget    `toml:"lib"`
	Bin       []cargoTarget   `toml:"bin"`
	Workspace *cargoWorkspace `toml:"workspace"`
}

type cargoPackage struct {
	Name string `toml:"name"`
}

type cargoTarget struct {
	Name string `toml:"name"`
	Path string `toml:"path"`
}

type cargoWorkspace struct {
	Members []string `toml:"members"`
	Exclude []string `toml:"exclude"`
}

// RootFiles reads root/Cargo.toml, and any workspace members it lists, and
// returns the lib and bin entry files sorted by path.
func (c *CargoTool) RootFiles(ctx context.Context, root m.Path) ([]*m.SourceFile, error) {
	byPath := make(map[string]*m.SourceFile)
	seen := make(map[string]bool)

	if err := c.collectPackage(ctx, root, "", byPath, seen); err != nil {
		return nil, err
	}

	files := make([]*m.SourceFile, 0, len(byPath))
	for _, f := range byPath {
		files = append(files, f)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path() < files[j].Path()
	})

	return files, nil
}

// NewSourceFile reads root/relativePath.
func (c *CargoTool) NewSourceFile(ctx context.Context, root m.Path, relativePath string, pkg *m.Package) (*m.SourceFile, error) {
	code, err := c.fs.ReadFile(ctx, c.fs.JoinPath(root, relativePath))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", relativePath, err)
	}

	return m.NewSourceFile(relativePath, string(code), pkg), nil
}

func (c *CargoTool) collectPackage(ctx context.Context, root m.Path, dir string, byPath map[string]*m.SourceFile, seen map[string]bool) error {
	manifestPath := path.Join(dir, manifestName)
	if seen[manifestPath] {
		return nil
	}

	seen[manifestPath] = true

	manifest, err := c.readManifest(ctx, root, manifestPath)
	if err != nil {
		return err
	}

	if manifest.Package != nil {
		pkg := m.NewPackage(manifest.Package.Name, manifestPath)

		for _, target := range c.targetPaths(ctx, root, dir, manifest) {
			if _, ok := byPath[target]; ok {
				continue
			}

			file, err := c.NewSourceFile(ctx, root, target, pkg)
			if err != nil {
				return err
			}

			byPath[target] = file
		}
	}

	if manifest.Workspace == nil {
		return nil
	}

	members, err := c.workspaceMembers(ctx, root, dir, manifest.Workspace)
	if err != nil {
		return err
	}

	for _, member := range members {
		if err := c.collectPackage(ctx, root, member, byPath, seen); err != nil {
			return err
		}
	}

	return nil
}

func (c *CargoTool) readManifest(ctx context.Context, root m.Path, manifestPath string) (*cargoManifest, error) {
	data, err := c.fs.ReadFile(ctx, c.fs.JoinPath(root, manifestPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", manifestPath, err)
	}

	var manifest cargoManifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("failed to parse manifest %s at %d:%d: %w", manifestPath, row, col, err)
		}

		return nil, fmt.Errorf("failed to parse manifest %s: %w", manifestPath, err)
	}

	return &manifest, nil
}

// targetPaths lists the lib and bin entry files of one package, following
// cargo's defaults when the manifest does not name them.
func (c *CargoTool) targetPaths(ctx context.Context, root m.Path, dir string, manifest *cargoManifest) []string {
	var paths []string

	addIfFile := func(rel string) {
		if c.fs.IsFile(ctx, c.fs.JoinPath(root, rel)) {
			paths = append(paths, rel)
		}
	}

	if manifest.Lib != nil && manifest.Lib.Path != "" {
		addIfFile(path.Join(dir, manifest.Lib.Path))
	} else {
		addIfFile(path.Join(dir, "src", "lib.rs"))
	}

	addIfFile(path.Join(dir, "src", "main.rs"))

	for _, bin := range manifest.Bin {
		if bin.Path != "" {
			addIfFile(path.Join(dir, bin.Path))
		}
	}

	for _, pattern := range []string{"src/bin/*.rs", "src/bin/*/main.rs"} {
		matches, err := c.fs.Glob(ctx, root, path.Join(dir, pattern))
		if err != nil {
			continue
		}

		for _, match := range matches {
			addIfFile(match)
		}
	}

	return paths
}

func (c *CargoTool) workspaceMembers(ctx context.Context, root m.Path, dir string, ws *cargoWorkspace) ([]string, error) {
	excluded := make(map[string]bool, len(ws.Exclude))
	for _, e := range ws.Exclude {
		excluded[path.Join(dir, e)] = true
	}

	var members []string

	for _, pattern := range ws.Members {
		matches, err := c.fs.Glob(ctx, root, path.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("bad workspace member pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if excluded[match] || match == dir {
				continue
			}

			if c.fs.IsFile(ctx, c.fs.JoinPath(root, path.Join(match, manifestName))) {
				members = append(members, match)
			}
		}
	}

	return members, nil
}
