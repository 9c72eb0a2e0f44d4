// Package domain contains the mutant discovery walk and its rules.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gooze.dev/pkg/rooze/internal/adapter"
	m "gooze.dev/pkg/rooze/internal/model"
)

// ErrCancelled is returned when the context is done before the walk
// finishes. It wraps the context's own error.
var ErrCancelled = errors.New("discovery cancelled")

// Options configures a discovery walk.
type Options struct {
	// ExamineGlobs, if non-empty, limits mutants to files matching one of
	// these globs.
	ExamineGlobs []string
	// ExcludeGlobs drops mutants from files matching any of these globs.
	ExcludeGlobs []string
	// ExamineNames, if non-empty, limits mutants to names matching one of
	// these regexes.
	ExamineNames []string
	// ExcludeNames drops mutants whose name matches any of these regexes.
	ExcludeNames []string
	// ErrorValues are Rust expressions used as `Err(...)` replacements in
	// functions returning Result.
	ErrorValues []string
	// Logger receives debug and warning messages. Defaults to slog.Default().
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.Default()
}

// Discoverer finds every mutant in a source tree.
type Discoverer interface {
	// WalkTree visits the root files of the tree at root and every module
	// file they reach, returning the filtered mutants and all visited files.
	WalkTree(ctx context.Context, root m.Path, options Options) (*m.Discovered, error)
}

type discoverer struct {
	adapter.Tool
	adapter.SourceFSAdapter
	adapter.RustFileAdapter
}

// NewDiscoverer creates a new Discoverer instance.
func NewDiscoverer(tool adapter.Tool, sourceFSAdapter adapter.SourceFSAdapter, rustFileAdapter adapter.RustFileAdapter) Discoverer {
	return &discoverer{
		Tool:            tool,
		SourceFSAdapter: sourceFSAdapter,
		RustFileAdapter: rustFileAdapter,
	}
}

func (d *discoverer) WalkTree(ctx context.Context, root m.Path, options Options) (*m.Discovered, error) {
	if d.Tool == nil || d.SourceFSAdapter == nil || d.RustFileAdapter == nil {
		return nil, fmt.Errorf("missing adapters")
	}

	logger := options.logger()

	filters, err := NewFilters(options)
	if err != nil {
		return nil, err
	}

	queue, err := d.RootFiles(ctx, root)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return nil, fmt.Errorf("%w: %w", ErrCancelled, err)
		}

		return nil, fmt.Errorf("failed to find root files in %s: %w", root, err)
	}

	discovered := &m.Discovered{}

	for len(queue) > 0 {
		sourceFile := queue[0]
		queue = queue[1:]

		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCancelled, err)
		}

		// Once a file is started it is finished, module files included.
		fileCtx := context.WithoutCancel(ctx)

		fileMutants, moreFiles, err := d.walkFile(fileCtx, root, sourceFile, options.ErrorValues, logger)
		if err != nil {
			return nil, err
		}

		// Files below an excluded file are still walked: the filter may
		// include them.
		for _, relativePath := range moreFiles {
			child, err := d.NewSourceFile(fileCtx, root, relativePath, sourceFile.Package())
			if err != nil {
				return nil, fmt.Errorf("failed to load module file %s: %w", relativePath, err)
			}

			queue = append(queue, child)
		}

		if filters.PathIncluded(sourceFile.Path()) {
			discovered.Mutants = append(discovered.Mutants, filters.FilterMutants(fileMutants)...)
		} else {
			logger.Debug("file excluded by path filters", "path", sourceFile.Path(), "mutants", len(fileMutants))
		}

		discovered.Files = append(discovered.Files, sourceFile)
	}

	return discovered, nil
}

// walkFile parses and visits one file. ctx must not be cancellable:
// cancellation is only observed between files.
func (d *discoverer) walkFile(ctx context.Context, root m.Path, sourceFile *m.SourceFile, errorValues []string, logger *slog.Logger) ([]*m.Mutant, []string, error) {
	logger.Debug("visit source file", "path", sourceFile.Path())

	parsed, err := d.Parse(ctx, sourceFile.Path(), []byte(sourceFile.Code()))
	if err != nil {
		return nil, nil, err
	}
	defer parsed.Close()

	errorExprs := make([][]m.TokenTree, 0, len(errorValues))

	for _, value := range errorValues {
		tokens, err := d.ParseExpr(ctx, value)
		if err != nil {
			return nil, nil, err
		}

		errorExprs = append(errorExprs, tokens)
	}

	visitor := &discoveryVisitor{
		ctx:         ctx,
		root:        root,
		sourceFile:  sourceFile,
		src:         parsed.Source,
		parser:      d.RustFileAdapter,
		fs:          d.SourceFSAdapter,
		logger:      logger,
		errorValues: errorExprs,
	}

	visitor.walkChildren(parsed.Root, ownerNone)

	if len(visitor.namespaceStack) != 0 {
		panic(fmt.Sprintf("namespace stack not empty after visiting %s: %v", sourceFile.Path(), visitor.namespaceStack))
	}

	return visitor.mutants, visitor.moreFiles, nil
}
