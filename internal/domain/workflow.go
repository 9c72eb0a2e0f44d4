package domain

import (
	"context"
	"fmt"

	"gooze.dev/pkg/rooze/internal/controller"
	m "gooze.dev/pkg/rooze/internal/model"
)

// ListArgs contains the arguments for listing mutants or files.
type ListArgs struct {
	Root    m.Path
	Options Options
	// Files lists visited files instead of mutants.
	Files    bool
	Diff     bool
	Format   controller.Format
	Parallel int
}

// Workflow runs discovery and hands the results to the UI.
type Workflow interface {
	List(ctx context.Context, args ListArgs) error
}

type workflow struct {
	Discoverer
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(discoverer Discoverer, ui controller.UI) Workflow {
	return &workflow{
		Discoverer: discoverer,
		UI:         ui,
	}
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	logger := args.Options.logger()

	discovered, err := w.WalkTree(ctx, args.Root, args.Options)
	if err != nil {
		logger.Error("Failed to discover mutants", "root", args.Root, "error", err)
		return fmt.Errorf("discover mutants: %w", err)
	}

	logger.Info("Discovered mutants", "root", args.Root, "files", len(discovered.Files), "mutants", len(discovered.Mutants))

	if args.Files {
		err = w.DisplayFiles(ctx, discovered, args.Format)
	} else {
		err = w.DisplayMutants(ctx, discovered.Mutants, controller.ListOptions{
			Format:   args.Format,
			Diff:     args.Diff,
			Parallel: args.Parallel,
		})
	}

	if err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}
