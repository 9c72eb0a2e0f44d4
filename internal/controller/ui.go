// Package controller renders discovery results for the command line.
package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "gooze.dev/pkg/rooze/internal/model"
)

// Format selects how listings are written.
type Format string

// Available Format values.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts a format name in any case.
func ParseFormat(value string) (Format, error) {
	switch format := Format(strings.ToLower(strings.TrimSpace(value))); format {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return format, nil
	}

	return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", value)
}

// ListOptions controls DisplayMutants.
type ListOptions struct {
	Format Format
	// Diff adds the unified diff of each mutant.
	Diff bool
	// Parallel bounds the number of diffs rendered at once. Zero means no
	// limit.
	Parallel int
}

// UI defines the interface for displaying discovery results.
// Implementations can use different output methods (plain text, structured).
type UI interface {
	DisplayMutants(ctx context.Context, mutants []*m.Mutant, options ListOptions) error
	DisplayFiles(ctx context.Context, discovered *m.Discovered, format Format) error
}

// NewUI returns the UI for cmd's output. Styling is only applied when
// writing to a terminal.
func NewUI(cmd *cobra.Command, tty bool) UI {
	return NewSimpleUI(cmd, tty)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
