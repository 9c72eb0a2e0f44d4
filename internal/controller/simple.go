package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	m "gooze.dev/pkg/rooze/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool
	styles styles
}

type styles struct {
	location    lipgloss.Style
	function    lipgloss.Style
	replacement lipgloss.Style
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, styled bool) *SimpleUI {
	return &SimpleUI{
		cmd:    cmd,
		styled: styled,
		styles: styles{
			location:    lipgloss.NewStyle().Faint(true),
			function:    lipgloss.NewStyle().Bold(true),
			replacement: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		},
	}
}

type mutantRecord struct {
	Package     string  `json:"package" yaml:"package"`
	File        string  `json:"file" yaml:"file"`
	Function    string  `json:"function" yaml:"function"`
	ReturnType  string  `json:"return_type" yaml:"return_type"`
	Replacement string  `json:"replacement" yaml:"replacement"`
	Genre       m.Genre `json:"genre" yaml:"genre"`
	Span        m.Span  `json:"span" yaml:"span"`
	Diff        string  `json:"diff,omitempty" yaml:"diff,omitempty"`
}

type fileRecord struct {
	Path    string `json:"path" yaml:"path"`
	Package string `json:"package" yaml:"package"`
	Mutants int    `json:"mutants" yaml:"mutants"`
}

// DisplayMutants prints one mutant per line, or a structured document.
func (s *SimpleUI) DisplayMutants(ctx context.Context, mutants []*m.Mutant, options ListOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var diffs []string

	if options.Diff {
		var err error

		diffs, err = renderDiffs(ctx, mutants, options.Parallel)
		if err != nil {
			return err
		}
	}

	switch options.Format {
	case FormatJSON, FormatYAML:
		records := make([]mutantRecord, 0, len(mutants))
		for i, mutant := range mutants {
			record := newMutantRecord(mutant)
			if diffs != nil {
				record.Diff = diffs[i]
			}

			records = append(records, record)
		}

		return s.encode(options.Format, records)
	}

	for i, mutant := range mutants {
		s.printf("%s\n", s.renderName(mutant))

		if diffs != nil {
			s.printf("%s\n", diffs[i])
		}
	}

	return nil
}

// DisplayFiles prints every visited file with its mutant count.
func (s *SimpleUI) DisplayFiles(ctx context.Context, discovered *m.Discovered, format Format) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	records := buildFileRecords(discovered)

	switch format {
	case FormatJSON, FormatYAML:
		return s.encode(format, records)
	}

	s.printf("%s", renderFilesTable(records, len(discovered.Mutants)))

	return nil
}

func (s *SimpleUI) renderName(mutant *m.Mutant) string {
	if !s.styled {
		return mutant.Name(true)
	}

	location := fmt.Sprintf("%s:%d:", mutant.SourceFile().Path(), mutant.Span().Start.Line)

	function := mutant.FunctionName()
	if mutant.ReturnType() != "" {
		function += " " + mutant.ReturnType()
	}

	return fmt.Sprintf("%s replace %s with %s",
		s.styles.location.Render(location),
		s.styles.function.Render(function),
		s.styles.replacement.Render(mutant.Replacement()),
	)
}

func (s *SimpleUI) encode(format Format, value any) error {
	var (
		out []byte
		err error
	)

	if format == FormatYAML {
		out, err = yaml.Marshal(value)
	} else {
		out, err = json.MarshalIndent(value, "", "  ")
		out = append(out, '\n')
	}

	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}

	_, err = s.cmd.OutOrStdout().Write(out)

	return err
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// renderDiffs computes the diff of every mutant, in order. Mutants are
// read-only so they can be diffed concurrently.
func renderDiffs(ctx context.Context, mutants []*m.Mutant, parallel int) ([]string, error) {
	diffs := make([]string, len(mutants))

	group, groupCtx := errgroup.WithContext(ctx)
	if parallel > 0 {
		group.SetLimit(parallel)
	}

	for i, mutant := range mutants {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			diff, err := mutant.Diff()
			if err != nil {
				return err
			}

			diffs[i] = diff

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return diffs, nil
}

func newMutantRecord(mutant *m.Mutant) mutantRecord {
	record := mutantRecord{
		File:        mutant.SourceFile().Path(),
		Function:    mutant.FunctionName(),
		ReturnType:  mutant.ReturnType(),
		Replacement: mutant.Replacement(),
		Genre:       mutant.Genre(),
		Span:        mutant.Span(),
	}

	if pkg := mutant.SourceFile().Package(); pkg != nil {
		record.Package = pkg.Name()
	}

	return record
}

// buildFileRecords lists every visited file, including a file reached
// through more than one module path, once per visit.
func buildFileRecords(discovered *m.Discovered) []fileRecord {
	counts := make(map[*m.SourceFile]int, len(discovered.Files))
	for _, mutant := range discovered.Mutants {
		counts[mutant.SourceFile()]++
	}

	records := make([]fileRecord, 0, len(discovered.Files))

	for _, file := range discovered.Files {
		record := fileRecord{Path: file.Path(), Mutants: counts[file]}
		if file.Package() != nil {
			record.Package = file.Package().Name()
		}

		records = append(records, record)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Path < records[j].Path
	})

	return records
}

func renderFilesTable(records []fileRecord, totalMutants int) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Package", "Mutants"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, record := range records {
		table.Append([]string{record.Path, record.Package, fmt.Sprintf("%d", record.Mutants)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(records)),
		"",
		fmt.Sprintf("%d", totalMutants),
	})

	table.Render()

	return tableBuffer.String()
}
