// Package model defines the data structures for mutation testing.
package model

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Genre represents the category of mutation.
type Genre string

const (
	// GenreFnValue replaces the whole body of a function with a value of its
	// return type.
	GenreFnValue Genre = "FnValue"
)

const changedMarker = "/* ~ changed by rooze ~ */"

// Mutant is one candidate replacement of one function's return value.
//
// Mutants are created by discovery and never modified afterwards.
type Mutant struct {
	sourceFile   *SourceFile
	functionName string
	returnType   string
	replacement  string
	span         Span
	genre        Genre
}

// NewMutant builds a Mutant.
func NewMutant(sourceFile *SourceFile, functionName, returnType, replacement string, span Span, genre Genre) *Mutant {
	return &Mutant{
		sourceFile:   sourceFile,
		functionName: functionName,
		returnType:   returnType,
		replacement:  replacement,
		span:         span,
		genre:        genre,
	}
}

// SourceFile returns the file containing the mutated function.
func (mu *Mutant) SourceFile() *SourceFile { return mu.sourceFile }

// FunctionName returns the namespace-qualified function name, e.g. "Foo::bar".
func (mu *Mutant) FunctionName() string { return mu.functionName }

// ReturnType returns the return type as written, e.g. "-> bool", or "".
func (mu *Mutant) ReturnType() string { return mu.returnType }

// Replacement returns the replacement expression.
func (mu *Mutant) Replacement() string { return mu.replacement }

// Span returns the span of the function body that is replaced.
func (mu *Mutant) Span() Span { return mu.span }

// Genre returns the kind of mutation.
func (mu *Mutant) Genre() Genre { return mu.genre }

// DescribeChange returns a one-line description of the change, without the
// file location.
func (mu *Mutant) DescribeChange() string {
	var b strings.Builder

	b.WriteString("replace ")
	b.WriteString(mu.functionName)

	if mu.returnType != "" {
		b.WriteString(" ")
		b.WriteString(mu.returnType)
	}

	b.WriteString(" with ")
	b.WriteString(mu.replacement)

	return b.String()
}

// Name returns the mutant's display name, optionally including the line.
func (mu *Mutant) Name(showLine bool) string {
	if showLine {
		return fmt.Sprintf("%s:%d: %s", mu.sourceFile.Path(), mu.span.Start.Line, mu.DescribeChange())
	}

	return fmt.Sprintf("%s: %s", mu.sourceFile.Path(), mu.DescribeChange())
}

// String returns the display identity used by name filters.
func (mu *Mutant) String() string {
	return mu.Name(true)
}

// MutatedCode returns the whole source file with this mutant applied.
func (mu *Mutant) MutatedCode() string {
	return ReplaceRegion(
		mu.sourceFile.Code(),
		mu.span,
		fmt.Sprintf("{\n%s %s\n}", mu.replacement, changedMarker),
	)
}

// Diff returns a unified diff from the original file to the mutated one.
func (mu *Mutant) Diff() (string, error) {
	path := mu.sourceFile.Path()

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(mu.sourceFile.Code()),
		B:        difflib.SplitLines(mu.MutatedCode()),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("failed to diff %s: %w", path, err)
	}

	return diff, nil
}

// Discovered holds the mutants and files found by one walk of a source tree.
//
// Files are listed separately so that files without any mutants still show up.
type Discovered struct {
	Mutants []*Mutant
	Files   []*SourceFile
}
