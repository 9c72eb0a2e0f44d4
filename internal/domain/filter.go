package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	m "gooze.dev/pkg/rooze/internal/model"
)

// Filters decides which files and mutant names survive discovery.
type Filters struct {
	examineGlobs []string
	excludeGlobs []string
	examineNames []*regexp.Regexp
	excludeNames []*regexp.Regexp
}

// NewFilters compiles the glob and regex filters in options. An invalid
// pattern is reported rather than silently matching nothing.
func NewFilters(options Options) (*Filters, error) {
	examineGlobs, err := compileGlobs(options.ExamineGlobs)
	if err != nil {
		return nil, err
	}

	excludeGlobs, err := compileGlobs(options.ExcludeGlobs)
	if err != nil {
		return nil, err
	}

	examineNames, err := compileRegexes(options.ExamineNames)
	if err != nil {
		return nil, err
	}

	excludeNames, err := compileRegexes(options.ExcludeNames)
	if err != nil {
		return nil, err
	}

	return &Filters{
		examineGlobs: examineGlobs,
		excludeGlobs: excludeGlobs,
		examineNames: examineNames,
		excludeNames: excludeNames,
	}, nil
}

// PathIncluded reports whether mutants from the tree-relative path should
// be kept. An empty examine set includes everything.
func (f *Filters) PathIncluded(relativePath string) bool {
	relativePath = filepath.ToSlash(relativePath)

	if len(f.examineGlobs) > 0 && !matchAnyGlob(f.examineGlobs, relativePath) {
		return false
	}

	return !matchAnyGlob(f.excludeGlobs, relativePath)
}

// NameIncluded reports whether a mutant with the given display name should
// be kept.
func (f *Filters) NameIncluded(name string) bool {
	if len(f.examineNames) > 0 && !matchAnyRegex(f.examineNames, name) {
		return false
	}

	return !matchAnyRegex(f.excludeNames, name)
}

// FilterMutants keeps the mutants whose display name passes the name
// filters, in their original order.
func (f *Filters) FilterMutants(mutants []*m.Mutant) []*m.Mutant {
	if len(f.examineNames) == 0 && len(f.excludeNames) == 0 {
		return mutants
	}

	kept := make([]*m.Mutant, 0, len(mutants))

	for _, mutant := range mutants {
		if f.NameIncluded(mutant.Name(true)) {
			kept = append(kept, mutant)
		}
	}

	return kept
}

// compileGlobs expands each pattern so that one without a slash matches at
// any depth and a directory pattern matches everything beneath it.
func compileGlobs(patterns []string) ([]string, error) {
	globs := make([]string, 0, 2*len(patterns))

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if !strings.Contains(pattern, "/") {
			pattern = "**/" + pattern
		}

		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid glob pattern %q", pattern)
		}

		globs = append(globs, pattern, strings.TrimSuffix(pattern, "/")+"/**")
	}

	return globs, nil
}

func compileRegexes(patterns []string) ([]*regexp.Regexp, error) {
	regexes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid name regex %q: %w", pattern, err)
		}

		regexes = append(regexes, re)
	}

	return regexes, nil
}

func matchAnyGlob(globs []string, relativePath string) bool {
	for _, glob := range globs {
		if doublestar.MatchUnvalidated(glob, relativePath) {
			return true
		}
	}

	return false
}

func matchAnyRegex(regexes []*regexp.Regexp, name string) bool {
	for _, re := range regexes {
		if re.MatchString(name) {
			return true
		}
	}

	return false
}
