package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/rooze/internal/model"
)

func TestFilters_PathIncluded(t *testing.T) {
	tests := []struct {
		name    string
		options Options
		path    string
		want    bool
	}{
		{name: "no filters", path: "src/lib.rs", want: true},
		{name: "bare name at any depth", options: Options{ExamineGlobs: []string{"lib.rs"}}, path: "src/lib.rs", want: true},
		{name: "bare name misses", options: Options{ExamineGlobs: []string{"lib.rs"}}, path: "src/main.rs", want: false},
		{name: "directory", options: Options{ExamineGlobs: []string{"src/net"}}, path: "src/net/tcp/conn.rs", want: true},
		{name: "wildcard", options: Options{ExamineGlobs: []string{"src/*.rs"}}, path: "src/lib.rs", want: true},
		{name: "wildcard does not cross directories", options: Options{ExamineGlobs: []string{"src/*.rs"}}, path: "src/a/b.rs", want: false},
		{name: "exclude wins", options: Options{ExamineGlobs: []string{"src"}, ExcludeGlobs: []string{"*_test.rs"}}, path: "src/a_test.rs", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters, err := NewFilters(tt.options)
			require.NoError(t, err)
			assert.Equal(t, tt.want, filters.PathIncluded(tt.path))
		})
	}
}

func TestFilters_FilterMutantsIsIdempotent(t *testing.T) {
	file := m.NewSourceFile("src/lib.rs", "", m.NewPackage("demo", ""))
	span := m.Span{Start: m.LineColumn{Line: 1, Column: 1}, End: m.LineColumn{Line: 1, Column: 3}}

	mutants := []*m.Mutant{
		m.NewMutant(file, "a", "-> bool", "true", span, m.GenreFnValue),
		m.NewMutant(file, "a", "-> bool", "false", span, m.GenreFnValue),
		m.NewMutant(file, "Foo::b", "", "()", span, m.GenreFnValue),
	}

	filters, err := NewFilters(Options{ExamineNames: []string{"replace a"}, ExcludeNames: []string{"false"}})
	require.NoError(t, err)

	once := filters.FilterMutants(mutants)
	twice := filters.FilterMutants(once)

	require.Len(t, once, 1)
	assert.Equal(t, "src/lib.rs:1: replace a -> bool with true", once[0].Name(true))
	assert.Equal(t, once, twice)
}

func TestNewFilters_InvalidPatterns(t *testing.T) {
	_, err := NewFilters(Options{ExamineGlobs: []string{"src/[.rs"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid glob pattern")

	_, err = NewFilters(Options{ExamineNames: []string{"a("}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid name regex")
}
