package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lc(line, column int) LineColumn {
	return LineColumn{Line: line, Column: column}
}

func TestReplaceRegion(t *testing.T) {
	tests := []struct {
		name        string
		code        string
		span        Span
		replacement string
		want        string
	}{
		{
			name:        "single line",
			code:        "fn f() -> u8 { 1 }\n",
			span:        Span{Start: lc(1, 14), End: lc(1, 19)},
			replacement: "{ 2 }",
			want:        "fn f() -> u8 { 2 }\n",
		},
		{
			name:        "multi line",
			code:        "fn f() {\n    a();\n}\nfn g() {}\n",
			span:        Span{Start: lc(1, 8), End: lc(3, 2)},
			replacement: "{}",
			want:        "fn f() {}\nfn g() {}\n",
		},
		{
			name:        "counts characters not bytes",
			code:        "// é\nfn f() -> &'static str { \"é\" }\n",
			span:        Span{Start: lc(2, 24), End: lc(2, 31)},
			replacement: "{ \"\" }",
			want:        "// é\nfn f() -> &'static str { \"\" }\n",
		},
		{
			name:        "at end of file",
			code:        "ab",
			span:        Span{Start: lc(1, 3), End: lc(1, 3)},
			replacement: "c",
			want:        "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReplaceRegion(tt.code, tt.span, tt.replacement))
		})
	}
}

func TestSpan_String(t *testing.T) {
	assert.Equal(t, "1:8-3:2", Span{Start: lc(1, 8), End: lc(3, 2)}.String())
}

func TestMutant(t *testing.T) {
	file := NewSourceFile("src/lib.rs", "struct S;\nimpl S {\n    fn ok(&self) -> bool {\n        true\n    }\n}\n", NewPackage("demo", ""))
	mutant := NewMutant(file, "S::ok", "-> bool", "false", Span{Start: lc(3, 26), End: lc(5, 6)}, GenreFnValue)

	assert.Equal(t, "replace S::ok -> bool with false", mutant.DescribeChange())
	assert.Equal(t, "src/lib.rs:3: replace S::ok -> bool with false", mutant.Name(true))
	assert.Equal(t, "src/lib.rs: replace S::ok -> bool with false", mutant.Name(false))
	assert.Equal(t, mutant.Name(true), mutant.String())
	assert.Same(t, file, mutant.SourceFile())
	assert.Equal(t, GenreFnValue, mutant.Genre())

	assert.Equal(t,
		"struct S;\nimpl S {\n    fn ok(&self) -> bool {\nfalse /* ~ changed by rooze ~ */\n}\n}\n",
		mutant.MutatedCode())

	diff, err := mutant.Diff()
	require.NoError(t, err)
	assert.Contains(t, diff, "--- a/src/lib.rs\n+++ b/src/lib.rs\n")
	assert.Contains(t, diff, "-        true\n")
	assert.Contains(t, diff, "+false /* ~ changed by rooze ~ */\n")

	// The original file is untouched.
	assert.Contains(t, file.Code(), "        true\n")
}

func TestMutant_UnitReturnHasNoArrow(t *testing.T) {
	file := NewSourceFile("src/main.rs", "fn main() {\n    run();\n}\n", nil)
	mutant := NewMutant(file, "main", "", "()", Span{Start: lc(1, 11), End: lc(3, 2)}, GenreFnValue)

	assert.Equal(t, "src/main.rs:1: replace main with ()", mutant.Name(true))
}
