package mutagens

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "gooze.dev/pkg/rooze/internal/model"
)

func render(replacements [][]m.TokenTree) []string {
	rendered := make([]string, 0, len(replacements))
	for _, tokens := range replacements {
		rendered = append(rendered, m.PrettyTokens(tokens))
	}

	return rendered
}

func TestReturnValueReplacements(t *testing.T) {
	anyhow := m.Tokens(
		[]m.TokenTree{m.Ident("anyhow")},
		m.Punct("!"),
		[]m.TokenTree{m.Group(m.DelimParen, m.Literal(`"oh no"`))},
	)

	tests := []struct {
		shape       ReturnShape
		errorValues [][]m.TokenTree
		want        []string
	}{
		{shape: ShapeNone, want: []string{"()"}},
		{shape: ShapeNever, want: []string{}},
		{shape: ShapeBool, want: []string{"true", "false"}},
		{shape: ShapeString, want: []string{"String::new()", `"xyzzy".into()`}},
		{shape: ShapeResult, want: []string{"Ok(Default::default())"}},
		{
			shape:       ShapeResult,
			errorValues: [][]m.TokenTree{anyhow, {m.Ident("e")}},
			want:        []string{"Ok(Default::default())", `Err(anyhow!("oh no"))`, "Err(e)"},
		},
		{shape: ShapeStr, want: []string{`""`, `"xyzzy"`}},
		{shape: ShapeRef, want: []string{"Box::leak(Box::new(Default::default()))"}},
		{shape: ShapeMutRef, want: []string{"Box::leak(Box::new(Default::default()))"}},
		{shape: ShapeOther, want: []string{"Default::default()"}},
	}

	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, render(ReturnValueReplacements(tt.shape, tt.errorValues)))
		})
	}
}

func TestReturnValueReplacements_ErrorValuesOnlyForResult(t *testing.T) {
	errorValues := [][]m.TokenTree{{m.Ident("e")}}

	for _, shape := range []ReturnShape{ShapeNone, ShapeBool, ShapeString, ShapeStr, ShapeRef, ShapeOther} {
		for _, replacement := range render(ReturnValueReplacements(shape, errorValues)) {
			assert.NotContains(t, replacement, "Err", shape.String())
		}
	}
}

func TestReturnShape_String(t *testing.T) {
	assert.Equal(t, "&mut T", ShapeMutRef.String())
	assert.Equal(t, "unknown", ReturnShape(99).String())
}
