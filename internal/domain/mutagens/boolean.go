package mutagens

import (
	m "gooze.dev/pkg/rooze/internal/model"
)

const (
	trueStr  = "true"
	falseStr = "false"
)

// booleanReplacements returns `true` and `false`.
func booleanReplacements() [][]m.TokenTree {
	return [][]m.TokenTree{
		{m.Ident(trueStr)},
		{m.Ident(falseStr)},
	}
}
