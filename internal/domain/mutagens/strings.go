package mutagens

import (
	m "gooze.dev/pkg/rooze/internal/model"
)

// sentinelStr is the non-empty string returned by string mutants.
const sentinelStr = `"xyzzy"`

// stringReplacements returns `String::new()` and `"xyzzy".into()`.
func stringReplacements() [][]m.TokenTree {
	return [][]m.TokenTree{
		call(path("String", "new")),
		m.Tokens(
			[]m.TokenTree{m.Literal(sentinelStr)},
			m.Punct("."),
			call([]m.TokenTree{m.Ident("into")}),
		),
	}
}

// strReplacements returns `""` and `"xyzzy"`.
func strReplacements() [][]m.TokenTree {
	return [][]m.TokenTree{
		{m.Literal(`""`)},
		{m.Literal(sentinelStr)},
	}
}
