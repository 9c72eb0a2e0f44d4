// Package mutagens maps the syntactic shape of a function's return type to
// replacement expressions for its body.
package mutagens

import (
	m "gooze.dev/pkg/rooze/internal/model"
)

// ReturnShape is the syntactic category of a declared return type. It is
// decided from the written type alone, without resolving any names.
type ReturnShape int

// Available ReturnShape values.
const (
	// ShapeNone is a function with no `->` at all.
	ShapeNone ReturnShape = iota
	// ShapeNever is `-> !`.
	ShapeNever
	// ShapeBool is `-> bool`.
	ShapeBool
	// ShapeString is the bare path `String`.
	ShapeString
	// ShapeResult is any path whose last segment is `Result`.
	ShapeResult
	// ShapeStr is `&str`, with or without a lifetime.
	ShapeStr
	// ShapeRef is any other shared reference.
	ShapeRef
	// ShapeMutRef is any `&mut` reference.
	ShapeMutRef
	// ShapeOther is everything else.
	ShapeOther
)

var shapeNames = map[ReturnShape]string{
	ShapeNone:   "none",
	ShapeNever:  "never",
	ShapeBool:   "bool",
	ShapeString: "String",
	ShapeResult: "Result",
	ShapeStr:    "&str",
	ShapeRef:    "&T",
	ShapeMutRef: "&mut T",
	ShapeOther:  "other",
}

func (s ReturnShape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}

	return "unknown"
}

// defaultValue is `Default::default()`.
func defaultValue() []m.TokenTree {
	return m.Tokens(
		[]m.TokenTree{m.Ident("Default")},
		m.Punct("::"),
		[]m.TokenTree{m.Ident("default"), m.Group(m.DelimParen)},
	)
}

// call is `name(args)` where name may be a path such as `Box::new`.
func call(path []m.TokenTree, args ...m.TokenTree) []m.TokenTree {
	return m.Tokens(path, []m.TokenTree{m.Group(m.DelimParen, args...)})
}

func path(segments ...string) []m.TokenTree {
	var out []m.TokenTree

	for i, seg := range segments {
		if i > 0 {
			out = append(out, m.Punct("::")...)
		}

		out = append(out, m.Ident(seg))
	}

	return out
}
