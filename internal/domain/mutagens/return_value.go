package mutagens

import (
	m "gooze.dev/pkg/rooze/internal/model"
)

// ReturnValueReplacements returns the replacement expressions for a function
// whose return type has the given shape, in a fixed order. errorValues are
// the parsed configured error expressions, used only for Result.
//
// An empty result means the function cannot be mutated this way.
func ReturnValueReplacements(shape ReturnShape, errorValues [][]m.TokenTree) [][]m.TokenTree {
	switch shape {
	case ShapeNone:
		return [][]m.TokenTree{{m.Group(m.DelimParen)}}
	case ShapeNever:
		// A function that never returns could only be replaced by one that
		// loops or panics, which tells us nothing.
		return nil
	case ShapeBool:
		return booleanReplacements()
	case ShapeString:
		return stringReplacements()
	case ShapeResult:
		return resultReplacements(errorValues)
	case ShapeStr:
		return strReplacements()
	case ShapeRef, ShapeMutRef:
		return [][]m.TokenTree{leakedDefault()}
	case ShapeOther:
	}

	return [][]m.TokenTree{defaultValue()}
}
