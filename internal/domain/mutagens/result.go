package mutagens

import (
	m "gooze.dev/pkg/rooze/internal/model"
)

// resultReplacements returns `Ok(Default::default())` followed by one
// `Err(..)` per configured error value.
func resultReplacements(errorValues [][]m.TokenTree) [][]m.TokenTree {
	reps := [][]m.TokenTree{
		call(path("Ok"), defaultValue()...),
	}

	for _, errorValue := range errorValues {
		reps = append(reps, call(path("Err"), errorValue...))
	}

	return reps
}
