package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	m "gooze.dev/pkg/rooze/internal/model"
)

var errAttrShape = errors.New("attribute is not in conventional form")

// attribute is an outer `#[...]` or inner `#![...]` attribute reduced to its
// path and the tokens inside its argument parentheses.
type attribute struct {
	path []string
	// args are the tokens inside `(...)`; hasArgs is false for `#[test]` or
	// `#[path = "x"]`.
	args    []m.TokenTree
	hasArgs bool
	text    string
}

// attrsExcluded reports whether any attribute means the item and everything
// nested inside it should be skipped.
func attrsExcluded(attrs []attribute, logger *slog.Logger) bool {
	for _, attr := range attrs {
		if attrIsCfgTest(attr, logger) || attrIsTest(attr) || attrIsMutantsSkip(attr, logger) {
			return true
		}
	}

	return false
}

// attrIsCfgTest is true for `#[cfg(test)]` and for any `cfg` whose meta list
// names `test` directly.
func attrIsCfgTest(attr attribute, logger *slog.Logger) bool {
	if !pathIs(attr.path, "cfg") {
		return false
	}

	containsTest := false

	err := parseNestedMeta(attr, func(path []string) {
		if pathIs(path, "test") {
			containsTest = true
		}
	})
	if err != nil {
		logger.Debug("Attribute is not in conventional form; skipped", "attr", attr.text, "error", err)
		return false
	}

	return containsTest
}

// attrIsTest is true for `#[test]`.
func attrIsTest(attr attribute) bool {
	return pathIs(attr.path, "test")
}

// attrIsMutantsSkip is true for `#[mutants::skip]` and for
// `#[cfg_attr(..., mutants::skip)]`.
func attrIsMutantsSkip(attr attribute, logger *slog.Logger) bool {
	if pathIs(attr.path, "mutants", "skip") {
		return true
	}

	if !pathIs(attr.path, "cfg_attr") {
		return false
	}

	skip := false

	err := parseNestedMeta(attr, func(path []string) {
		if pathIs(path, "mutants", "skip") {
			skip = true
		}
	})
	if err != nil {
		logger.Debug("Attribute is not a path with attributes; skipping", "attr", attr.text, "error", err)
		return false
	}

	return skip
}

func pathIs(path []string, idents ...string) bool {
	if len(path) != len(idents) {
		return false
	}

	for i := range path {
		if path[i] != idents[i] {
			return false
		}
	}

	return true
}

// parseNestedMeta walks a comma-separated meta list such as
// `test, feature = "x"`, calling fn with each item's path. fn only looks at
// paths, so an item followed by a nested list or a value does not have the
// expected shape and stops the walk with an error.
func parseNestedMeta(attr attribute, fn func(path []string)) error {
	if !attr.hasArgs {
		return fmt.Errorf("%w: expected attribute arguments in parentheses", errAttrShape)
	}

	tokens := attr.args
	for len(tokens) > 0 {
		path, rest, err := parseMetaPath(tokens)
		if err != nil {
			return err
		}

		fn(path)

		tokens = rest
		if len(tokens) == 0 {
			break
		}

		if !isPunct(tokens[0], ",") {
			return fmt.Errorf("%w: expected `,` after %s", errAttrShape, strings.Join(path, "::"))
		}

		tokens = tokens[1:]
	}

	return nil
}

// parseMetaPath reads `ident (:: ident)*` with an optional leading `::`.
func parseMetaPath(tokens []m.TokenTree) ([]string, []m.TokenTree, error) {
	var path []string

	if len(tokens) >= 2 && isPunct(tokens[0], ":") && isPunct(tokens[1], ":") {
		tokens = tokens[2:]
	}

	for {
		if len(tokens) == 0 || tokens[0].Kind != m.TokenIdent {
			return nil, nil, fmt.Errorf("%w: expected identifier", errAttrShape)
		}

		path = append(path, tokens[0].Text)
		tokens = tokens[1:]

		if len(tokens) >= 3 && isPunct(tokens[0], ":") && isPunct(tokens[1], ":") && tokens[2].Kind == m.TokenIdent {
			tokens = tokens[2:]
			continue
		}

		return path, tokens, nil
	}
}

func isPunct(tok m.TokenTree, text string) bool {
	return tok.Kind == m.TokenPunct && tok.Text == text
}
