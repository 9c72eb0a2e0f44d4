package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"

	m "gooze.dev/pkg/rooze/internal/model"
)

// ErrSyntax is wrapped by every error caused by source text that does not parse.
var ErrSyntax = errors.New("syntax error")

// errorValueProbe wraps a standalone expression so it can be parsed as the
// tail expression of a function body.
const (
	errorValueProbePrefix = "fn __rooze_error_value() {\n"
	errorValueProbeSuffix = "\n}\n"
)

// Node kinds that are kept as a single literal token.
var atomicLiteralKinds = map[string]bool{
	"string_literal":     true,
	"raw_string_literal": true,
	"char_literal":       true,
	"integer_literal":    true,
	"float_literal":      true,
}

// ParsedFile is a parsed Rust source file. Close releases the tree.
type ParsedFile struct {
	Tree   *sitter.Tree
	Root   *sitter.Node
	Source []byte
}

// Close frees the underlying tree-sitter tree.
func (p *ParsedFile) Close() {
	if p != nil && p.Tree != nil {
		p.Tree.Close()
	}
}

// RustFileAdapter encapsulates Rust parsing so the domain layer can focus on
// discovery rules while delegating grammar details to an infrastructure
// component.
type RustFileAdapter interface {
	// Parse builds a syntax tree for a whole source file. Any syntax error is
	// fatal and reported against path.
	Parse(ctx context.Context, path string, code []byte) (*ParsedFile, error)

	// ParseExpr parses a single standalone expression, such as a configured
	// error value, into tokens.
	ParseExpr(ctx context.Context, text string) ([]m.TokenTree, error)

	// Tokens flattens a syntax node into token trees.
	Tokens(node *sitter.Node, src []byte) []m.TokenTree
}

// LocalRustFileAdapter provides a concrete RustFileAdapter backed by
// tree-sitter's Rust grammar.
type LocalRustFileAdapter struct{}

// NewLocalRustFileAdapter constructs a LocalRustFileAdapter.
func NewLocalRustFileAdapter() *LocalRustFileAdapter {
	return &LocalRustFileAdapter{}
}

// Parse builds a syntax tree for the provided path/code pair.
func (a *LocalRustFileAdapter) Parse(ctx context.Context, path string, code []byte) (*ParsedFile, error) {
	parsed, err := a.parse(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return parsed, nil
}

// ParseExpr parses text as one Rust expression.
func (a *LocalRustFileAdapter) ParseExpr(ctx context.Context, text string) ([]m.TokenTree, error) {
	src := []byte(errorValueProbePrefix + text + errorValueProbeSuffix)

	parsed, err := a.parse(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse error value %q: %w", text, err)
	}
	defer parsed.Close()

	expr, err := probeExpression(parsed.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to parse error value %q: %w", text, err)
	}

	return a.Tokens(expr, parsed.Source), nil
}

func (a *LocalRustFileAdapter) parse(ctx context.Context, code []byte) (*ParsedFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(rust.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, code)
	if err != nil {
		return nil, err
	}

	root := tree.RootNode()
	if root.HasError() {
		pos := firstErrorPoint(root)
		tree.Close()

		return nil, fmt.Errorf("%w at %d:%d", ErrSyntax, pos.Row+1, pos.Column+1)
	}

	return &ParsedFile{Tree: tree, Root: root, Source: code}, nil
}

func firstErrorPoint(n *sitter.Node) sitter.Point {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n.StartPoint()
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child != nil && child.HasError() {
			return firstErrorPoint(child)
		}
	}

	return n.StartPoint()
}

// probeExpression digs the tail expression out of the probe function.
func probeExpression(root *sitter.Node) (*sitter.Node, error) {
	fn := root.NamedChild(0)
	if root.NamedChildCount() != 1 || fn == nil || fn.Type() != "function_item" {
		return nil, fmt.Errorf("%w: not a single expression", ErrSyntax)
	}

	var stmts []*sitter.Node

	body := fn.ChildByFieldName("body")
	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		if IsComment(child) {
			continue
		}

		stmts = append(stmts, child)
	}

	if len(stmts) != 1 {
		return nil, fmt.Errorf("%w: not a single expression", ErrSyntax)
	}

	expr := stmts[0]
	if expr.Type() == "expression_statement" {
		for i := 0; i < int(expr.ChildCount()); i++ {
			if expr.Child(i).Type() == ";" {
				return nil, fmt.Errorf("%w: statement is not an expression", ErrSyntax)
			}
		}

		expr = expr.NamedChild(0)
	}

	switch {
	case expr == nil, expr.Type() == "let_declaration", isItemKind(expr.Type()):
		return nil, fmt.Errorf("%w: not an expression", ErrSyntax)
	}

	return expr, nil
}

func isItemKind(kind string) bool {
	return strings.HasSuffix(kind, "_item")
}

// IsComment reports whether n is a line or block comment.
func IsComment(n *sitter.Node) bool {
	switch n.Type() {
	case "line_comment", "block_comment":
		return true
	}

	return false
}

// Tokens flattens node into leaf tokens and folds bracket pairs into groups.
func (a *LocalRustFileAdapter) Tokens(node *sitter.Node, src []byte) []m.TokenTree {
	var flat []m.TokenTree

	collectLeaves(node, src, &flat)

	return foldGroups(flat)
}

func collectLeaves(n *sitter.Node, src []byte, out *[]m.TokenTree) {
	if n == nil || IsComment(n) {
		return
	}

	if atomicLiteralKinds[n.Type()] {
		*out = append(*out, m.Literal(n.Content(src)))
		return
	}

	if n.ChildCount() == 0 {
		*out = append(*out, leafTokens(n.Content(src))...)
		return
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		collectLeaves(n.Child(i), src, out)
	}
}

func leafTokens(text string) []m.TokenTree {
	if text == "" {
		return nil
	}

	first, _ := utf8.DecodeRuneInString(text)

	switch {
	case first == '_' || unicode.IsLetter(first):
		return []m.TokenTree{m.Ident(text)}
	case unicode.IsDigit(first), first == '"':
		return []m.TokenTree{m.Literal(text)}
	}

	return m.Punct(text)
}

// foldGroups turns flat bracket punctuation into nested groups. Unbalanced
// closers stay as punctuation; unclosed openers are closed at the end.
func foldGroups(flat []m.TokenTree) []m.TokenTree {
	type frame struct {
		delim  m.Delimiter
		tokens []m.TokenTree
	}

	stack := []frame{{delim: m.DelimNone}}

	for _, tok := range flat {
		if tok.Kind != m.TokenPunct {
			top := &stack[len(stack)-1]
			top.tokens = append(top.tokens, tok)

			continue
		}

		if delim, ok := openDelimiter(tok.Text); ok {
			stack = append(stack, frame{delim: delim})
			continue
		}

		if delim, ok := closeDelimiter(tok.Text); ok && len(stack) > 1 && stack[len(stack)-1].delim == delim {
			done := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			top := &stack[len(stack)-1]
			top.tokens = append(top.tokens, m.Group(done.delim, done.tokens...))

			continue
		}

		top := &stack[len(stack)-1]
		top.tokens = append(top.tokens, tok)
	}

	for len(stack) > 1 {
		done := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		top := &stack[len(stack)-1]
		top.tokens = append(top.tokens, m.Group(done.delim, done.tokens...))
	}

	return stack[0].tokens
}

func openDelimiter(text string) (m.Delimiter, bool) {
	switch text {
	case "(":
		return m.DelimParen, true
	case "[":
		return m.DelimBracket, true
	case "{":
		return m.DelimBrace, true
	}

	return m.DelimNone, false
}

func closeDelimiter(text string) (m.Delimiter, bool) {
	switch text {
	case ")":
		return m.DelimParen, true
	case "]":
		return m.DelimBracket, true
	case "}":
		return m.DelimBrace, true
	}

	return m.DelimNone, false
}

// Position converts a byte offset into a 1-based line and character column.
func Position(src []byte, offset uint32) m.LineColumn {
	if int(offset) > len(src) {
		offset = uint32(len(src))
	}

	line := 1
	lineStart := 0

	for i := 0; i < int(offset); i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	return m.LineColumn{
		Line:   line,
		Column: utf8.RuneCount(src[lineStart:offset]) + 1,
	}
}
