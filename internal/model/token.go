package model

// TokenKind tells which variant a TokenTree is.
type TokenKind int

// Available TokenKind values.
const (
	TokenIdent TokenKind = iota
	TokenLiteral
	TokenPunct
	TokenGroup
)

// Delimiter is the bracket pair around a Group.
type Delimiter int

// Available Delimiter values. DelimNone is an invisible group.
const (
	DelimNone Delimiter = iota
	DelimParen
	DelimBracket
	DelimBrace
)

// TokenTree is a Rust token: an identifier, a literal, a single punctuation
// character, or a delimited group of further tokens.
type TokenTree struct {
	Kind      TokenKind
	Text      string
	Delimiter Delimiter
	Children  []TokenTree
}

// Ident returns an identifier token.
func Ident(text string) TokenTree {
	return TokenTree{Kind: TokenIdent, Text: text}
}

// Literal returns a literal token such as `"xyzzy"` or `42`.
func Literal(text string) TokenTree {
	return TokenTree{Kind: TokenLiteral, Text: text}
}

// Punct returns one token per character of text, so "::" becomes two.
func Punct(text string) []TokenTree {
	out := make([]TokenTree, 0, len(text))
	for _, r := range text {
		out = append(out, TokenTree{Kind: TokenPunct, Text: string(r)})
	}

	return out
}

// Group returns a delimited group.
func Group(delim Delimiter, children ...TokenTree) TokenTree {
	return TokenTree{Kind: TokenGroup, Delimiter: delim, Children: children}
}

// Tokens concatenates token fragments, which keeps hand-built expressions
// readable: Tokens([]TokenTree{Ident("a")}, Punct("::"), ...).
func Tokens(parts ...[]TokenTree) []TokenTree {
	var out []TokenTree
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

// Open returns the opening character of the delimiter, or 0 for DelimNone.
func (d Delimiter) Open() rune {
	switch d {
	case DelimParen:
		return '('
	case DelimBracket:
		return '['
	case DelimBrace:
		return '{'
	case DelimNone:
	}

	return 0
}

// Close returns the closing character of the delimiter, or 0 for DelimNone.
func (d Delimiter) Close() rune {
	switch d {
	case DelimParen:
		return ')'
	case DelimBracket:
		return ']'
	case DelimBrace:
		return '}'
	case DelimNone:
	}

	return 0
}
