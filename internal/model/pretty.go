package model

import "strings"

// PrettyTokens renders tokens as reasonably formatted Rust source.
//
// Spacing is decided only from adjacent tokens. It covers the shapes that
// discovery generates (paths, calls, generics, references and literals) and
// is not a general formatter. The result never ends in whitespace.
func PrettyTokens(tokens []TokenTree) string {
	var b strings.Builder

	b.Grow(64)
	writePretty(&b, tokens)

	return strings.TrimRight(b.String(), " ")
}

func writePretty(b *strings.Builder, tokens []TokenTree) {
	for i, tok := range tokens {
		switch tok.Kind {
		case TokenPunct:
			b.WriteString(tok.Text)

			if tok.Text == "," || strings.HasSuffix(b.String(), " ->") {
				b.WriteByte(' ')
			}

		case TokenIdent, TokenLiteral:
			b.WriteString(tok.Text)

			if i+1 < len(tokens) && spaceBefore(tokens[i+1]) {
				b.WriteByte(' ')
			}

		case TokenGroup:
			if open := tok.Delimiter.Open(); open != 0 {
				b.WriteRune(open)
			}

			b.WriteString(PrettyTokens(tok.Children))

			if closing := tok.Delimiter.Close(); closing != 0 {
				b.WriteRune(closing)
			}
		}
	}
}

// spaceBefore reports whether an identifier or literal is separated from the
// token that follows it.
func spaceBefore(next TokenTree) bool {
	switch next.Kind {
	case TokenIdent, TokenLiteral:
		return true
	case TokenPunct:
		return !strings.Contains(",;<>:.!", next.Text)
	case TokenGroup:
	}

	return false
}
