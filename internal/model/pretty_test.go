package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettyTokens(t *testing.T) {
	tests := []struct {
		name   string
		tokens []TokenTree
		want   string
	}{
		{
			name:   "empty",
			tokens: nil,
			want:   "",
		},
		{
			name:   "unit",
			tokens: []TokenTree{Group(DelimParen)},
			want:   "()",
		},
		{
			name: "path call",
			tokens: Tokens(
				[]TokenTree{Ident("String")},
				Punct("::"),
				[]TokenTree{Ident("new"), Group(DelimParen)},
			),
			want: "String::new()",
		},
		{
			name: "method call on literal",
			tokens: Tokens(
				[]TokenTree{Literal(`"xyzzy"`)},
				Punct("."),
				[]TokenTree{Ident("into"), Group(DelimParen)},
			),
			want: `"xyzzy".into()`,
		},
		{
			name: "impl name and return type",
			tokens: Tokens(
				Punct("<"),
				[]TokenTree{Ident("impl"), Ident("Iterator"), Ident("for"), Ident("MergeTrees")},
				Punct("<"),
				[]TokenTree{Ident("AE")}, Punct(","),
				[]TokenTree{Ident("BE")}, Punct(","),
				[]TokenTree{Ident("AIT")}, Punct(","),
				[]TokenTree{Ident("BIT")},
				Punct(">>::"),
				[]TokenTree{Ident("next")},
				Punct("->"),
				[]TokenTree{Ident("Option")},
				Punct("<"),
				[]TokenTree{Ident("Self")},
				Punct("::"),
				[]TokenTree{Ident("Item")},
				Punct(">"),
			),
			want: "<impl Iterator for MergeTrees<AE, BE, AIT, BIT>>::next -> Option<Self::Item>",
		},
		{
			name: "lifetime",
			tokens: Tokens(
				[]TokenTree{Ident("Lex")},
				Punct("<'"),
				[]TokenTree{Ident("buf")},
				Punct(">::"),
				[]TokenTree{Ident("take")},
			),
			want: "Lex<'buf>::take",
		},
		{
			name: "reference with lifetime",
			tokens: Tokens(
				Punct("&'"),
				[]TokenTree{Ident("a"), Ident("str")},
			),
			want: "&'a str",
		},
		{
			name: "nested groups",
			tokens: Tokens(
				[]TokenTree{Ident("Err")},
				[]TokenTree{Group(DelimParen, Ident("anyhow"), Punct("!")[0], Group(DelimParen, Literal(`"oops"`)))},
			),
			want: `Err(anyhow!("oops"))`,
		},
		{
			name:   "brackets and braces",
			tokens: []TokenTree{Group(DelimBracket, Literal("1"), Punct(",")[0], Literal("2")), Group(DelimBrace)},
			want:   "[1, 2]{}",
		},
		{
			name:   "invisible group",
			tokens: []TokenTree{Group(DelimNone, Ident("a"))},
			want:   "a",
		},
		{
			name:   "no trailing space after comma",
			tokens: []TokenTree{Group(DelimParen, Ident("a"), Punct(",")[0]), Ident("b"), Punct(",")[0]},
			want:   "(a,)b,",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PrettyTokens(tt.tokens)
			assert.Equal(t, tt.want, got)
			assert.NotRegexp(t, `\s$`, got)
		})
	}
}
