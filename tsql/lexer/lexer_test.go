package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func kinds(tokens []Token) []Kind {
	out := make([]Kind, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.Kind)
	}
	return out
}

func TestTokens(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Kind
	}{
		{
			name: "select star",
			text: "SELECT * FROM foo",
			want: []Kind{TokenSelect, TokenAsterisk, TokenFrom, TokenIdentifier, TokenEOF},
		},
		{
			name: "lower case keywords",
			text: "insert into foo values (1, 'a')",
			want: []Kind{
				TokenInsert, TokenInto, TokenIdentifier, TokenValues, TokenOpenParen,
				TokenNumber, TokenComma, TokenString, TokenCloseParen, TokenEOF,
			},
		},
		{
			name: "comments are dropped",
			text: "-- leading\n/* block */ DELETE FROM t",
			want: []Kind{TokenDelete, TokenFrom, TokenIdentifier, TokenEOF},
		},
		{
			name: "escaped quote inside string",
			text: "SELECT 'it''s'",
			want: []Kind{TokenSelect, TokenString, TokenEOF},
		},
		{
			name: "quoted identifier",
			text: `SELECT "union" FROM t`,
			want: []Kind{TokenSelect, TokenIdentifier, TokenFrom, TokenIdentifier, TokenEOF},
		},
		{
			name: "operators",
			text: "a >= 1 <> b != c <= d;",
			want: []Kind{
				TokenIdentifier, TokenGte, TokenNumber, TokenNotEq, TokenIdentifier,
				TokenNotEq, TokenIdentifier, TokenLte, TokenIdentifier, TokenSemicolon, TokenEOF,
			},
		},
		{
			name: "unknown punctuation",
			text: "SELECT a % b",
			want: []Kind{TokenSelect, TokenIdentifier, TokenSymbol, TokenIdentifier, TokenEOF},
		},
		{
			name: "unterminated string",
			text: "SELECT 'abc",
			want: []Kind{TokenSelect, TokenError},
		},
		{
			name: "unterminated comment",
			text: "SELECT /* abc",
			want: []Kind{TokenSelect, TokenError},
		},
		{
			name: "empty",
			text: "",
			want: []Kind{TokenEOF},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert := require.New(t)
			assert.Equal(tc.want, kinds(Tokens(tc.text)))
		})
	}
}

func TestLexer_NextAfterEOF(t *testing.T) {
	assert := require.New(t)

	l := NewLexer("x")
	assert.Equal(TokenIdentifier, l.Next().Kind)
	assert.Equal(TokenEOF, l.Next().Kind)
	assert.Equal(TokenEOF, l.Next().Kind)
}

func TestToken_Text(t *testing.T) {
	assert := require.New(t)

	tokens := Tokens("select name from foo where name = 'bar'")
	assert.Equal("select", tokens[0].Text)
	assert.Equal("'bar'", tokens[len(tokens)-2].Text)
	assert.Equal(34, tokens[len(tokens)-2].Position)
}
