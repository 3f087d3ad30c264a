package lexer

import "fmt"

// Kind the kind of token
type Kind int

const (
	TokenError Kind = iota

	TokenEOF
	TokenWhiteSpace
	TokenComment

	TokenComma
	TokenSemicolon
	TokenOpenParen
	TokenCloseParen
	TokenAsterisk
	TokenSymbol

	TokenIdentifier

	TokenBegin
	TokenCommit
	TokenRollback

	TokenSelect
	TokenWith
	TokenFrom
	TokenWhere
	TokenAs
	TokenIf
	TokenNot
	TokenExists

	TokenUnion
	TokenIntersect
	TokenExcept

	TokenCreate
	TokenDrop
	TokenAlter
	TokenTruncate
	TokenInsert
	TokenReplace
	TokenUpdate
	TokenDelete
	TokenUse
	TokenInto
	TokenSet
	TokenTable
	TokenDatabase
	TokenValues
	TokenReturning

	TokenEquals
	TokenGt
	TokenLt
	TokenGte
	TokenLte
	TokenNotEq

	TokenAnd
	TokenOr

	TokenPlus
	TokenMinus
	TokenDivide

	TokenString
	TokenNumber
	TokenBoolean
	TokenNull
)

var keywords = map[string]Kind{
	"BEGIN":     TokenBegin,
	"COMMIT":    TokenCommit,
	"ROLLBACK":  TokenRollback,
	"SELECT":    TokenSelect,
	"WITH":      TokenWith,
	"FROM":      TokenFrom,
	"WHERE":     TokenWhere,
	"AS":        TokenAs,
	"IF":        TokenIf,
	"NOT":       TokenNot,
	"EXISTS":    TokenExists,
	"UNION":     TokenUnion,
	"INTERSECT": TokenIntersect,
	"EXCEPT":    TokenExcept,
	"CREATE":    TokenCreate,
	"DROP":      TokenDrop,
	"ALTER":     TokenAlter,
	"TRUNCATE":  TokenTruncate,
	"INSERT":    TokenInsert,
	"REPLACE":   TokenReplace,
	"UPDATE":    TokenUpdate,
	"DELETE":    TokenDelete,
	"USE":       TokenUse,
	"INTO":      TokenInto,
	"SET":       TokenSet,
	"TABLE":     TokenTable,
	"DATABASE":  TokenDatabase,
	"VALUES":    TokenValues,
	"RETURNING": TokenReturning,
	"AND":       TokenAnd,
	"OR":        TokenOr,
	"TRUE":      TokenBoolean,
	"FALSE":     TokenBoolean,
	"NULL":      TokenNull,
}

// Token is an output from the lexer
type Token struct {
	Kind     Kind
	Text     string
	Position int
}

func (t Kind) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return "Error"
	case TokenWhiteSpace:
		return "WhiteSpace"
	case TokenComment:
		return "Comment"
	case TokenEquals:
		return "="
	case TokenString:
		return "String"
	case TokenNumber:
		return "Number"
	case TokenIdentifier:
		return "Ident"
	case TokenComma:
		return "Comma"
	case TokenSemicolon:
		return "Semicolon"
	case TokenAsterisk:
		return "Asterisk"
	case TokenSymbol:
		return "Symbol"
	case TokenBoolean:
		return "Boolean"
	}

	for word, kind := range keywords {
		if kind == t {
			return word
		}
	}

	return fmt.Sprintf("Kind(%d)", t)
}

func (i Token) String() string {
	switch i.Kind {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return "Error: " + i.Text
	}
	return fmt.Sprintf("[%s]", i.Text)
}
