package tsql

import (
	"strings"

	"github.com/joeandaverde/tinydbc/tsql/lexer"
)

// CommandKind is the broad category of a SQL command.
type CommandKind int

const (
	// Other is anything that is neither a query nor a mutation (USE, BEGIN, unparsable text).
	Other CommandKind = iota
	// Query is a row-producing SELECT.
	Query
	// Union is a row-producing compound select (UNION, INTERSECT, EXCEPT).
	Union
	// Mutation changes data or schema (INSERT, UPDATE, DELETE, DDL).
	Mutation
)

func (k CommandKind) String() string {
	switch k {
	case Query:
		return "query"
	case Union:
		return "union"
	case Mutation:
		return "mutation"
	default:
		return "other"
	}
}

// RowProducing reports whether commands of this kind return rows.
func (k CommandKind) RowProducing() bool {
	return k == Query || k == Union
}

// Classify inspects SQL text and reports its CommandKind. It never touches storage.
// A WITH clause is skipped and the command it prefixes decides the kind.
func Classify(text string) CommandKind {
	tokens := lexer.Tokens(text)

	first := leading(tokens)
	if tokens[first].Kind == lexer.TokenWith {
		first = afterWith(tokens, first+1)
	}

	switch tokens[first].Kind {
	case lexer.TokenSelect, lexer.TokenValues:
		for _, t := range tokens[first+1:] {
			switch t.Kind {
			case lexer.TokenUnion, lexer.TokenIntersect, lexer.TokenExcept:
				return Union
			}
		}
		return Query
	case lexer.TokenInsert, lexer.TokenReplace, lexer.TokenUpdate, lexer.TokenDelete,
		lexer.TokenCreate, lexer.TokenDrop, lexer.TokenAlter, lexer.TokenTruncate:
		return Mutation
	default:
		return Other
	}
}

// IsSchemaChange reports whether text is a CREATE, DROP or ALTER command.
func IsSchemaChange(text string) bool {
	tokens := lexer.Tokens(text)

	switch tokens[leading(tokens)].Kind {
	case lexer.TokenCreate, lexer.TokenDrop, lexer.TokenAlter:
		return true
	default:
		return false
	}
}

// leading returns the index of the first token after any opening parens.
// tokens always ends with TokenEOF or TokenError, so the index is valid.
func leading(tokens []lexer.Token) int {
	i := 0
	for i < len(tokens)-1 && tokens[i].Kind == lexer.TokenOpenParen {
		i++
	}
	return i
}

// afterWith returns the index of the first statement keyword outside the
// parens of the common table expressions starting at i.
func afterWith(tokens []lexer.Token, i int) int {
	depth := 0
	for ; i < len(tokens)-1; i++ {
		switch tokens[i].Kind {
		case lexer.TokenOpenParen:
			depth++
		case lexer.TokenCloseParen:
			depth--
		case lexer.TokenSelect, lexer.TokenValues, lexer.TokenInsert,
			lexer.TokenReplace, lexer.TokenUpdate, lexer.TokenDelete:
			if depth == 0 {
				return i
			}
		}
	}
	return i
}

// Split breaks a script into its commands on semicolons that are outside
// string literals, quoted identifiers and comments. Semicolons inside the
// BEGIN ... END body of a CREATE command such as CREATE TRIGGER do not end
// it. Blank commands are dropped.
func Split(script string) []string {
	var (
		commands []string
		start    int
		depth    int
	)

	// first is the leading keyword of the current command
	first := lexer.TokenEOF

	l := lexer.NewLexer(script)
	for {
		t := l.Next()

		switch t.Kind {
		case lexer.TokenWhiteSpace, lexer.TokenComment:
			continue
		case lexer.TokenSemicolon:
			if depth > 0 {
				continue
			}
			commands = appendCommand(commands, script[start:t.Position])
			start = t.Position + len(t.Text)
			first = lexer.TokenEOF
			continue
		case lexer.TokenEOF, lexer.TokenError:
			return appendCommand(commands, script[start:])
		}

		if first == lexer.TokenEOF {
			first = t.Kind
		}
		if first != lexer.TokenCreate {
			continue
		}

		// CASE ... END nests inside trigger bodies
		switch {
		case t.Kind == lexer.TokenBegin, isWord(t, "CASE"):
			depth++
		case isWord(t, "END") && depth > 0:
			depth--
		}
	}
}

func isWord(t lexer.Token, word string) bool {
	return t.Kind == lexer.TokenIdentifier && strings.EqualFold(t.Text, word)
}

func appendCommand(commands []string, text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return commands
	}
	return append(commands, text)
}
