package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const eof = -1

type stateFn func(*Lexer) stateFn

// Lexer produces tokens from input
type Lexer struct {
	items []Token
	state stateFn
	input string
	start int
	pos   int
	width int
}

// NewLexer initializes a lexer with input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		state: lexTinySQL,
		input: input,
	}
}

// Next returns the next token. Once TokenEOF or TokenError has been
// returned every further call returns TokenEOF.
func (l *Lexer) Next() Token {
	for len(l.items) == 0 {
		if l.state == nil {
			return Token{Kind: TokenEOF, Position: l.pos}
		}
		l.state = l.state(l)
	}

	item := l.items[0]
	l.items = l.items[1:]
	return item
}

// Tokens lexes the whole input, dropping whitespace and comments. The
// final token is always TokenEOF or TokenError.
func Tokens(input string) []Token {
	l := NewLexer(input)

	var tokens []Token
	for {
		t := l.Next()
		if t.Kind == TokenWhiteSpace || t.Kind == TokenComment {
			continue
		}
		tokens = append(tokens, t)
		if t.Kind == TokenEOF || t.Kind == TokenError {
			return tokens
		}
	}
}

func lexWhiteSpace(l *Lexer) stateFn {
	for isWhiteSpace(l.peek()) {
		l.next()
	}

	l.emit(TokenWhiteSpace)

	return lexTinySQL
}

func lexNumber(l *Lexer) stateFn {
	for unicode.IsDigit(l.peek()) || l.peek() == '.' {
		l.next()
	}

	l.emit(TokenNumber)

	return lexTinySQL
}

func lexAlphaNumeric(l *Lexer) stateFn {
	for isAlphaNumeric(l.peek()) {
		l.next()
	}

	value := strings.ToUpper(l.input[l.start:l.pos])
	if kind, ok := keywords[value]; ok {
		l.emit(kind)
	} else {
		l.emit(TokenIdentifier)
	}

	return lexTinySQL
}

func lexLineComment(l *Lexer) stateFn {
	for r := l.peek(); r != '\n' && r != eof; r = l.peek() {
		l.next()
	}

	l.emit(TokenComment)

	return lexTinySQL
}

func lexBlockComment(l *Lexer) stateFn {
	// opening "/*" already consumed
	for {
		switch l.next() {
		case eof:
			return l.errorf("unterminated comment")
		case '*':
			if l.peek() == '/' {
				l.next()
				l.emit(TokenComment)
				return lexTinySQL
			}
		}
	}
}

func lexSymbol(l *Lexer) stateFn {
	switch r := l.peek(); r {
	case '>':
		l.next()

		if l.next() == '=' {
			l.emit(TokenGte)
		} else {
			l.backup()
			l.emit(TokenGt)
		}
	case '<':
		l.next()

		switch l.next() {
		case '=':
			l.emit(TokenLte)
		case '>':
			l.emit(TokenNotEq)
		default:
			l.backup()
			l.emit(TokenLt)
		}
	case '=':
		l.next()
		l.emit(TokenEquals)
	case '!':
		if l.peek2() != '=' {
			return nil
		}
		l.next()
		l.next()
		l.emit(TokenNotEq)
	case '*':
		l.next()
		l.emit(TokenAsterisk)
	case '+':
		l.next()
		l.emit(TokenPlus)
	case '-':
		if l.peek2() == '-' {
			return lexLineComment
		}
		l.next()
		l.emit(TokenMinus)
	case '/':
		if l.peek2() == '*' {
			l.next()
			l.next()
			return lexBlockComment
		}
		l.next()
		l.emit(TokenDivide)
	case '(':
		l.next()
		l.emit(TokenOpenParen)
	case ')':
		l.next()
		l.emit(TokenCloseParen)
	case ',':
		l.next()
		l.emit(TokenComma)
	case ';':
		l.next()
		l.emit(TokenSemicolon)
	default:
		return nil
	}

	return lexTinySQL
}

// lexQuoted consumes a literal delimited by quote, where a doubled quote
// is an escaped quote.
func lexQuoted(l *Lexer, quote rune, kind Kind) stateFn {
	l.next()

	for {
		switch l.next() {
		case eof:
			return l.errorf("unterminated %s", kind)
		case quote:
			if l.peek() == quote {
				l.next()
				continue
			}
			l.emit(kind)
			return lexTinySQL
		}
	}
}

func lexTinySQL(l *Lexer) stateFn {
	r := l.peek()

	switch {
	case r == eof:
		l.emit(TokenEOF)
		return nil
	case isWhiteSpace(r):
		return lexWhiteSpace
	case r == '\'':
		return lexQuoted(l, '\'', TokenString)
	case r == '"' || r == '`':
		return lexQuoted(l, r, TokenIdentifier)
	case unicode.IsDigit(r):
		return lexNumber
	case isAlphaNumeric(r):
		return lexAlphaNumeric
	}

	if resume := lexSymbol(l); resume != nil {
		return resume
	}

	// punctuation the classifier has no use for
	l.next()
	l.emit(TokenSymbol)

	return lexTinySQL
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) peek2() rune {
	pos := l.pos
	l.next()
	r := l.next()
	l.pos = pos

	return r
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}

	r, width := utf8.DecodeRuneInString(l.input[l.pos:])

	l.width = width
	l.pos += l.width

	return r
}

func (l *Lexer) errorf(format string, args ...interface{}) stateFn {
	l.items = append(l.items, Token{
		Kind:     TokenError,
		Text:     fmt.Sprintf(format, args...),
		Position: l.start,
	})

	return nil
}

func (l *Lexer) backup() {
	l.pos -= l.width
}

func (l *Lexer) emit(kind Kind) {
	l.items = append(l.items, Token{
		Kind:     kind,
		Text:     l.input[l.start:l.pos],
		Position: l.start,
	})
	l.start = l.pos
}

func isAlphaNumeric(r rune) bool {
	return r == '_' || r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isWhiteSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
