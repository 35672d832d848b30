// Package lexer provides lexical analysis for map file sections.
package lexer

import (
	"strings"
	"unicode"

	"github.com/manicmap/mapdat-go/internal/debug"
)

// TokenType represents the type of a token.
type TokenType int

const (
	// Literals
	TokenIdentifier TokenType = iota
	TokenNumber
	TokenString
	TokenBoolean

	// Symbols
	TokenLBrace
	TokenRBrace
	TokenLParen
	TokenRParen
	TokenLBracket
	TokenRBracket
	TokenColon
	TokenDoubleColon
	TokenSemicolon
	TokenComma
	TokenEquals

	// Double parentheses wrap inline conditions. They are compound tokens
	// so the parser can tell a condition from arithmetic grouping.
	TokenDoubleLParen
	TokenDoubleRParen

	// Arithmetic
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash

	// Comparison
	TokenGreater
	TokenLess
	TokenGreaterEq
	TokenLessEq
	TokenEqEq
	TokenNotEq

	// Statement-start modifiers
	TokenTilde
	TokenQuestion

	// Special
	TokenComment
	TokenNewline
	TokenBlankLine
	TokenUnknown
	TokenEOF
)

// String returns a printable name for the token type.
func (t TokenType) String() string {
	switch t {
	case TokenIdentifier:
		return "identifier"
	case TokenNumber:
		return "number"
	case TokenString:
		return "string"
	case TokenBoolean:
		return "boolean"
	case TokenLBrace:
		return "{"
	case TokenRBrace:
		return "}"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenLBracket:
		return "["
	case TokenRBracket:
		return "]"
	case TokenColon:
		return ":"
	case TokenDoubleColon:
		return "::"
	case TokenSemicolon:
		return ";"
	case TokenComma:
		return ","
	case TokenEquals:
		return "="
	case TokenDoubleLParen:
		return "(("
	case TokenDoubleRParen:
		return "))"
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenStar:
		return "*"
	case TokenSlash:
		return "/"
	case TokenGreater:
		return ">"
	case TokenLess:
		return "<"
	case TokenGreaterEq:
		return ">="
	case TokenLessEq:
		return "<="
	case TokenEqEq:
		return "=="
	case TokenNotEq:
		return "!="
	case TokenTilde:
		return "~"
	case TokenQuestion:
		return "?"
	case TokenComment:
		return "comment"
	case TokenNewline:
		return "newline"
	case TokenBlankLine:
		return "blank line"
	case TokenUnknown:
		return "unknown"
	default:
		return "EOF"
	}
}

// Token represents a lexical token.
type Token struct {
	Type   TokenType
	Value  string
	Line   int
	Column int
	Offset int
}

// End returns the byte offset one past the token text.
func (t Token) End() int {
	return t.Offset + len(t.Value)
}

// Mode selects the lexical rules for a section body.
type Mode int

const (
	// ModeScript applies the full script DSL rules: # comments, compound
	// :: and (( )) tokens, operators, statement modifiers.
	ModeScript Mode = iota
	// ModeData recognizes numbers, commas, colons and newlines only; every
	// other run of characters becomes a single identifier-like token.
	ModeData
	// ModeText passes each line through as one string token. Used for
	// briefings and comments sections where braces and punctuation are
	// plain prose.
	ModeText
)

// Lexer tokenizes one section body.
type Lexer struct {
	input  string
	mode   Mode
	pos    int
	line   int
	column int
	base   int
	tokens []Token

	// lineHasContent tracks whether the current physical line produced any
	// token. A line that produced none becomes a BlankLine token.
	lineHasContent bool
}

// NewLexer creates a lexer for a section body. baseOffset and baseLine
// position the body inside the whole file so token spans stay file-absolute.
func NewLexer(input string, mode Mode, baseOffset, baseLine int) *Lexer {
	return &Lexer{
		input:  input,
		mode:   mode,
		line:   baseLine,
		column: 0,
		base:   baseOffset,
		tokens: make([]Token, 0, 64),
	}
}

// Tokenize converts the input into tokens. It never fails: characters with
// no lexical class become TokenUnknown and are left to parser recovery.
func Tokenize(input string, mode Mode, baseOffset, baseLine int) []Token {
	return NewLexer(input, mode, baseOffset, baseLine).Tokenize()
}

// Tokenize runs the lexer over the whole input.
func (l *Lexer) Tokenize() []Token {
	debug.Debug("tokenizing section body", "len", len(l.input), "mode", int(l.mode))

	if l.mode == ModeText {
		l.tokenizeText()
		l.emit(TokenEOF, "")
		return l.tokens
	}

	for l.pos < len(l.input) {
		ch := l.input[l.pos]

		switch {
		case ch == '\n':
			l.emitLineBreak()
			l.advance()
		case ch == ' ' || ch == '\t' || ch == '\r':
			l.advance()
		case l.mode == ModeScript && ch == '#':
			l.tokenizeComment()
		case ch == '"':
			l.tokenizeString()
		case isIdentStart(rune(ch)):
			l.tokenizeIdentifier()
		// A leading minus only folds into the number in data mode. In
		// script mode '-' must stay an operator token so the single
		// operation rule for arithmetic can see it.
		case unicode.IsDigit(rune(ch)) || (l.mode == ModeData && ch == '-' && l.peekIsDigit()):
			l.tokenizeNumber()
		default:
			if l.mode == ModeData {
				l.tokenizeDataSymbol(ch)
			} else {
				l.tokenizeScriptSymbol(ch)
			}
		}
	}

	// An unterminated final line still closes.
	if l.lineHasContent {
		l.emitAt(TokenNewline, "", l.pos)
	}
	l.emit(TokenEOF, "")
	return l.tokens
}

// emitLineBreak decides between Newline and BlankLine for the line just
// ended. Only a line with no tokens at all is blank; a comment-only line is
// not, which is what keeps comments from terminating event chains.
func (l *Lexer) emitLineBreak() {
	if l.lineHasContent {
		l.emitAt(TokenNewline, "", l.pos)
	} else {
		l.emitAt(TokenBlankLine, "", l.pos)
	}
	l.lineHasContent = false
}

func (l *Lexer) tokenizeDataSymbol(ch byte) {
	switch ch {
	case ',':
		l.emitSingle(TokenComma, ",")
	case ':':
		l.emitSingle(TokenColon, ":")
	default:
		l.emitSingle(TokenUnknown, string(ch))
	}
}

func (l *Lexer) tokenizeScriptSymbol(ch byte) {
	switch ch {
	case '{':
		l.emitSingle(TokenLBrace, "{")
	case '}':
		l.emitSingle(TokenRBrace, "}")
	case '(':
		if l.peek() == '(' {
			l.emitDouble(TokenDoubleLParen, "((")
		} else {
			l.emitSingle(TokenLParen, "(")
		}
	case ')':
		if l.peek() == ')' {
			l.emitDouble(TokenDoubleRParen, "))")
		} else {
			l.emitSingle(TokenRParen, ")")
		}
	case '[':
		l.emitSingle(TokenLBracket, "[")
	case ']':
		l.emitSingle(TokenRBracket, "]")
	case ':':
		if l.peek() == ':' {
			l.emitDouble(TokenDoubleColon, "::")
		} else {
			l.emitSingle(TokenColon, ":")
		}
	case ';':
		l.emitSingle(TokenSemicolon, ";")
	case ',':
		l.emitSingle(TokenComma, ",")
	case '=':
		if l.peek() == '=' {
			l.emitDouble(TokenEqEq, "==")
		} else {
			l.emitSingle(TokenEquals, "=")
		}
	case '>':
		if l.peek() == '=' {
			l.emitDouble(TokenGreaterEq, ">=")
		} else {
			l.emitSingle(TokenGreater, ">")
		}
	case '<':
		if l.peek() == '=' {
			l.emitDouble(TokenLessEq, "<=")
		} else {
			l.emitSingle(TokenLess, "<")
		}
	case '!':
		if l.peek() == '=' {
			l.emitDouble(TokenNotEq, "!=")
		} else {
			l.emitSingle(TokenUnknown, "!")
		}
	case '+':
		l.emitSingle(TokenPlus, "+")
	case '-':
		l.emitSingle(TokenMinus, "-")
	case '*':
		l.emitSingle(TokenStar, "*")
	case '/':
		l.emitSingle(TokenSlash, "/")
	case '~':
		l.emitSingle(TokenTilde, "~")
	case '?':
		l.emitSingle(TokenQuestion, "?")
	default:
		l.emitSingle(TokenUnknown, string(ch))
	}
}

// tokenizeText emits one string token per line.
func (l *Lexer) tokenizeText() {
	for l.pos < len(l.input) {
		nl := strings.IndexByte(l.input[l.pos:], '\n')
		var line string
		if nl < 0 {
			line = l.input[l.pos:]
		} else {
			line = l.input[l.pos : l.pos+nl]
		}
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			l.emitAt(TokenString, line, l.pos)
			l.lineHasContent = true
		}
		for i := 0; i < len(line); i++ {
			l.advance()
		}
		if nl >= 0 {
			l.emitLineBreak()
			l.advance()
		}
	}
}

func (l *Lexer) tokenizeComment() {
	start := l.pos
	startCol := l.column
	for l.pos < len(l.input) && l.input[l.pos] != '\n' {
		l.advance()
	}
	// Strip the leading '#'
	value := l.input[start+1 : l.pos]
	l.tokens = append(l.tokens, Token{
		Type:   TokenComment,
		Value:  value,
		Line:   l.line,
		Column: startCol,
		Offset: l.base + start,
	})
	l.lineHasContent = true
}

func (l *Lexer) tokenizeString() {
	start := l.pos
	startCol := l.column
	l.advance() // opening quote
	for l.pos < len(l.input) && l.input[l.pos] != '"' && l.input[l.pos] != '\n' {
		if l.input[l.pos] == '\\' {
			l.advance()
		}
		l.advance()
	}
	var value string
	if l.pos < len(l.input) && l.input[l.pos] == '"' {
		value = l.input[start+1 : l.pos]
		l.advance() // closing quote
	} else {
		// Unterminated: take the rest of the line, parser reports it.
		value = l.input[start+1 : l.pos]
	}
	l.tokens = append(l.tokens, Token{
		Type:   TokenString,
		Value:  value,
		Line:   l.line,
		Column: startCol,
		Offset: l.base + start,
	})
	l.lineHasContent = true
}

func (l *Lexer) tokenizeIdentifier() {
	start := l.pos
	startCol := l.column
	for l.pos < len(l.input) && isIdentPart(rune(l.input[l.pos])) {
		l.advance()
	}
	value := l.input[start:l.pos]

	tokenType := TokenIdentifier
	if value == "true" || value == "false" {
		tokenType = TokenBoolean
	}

	l.tokens = append(l.tokens, Token{
		Type:   tokenType,
		Value:  value,
		Line:   l.line,
		Column: startCol,
		Offset: l.base + start,
	})
	l.lineHasContent = true
}

func (l *Lexer) tokenizeNumber() {
	start := l.pos
	startCol := l.column
	if l.input[l.pos] == '-' {
		l.advance()
	}
	for l.pos < len(l.input) && unicode.IsDigit(rune(l.input[l.pos])) {
		l.advance()
	}
	if l.pos < len(l.input) && l.input[l.pos] == '.' && l.peekIsDigit() {
		l.advance()
		for l.pos < len(l.input) && unicode.IsDigit(rune(l.input[l.pos])) {
			l.advance()
		}
	}
	value := l.input[start:l.pos]
	l.tokens = append(l.tokens, Token{
		Type:   TokenNumber,
		Value:  value,
		Line:   l.line,
		Column: startCol,
		Offset: l.base + start,
	})
	l.lineHasContent = true
}

func (l *Lexer) emitSingle(tokenType TokenType, value string) {
	l.emit(tokenType, value)
	l.advance()
	l.lineHasContent = true
}

func (l *Lexer) emitDouble(tokenType TokenType, value string) {
	l.emit(tokenType, value)
	l.advance()
	l.advance()
	l.lineHasContent = true
}

func (l *Lexer) emit(tokenType TokenType, value string) {
	l.tokens = append(l.tokens, Token{
		Type:   tokenType,
		Value:  value,
		Line:   l.line,
		Column: l.column,
		Offset: l.base + l.pos,
	})
}

func (l *Lexer) emitAt(tokenType TokenType, value string, pos int) {
	l.tokens = append(l.tokens, Token{
		Type:   tokenType,
		Value:  value,
		Line:   l.line,
		Column: l.column,
		Offset: l.base + pos,
	})
}

func (l *Lexer) advance() {
	if l.pos >= len(l.input) {
		return
	}
	if l.input[l.pos] == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
	l.pos++
}

func (l *Lexer) peek() byte {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

func (l *Lexer) peekIsDigit() bool {
	return l.pos+1 < len(l.input) && unicode.IsDigit(rune(l.input[l.pos+1]))
}

func isIdentStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isIdentPart(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_'
}
