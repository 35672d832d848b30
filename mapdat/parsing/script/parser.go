package script

import (
	"fmt"
	"strconv"

	"github.com/manicmap/mapdat-go/internal/debug"
	"github.com/manicmap/mapdat-go/mapdat/diagnostics"
	"github.com/manicmap/mapdat-go/mapdat/parsing/lexer"
)

// Parser parses script section tokens into a ScriptModel. The grammar is
// line-oriented: a malformed statement is skipped to the next statement
// boundary and the parse continues, so one bad line never takes down the
// whole script.
type Parser struct {
	tokens []lexer.Token
	pos    int
	// src is the whole file text; condition bodies are sliced out of it.
	src   string
	diags *diagnostics.Diagnostics
}

// NewParser creates a parser over the given token stream.
func NewParser(tokens []lexer.Token, src string, diags *diagnostics.Diagnostics) *Parser {
	return &Parser{
		tokens: tokens,
		src:    src,
		diags:  diags,
	}
}

// ParseScript tokenizes nothing itself; callers hand it the lexer output
// for the script section body.
func ParseScript(tokens []lexer.Token, src string, diags *diagnostics.Diagnostics) *ScriptModel {
	return NewParser(tokens, src, diags).Parse()
}

// Parse consumes the whole token stream.
func (p *Parser) Parse() *ScriptModel {
	model := &ScriptModel{
		Variables: make([]*Variable, 0, 8),
		Triggers:  make([]*Trigger, 0, 8),
		Chains:    make([]*EventChain, 0, 4),
	}

	for !p.isAtEnd() {
		p.skipLayout()
		if p.isAtEnd() {
			break
		}

		tok := p.current()
		switch {
		case tok.Type == lexer.TokenIdentifier && isVarType(tok.Value) && p.peek().Type == lexer.TokenIdentifier:
			if v := p.parseVarDecl(); v != nil {
				model.Variables = append(model.Variables, v)
			}
		case tok.Type == lexer.TokenIdentifier && (tok.Value == "if" || tok.Value == "when") && p.peek().Type == lexer.TokenLParen:
			if t := p.parseTrigger(); t != nil {
				model.Triggers = append(model.Triggers, t)
			}
		case tok.Type == lexer.TokenIdentifier && p.peek().Type == lexer.TokenDoubleColon:
			model.Chains = append(model.Chains, p.parseChain())
		case tok.Type == lexer.TokenIdentifier && (p.peek().Type == lexer.TokenColon || p.peek().Type == lexer.TokenSemicolon):
			p.error(fmt.Sprintf("Command \"%s\" appears outside an event chain.", tok.Value), p.spanFor(tok))
			p.recover()
		default:
			p.error(fmt.Sprintf("Expected a variable declaration, trigger, or event chain, got \"%s\".", tok.Value), p.spanFor(tok))
			p.recover()
		}
	}

	debug.Debug("parsed script",
		"variables", len(model.Variables),
		"triggers", len(model.Triggers),
		"chains", len(model.Chains))
	return model
}

// parseVarDecl parses: Type Identifier ('=' Literal (',' Literal)*)?
func (p *Parser) parseVarDecl() *Variable {
	typeTok := p.advance()
	nameTok := p.advance()

	v := &Variable{
		Name:     nameTok.Value,
		Type:     varTypes[typeTok.Value],
		NameSpan: p.spanFor(nameTok),
	}

	if p.check(lexer.TokenEquals) {
		p.advance()
		v.HasInit = true
		for {
			lit, ok := p.parseLiteral()
			if !ok {
				p.error("Expected an initializer value after \"=\".", p.spanFor(p.current()))
				p.recover()
				break
			}
			v.Init = append(v.Init, lit)
			if !p.check(lexer.TokenComma) {
				break
			}
			p.advance()
		}
	}

	v.Span = diagnostics.NewSpan(typeTok.Offset, p.previous().End())
	if p.check(lexer.TokenSemicolon) {
		p.advance()
	}
	return v
}

// parseTrigger parses:
//
//	('if'|'when') '(' Head ')' ( '((' Cond '))' )? '[' Event ']' ( '[' Event ']' )? ';'?
func (p *Parser) parseTrigger() *Trigger {
	occTok := p.advance()

	t := &Trigger{Occurrence: Occurrence(occTok.Value)}

	if !p.expect(lexer.TokenLParen) {
		p.recover()
		return nil
	}
	headStart := p.previous().Offset

	kindTok := p.current()
	if kindTok.Type != lexer.TokenIdentifier {
		p.error("Expected a trigger kind (enter, drill, time, change...).", p.spanFor(kindTok))
		p.recover()
		return nil
	}
	p.advance()
	t.Kind = kindTok.Value

	switch {
	case p.check(lexer.TokenColon):
		p.advance()
		for !p.check(lexer.TokenRParen) && !p.atLineBoundary() {
			lit, ok := p.parseLiteral()
			if !ok {
				p.error("Expected a trigger argument.", p.spanFor(p.current()))
				p.recover()
				return nil
			}
			t.Args = append(t.Args, lit)
			if p.check(lexer.TokenComma) {
				p.advance()
			}
		}
	case isComparisonToken(p.current().Type):
		// Comparison head: the trigger fires on the value of a macro or
		// variable, "when(crystals>50)".
		opTok := p.advance()
		t.CompOp = opTok.Value
		lit, ok := p.parseLiteral()
		if !ok {
			p.error("Expected a value after \""+opTok.Value+"\".", p.spanFor(p.current()))
			p.recover()
			return nil
		}
		t.CompRHS = &lit
	}

	if !p.expect(lexer.TokenRParen) {
		p.recover()
		return nil
	}
	t.HeadSpan = diagnostics.NewSpan(headStart, p.previous().End())

	// Inline conditions require the compound (( token. A single ( here is
	// the classic mistake the engine silently misreads, so it is a hard
	// parse error with the condition's own span.
	switch p.current().Type {
	case lexer.TokenDoubleLParen:
		cond, ok := p.parseConditionBody()
		if !ok {
			p.recover()
			return nil
		}
		t.Condition = cond
	case lexer.TokenLParen:
		span := p.singleParenSpan()
		p.diags.PushError(diagnostics.NewSingleParenConditionError(span))
		p.recover()
		return nil
	}

	event, ok := p.parseEventRef()
	if !ok {
		p.recover()
		return nil
	}
	t.TrueEvent = event

	if p.check(lexer.TokenLBracket) {
		falseEvent, ok := p.parseEventRef()
		if !ok {
			p.recover()
			return nil
		}
		t.FalseEvent = &falseEvent
	}

	if p.check(lexer.TokenSemicolon) {
		p.advance()
	}

	t.Span = diagnostics.NewSpan(occTok.Offset, p.previous().End())
	return t
}

// parseConditionBody consumes '((' ... '))' and parses the raw text between
// through the condition grammar.
func (p *Parser) parseConditionBody() (*Condition, bool) {
	open := p.advance() // ((

	var closing lexer.Token
	for {
		cur := p.current()
		if cur.Type == lexer.TokenDoubleRParen {
			closing = p.advance()
			break
		}
		if cur.Type == lexer.TokenNewline || cur.Type == lexer.TokenBlankLine || cur.Type == lexer.TokenEOF {
			p.error("Condition is missing its closing \"))\".", diagnostics.NewSpan(open.Offset, cur.Offset))
			return nil, false
		}
		p.advance()
	}

	raw := p.src[open.End():closing.Offset]
	span := diagnostics.NewSpan(open.Offset, closing.End())
	cond := ParseCondition(raw, span, p.diags)
	// A condition that failed its own grammar is already reported; the
	// trigger survives without a guard so later statements still parse.
	return cond, true
}

// singleParenSpan returns the span of a single-paren condition without
// consuming past the statement.
func (p *Parser) singleParenSpan() diagnostics.Span {
	open := p.current()
	depth := 0
	i := p.pos
	for i < len(p.tokens) {
		switch p.tokens[i].Type {
		case lexer.TokenLParen:
			depth++
		case lexer.TokenRParen:
			depth--
			if depth == 0 {
				return diagnostics.NewSpan(open.Offset, p.tokens[i].End())
			}
		case lexer.TokenNewline, lexer.TokenBlankLine, lexer.TokenEOF:
			return diagnostics.NewSpan(open.Offset, p.tokens[i].Offset)
		}
		i++
	}
	return p.spanFor(open)
}

// parseEventRef parses '[' Name (':' Params)? ']'.
func (p *Parser) parseEventRef() (EventRef, bool) {
	if !p.expect(lexer.TokenLBracket) {
		return EventRef{}, false
	}
	start := p.previous().Offset

	nameTok := p.current()
	if nameTok.Type != lexer.TokenIdentifier {
		p.error("Expected an event chain name or command.", p.spanFor(nameTok))
		return EventRef{}, false
	}
	p.advance()

	ref := EventRef{Name: nameTok.Value}

	if p.check(lexer.TokenColon) {
		p.advance()
		for !p.check(lexer.TokenRBracket) && !p.atLineBoundary() {
			lit, ok := p.parseLiteral()
			if !ok {
				p.error("Expected an event parameter.", p.spanFor(p.current()))
				return EventRef{}, false
			}
			ref.Params = append(ref.Params, lit)
			if p.check(lexer.TokenComma) {
				p.advance()
			}
		}
	}

	if !p.expect(lexer.TokenRBracket) {
		return EventRef{}, false
	}
	ref.Span = diagnostics.NewSpan(start, p.previous().End())
	return ref, true
}

// parseChain parses 'Name::' and every statement through the next blank
// line, chain declaration, or end of input. Comment lines do not terminate
// a chain; only a truly blank line does.
func (p *Parser) parseChain() *EventChain {
	nameTok := p.advance()
	p.advance() // ::

	chain := &EventChain{
		Name:     nameTok.Value,
		NameSpan: p.spanFor(nameTok),
		Commands: make([]*Command, 0, 8),
	}

body:
	for {
		switch p.current().Type {
		case lexer.TokenComment, lexer.TokenNewline:
			p.advance()
		case lexer.TokenBlankLine, lexer.TokenEOF:
			break body
		case lexer.TokenIdentifier:
			if p.peek().Type == lexer.TokenDoubleColon {
				break body
			}
			if (p.current().Value == "if" || p.current().Value == "when") && p.peek().Type == lexer.TokenLParen {
				p.error("Triggers cannot appear inside an event chain; add a blank line first.", p.spanFor(p.current()))
				p.recover()
				continue
			}
			if cmd := p.parseCommand(chain.Name); cmd != nil {
				chain.Commands = append(chain.Commands, cmd)
			}
		case lexer.TokenTilde, lexer.TokenQuestion:
			if cmd := p.parseCommand(chain.Name); cmd != nil {
				chain.Commands = append(chain.Commands, cmd)
			}
		default:
			p.error(fmt.Sprintf("Unexpected \"%s\" in event chain \"%s\".", p.current().Value, chain.Name), p.spanFor(p.current()))
			p.recover()
		}
	}

	end := nameTok.End()
	if len(chain.Commands) > 0 {
		end = chain.Commands[len(chain.Commands)-1].Span.End
	}
	chain.Span = diagnostics.NewSpan(nameTok.Offset, end)
	return chain
}

// parseCommand parses one chain statement: an optional ~ or ? modifier, a
// name, optional parameters or a single arithmetic operation, and the
// terminating semicolon.
func (p *Parser) parseCommand(chainName string) *Command {
	start := p.current()

	cmd := &Command{Modifier: ModifierNone}
	switch start.Type {
	case lexer.TokenTilde:
		cmd.Modifier = ModifierFailure
		p.advance()
	case lexer.TokenQuestion:
		cmd.Modifier = ModifierOptional
		p.advance()
	}

	nameTok := p.current()
	if nameTok.Type != lexer.TokenIdentifier {
		p.error("Expected a command name.", p.spanFor(nameTok))
		p.recover()
		return nil
	}
	p.advance()
	cmd.Name = nameTok.Value
	cmd.NameSpan = p.spanFor(nameTok)

	if p.check(lexer.TokenColon) {
		p.advance()
		if !p.parseCommandArgs(cmd) {
			p.recover()
			return nil
		}
	}

	if p.check(lexer.TokenSemicolon) {
		p.advance()
	} else if !p.atLineBoundary() {
		p.error(fmt.Sprintf("Expected \";\" after command \"%s\".", cmd.Name), p.spanFor(p.current()))
		p.recover()
	} else {
		p.error(fmt.Sprintf("Command \"%s\" is missing its \";\".", cmd.Name), diagnostics.NewSpan(nameTok.Offset, p.previous().End()))
	}

	cmd.Span = diagnostics.NewSpan(start.Offset, p.previous().End())
	return cmd
}

// parseCommandArgs parses either a comma-separated parameter list or a
// single arithmetic operation. More than one operator in the same statement
// is rejected here, at parse time, instead of being silently mis-evaluated
// by the engine.
func (p *Parser) parseCommandArgs(cmd *Command) bool {
	first, ok := p.parseLiteral()
	if !ok {
		// "name:;" writes an empty parameter list, which some commands
		// accept; tolerate it.
		if p.check(lexer.TokenSemicolon) || p.atLineBoundary() {
			return true
		}
		p.error(fmt.Sprintf("Expected a parameter for \"%s\".", cmd.Name), p.spanFor(p.current()))
		return false
	}

	if op, isMath := p.mathOperator(); isMath {
		p.advance()
		right, ok := p.parseLiteral()
		if !ok {
			p.error("Expected a value after the operator.", p.spanFor(p.current()))
			return false
		}
		if _, again := p.mathOperator(); again {
			span := diagnostics.NewSpan(first.Span.Start, p.current().End())
			p.diags.PushError(diagnostics.NewChainedArithmeticError(cmd.Name, span))
			return false
		}
		cmd.Math = &MathExpr{Left: first, Op: op, Right: right}
		return true
	}

	cmd.Params = append(cmd.Params, first)
	for p.check(lexer.TokenComma) {
		p.advance()
		lit, ok := p.parseLiteral()
		if !ok {
			p.error(fmt.Sprintf("Expected a parameter for \"%s\".", cmd.Name), p.spanFor(p.current()))
			return false
		}
		cmd.Params = append(cmd.Params, lit)
	}
	return true
}

func (p *Parser) mathOperator() (string, bool) {
	switch p.current().Type {
	case lexer.TokenPlus:
		return "+", true
	case lexer.TokenMinus:
		return "-", true
	case lexer.TokenStar:
		return "*", true
	case lexer.TokenSlash:
		return "/", true
	}
	return "", false
}

// parseLiteral reads one value token into the lazy Literal union.
func (p *Parser) parseLiteral() (Literal, bool) {
	tok := p.current()

	// The lexer keeps '-' as an operator in script mode; fold it back
	// into a negative literal here.
	negative := false
	if tok.Type == lexer.TokenMinus && p.peek().Type == lexer.TokenNumber {
		negative = true
		p.advance()
		tok = p.current()
	}

	switch tok.Type {
	case lexer.TokenNumber:
		p.advance()
		raw := tok.Value
		if negative {
			raw = "-" + raw
		}
		span := p.spanFor(tok)
		if hasDot(raw) {
			f, _ := strconv.ParseFloat(raw, 64)
			return Literal{Kind: LitFloat, Float: f, Raw: raw, Span: span}, true
		}
		n, _ := strconv.ParseInt(raw, 10, 64)
		return Literal{Kind: LitInt, Int: n, Raw: raw, Span: span}, true
	case lexer.TokenBoolean:
		p.advance()
		return Literal{Kind: LitBool, Bool: tok.Value == "true", Raw: tok.Value, Span: p.spanFor(tok)}, true
	case lexer.TokenString:
		p.advance()
		return Literal{Kind: LitString, Str: tok.Value, Raw: tok.Value, Span: p.spanFor(tok)}, true
	case lexer.TokenIdentifier:
		p.advance()
		return Literal{Kind: LitIdent, Str: tok.Value, Raw: tok.Value, Span: p.spanFor(tok)}, true
	}
	return Literal{}, false
}

// Helper methods

func (p *Parser) current() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Type: lexer.TokenEOF, Offset: p.endOffset()}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek() lexer.Token {
	if p.pos+1 >= len(p.tokens) {
		return lexer.Token{Type: lexer.TokenEOF, Offset: p.endOffset()}
	}
	return p.tokens[p.pos+1]
}

func (p *Parser) previous() lexer.Token {
	if p.pos == 0 {
		return lexer.Token{Type: lexer.TokenEOF}
	}
	return p.tokens[p.pos-1]
}

func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) isAtEnd() bool {
	return p.pos >= len(p.tokens) || p.current().Type == lexer.TokenEOF
}

func (p *Parser) check(tokenType lexer.TokenType) bool {
	return p.current().Type == tokenType
}

func (p *Parser) expect(tokenType lexer.TokenType) bool {
	if p.check(tokenType) {
		p.advance()
		return true
	}
	p.error(fmt.Sprintf("Expected \"%s\", got \"%s\".", tokenType, p.current().Type), p.spanFor(p.current()))
	return false
}

// atLineBoundary reports whether the current token ends the physical line.
func (p *Parser) atLineBoundary() bool {
	switch p.current().Type {
	case lexer.TokenNewline, lexer.TokenBlankLine, lexer.TokenEOF, lexer.TokenComment:
		return true
	}
	return false
}

// skipLayout moves past comments, newlines and blank lines between
// top-level statements.
func (p *Parser) skipLayout() {
	for {
		switch p.current().Type {
		case lexer.TokenComment, lexer.TokenNewline, lexer.TokenBlankLine:
			p.advance()
		default:
			return
		}
	}
}

// recover skips to the next statement boundary: past a semicolon or
// newline, or up to (not past) a blank line, which may end a chain.
func (p *Parser) recover() {
	for {
		switch p.current().Type {
		case lexer.TokenSemicolon, lexer.TokenNewline:
			p.advance()
			return
		case lexer.TokenBlankLine, lexer.TokenEOF:
			return
		default:
			p.advance()
		}
	}
}

func (p *Parser) error(message string, span diagnostics.Span) {
	p.diags.PushError(diagnostics.NewMapError(message, "script", span))
}

func (p *Parser) spanFor(tok lexer.Token) diagnostics.Span {
	return diagnostics.NewSpan(tok.Offset, tok.End())
}

func (p *Parser) endOffset() int {
	if len(p.tokens) == 0 {
		return 0
	}
	return p.tokens[len(p.tokens)-1].End()
}

func isVarType(s string) bool {
	_, ok := varTypes[s]
	return ok
}

func isComparisonToken(t lexer.TokenType) bool {
	switch t {
	case lexer.TokenGreater, lexer.TokenLess, lexer.TokenGreaterEq,
		lexer.TokenLessEq, lexer.TokenEqEq, lexer.TokenNotEq:
		return true
	}
	return false
}

func hasDot(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return true
		}
	}
	return false
}
