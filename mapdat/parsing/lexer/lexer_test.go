package lexer

import (
	"testing"
)

func tokenTypes(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestTokenizeTrigger(t *testing.T) {
	input := `when(enter:5,5)((crystals>10))[Reward];`
	tokens := Tokenize(input, ModeScript, 0, 0)

	want := []TokenType{
		TokenIdentifier, TokenLParen, TokenIdentifier, TokenColon,
		TokenNumber, TokenComma, TokenNumber, TokenRParen,
		TokenDoubleLParen, TokenIdentifier, TokenGreater, TokenNumber, TokenDoubleRParen,
		TokenLBracket, TokenIdentifier, TokenRBracket, TokenSemicolon,
		TokenNewline, TokenEOF,
	}
	got := tokenTypes(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDoubleColonIsOneToken(t *testing.T) {
	tokens := Tokenize("MyChain::", ModeScript, 0, 0)
	if tokens[0].Type != TokenIdentifier || tokens[0].Value != "MyChain" {
		t.Fatalf("expected identifier MyChain, got %v %q", tokens[0].Type, tokens[0].Value)
	}
	if tokens[1].Type != TokenDoubleColon {
		t.Fatalf("expected ::, got %v", tokens[1].Type)
	}
}

func TestCommentOnlyLineIsNotBlank(t *testing.T) {
	input := "msg:A;\n# just a note\nmsg:B;\n"
	tokens := Tokenize(input, ModeScript, 0, 0)

	for _, tok := range tokens {
		if tok.Type == TokenBlankLine {
			t.Fatalf("comment-only line produced a blank line token")
		}
	}

	sawComment := false
	for _, tok := range tokens {
		if tok.Type == TokenComment {
			sawComment = true
			if tok.Value != " just a note" {
				t.Errorf("comment value = %q", tok.Value)
			}
		}
	}
	if !sawComment {
		t.Fatal("no comment token emitted")
	}
}

func TestEmptyLineIsBlank(t *testing.T) {
	input := "msg:A;\n\nmsg:B;\n"
	tokens := Tokenize(input, ModeScript, 0, 0)

	count := 0
	for _, tok := range tokens {
		if tok.Type == TokenBlankLine {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("want exactly 1 blank line token, got %d", count)
	}
}

func TestNegativeNumbersByMode(t *testing.T) {
	// Data mode folds the sign into the number.
	tokens := Tokenize("5,-3,", ModeData, 0, 0)
	if tokens[2].Type != TokenNumber || tokens[2].Value != "-3" {
		t.Errorf("data mode: got %v %q, want number -3", tokens[2].Type, tokens[2].Value)
	}

	// Script mode keeps '-' as an operator so the one-operation arithmetic
	// rule can count it.
	tokens = Tokenize("crystals:a-3;", ModeScript, 0, 0)
	sawMinus := false
	for _, tok := range tokens {
		if tok.Type == TokenMinus {
			sawMinus = true
		}
		if tok.Type == TokenNumber && tok.Value == "-3" {
			t.Error("script mode folded the sign into the number")
		}
	}
	if !sawMinus {
		t.Error("script mode: no minus operator token")
	}
}

func TestStringToken(t *testing.T) {
	tokens := Tokenize(`string Msg="hello there"`, ModeScript, 0, 0)

	var str *Token
	for i := range tokens {
		if tokens[i].Type == TokenString {
			str = &tokens[i]
		}
	}
	if str == nil {
		t.Fatal("no string token")
	}
	if str.Value != "hello there" {
		t.Errorf("string value = %q", str.Value)
	}
}

func TestUnterminatedStringStopsAtNewline(t *testing.T) {
	tokens := Tokenize("msg:\"oops\nmsg:B;", ModeScript, 0, 0)
	for _, tok := range tokens {
		if tok.Type == TokenString && tok.Value != "oops" {
			t.Errorf("unterminated string value = %q", tok.Value)
		}
	}
}

func TestTextModeOneTokenPerLine(t *testing.T) {
	input := "The caverns are {dangerous}.\n\nGood luck, Cadet.\n"
	tokens := Tokenize(input, ModeText, 0, 0)

	var lines []string
	for _, tok := range tokens {
		if tok.Type == TokenString {
			lines = append(lines, tok.Value)
		}
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %v", len(lines), lines)
	}
	if lines[0] != "The caverns are {dangerous}." {
		t.Errorf("line 0 = %q", lines[0])
	}
}

func TestBaseOffsetsAreFileAbsolute(t *testing.T) {
	tokens := Tokenize("abc", ModeScript, 100, 7)
	if tokens[0].Offset != 100 {
		t.Errorf("offset = %d, want 100", tokens[0].Offset)
	}
	if tokens[0].Line != 7 {
		t.Errorf("line = %d, want 7", tokens[0].Line)
	}
}

func TestTokenizeNeverPanics(t *testing.T) {
	inputs := []string{
		"", "\n", "\x00\x01\x02", "((((((", "::::::", "\"", "#",
		"~?~?~?", "if when else", "🙂 emoji", "a\rb\r\n",
	}
	for _, input := range inputs {
		for _, mode := range []Mode{ModeScript, ModeData, ModeText} {
			tokens := Tokenize(input, mode, 0, 0)
			if len(tokens) == 0 || tokens[len(tokens)-1].Type != TokenEOF {
				t.Errorf("input %q mode %d: missing EOF", input, mode)
			}
		}
	}
}
