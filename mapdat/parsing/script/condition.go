package script

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/manicmap/mapdat-go/mapdat/diagnostics"
)

// conditionLexer defines the token types for the condition sub-grammar.
// Conditions are small comparison expressions; they get their own
// participle grammar instead of hand-rolled descent.
var conditionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Float", Pattern: `-?\d+\.\d+`},
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "CmpOp", Pattern: `>=|<=|==|!=|>|<`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	// Keywords lex as their own class so a connective is never a valid
	// operand: "a and" must not parse as two identifiers.
	{Name: "Keyword", Pattern: `(?:and|or|not|true|false)\b`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

// OrExpr is the top of the condition grammar: and binds tighter than or.
type OrExpr struct {
	Pos   lexer.Position
	Terms []*AndExpr `parser:"@@ ( \"or\" @@ )*"`
}

// AndExpr is a conjunction of negatable comparisons.
type AndExpr struct {
	Pos   lexer.Position
	Terms []*NotExpr `parser:"@@ ( \"and\" @@ )*"`
}

// NotExpr is an optionally negated comparison.
type NotExpr struct {
	Pos  lexer.Position
	Not  bool        `parser:"@\"not\"?"`
	Comp *Comparison `parser:"@@"`
}

// Comparison is one operand, optionally compared against another. A bare
// boolean operand is a valid condition on its own.
type Comparison struct {
	Pos   lexer.Position
	Left  *Operand `parser:"@@"`
	Op    string   `parser:"( @CmpOp"`
	Right *Operand `parser:"  @@ )?"`
}

// Operand is a literal, a name, or a parenthesised sub-expression. The
// grammar has no production for calls or parameterized macros: those are a
// parse error inside a condition.
type Operand struct {
	Pos   lexer.Position
	Float *float64 `parser:"  @Float"`
	Int   *int64   `parser:"| @Int"`
	Bool  *string  `parser:"| @( \"true\" | \"false\" )"`
	Str   *string  `parser:"| @String"`
	Ident *string  `parser:"| @Ident"`
	Sub   *OrExpr  `parser:"| \"(\" @@ \")\""`
}

var conditionParser = participle.MustBuild[OrExpr](
	participle.Lexer(conditionLexer),
	participle.Elide("Whitespace"),
	participle.Unquote("String"),
	participle.UseLookahead(2),
)

// Condition is a parsed double-paren guard.
type Condition struct {
	Expr *OrExpr
	// Raw is the text between the double parentheses.
	Raw string
	// Span covers the full (( )) region in the file.
	Span diagnostics.Span
}

// ParseCondition parses the text between (( and )). A nil result means the
// condition did not parse; the failure is already in diags.
func ParseCondition(raw string, span diagnostics.Span, diags *diagnostics.Diagnostics) *Condition {
	expr, err := conditionParser.ParseString("", raw)
	if err != nil {
		diags.PushError(diagnostics.NewMapError(
			"Invalid condition: "+err.Error(),
			"script", span,
		))
		return nil
	}
	return &Condition{Expr: expr, Raw: raw, Span: span}
}

// Idents returns every name the condition reads, in source order. The
// validator resolves them against the symbol table.
func (c *Condition) Idents() []string {
	if c == nil || c.Expr == nil {
		return nil
	}
	var out []string
	collectOrIdents(c.Expr, &out)
	return out
}

func collectOrIdents(e *OrExpr, out *[]string) {
	for _, t := range e.Terms {
		for _, n := range t.Terms {
			if n.Comp == nil {
				continue
			}
			collectOperandIdents(n.Comp.Left, out)
			collectOperandIdents(n.Comp.Right, out)
		}
	}
}

func collectOperandIdents(o *Operand, out *[]string) {
	if o == nil {
		return
	}
	if o.Ident != nil {
		*out = append(*out, *o.Ident)
	}
	if o.Sub != nil {
		collectOrIdents(o.Sub, out)
	}
}
