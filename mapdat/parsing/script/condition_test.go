package script

import (
	"testing"

	"github.com/manicmap/mapdat-go/mapdat/diagnostics"
)

func parseCondition(t *testing.T, raw string) (*Condition, *diagnostics.Diagnostics) {
	t.Helper()
	diags := diagnostics.NewDiagnostics()
	cond := ParseCondition(raw, diagnostics.NewSpan(0, len(raw)), &diags)
	return cond, &diags
}

func TestConditionComparisons(t *testing.T) {
	valid := []string{
		"crystals>10",
		"air <= 50",
		"Count == 0",
		"Ratio != 1.5",
		"time >= 30",
		"miners < 5",
	}
	for _, raw := range valid {
		cond, diags := parseCondition(t, raw)
		if cond == nil || diags.HasErrors() {
			t.Errorf("%q rejected: %v", raw, diags.Errors())
		}
	}
}

func TestConditionConnectives(t *testing.T) {
	cond, diags := parseCondition(t, "crystals>10 and (Ready or not Late)")
	if cond == nil || diags.HasErrors() {
		t.Fatalf("rejected: %v", diags.Errors())
	}

	idents := cond.Idents()
	want := []string{"crystals", "Ready", "Late"}
	if len(idents) != len(want) {
		t.Fatalf("idents = %v, want %v", idents, want)
	}
	for i := range want {
		if idents[i] != want[i] {
			t.Errorf("ident %d = %q, want %q", i, idents[i], want[i])
		}
	}
}

func TestConditionBareBoolean(t *testing.T) {
	cond, diags := parseCondition(t, "Ready")
	if cond == nil || diags.HasErrors() {
		t.Fatalf("bare name rejected: %v", diags.Errors())
	}
	if idents := cond.Idents(); len(idents) != 1 || idents[0] != "Ready" {
		t.Errorf("idents = %v", idents)
	}
}

func TestConditionPrecedence(t *testing.T) {
	// and binds tighter than or: a or b and c parses as a or (b and c).
	cond, diags := parseCondition(t, "A or B and C")
	if cond == nil || diags.HasErrors() {
		t.Fatalf("rejected: %v", diags.Errors())
	}
	if len(cond.Expr.Terms) != 2 {
		t.Fatalf("or terms = %d, want 2", len(cond.Expr.Terms))
	}
	if len(cond.Expr.Terms[1].Terms) != 2 {
		t.Errorf("second or-term should hold B and C, got %d terms", len(cond.Expr.Terms[1].Terms))
	}
}

func TestConditionRejectsMalformed(t *testing.T) {
	invalid := []string{
		"",
		"and",
		"crystals >",
		"> 10",
		"a ++ b",
		"f(x)",
		"(a or b",
	}
	for _, raw := range invalid {
		cond, diags := parseCondition(t, raw)
		if cond != nil && !diags.HasErrors() {
			t.Errorf("%q accepted, want rejection", raw)
		}
	}
}

func TestConditionKeywordsAreNotOperands(t *testing.T) {
	invalid := []string{
		"crystals and",
		"or > 5",
		"not",
		"and and and",
	}
	for _, raw := range invalid {
		cond, diags := parseCondition(t, raw)
		if cond != nil && !diags.HasErrors() {
			t.Errorf("%q accepted, want rejection", raw)
		}
	}

	// Names that merely start with a keyword stay ordinary identifiers.
	for _, raw := range []string{"ore > 5", "android", "notReady", "orbit == 3"} {
		cond, diags := parseCondition(t, raw)
		if cond == nil || diags.HasErrors() {
			t.Errorf("%q rejected: %v", raw, diags.Errors())
		}
	}
}

func TestConditionNegativeLiterals(t *testing.T) {
	cond, diags := parseCondition(t, "Depth > -5")
	if cond == nil || diags.HasErrors() {
		t.Fatalf("rejected: %v", diags.Errors())
	}
}
