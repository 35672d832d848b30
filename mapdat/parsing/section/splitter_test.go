package section

import (
	"testing"

	"github.com/manicmap/mapdat-go/mapdat/core"
	"github.com/manicmap/mapdat-go/mapdat/diagnostics"
)

func split(t *testing.T, input string) ([]Section, *diagnostics.Diagnostics) {
	t.Helper()
	diags := diagnostics.NewDiagnostics()
	sections := Split(core.NewSourceFile("level.dat", input), &diags)
	return sections, &diags
}

func TestSplitBasic(t *testing.T) {
	input := `info{
rowcount:4
colcount:4
}
tiles{
1,1,
1,1,
}
`
	sections, diags := split(t, input)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Errors())
	}
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	if sections[0].Name != "info" || sections[0].Kind != KindKeyValue {
		t.Errorf("section 0 = %s (%s)", sections[0].Name, sections[0].Kind)
	}
	if sections[1].Name != "tiles" || sections[1].Kind != KindGrid {
		t.Errorf("section 1 = %s (%s)", sections[1].Name, sections[1].Kind)
	}
	if sections[1].Body != "\n1,1,\n1,1,\n" {
		t.Errorf("tiles body = %q", sections[1].Body)
	}
}

func TestSplitBracesInsideStrings(t *testing.T) {
	input := "script{\nstring Msg=\"a } inside\"\n}\n"
	sections, diags := split(t, input)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Errors())
	}
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if got := sections[0].Body; got != "\nstring Msg=\"a } inside\"\n" {
		t.Errorf("body = %q", got)
	}
}

func TestSplitBracesInsideScriptComments(t *testing.T) {
	input := "script{\n# closing } here does not count\nmsg:A;\n}\n"
	sections, diags := split(t, input)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Errors())
	}
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
}

func TestSplitUnterminatedSection(t *testing.T) {
	input := "info{\nrowcount:4\n"
	sections, diags := split(t, input)
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if !diags.HasErrors() {
		t.Fatal("expected an unterminated section error")
	}
	// The body still comes back so downstream parsing can continue.
	if sections[0].Body == "" {
		t.Error("unterminated section lost its body")
	}
}

func TestSplitDuplicateSection(t *testing.T) {
	input := "info{\n}\ninfo{\n}\n"
	sections, diags := split(t, input)
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	if len(diags.Errors()) != 1 {
		t.Fatalf("got %d errors, want 1 duplicate error", len(diags.Errors()))
	}
}

func TestSplitStrayTextTolerated(t *testing.T) {
	input := "some stray line\ninfo{\n}\n"
	sections, _ := split(t, input)
	if len(sections) != 1 || sections[0].Name != "info" {
		t.Fatalf("stray text broke splitting: %v", sections)
	}
}

func TestKindOf(t *testing.T) {
	cases := map[string]Kind{
		"tiles":              KindGrid,
		"height":             KindGrid,
		"resources":          KindResource,
		"miners":             KindObjectList,
		"script":             KindScript,
		"briefing":           KindText,
		"landslidefrequency": KindTimed,
		"objectives":         KindObjectives,
		"nosuchsection":      KindUnknown,
	}
	for name, want := range cases {
		if got := KindOf(name); got != want {
			t.Errorf("KindOf(%q) = %v, want %v", name, got, want)
		}
	}
}
