package objects

import (
	"testing"

	"github.com/manicmap/mapdat-go/mapdat/diagnostics"
	"github.com/manicmap/mapdat-go/mapdat/parsing/section"
)

func parseList(t *testing.T, name, body string) ([]ObjectRecord, *diagnostics.Diagnostics) {
	t.Helper()
	diags := diagnostics.NewDiagnostics()
	sec := section.Section{Name: name, Body: body, BodySpan: diagnostics.NewSpan(0, len(body))}
	return ParseObjects(sec, &diags), &diags
}

func TestParseCSVRecords(t *testing.T) {
	records, diags := parseList(t, "vehicles", "VehicleHoverScout_C,5,6\nVehicleSmallDigger_C,7,8,90,2\n")
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Errors())
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Type != "VehicleHoverScout_C" || records[0].Row != 5 || records[0].Col != 6 {
		t.Errorf("record 0 = %+v", records[0])
	}
	if records[1].Properties["orientation"] != "90" || records[1].Properties["level"] != "2" {
		t.Errorf("record 1 properties = %v", records[1].Properties)
	}
}

func TestParseCSVAliases(t *testing.T) {
	records, diags := parseList(t, "buildings", "toolstore,4,5\n")
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Errors())
	}
	if records[0].Type != "BuildingToolStore_C" {
		t.Errorf("alias not canonicalized: %q", records[0].Type)
	}
}

func TestParseBlockRecords(t *testing.T) {
	body := `CreatureRockMonster_C
row: 4
col: 5
sleep: true

CreatureSlimySlug_C
id: 7
row: 10
col: 2
`
	records, diags := parseList(t, "creatures", body)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Errors())
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Properties["sleep"] != "true" {
		t.Errorf("record 0 properties = %v", records[0].Properties)
	}
	if records[0].ID != 0 {
		t.Errorf("record 0 positional id = %d, want 0", records[0].ID)
	}
	if !records[1].HasID || records[1].ID != 7 {
		t.Errorf("record 1 id = %d (HasID=%v), want 7", records[1].ID, records[1].HasID)
	}
}

func TestPositionalIDs(t *testing.T) {
	records, _ := parseList(t, "miners", "Miner,1,1\nMiner,2,2\nMiner,3,3\n")
	for i, rec := range records {
		if rec.ID != i {
			t.Errorf("record %d id = %d", i, rec.ID)
		}
	}
}

func TestBuildingKeyIsFootPoint(t *testing.T) {
	records, _ := parseList(t, "buildings", "toolstore,4,5\n")
	if got := records[0].Key(); got != "4,5" {
		t.Errorf("building key = %q, want \"4,5\"", got)
	}

	records, _ = parseList(t, "vehicles", "hoverscout,4,5\n")
	if got := records[0].Key(); got != "0" {
		t.Errorf("vehicle key = %q, want \"0\"", got)
	}
}

func TestUnknownTypeWarns(t *testing.T) {
	records, diags := parseList(t, "creatures", "CreatureFluffyBunny_C,3,3\n")
	if len(diags.Warnings()) != 1 {
		t.Fatalf("got %d warnings, want 1", len(diags.Warnings()))
	}
	// The raw spelling is kept so downstream tooling can still refer to it.
	if records[0].Type != "CreatureFluffyBunny_C" {
		t.Errorf("type = %q", records[0].Type)
	}
}

func TestCanonicalize(t *testing.T) {
	cases := []struct {
		section string
		in      string
		want    string
		known   bool
	}{
		{"buildings", "toolstore", "BuildingToolStore_C", true},
		{"buildings", "BuildingToolStore_C", "BuildingToolStore_C", true},
		{"creatures", "rockmonster", "CreatureRockMonster_C", true},
		{"miners", "miner", "Miner", true},
		{"vehicles", "warpgate", "warpgate", false},
	}
	for _, tc := range cases {
		got, known := Canonicalize(tc.section, tc.in)
		if known != tc.known || (known && got != tc.want) {
			t.Errorf("Canonicalize(%s, %s) = %q,%v want %q,%v", tc.section, tc.in, got, known, tc.want, tc.known)
		}
	}
}
