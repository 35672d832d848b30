package keyvalue

import (
	"testing"

	"github.com/manicmap/mapdat-go/mapdat/diagnostics"
	"github.com/manicmap/mapdat-go/mapdat/parsing/section"
)

func parsePairs(t *testing.T, name, body string) ([]Pair, *diagnostics.Diagnostics) {
	t.Helper()
	diags := diagnostics.NewDiagnostics()
	sec := section.Section{Name: name, Body: body, BodySpan: diagnostics.NewSpan(0, len(body))}
	return Parse(sec, &diags), &diags
}

func TestParsePairs(t *testing.T) {
	pairs, diags := parsePairs(t, "info", "rowcount:8\ncolcount: 16\n\nbiome:rock\n")
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Errors())
	}
	if len(pairs) != 3 {
		t.Fatalf("got %d pairs, want 3", len(pairs))
	}
	if pairs[1].Key != "colcount" || pairs[1].Value != "16" {
		t.Errorf("pair 1 = %q:%q", pairs[1].Key, pairs[1].Value)
	}
}

func TestParsePairsMissingColon(t *testing.T) {
	pairs, diags := parsePairs(t, "info", "rowcount 8\nbiome:rock\n")
	if len(diags.Errors()) != 1 {
		t.Fatalf("got %d errors, want 1", len(diags.Errors()))
	}
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1 surviving pair", len(pairs))
	}
}

func TestDecodeInfo(t *testing.T) {
	pairs, _ := parsePairs(t, "info", "rowcount:8\ncolcount:16\nbiome:lava\ncreator:Cadet\nlevelname:Fire and Ice\nspecialkey:kept\n")
	diags := diagnostics.NewDiagnostics()
	info := DecodeInfo(pairs, &diags)

	if info.RowCount != 8 || info.ColCount != 16 {
		t.Errorf("size = %dx%d, want 8x16", info.RowCount, info.ColCount)
	}
	if info.Biome != "lava" || info.LevelName != "Fire and Ice" {
		t.Errorf("biome=%q levelname=%q", info.Biome, info.LevelName)
	}
	if len(info.Raw) != 6 {
		t.Errorf("raw pairs = %d, want all 6 kept", len(info.Raw))
	}
}

func TestDecodeInfoBadCount(t *testing.T) {
	pairs, _ := parsePairs(t, "info", "rowcount:eight\n")
	diags := diagnostics.NewDiagnostics()
	info := DecodeInfo(pairs, &diags)
	if !diags.HasErrors() {
		t.Fatal("expected a literal error")
	}
	if info.RowCount != 0 {
		t.Errorf("rowcount = %d, want 0 for undeclared", info.RowCount)
	}
}

func TestDecodeTimed(t *testing.T) {
	pairs, _ := parsePairs(t, "landslidefrequency", "10.0:5,5/6,6/\n30:1,2/\n")
	diags := diagnostics.NewDiagnostics()
	events := DecodeTimed("landslidefrequency", pairs, &diags)

	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Errors())
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Interval != 10.0 || len(events[0].Tiles) != 2 {
		t.Errorf("event 0 = %+v", events[0])
	}
	if events[1].Tiles[0] != (Coordinate{Row: 1, Col: 2}) {
		t.Errorf("event 1 tile = %+v", events[1].Tiles[0])
	}
}

func TestDecodeTimedBadInterval(t *testing.T) {
	pairs, _ := parsePairs(t, "lavaspread", "soon:5,5/\n")
	diags := diagnostics.NewDiagnostics()
	events := DecodeTimed("lavaspread", pairs, &diags)
	if !diags.HasErrors() {
		t.Fatal("expected an interval error")
	}
	if len(events) != 0 {
		t.Errorf("bad entry survived: %+v", events)
	}
}

func TestDecodeObjectives(t *testing.T) {
	pairs, _ := parsePairs(t, "objectives", "resources:5,0,0\ndiscovertile:12,14/Find the cavern\nconquer:1\n")
	diags := diagnostics.NewDiagnostics()
	objectives := DecodeObjectives(pairs, &diags)

	if len(objectives) != 3 {
		t.Fatalf("got %d objectives, want 3", len(objectives))
	}
	if objectives[0].Kind != "resources" || len(objectives[0].Params) != 3 {
		t.Errorf("objective 0 = %+v", objectives[0])
	}
	if objectives[1].Description != "Find the cavern" {
		t.Errorf("discovertile description = %q", objectives[1].Description)
	}
	// Unknown kinds are kept with a warning.
	if len(diags.Warnings()) != 1 {
		t.Errorf("got %d warnings, want 1 for unknown kind", len(diags.Warnings()))
	}
}
