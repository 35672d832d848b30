package keyvalue

import (
	"strconv"
	"strings"

	"github.com/manicmap/mapdat-go/mapdat/diagnostics"
)

// Coordinate is a (row, col) pair in grid space.
type Coordinate struct {
	Row int
	Col int
}

// TimedEvent is one hazard schedule entry: at each interval, the engine
// picks among the listed tiles.
type TimedEvent struct {
	Interval float64
	Tiles    []Coordinate
	Span     diagnostics.Span
}

// DecodeTimed decodes landslidefrequency/lavaspread pairs, where the key is
// an interval in seconds and the value is a /-separated coordinate list
// ("10:5,5/6,6/").
func DecodeTimed(sectionName string, pairs []Pair, diags *diagnostics.Diagnostics) []TimedEvent {
	events := make([]TimedEvent, 0, len(pairs))

	for _, p := range pairs {
		interval, err := strconv.ParseFloat(p.Key, 64)
		if err != nil {
			diags.PushError(diagnostics.NewLiteralError("interval", p.Key, sectionName, p.KeySpan))
			continue
		}

		ev := TimedEvent{Interval: interval, Span: p.ValueSpan}
		for _, part := range strings.Split(p.Value, "/") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			coord, ok := decodeCoordinate(part)
			if !ok {
				diags.PushError(diagnostics.NewLiteralError("coordinate", part, sectionName, p.ValueSpan))
				continue
			}
			ev.Tiles = append(ev.Tiles, coord)
		}
		events = append(events, ev)
	}

	return events
}

func decodeCoordinate(s string) (Coordinate, bool) {
	row, col, ok := strings.Cut(s, ",")
	if !ok {
		return Coordinate{}, false
	}
	r, err1 := strconv.Atoi(strings.TrimSpace(row))
	c, err2 := strconv.Atoi(strings.TrimSpace(col))
	if err1 != nil || err2 != nil {
		return Coordinate{}, false
	}
	return Coordinate{Row: r, Col: c}, true
}
