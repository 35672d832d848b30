package keyvalue

import (
	"strconv"

	"github.com/manicmap/mapdat-go/mapdat/diagnostics"
)

// Info is the decoded info section. RowCount/ColCount of 0 mean the key was
// absent or unparseable; grid dimension checks treat that as "undeclared".
type Info struct {
	RowCount  int
	ColCount  int
	Biome     string
	Creator   string
	LevelName string
	Version   string

	// Raw keeps every pair, including keys this decoder does not model,
	// in file order.
	Raw []Pair
}

// DecodeInfo decodes the pairs of an info section. Unknown keys are kept but
// not reported: the format grows keys faster than editors do.
func DecodeInfo(pairs []Pair, diags *diagnostics.Diagnostics) Info {
	info := Info{Raw: pairs}

	for _, p := range pairs {
		switch p.Key {
		case "rowcount":
			info.RowCount = decodeInt(p, diags)
		case "colcount":
			info.ColCount = decodeInt(p, diags)
		case "biome":
			info.Biome = p.Value
		case "creator":
			info.Creator = p.Value
		case "levelname":
			info.LevelName = p.Value
		case "version":
			info.Version = p.Value
		}
	}

	return info
}

func decodeInt(p Pair, diags *diagnostics.Diagnostics) int {
	v, err := strconv.Atoi(p.Value)
	if err != nil {
		diags.PushError(diagnostics.NewLiteralError("integer", p.Value, "info", p.ValueSpan))
		return 0
	}
	return v
}
