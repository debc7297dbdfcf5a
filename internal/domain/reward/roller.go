package reward

import "homestead/internal/domain/catalog"

const (
	MinButterflies = 1
	MaxButterflies = 3
)

type Roller struct {
	Src Source
}

// RollDrops runs one independent trial per item, in list order.
func (r Roller) RollDrops(items []string, chance float64) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if r.Src.Float64() < chance {
			out = append(out, item)
		}
	}
	return out
}

// RollHazard stops at the first successful trial. A draw equal to the
// probability does not spawn.
func (r Roller) RollHazard(table []catalog.HazardChance) (string, bool) {
	for _, h := range table {
		if r.Src.Float64() < h.Probability {
			return h.Pest, true
		}
	}
	return "", false
}

func (r Roller) RollButterflies() int {
	return MinButterflies + r.Src.IntN(MaxButterflies-MinButterflies+1)
}
