package economy

import "fmt"

var defaultLevelThresholds = []int{0, 100, 300, 600, 1000, 1500, 2200, 3000, 4000, 5500}

type LevelCurve struct {
	thresholds []int
}

func NewLevelCurve(thresholds []int) (LevelCurve, error) {
	if len(thresholds) == 0 || thresholds[0] != 0 {
		return LevelCurve{}, fmt.Errorf("%w: first threshold must be 0", ErrInvalidCurve)
	}
	for i := 1; i < len(thresholds); i++ {
		if thresholds[i] <= thresholds[i-1] {
			return LevelCurve{}, fmt.Errorf("%w: threshold %d (%d) not above %d", ErrInvalidCurve, i+1, thresholds[i], thresholds[i-1])
		}
	}
	out := make([]int, len(thresholds))
	copy(out, thresholds)
	return LevelCurve{thresholds: out}, nil
}

func DefaultLevelCurve() LevelCurve {
	c, _ := NewLevelCurve(defaultLevelThresholds)
	return c
}

func (c LevelCurve) MaxLevel() int {
	return len(c.thresholds)
}

func (c LevelCurve) Thresholds() []int {
	out := make([]int, len(c.thresholds))
	copy(out, c.thresholds)
	return out
}

func (c LevelCurve) LevelFor(experience int) int {
	level := 1
	for i, th := range c.thresholds {
		if experience < th {
			break
		}
		level = i + 1
	}
	return level
}

// NextThreshold is the experience needed for the level after the one xp maps to.
func (c LevelCurve) NextThreshold(experience int) (int, bool) {
	level := c.LevelFor(experience)
	if level >= len(c.thresholds) {
		return 0, false
	}
	return c.thresholds[level], true
}
