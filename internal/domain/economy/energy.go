package economy

import "time"

const (
	EnergyRegenInterval = 5 * time.Minute
	DefaultMaxEnergy    = 100
	DefaultRegenRate    = 1
)

// RegenerateEnergy credits whole elapsed intervals. The bookkeeping timestamp
// moves by the intervals consumed, so partial intervals carry over.
func RegenerateEnergy(p Player, now time.Time) Player {
	if p.LastEnergyUpdate.IsZero() || !now.After(p.LastEnergyUpdate) {
		return p
	}
	intervals := int(now.Sub(p.LastEnergyUpdate) / EnergyRegenInterval)
	regen := intervals * p.RegenRate
	if regen <= 0 {
		return p
	}
	out := p
	out.Resources = p.Resources.Clone()
	energy := out.Resources[Energy] + regen
	if energy > p.MaxEnergy {
		energy = p.MaxEnergy
	}
	if energy > out.Resources[Energy] {
		out.Resources[Energy] = energy
	}
	out.LastEnergyUpdate = p.LastEnergyUpdate.Add(time.Duration(intervals) * EnergyRegenInterval)
	return out
}
