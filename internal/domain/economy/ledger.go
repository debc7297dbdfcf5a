package economy

import "fmt"

// Amounts is a resource balance or a resource delta. Missing keys read as zero.
type Amounts map[Resource]int

func ParseAmounts(raw map[string]int) (Amounts, error) {
	out := make(Amounts, len(raw))
	for k, v := range raw {
		r, err := ParseResource(k)
		if err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, fmt.Errorf("negative amount for %s: %d", k, v)
		}
		out[r] = v
	}
	return out, nil
}

func (a Amounts) Get(r Resource) int {
	return a[r]
}

func (a Amounts) Clone() Amounts {
	out := make(Amounts, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

func (a Amounts) IsZero() bool {
	for _, v := range a {
		if v != 0 {
			return false
		}
	}
	return true
}

func (a Amounts) CanAfford(cost Amounts) bool {
	_, short := a.firstShort(cost)
	return !short
}

// Debit returns a new balance with cost removed. The receiver is never modified.
func (a Amounts) Debit(cost Amounts) (Amounts, error) {
	if r, short := a.firstShort(cost); short {
		return a, &InsufficientResourcesError{Resource: r, Have: a[r], Need: cost[r]}
	}
	out := a.Clone()
	for r, v := range cost {
		if v == 0 {
			continue
		}
		out[r] -= v
	}
	return out, nil
}

func (a Amounts) Credit(gain Amounts) Amounts {
	out := a.Clone()
	for r, v := range gain {
		out[r] += v
	}
	return out
}

// Merge sums deltas; used to report what an action moved in total.
func (a Amounts) Merge(other Amounts, sign int) Amounts {
	out := a.Clone()
	for r, v := range other {
		out[r] += sign * v
		if out[r] == 0 {
			delete(out, r)
		}
	}
	return out
}

func (a Amounts) firstShort(cost Amounts) (Resource, bool) {
	for _, r := range resourceOrder {
		need, ok := cost[r]
		if !ok || need <= 0 {
			continue
		}
		if a[r] < need {
			return r, true
		}
	}
	for r, need := range cost {
		if !r.Valid() && need > 0 && a[r] < need {
			return r, true
		}
	}
	return "", false
}
