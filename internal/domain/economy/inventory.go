package economy

import "sort"

// Inventory holds collectible items. Rows that reach zero are removed.
type Inventory map[string]int

func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for k, v := range inv {
		out[k] = v
	}
	return out
}

func (inv Inventory) Add(item string, n int) Inventory {
	out := inv.Clone()
	if item == "" || n <= 0 {
		return out
	}
	out[item] += n
	return out
}

func (inv Inventory) Has(need map[string]int) bool {
	_, short := inv.firstShort(need)
	return !short
}

func (inv Inventory) Spend(need map[string]int) (Inventory, error) {
	if item, short := inv.firstShort(need); short {
		return inv, &InsufficientItemsError{Item: item, Have: inv[item], Need: need[item]}
	}
	out := inv.Clone()
	for item, n := range need {
		if n <= 0 {
			continue
		}
		out[item] -= n
		if out[item] <= 0 {
			delete(out, item)
		}
	}
	return out, nil
}

func (inv Inventory) firstShort(need map[string]int) (string, bool) {
	items := make([]string, 0, len(need))
	for item := range need {
		items = append(items, item)
	}
	sort.Strings(items)
	for _, item := range items {
		if n := need[item]; n > 0 && inv[item] < n {
			return item, true
		}
	}
	return "", false
}
