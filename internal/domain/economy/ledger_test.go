package economy

import (
	"errors"
	"testing"
)

func TestAmounts_CanAffordTreatsMissingAsZero(t *testing.T) {
	bal := Amounts{Gold: 10}
	if !bal.CanAfford(Amounts{Gold: 10}) {
		t.Fatalf("expected exact balance to be affordable")
	}
	if bal.CanAfford(Amounts{Gold: 5, Wood: 1}) {
		t.Fatalf("expected missing wood to block")
	}
	if !bal.CanAfford(Amounts{}) {
		t.Fatalf("expected empty cost to be affordable")
	}
}

func TestAmounts_DebitNamesFirstShortResource(t *testing.T) {
	bal := Amounts{Gold: 1, Wood: 0, Stone: 0}
	_, err := bal.Debit(Amounts{Stone: 5, Gold: 5, Wood: 5})
	var insufficient *InsufficientResourcesError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientResourcesError, got %v", err)
	}
	if insufficient.Resource != Gold || insufficient.Have != 1 || insufficient.Need != 5 {
		t.Fatalf("unexpected short resource: %+v", insufficient)
	}
	if !errors.Is(err, ErrInsufficientResources) {
		t.Fatalf("expected errors.Is ErrInsufficientResources")
	}
	if bal[Gold] != 1 {
		t.Fatalf("failed debit must not touch balance, gold=%d", bal[Gold])
	}
}

func TestAmounts_DebitAndCreditReturnNewMaps(t *testing.T) {
	bal := Amounts{Gold: 10}
	after, err := bal.Debit(Amounts{Gold: 10})
	if err != nil {
		t.Fatalf("debit error: %v", err)
	}
	if after[Gold] != 0 || bal[Gold] != 10 {
		t.Fatalf("got after=%d before=%d want 0 and 10", after[Gold], bal[Gold])
	}
	credited := after.Credit(Amounts{Food: 20, Gold: 5})
	if credited[Food] != 20 || credited[Gold] != 5 {
		t.Fatalf("unexpected credit result: %+v", credited)
	}
	if _, ok := after[Food]; ok {
		t.Fatalf("credit must not mutate receiver")
	}
}

func TestAmounts_NeverNegativeUnderAffordableSequence(t *testing.T) {
	bal := Amounts{Gold: 30, Energy: 4}
	costs := []Amounts{{Gold: 10}, {Energy: 2}, {Gold: 25}, {Gold: 20}, {Energy: 2}, {Energy: 1}}
	for i, cost := range costs {
		if !bal.CanAfford(cost) {
			continue
		}
		next, err := bal.Debit(cost)
		if err != nil {
			t.Fatalf("step %d: debit after CanAfford failed: %v", i, err)
		}
		bal = next.Credit(Amounts{Gold: 1})
		for r, v := range bal {
			if v < 0 {
				t.Fatalf("step %d: %s went negative: %d", i, r, v)
			}
		}
	}
}

func TestParseAmounts_RejectsUnknownResource(t *testing.T) {
	if _, err := ParseAmounts(map[string]int{"gold": 1, "mana": 2}); !errors.Is(err, ErrUnknownResource) {
		t.Fatalf("expected ErrUnknownResource, got %v", err)
	}
	got, err := ParseAmounts(map[string]int{"totem_material": 2})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if got[TotemMaterial] != 2 {
		t.Fatalf("got=%d want=2", got[TotemMaterial])
	}
}

func TestInventory_SpendRemovesExhaustedRows(t *testing.T) {
	inv := Inventory{"wheat_seed": 5, "straw": 3, "golden_grain": 2, "egg": 1}
	out, err := inv.Spend(map[string]int{"wheat_seed": 5, "straw": 3, "golden_grain": 2})
	if err != nil {
		t.Fatalf("spend error: %v", err)
	}
	if len(out) != 1 || out["egg"] != 1 {
		t.Fatalf("expected only egg left, got %+v", out)
	}
	for item, n := range out {
		if n <= 0 {
			t.Fatalf("row %s left with %d", item, n)
		}
	}
}

func TestInventory_SpendFailsWithoutChange(t *testing.T) {
	inv := Inventory{"egg": 4}
	_, err := inv.Spend(map[string]int{"egg": 5})
	var short *InsufficientItemsError
	if !errors.As(err, &short) {
		t.Fatalf("expected InsufficientItemsError, got %v", err)
	}
	if short.Item != "egg" || short.Have != 4 || short.Need != 5 {
		t.Fatalf("unexpected error detail: %+v", short)
	}
	if inv["egg"] != 4 {
		t.Fatalf("inventory mutated: %d", inv["egg"])
	}
}
