package action

import (
	"homestead/internal/domain/economy"
	"homestead/internal/domain/farm"
)

const HarvestEnergyCost = 2

func (ac *ActionContext) debit(cost economy.Amounts) error {
	if cost.IsZero() {
		return nil
	}
	next, err := ac.Tmp.Player.Resources.Debit(cost)
	if err != nil {
		return err
	}
	ac.Tmp.Player.Resources = next
	ac.Tmp.Delta = ac.Tmp.Delta.Merge(cost, -1)
	return nil
}

func (ac *ActionContext) credit(gain economy.Amounts) {
	if gain.IsZero() {
		return
	}
	ac.Tmp.Player.Resources = ac.Tmp.Player.Resources.Credit(gain)
	ac.Tmp.Delta = ac.Tmp.Delta.Merge(gain, 1)
}

func (ac *ActionContext) gainExperience(curve economy.LevelCurve, xp int) {
	if xp <= 0 {
		return
	}
	ac.Tmp.XP += xp
	if ac.Tmp.Player.GainExperience(xp, curve) {
		ac.Tmp.LevelUp = true
	}
}

func (ac *ActionContext) collectDrops(items []string) {
	if len(items) == 0 {
		return
	}
	inv := ac.Tmp.Player.Collections
	for _, item := range items {
		inv = inv.Add(item, 1)
	}
	ac.Tmp.Player.Collections = inv
	ac.Tmp.Drops = append(ac.Tmp.Drops, items...)
}

func (ac *ActionContext) requireLevel(required int) error {
	if ac.Tmp.Player.Level < required {
		return &LevelTooLowError{Required: required, Current: ac.Tmp.Player.Level}
	}
	return nil
}

func (ac *ActionContext) emit(eventType string, payload map[string]any) {
	ac.Plan.EventsToAppend = append(ac.Plan.EventsToAppend, farm.DomainEvent{
		Type:       eventType,
		OccurredAt: ac.In.NowAt,
		Payload:    payload,
	})
}

func (ac *ActionContext) appendLedgerEvents() {
	if !ac.Tmp.Delta.IsZero() {
		ac.emit(farm.EventResourcesChanged, map[string]any{
			"delta":     ac.Tmp.Delta.Clone(),
			"resources": ac.Tmp.Player.Resources.Clone(),
		})
	}
	if len(ac.Tmp.Drops) > 0 {
		ac.emit(farm.EventItemsDropped, map[string]any{"items": append([]string(nil), ac.Tmp.Drops...)})
	}
	if ac.Tmp.XP > 0 {
		ac.emit(farm.EventExperienceGained, map[string]any{
			"amount":     ac.Tmp.XP,
			"experience": ac.Tmp.Player.Experience,
		})
	}
	if ac.Tmp.LevelUp {
		ac.emit(farm.EventLevelUp, map[string]any{
			"from": ac.View.PlayerBefore.Level,
			"to":   ac.Tmp.Player.Level,
		})
	}
}
