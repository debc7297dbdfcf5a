package replay

import (
	"context"
	"errors"
	"strings"

	"homestead/internal/app/ports"
	"homestead/internal/domain/economy"
	"homestead/internal/domain/farm"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

var ErrInvalidRequest = errors.New("invalid replay request")

type UseCase struct {
	Events ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.PlayerID) == "" {
		return Response{}, ErrInvalidRequest
	}
	if req.Limit <= 0 {
		req.Limit = DefaultLimit
	}
	if req.Limit > MaxLimit {
		req.Limit = MaxLimit
	}
	events, err := u.Events.ListByPlayerID(ctx, req.PlayerID, req.Limit)
	if err != nil {
		return Response{}, err
	}
	events = filterEvents(events, req)
	return Response{Events: events, LatestResources: reconstruct(events)}, nil
}

func filterEvents(events []farm.DomainEvent, req Request) []farm.DomainEvent {
	if req.Type == "" && req.OccurredFrom <= 0 && req.OccurredTo <= 0 {
		return events
	}
	out := make([]farm.DomainEvent, 0, len(events))
	for _, evt := range events {
		if req.Type != "" && evt.Type != req.Type {
			continue
		}
		ts := evt.OccurredAt.Unix()
		if req.OccurredFrom > 0 && ts < req.OccurredFrom {
			continue
		}
		if req.OccurredTo > 0 && ts > req.OccurredTo {
			continue
		}
		out = append(out, evt)
	}
	return out
}

// reconstruct returns the balance carried by the newest resources_changed
// event. Events are listed newest first.
func reconstruct(events []farm.DomainEvent) economy.Amounts {
	for _, evt := range events {
		if evt.Type != farm.EventResourcesChanged {
			continue
		}
		switch raw := evt.Payload["resources"].(type) {
		case economy.Amounts:
			return raw.Clone()
		case map[string]any:
			out := economy.Amounts{}
			for k, v := range raw {
				r, err := economy.ParseResource(k)
				if err != nil {
					continue
				}
				out[r] = int(num(v))
			}
			return out
		}
	}
	return nil
}

func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
