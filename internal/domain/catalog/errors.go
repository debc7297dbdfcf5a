package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
)

var (
	ErrInvalidKind     = errors.New("invalid kind")
	ErrInvalidDocument = errors.New("invalid catalog document")
)

type UnknownKindError struct {
	Category   Category
	Kind       string
	Suggestion string
}

func (e *UnknownKindError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s: unknown %s %q (did you mean %q?)", ErrInvalidKind, e.Category, e.Kind, e.Suggestion)
	}
	return fmt.Sprintf("%s: unknown %s %q", ErrInvalidKind, e.Category, e.Kind)
}

func (e *UnknownKindError) Unwrap() error {
	return ErrInvalidKind
}

func unknownKind(cat Category, kind string, known []string) error {
	return &UnknownKindError{Category: cat, Kind: kind, Suggestion: suggest(kind, known)}
}

func suggest(kind string, known []string) string {
	if len(kind) < 2 {
		return ""
	}
	sorted := append([]string(nil), known...)
	sort.Strings(sorted)
	best, bestDist := "", -1
	for _, k := range sorted {
		dist := levenshtein.ComputeDistance(kind, k)
		if dist > levenshteinLimit(len(k)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = k, dist
		}
	}
	return best
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
