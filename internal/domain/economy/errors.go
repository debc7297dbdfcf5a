package economy

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientResources = errors.New("insufficient resources")
	ErrInsufficientItems     = errors.New("insufficient collection items")
	ErrUnknownResource       = errors.New("unknown resource")
	ErrInvalidCurve          = errors.New("invalid level curve")
)

type InsufficientResourcesError struct {
	Resource Resource
	Have     int
	Need     int
}

func (e *InsufficientResourcesError) Error() string {
	return fmt.Sprintf("%s: %s have=%d need=%d", ErrInsufficientResources, e.Resource, e.Have, e.Need)
}

func (e *InsufficientResourcesError) Unwrap() error {
	return ErrInsufficientResources
}

type InsufficientItemsError struct {
	Item string
	Have int
	Need int
}

func (e *InsufficientItemsError) Error() string {
	return fmt.Sprintf("%s: %s have=%d need=%d", ErrInsufficientItems, e.Item, e.Have, e.Need)
}

func (e *InsufficientItemsError) Unwrap() error {
	return ErrInsufficientItems
}
