package economy

import "fmt"

type Resource string

const (
	Gold              Resource = "gold"
	Wood              Resource = "wood"
	Stone             Resource = "stone"
	Food              Resource = "food"
	Energy            Resource = "energy"
	Agrobucks         Resource = "agrobucks"
	Coal              Resource = "coal"
	TotemMaterial     Resource = "totem_material"
	DroughtProtection Resource = "drought_protection"
	Butterflies       Resource = "butterflies"
)

// Canonical order. Ledger checks walk it so the first short resource is stable.
var resourceOrder = []Resource{
	Gold,
	Wood,
	Stone,
	Food,
	Energy,
	Agrobucks,
	Coal,
	TotemMaterial,
	DroughtProtection,
	Butterflies,
}

func Resources() []Resource {
	out := make([]Resource, len(resourceOrder))
	copy(out, resourceOrder)
	return out
}

func (r Resource) Valid() bool {
	for _, known := range resourceOrder {
		if r == known {
			return true
		}
	}
	return false
}

func ParseResource(raw string) (Resource, error) {
	r := Resource(raw)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownResource, raw)
	}
	return r, nil
}
