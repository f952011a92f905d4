package game

import "fmt"

// Variant identifies one of the built-in rule sets.
type Variant uint8

const (
	Classic Variant = iota
	Extended
	FireWater
)

// Variants lists the built-in variants in menu order.
var Variants = []Variant{Classic, Extended, FireWater}

func (v Variant) String() string {
	switch v {
	case Classic:
		return "classic"
	case Extended:
		return "extended"
	case FireWater:
		return "fire-water"
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// Label returns the variant's display name.
func (v Variant) Label() string {
	switch v {
	case Classic:
		return "Classic (Rock, Paper, Scissors)"
	case Extended:
		return "Extended (Rock, Paper, Scissors, Lizard, Spock)"
	case FireWater:
		return "Fire-Water (Rock, Paper, Scissors, Fire, Water)"
	}
	return v.String()
}

// ParseVariant maps a flag value to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "classic":
		return Classic, nil
	case "extended":
		return Extended, nil
	case "fire-water", "firewater":
		return FireWater, nil
	}
	return 0, fmt.Errorf("unknown variant %q (want classic, extended, or fire-water)", s)
}
