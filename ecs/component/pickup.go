package component

type PickupKind string

const (
	PickupXP   PickupKind = "xp"
	PickupGold PickupKind = "gold"
)

type Pickup struct {
	Kind       PickupKind
	Value      float64
	Radius     float64
	Magnetized bool
}

var PickupComponent = NewComponent[Pickup]("pickup")
