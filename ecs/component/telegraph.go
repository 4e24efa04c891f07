package component

// Telegraph is a pending area attack. It resolves on the first tick that
// starts at or after ResolveAt.
type Telegraph struct {
	Damage    float64
	Radius    float64
	Delay     float64
	ResolveAt float64
	// Remaining is refreshed every tick for consumers that draw the warning.
	Remaining float64
	Source    Entity
	Pattern   string
	Faction   Faction
}

var TelegraphComponent = NewComponent[Telegraph]("telegraph")
