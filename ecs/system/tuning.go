package system

// Rand is the injectable random source used by combat, AI and spawning.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Tuning holds the combat constants shared by several systems.
type Tuning struct {
	SpecialCooldown       float64
	ContactDamageFraction float64
	ContactCooldown       float64
	EnemyProjectileRadius float64
	PickupPullSpeed       float64
	PickupRadius          float64
	GoldValue             float64
}

func DefaultTuning() Tuning {
	return Tuning{
		SpecialCooldown:       5,
		ContactDamageFraction: 0.85,
		ContactCooldown:       0.5,
		EnemyProjectileRadius: 10,
		PickupPullSpeed:       300,
		PickupRadius:          8,
		GoldValue:             1,
	}
}

// withDefaults fills zero fields from DefaultTuning.
func (t Tuning) withDefaults() Tuning {
	d := DefaultTuning()
	if t.SpecialCooldown <= 0 {
		t.SpecialCooldown = d.SpecialCooldown
	}
	if t.ContactDamageFraction <= 0 {
		t.ContactDamageFraction = d.ContactDamageFraction
	}
	if t.ContactCooldown <= 0 {
		t.ContactCooldown = d.ContactCooldown
	}
	if t.EnemyProjectileRadius <= 0 {
		t.EnemyProjectileRadius = d.EnemyProjectileRadius
	}
	if t.PickupPullSpeed <= 0 {
		t.PickupPullSpeed = d.PickupPullSpeed
	}
	if t.PickupRadius <= 0 {
		t.PickupRadius = d.PickupRadius
	}
	if t.GoldValue <= 0 {
		t.GoldValue = d.GoldValue
	}
	return t
}
