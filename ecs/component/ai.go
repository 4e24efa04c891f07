package component

// StateID identifies an enemy behaviour state.
type StateID string

const (
	StateSeeking             StateID = "seeking"
	StateMeleeAttacking      StateID = "melee_attacking"
	StateRangedAttacking     StateID = "ranged_attacking"
	StateTelegraphIndicating StateID = "telegraph_indicating"
	StateSpecialAttacking    StateID = "special_attacking"
)

// SteerMode is the movement chosen by an enemy's steering.
type SteerMode string

const (
	SteerSeek    SteerMode = "seek"
	SteerRetreat SteerMode = "retreat"
	SteerStrafe  SteerMode = "strafe"
	SteerHold    SteerMode = "hold"
)

// AIState stores the current behaviour state and steering choice.
type AIState struct {
	Current StateID
	Steer   SteerMode
	// StrafeSign is +1 or -1 when Steer is SteerStrafe.
	StrafeSign float64
}

var AIStateComponent = NewComponent[AIState]("ai_state")
