package entity

import (
	"github.com/go-gl/mathgl/mgl32"
)

// State is the mutable kinematic state of an entity. It is owned by the caller; the simulator only
// reads and returns it.
type State struct {
	// Position is the feet position of the entity, horizontally centered.
	Position mgl32.Vec3
	// Velocity is the motion applied to the entity on the next tick.
	Velocity mgl32.Vec3
	// Yaw and Pitch are the rotation of the entity in radians.
	Yaw, Pitch float32
	// Height and HalfWidth are the dimensions of the bounding box of the entity.
	Height, HalfWidth float32

	// OnGround is true if the entity landed on a block during the last tick.
	OnGround bool
	InWater  bool
	InLava   bool
	// InWeb is set by block effects and consumed by the next collision resolve.
	InWeb                bool
	CollidedHorizontally bool
	CollidedVertically   bool
	// SneakCollision is true if sneak edge-avoidance shortened the horizontal motion.
	SneakCollision bool

	// JumpTicks is the cooldown in ticks until the entity may jump again.
	JumpTicks uint8
	// JumpQueued makes the entity jump on the next tick even without the jump control.
	JumpQueued bool

	// Status effect levels. Zero means the effect is not active.
	JumpBoost     uint16
	Speed         uint16
	Slowness      uint16
	DolphinsGrace uint16
	SlowFalling   uint16
	Levitation    uint16
	DepthStrider  uint16

	UsingItem     bool
	UsingMainHand bool
	UsingOffHand  bool

	// Age is the amount of ticks the entity has been simulated for.
	Age uint32

	Pose     Pose
	Controls ControlStates
	// Attributes holds the attributes of the entity by name. It may be nil.
	Attributes *Attributes
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	s.Attributes = s.Attributes.Clone()
	return s
}
