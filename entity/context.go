package entity

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/physim/game"
)

const (
	KindPlayer = "player"
	KindArrow  = "arrow"
)

// Type identifies the kind of an entity. Width and Height are only used for non-player entities,
// players take their size from their pose.
type Type struct {
	Kind   string
	Name   string
	Width  float32
	Height float32
}

// PlayerType returns the entity type of players.
func PlayerType() Type {
	return Type{Kind: KindPlayer, Name: KindPlayer}
}

// CollisionBehavior controls how an entity interacts with the blocks it collides with.
type CollisionBehavior struct {
	// BlockEffects enables ladders, slime bounces and the velocity changes of touched blocks.
	BlockEffects bool
	// AffectedAfterCollision keeps the entity moving after it collided. Projectiles that stick
	// into blocks have this disabled.
	AffectedAfterCollision bool
}

// DefaultCollisionBehavior returns the behavior shared by all living entities.
func DefaultCollisionBehavior() CollisionBehavior {
	return CollisionBehavior{BlockEffects: true, AffectedAfterCollision: true}
}

// Context wraps the state of an entity with the physics parameters of its type.
type Context struct {
	State State

	Gravity      float32
	WaterGravity float32
	LavaGravity  float32
	Airdrag      float32
	// GravityThenDrag applies gravity before the drag is multiplied in.
	GravityThenDrag bool
	StepHeight      float32
	// UseControls makes the simulator read the control states of the entity.
	UseControls bool

	CollisionBehavior CollisionBehavior
	Type              Type
}

// NewPlayerContext returns a context for a player with the default player physics.
func NewPlayerContext(st State) Context {
	const gravity float32 = 0.08
	ctx := Context{
		State:             st,
		Gravity:           gravity,
		WaterGravity:      gravity / 16,
		LavaGravity:       gravity / 4,
		Airdrag:           game.AirdragDefault,
		GravityThenDrag:   true,
		StepHeight:        0.6,
		UseControls:       true,
		CollisionBehavior: DefaultCollisionBehavior(),
		Type:              PlayerType(),
	}
	ctx.UpdateDimensions()
	return ctx
}

// NewContext returns a context for a non-controlled entity of the given type.
func NewContext(st State, t Type, gravity, airdrag float32) Context {
	ctx := Context{
		State:             st,
		Gravity:           gravity,
		WaterGravity:      gravity / 16,
		LavaGravity:       gravity / 4,
		Airdrag:           airdrag,
		GravityThenDrag:   true,
		CollisionBehavior: DefaultCollisionBehavior(),
		Type:              t,
	}
	ctx.UpdateDimensions()
	return ctx
}

// Dimensions returns the size of the entity. Players use their pose.
func (ctx *Context) Dimensions() Dimensions {
	if ctx.Type.Kind == KindPlayer {
		return ctx.State.Pose.Dimensions()
	}
	return Dimensions{Width: ctx.Type.Width, Height: ctx.Type.Height}
}

// UpdateDimensions refreshes the height and half width of the state.
func (ctx *Context) UpdateDimensions() {
	d := ctx.Dimensions()
	ctx.State.Height = d.Height
	ctx.State.HalfWidth = d.Width / 2
}

// BoundingBox returns the bounding box of the entity at its current position.
func (ctx *Context) BoundingBox() game.AABB {
	return ctx.BoundingBoxAt(ctx.State.Position)
}

// BoundingBoxAt returns the bounding box the entity would have at pos.
func (ctx *Context) BoundingBoxAt(pos mgl32.Vec3) game.AABB {
	return game.EntityBox(pos, ctx.State.HalfWidth, ctx.State.Height)
}

// BoundingBoxWithPose returns the bounding box the entity would have at pos in the given pose.
func (ctx *Context) BoundingBoxWithPose(pos mgl32.Vec3, pose Pose) game.AABB {
	if ctx.Type.Kind != KindPlayer {
		return ctx.BoundingBoxAt(pos)
	}
	d := pose.Dimensions()
	return game.EntityBox(pos, d.Width/2, d.Height)
}

// ShouldMove returns false if the entity collided and its type stops moving after collisions.
func (ctx *Context) ShouldMove() bool {
	collided := ctx.State.CollidedHorizontally || ctx.State.CollidedVertically
	return !collided || ctx.CollisionBehavior.AffectedAfterCollision
}

// Clone returns a deep copy of the context.
func (ctx Context) Clone() Context {
	ctx.State = ctx.State.Clone()
	return ctx
}
