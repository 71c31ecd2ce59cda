package simulation

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/physim/entity"
	"github.com/oomph-ac/physim/game"
	"github.com/oomph-ac/physim/utils"
)

// moveWithHeading accelerates the entity by its inputs, moves it and applies gravity and drag.
func (ctx *tickContext) moveWithHeading(strafe, forward float32) {
	ent := ctx.ent
	st := &ent.State
	if !ent.ShouldMove() {
		st.Velocity = mgl32.Vec3{}
		return
	}

	gravityMul := float32(1)
	if st.Velocity[1] <= 0 && st.SlowFalling > 0 {
		gravityMul = game.SlowFalling
	}

	if st.InWater || st.InLava {
		ctx.moveInLiquid(strafe, forward, gravityMul)
		return
	}

	accel, inertia := game.AirborneAcceleration, game.AirborneInertia
	if st.OnGround {
		slip := game.DefaultSlipperiness
		if under, ok := utils.BlockAt(st.Position[0], st.Position[1]-1, st.Position[2], ctx.w); ok {
			slip = ctx.conf.slipperiness(under.ID, slip)
		}
		inertia = slip * game.AirborneInertia
		accel = max(0, ctx.movementSpeed()*(game.GroundAccelFactor/(inertia*inertia*inertia)))
		ctx.notify("ground slip=%.4f accel=%.6f", slip, accel)
	}

	ctx.applyHeading(strafe, forward, accel)

	if ent.CollisionBehavior.BlockEffects && ctx.onLadder() {
		st.Velocity[0] = game.Clamp(st.Velocity[0], -game.LadderMaxSpeed, game.LadderMaxSpeed)
		st.Velocity[2] = game.Clamp(st.Velocity[2], -game.LadderMaxSpeed, game.LadderMaxSpeed)
		floor := -game.LadderMaxSpeed
		if st.Controls.Sneak {
			floor = 0
		}
		st.Velocity[1] = max(st.Velocity[1], floor)
	}

	ctx.moveEntity(st.Velocity[0], st.Velocity[1], st.Velocity[2])

	if ent.CollisionBehavior.BlockEffects && ctx.onLadder() &&
		(st.CollidedHorizontally || (ctx.conf.SupportsFeature(game.FeatureClimbUsingJump) && st.Controls.Jump)) {
		st.Velocity[1] = game.LadderClimbSpeed
		ctx.notify("climbing ladder")
	}

	if ent.GravityThenDrag {
		ctx.applyAirGravity(gravityMul)
		st.Velocity[1] *= ent.Airdrag
	} else {
		st.Velocity[1] *= ent.Airdrag
		ctx.applyAirGravity(gravityMul)
	}
	st.Velocity[0] *= inertia
	st.Velocity[2] *= inertia
}

func (ctx *tickContext) applyAirGravity(mul float32) {
	st := &ctx.ent.State
	if st.Levitation > 0 {
		st.Velocity[1] += (game.LevitationSpeed*float32(st.Levitation) - st.Velocity[1]) * game.LevitationDrag
		return
	}
	st.Velocity[1] -= ctx.ent.Gravity * mul
}

// moveInLiquid is moveWithHeading for entities in water or lava.
func (ctx *tickContext) moveInLiquid(strafe, forward, gravityMul float32) {
	ent := ctx.ent
	st := &ent.State
	lastY := st.Position[1]

	accel := game.LiquidAcceleration
	inertia, gravity := game.LavaInertia, ctx.lavaGravity()
	if st.InWater {
		inertia, gravity = game.WaterInertia, ctx.waterGravity()
	}
	hzInertia := inertia

	if st.InWater {
		strider := float32(min(st.DepthStrider, game.MaxDepthStrider))
		if !st.OnGround {
			strider *= 0.5
		}
		if strider > 0 {
			hzInertia += (game.DepthStriderInertia - hzInertia) * strider / 3
			accel += (game.DepthStriderAccel - accel) * strider / 3
		}
		if st.DolphinsGrace > 0 {
			hzInertia = game.DolphinsGraceDrag
		}
	}
	ctx.notify("liquid accel=%.4f inertia=%.4f hzInertia=%.4f", accel, inertia, hzInertia)

	ctx.applyHeading(strafe, forward, accel)
	ctx.moveEntity(st.Velocity[0], st.Velocity[1], st.Velocity[2])

	if ent.GravityThenDrag {
		st.Velocity[1] -= gravity * gravityMul
		st.Velocity[1] *= inertia
	} else {
		st.Velocity[1] *= inertia
		st.Velocity[1] -= gravity * gravityMul
	}
	st.Velocity[0] *= hzInertia
	st.Velocity[2] *= hzInertia

	if st.CollidedHorizontally {
		probe := mgl32.Vec3{
			st.Position[0] + st.Velocity[0],
			lastY + st.Velocity[1] + 0.6,
			st.Position[2] + st.Velocity[2],
		}
		if ctx.doesNotCollide(probe) {
			st.Velocity[1] = game.OutOfLiquidImpulse
			ctx.notify("jumping out of liquid")
		}
	}
}

func (ctx *tickContext) waterGravity() float32 {
	switch {
	case ctx.conf.SupportsFeature(game.FeatureIndependentLiquidGravity):
		return game.IndependentLiquidGravity
	case ctx.conf.SupportsFeature(game.FeatureProportionalLiquidGravity):
		return ctx.ent.Gravity / 16
	}
	return ctx.ent.WaterGravity
}

func (ctx *tickContext) lavaGravity() float32 {
	switch {
	case ctx.conf.SupportsFeature(game.FeatureIndependentLiquidGravity):
		return game.IndependentLiquidGravity
	case ctx.conf.SupportsFeature(game.FeatureProportionalLiquidGravity):
		return ctx.ent.Gravity / 4
	}
	return ctx.ent.LavaGravity
}

// applyHeading adds the strafe and forward input, rotated by the yaw of the entity, to its velocity.
func (ctx *tickContext) applyHeading(strafe, forward, multiplier float32) {
	if !ctx.ent.ShouldMove() {
		return
	}
	speed := math32.Sqrt(strafe*strafe + forward*forward)
	if speed < 0.01 {
		return
	}

	speed = multiplier / max(speed, 1)
	strafe *= speed
	forward *= speed

	st := &ctx.ent.State
	yaw := math32.Pi - st.Yaw
	sin, cos := math32.Sin(yaw), math32.Cos(yaw)
	st.Velocity[0] += strafe*cos - forward*sin
	st.Velocity[2] += forward*cos + strafe*sin
}

func (ctx *tickContext) onLadder() bool {
	pos := ctx.ent.State.Position
	b, ok := utils.BlockAt(pos[0], pos[1], pos[2], ctx.w)
	return ok && (b.ID == ctx.conf.LadderID || b.ID == ctx.conf.VineID)
}

// movementSpeed evaluates the movement speed attribute of the entity, including sprinting and the
// speed and slowness effects. The modifiers are written back if the entity owns the attribute.
func (ctx *tickContext) movementSpeed() float32 {
	st := &ctx.ent.State
	attr, owned := st.Attributes.Get(ctx.conf.MovementSpeedAttribute)
	if !owned {
		attr = entity.NewAttribute(game.PlayerSpeed)
	}

	attr.RemoveModifier(game.SprintingUUID)
	if st.Controls.Sprint {
		attr.AddModifier(entity.Modifier{UUID: game.SprintingUUID, Operation: entity.OperationMultiplyTotal, Amount: game.SprintSpeed})
	}

	// Effect modifiers sent by a server are left alone.
	value := attr.Value()
	if st.Speed > 0 && !attr.HasModifier(game.SpeedUUID) {
		value += value * game.SpeedEffectAmount * float32(st.Speed)
	}
	if st.Slowness > 0 && !attr.HasModifier(game.SlownessUUID) {
		value += value * game.SlownessEffectAmount * float32(st.Slowness)
	}
	return value
}
