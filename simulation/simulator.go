package simulation

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/physim/entity"
	"github.com/oomph-ac/physim/game"
	"github.com/oomph-ac/physim/utils"
	"github.com/oomph-ac/physim/world"
)

// Simulator advances entities by one tick at a time. It holds no per-entity state, so a single
// Simulator may be used for any number of entities.
type Simulator struct {
	conf Config
}

// New creates a simulator using the given configuration.
func New(conf Config) *Simulator {
	return &Simulator{conf: conf}
}

// Config returns the configuration of the simulator.
func (s *Simulator) Config() Config {
	return s.conf
}

// Simulate runs a single tick for the entity and returns its updated context. The context passed is
// consumed: attributes it references are updated in place. The world is only read.
func (s *Simulator) Simulate(ent entity.Context, w world.Provider) entity.Context {
	ctx := newCtx(&s.conf, &ent, w)
	defer putCtx(ctx)

	ctx.notify("BEGIN simulation pos=%v vel=%v", ent.State.Position, ent.State.Velocity)
	defer func() {
		ctx.notify("END simulation pos=%v vel=%v onGround=%t", ent.State.Position, ent.State.Velocity, ent.State.OnGround)
	}()

	ent.UpdateDimensions()
	ent.State.Age++

	if !ent.ShouldMove() {
		ent.State.Velocity = mgl32.Vec3{}
		ctx.notify("entity does not move after collision")
		return ent
	}

	bb := ent.BoundingBox()
	waterBB := bb.Contract(0.001, 0.401, 0.001)
	lavaBB := bb.Contract(0.1, 0.4, 0.1)
	ent.State.InWater = ctx.applyWaterCurrent(waterBB)
	ent.State.InLava = utils.MaterialInBB(lavaBB, s.conf.LavaID, w) ||
		(s.conf.FlowingLavaID != 0 && utils.MaterialInBB(lavaBB, s.conf.FlowingLavaID, w))
	ctx.notify("inWater=%t inLava=%t", ent.State.InWater, ent.State.InLava)

	ent.State.Velocity = game.ClampNegligible(ent.State.Velocity)

	if !ent.UseControls {
		ctx.moveWithHeading(0, 0)
		return ent
	}

	ctx.jump()

	controls := &ent.State.Controls
	strafe := controls.Strafe() * game.InputFriction
	forward := controls.Forwards() * game.InputFriction
	if controls.Sneak {
		strafe *= game.SneakSpeed
		forward *= game.SneakSpeed
		controls.Sprint = false
	}
	if ent.State.UsingItem {
		strafe *= game.UsingItemSpeed
		forward *= game.UsingItemSpeed
		controls.Sprint = false
	}
	ctx.notify("strafe=%.4f forward=%.4f", strafe, forward)
	ctx.moveWithHeading(strafe, forward)
	return ent
}

// jump handles the jump control and the auto-jump cooldown.
func (ctx *tickContext) jump() {
	st := &ctx.ent.State
	defer func() {
		st.JumpQueued = false
	}()

	if !st.Controls.Jump && !st.JumpQueued {
		st.JumpTicks = 0
		return
	}

	if st.JumpTicks > 0 {
		st.JumpTicks--
	}
	if st.InWater || st.InLava {
		st.Velocity[1] += game.WaterJumpImpulse
		ctx.notify("liquid jump vel=%v", st.Velocity)
		return
	}
	if !st.OnGround || st.JumpTicks != 0 {
		return
	}

	st.Velocity[1] = game.JumpHeight
	if b, ok := utils.BlockAt(st.Position[0], math32.Floor(st.Position[1])-0.5, st.Position[2], ctx.w); ok && b.ID == ctx.conf.HoneyID {
		st.Velocity[1] *= game.HoneyBlockJumpSpeed
	}
	if st.JumpBoost > 0 {
		st.Velocity[1] += game.JumpBoostFactor * float32(st.JumpBoost)
	}
	if st.Controls.Sprint {
		yaw := math32.Pi - st.Yaw
		st.Velocity[0] -= math32.Sin(yaw) * game.SprintJumpBoost
		st.Velocity[2] += math32.Cos(yaw) * game.SprintJumpBoost
	}
	st.JumpTicks = game.AutoJumpCooldown
	ctx.notify("jump vel=%v", st.Velocity)
}
