package simulation

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/physim/entity"
	"github.com/oomph-ac/physim/game"
	"github.com/oomph-ac/physim/utils"
	"github.com/oomph-ac/physim/world"
)

// surrounding fills the scratch buffer with the block boxes around bb and returns it.
func (ctx *tickContext) surrounding(bb game.AABB) []game.AABB {
	ctx.bbs = utils.AppendSurroundingBBoxes(ctx.bbs[:0], bb, ctx.w)
	return ctx.bbs
}

// hasSurrounding returns true if any block around bb has a collision shape.
func (ctx *tickContext) hasSurrounding(bb game.AABB) bool {
	for b := range utils.Blocks(bb, 1, ctx.w) {
		if len(b.Shapes) > 0 {
			return true
		}
	}
	return false
}

// moveEntity moves the entity by the given delta, resolving collisions with the world one axis at a
// time and stepping up onto low obstacles.
func (ctx *tickContext) moveEntity(dx, dy, dz float32) {
	ent := ctx.ent
	st := &ent.State
	if !ent.ShouldMove() {
		st.Velocity = mgl32.Vec3{}
		return
	}

	if st.InWeb && ent.Type.Kind != entity.KindArrow {
		dx *= game.WebHorizontalFactor
		dy *= game.WebVerticalFactor
		dz *= game.WebHorizontalFactor
		st.Velocity = mgl32.Vec3{}
		st.InWeb = false
		ctx.notify("web slowdown d=(%.4f, %.4f, %.4f)", dx, dy, dz)
	}

	origDx, origDz := dx, dz
	if ent.UseControls && st.Controls.Sneak && st.OnGround {
		dx, dz = ctx.avoidEdge(dx, dz)
	}
	oldDx, oldDy, oldDz := dx, dy, dz

	oldBB := ent.BoundingBox()
	bb := oldBB
	bbs := ctx.surrounding(bb.Extend(dx, dy, dz))
	for _, blockBB := range bbs {
		dy = blockBB.ComputeOffsetY(bb, dy)
	}
	bb = bb.Offset(0, dy, 0)
	for _, blockBB := range bbs {
		dx = blockBB.ComputeOffsetX(bb, dx)
	}
	bb = bb.Offset(dx, 0, 0)
	for _, blockBB := range bbs {
		dz = blockBB.ComputeOffsetZ(bb, dz)
	}
	bb = bb.Offset(0, 0, dz)

	if ent.StepHeight > 0 && (st.OnGround || (dy != oldDy && oldDy < 0)) && (dx != oldDx || dz != oldDz) {
		dx, dy, dz, bb = ctx.stepUp(oldBB, oldDx, oldDz, dx, dy, dz, bb)
	}

	st.Position = mgl32.Vec3{bb.Min[0] + st.HalfWidth, bb.Min[1], bb.Min[2] + st.HalfWidth}
	st.SneakCollision = dx != origDx || dz != origDz
	st.CollidedHorizontally = dx != oldDx || dz != oldDz
	st.CollidedVertically = dy != oldDy
	st.OnGround = st.CollidedVertically && oldDy < 0
	ctx.notify("moveEntity d=(%.4f, %.4f, %.4f) pos=%v collidedH=%t collidedV=%t onGround=%t",
		dx, dy, dz, st.Position, st.CollidedHorizontally, st.CollidedVertically, st.OnGround)

	if dx != oldDx {
		st.Velocity[0] = 0
	}
	if dz != oldDz {
		st.Velocity[2] = 0
	}
	if dy != oldDy {
		feet, ok := utils.BlockAt(st.Position[0], st.Position[1]-0.2, st.Position[2], ctx.w)
		if ent.CollisionBehavior.BlockEffects && ok && feet.ID == ctx.conf.SlimeID && !st.Controls.Sneak {
			st.Velocity[1] = -st.Velocity[1]
		} else {
			st.Velocity[1] = 0
		}
	}

	ctx.applyBlockEffects(bb)
}

// avoidEdge shortens horizontal motion in steps while it would leave the entity without any block
// around it, preventing a sneaking entity from walking off ledges.
func (ctx *tickContext) avoidEdge(dx, dz float32) (float32, float32) {
	bb := ctx.ent.BoundingBox()
	for dx != 0 && !ctx.hasSurrounding(bb.Offset(dx, 0, 0)) {
		dx = edgeStep(dx)
	}
	for dz != 0 && !ctx.hasSurrounding(bb.Offset(0, 0, dz)) {
		dz = edgeStep(dz)
	}
	for dx != 0 && dz != 0 && !ctx.hasSurrounding(bb.Offset(dx, 0, dz)) {
		dx, dz = edgeStep(dx), edgeStep(dz)
	}
	ctx.notify("avoidEdge dx=%.4f dz=%.4f", dx, dz)
	return dx, dz
}

func edgeStep(d float32) float32 {
	switch {
	case d < game.SneakEdgeStep && d >= -game.SneakEdgeStep:
		return 0
	case d > 0:
		return d - game.SneakEdgeStep
	default:
		return d + game.SneakEdgeStep
	}
}

// stepUp retries a horizontally clipped move from oldBB with the entity raised by its step height. The
// stepped result is only used if it moves the entity further horizontally than the clipped one.
func (ctx *tickContext) stepUp(oldBB game.AABB, oldDx, oldDz, dx, dy, dz float32, bb game.AABB) (float32, float32, float32, game.AABB) {
	colDx, colDy, colDz, colBB := dx, dy, dz, bb

	dy = ctx.ent.StepHeight
	bbs := ctx.surrounding(oldBB.Extend(oldDx, dy, oldDz))

	bb1, bb2 := oldBB, oldBB
	bbXZ := bb1.Extend(dx, 0, dz)

	dy1, dy2 := dy, dy
	for _, blockBB := range bbs {
		dy1 = blockBB.ComputeOffsetY(bbXZ, dy1)
		dy2 = blockBB.ComputeOffsetY(bb2, dy2)
	}
	bb1 = bb1.Offset(0, dy1, 0)
	bb2 = bb2.Offset(0, dy2, 0)

	dx1, dx2 := oldDx, oldDx
	for _, blockBB := range bbs {
		dx1 = blockBB.ComputeOffsetX(bb1, dx1)
		dx2 = blockBB.ComputeOffsetX(bb2, dx2)
	}
	bb1 = bb1.Offset(dx1, 0, 0)
	bb2 = bb2.Offset(dx2, 0, 0)

	dz1, dz2 := oldDz, oldDz
	for _, blockBB := range bbs {
		dz1 = blockBB.ComputeOffsetZ(bb1, dz1)
		dz2 = blockBB.ComputeOffsetZ(bb2, dz2)
	}
	bb1 = bb1.Offset(0, 0, dz1)
	bb2 = bb2.Offset(0, 0, dz2)

	if game.Vec3HzDistSqr(mgl32.Vec3{dx1, 0, dz1}) > game.Vec3HzDistSqr(mgl32.Vec3{dx2, 0, dz2}) {
		dx, dy, dz, bb = dx1, -dy1, dz1, bb1
	} else {
		dx, dy, dz, bb = dx2, -dy2, dz2, bb2
	}

	for _, blockBB := range bbs {
		dy = blockBB.ComputeOffsetY(bb, dy)
	}
	bb = bb.Offset(0, dy, 0)

	if game.Vec3HzDistSqr(mgl32.Vec3{colDx, 0, colDz}) >= game.Vec3HzDistSqr(mgl32.Vec3{dx, 0, dz}) {
		ctx.notify("step discarded")
		return colDx, colDy, colDz, colBB
	}
	ctx.notify("stepped up to y=%.4f", bb.Min[1])
	return dx, dy, dz, bb
}

// applyBlockEffects applies the effects of the blocks the entity is touching after it moved.
func (ctx *tickContext) applyBlockEffects(bb game.AABB) {
	ent := ctx.ent
	st := &ent.State
	conf := ctx.conf
	velocityBlocks := ent.CollisionBehavior.BlockEffects && conf.SupportsFeature(game.FeatureVelocityBlocksOnCollision)

	for b := range utils.Blocks(bb.Contract(0.001, 0.001, 0.001), 0, ctx.w) {
		if velocityBlocks {
			ctx.applyVelocityBlock(b.ID)
		}

		switch b.ID {
		case conf.WebID:
			st.InWeb = true
		case conf.BubbleColumnID:
			drag := game.BubbleColumnInnerDrag
			above := cube.Pos{b.Position[0], b.Position[1] + 1, b.Position[2]}
			if ab, ok := ctx.w.Block(above); ok && ab.ID == conf.AirID {
				drag = game.BubbleColumnSurfaceDrag
			}
			if b.Metadata == 0 {
				st.Velocity[1] = max(drag.MaxDown, st.Velocity[1]-drag.Down)
			} else {
				st.Velocity[1] = min(drag.MaxUp, st.Velocity[1]+drag.Up)
			}
			ctx.notify("bubble column down=%t vy=%.4f", b.Metadata == 0, st.Velocity[1])
		}
	}

	if ent.CollisionBehavior.BlockEffects && conf.SupportsFeature(game.FeatureVelocityBlocksOnTop) {
		pos := st.Position
		if b, ok := utils.BlockAt(pos[0], math32.Floor(pos[1])-0.5, pos[2], ctx.w); ok {
			ctx.applyVelocityBlock(b.ID)
		}
	}
}

// applyVelocityBlock slows down the horizontal velocity of the entity if the block is soul sand or honey.
func (ctx *tickContext) applyVelocityBlock(id uint32) {
	var f float32
	switch id {
	case ctx.conf.SoulSandID:
		f = game.SoulSandSpeed
	case ctx.conf.HoneyID:
		f = game.HoneyBlockSpeed
	default:
		return
	}
	ctx.ent.State.Velocity[0] *= f
	ctx.ent.State.Velocity[2] *= f
}

// SnapToGround lowers pos onto the top of the highest collision box at most one block below the box the
// entity would have there. With nothing below, pos is lowered by a full block.
func SnapToGround(ent entity.Context, pos mgl32.Vec3, w world.Provider) mgl32.Vec3 {
	bb := ent.BoundingBoxWithPose(pos, ent.State.Pose)
	dy := float32(-1)
	for _, blockBB := range utils.SurroundingBBoxes(bb.Extend(0, -1, 0), w) {
		dy = blockBB.ComputeOffsetY(bb, dy)
	}
	pos[1] += dy
	return pos
}
