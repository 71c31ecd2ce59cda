package simulation

import (
	"iter"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/physim/game"
	"github.com/oomph-ac/physim/utils"
	"github.com/oomph-ac/physim/world"
)

// horizontalNeighbours are the offsets of the four blocks next to a liquid block, in the order their
// flow is summed.
var horizontalNeighbours = [4][2]int{{0, 1}, {-1, 0}, {0, -1}, {1, 0}}

// applyWaterCurrent pushes the entity along the flow of the water inside bb and returns true if there
// was any water.
func (ctx *tickContext) applyWaterCurrent(bb game.AABB) bool {
	var acc mgl32.Vec3
	inWater := false
	for b := range ctx.waterInBB(bb, 1) {
		inWater = true
		acc = acc.Add(ctx.flow(b))
	}
	if acc.Len() > 0 {
		push := game.Normalize(acc).Mul(game.WaterCurrentScale)
		ctx.ent.State.Velocity = ctx.ent.State.Velocity.Add(push)
		ctx.notify("water current push=%v", push)
	}
	return inWater
}

// waterInBB iterates over the water blocks inside bb, extended downwards by the given number of voxels,
// whose surface reaches the top of the box.
func (ctx *tickContext) waterInBB(bb game.AABB, below int) iter.Seq[world.Block] {
	return func(yield func(world.Block) bool) {
		top := math32.Ceil(bb.Max[1])
		for b := range utils.Blocks(bb, below, ctx.w) {
			if !ctx.isWater(b) {
				continue
			}
			level := float32(b.Position[1]) + 1 - ctx.liquidHeightPercent(b)
			if top >= level && !yield(b) {
				return
			}
		}
	}
}

func (ctx *tickContext) isWater(b world.Block) bool {
	return ctx.conf.isWaterID(b.ID) || ctx.conf.isWaterLike(b.ID) || b.Waterlogged
}

func (ctx *tickContext) liquidHeightPercent(b world.Block) float32 {
	return (ctx.renderedDepth(b) + 1) / 9
}

// renderedDepth returns the depth of a water block, 0 for full blocks and -1 for blocks that are not
// water at all.
func (ctx *tickContext) renderedDepth(b world.Block) float32 {
	if ctx.conf.isWaterLike(b.ID) || b.Waterlogged {
		return 0
	}
	if !ctx.conf.isWaterID(b.ID) {
		return -1
	}
	if b.Metadata >= 8 {
		return 0
	}
	return float32(b.Metadata)
}

// flow returns the normalized direction water flows in at the given block.
func (ctx *tickContext) flow(b world.Block) mgl32.Vec3 {
	cur := ctx.renderedDepth(b)
	var flow mgl32.Vec3
	for _, n := range horizontalNeighbours {
		dx, dz := n[0], n[1]
		adj, ok := ctx.w.Block(cube.Pos{b.Position[0] + dx, b.Position[1], b.Position[2] + dz})
		if !ok {
			continue
		}

		adjLevel := ctx.renderedDepth(adj)
		if adjLevel < 0 {
			if adj.BoundingBox == world.BoundingBoxEmpty {
				continue
			}
			below, ok := ctx.w.Block(cube.Pos{b.Position[0] + dx, b.Position[1] - 1, b.Position[2] + dz})
			if !ok {
				continue
			}
			if belowLevel := ctx.renderedDepth(below); belowLevel >= 0 {
				f := belowLevel - (cur - 8)
				flow[0] += float32(dx) * f
				flow[2] += float32(dz) * f
			}
			continue
		}

		f := adjLevel - cur
		flow[0] += float32(dx) * f
		flow[2] += float32(dz) * f
	}

	if b.Metadata >= 8 {
		for _, n := range horizontalNeighbours {
			dx, dz := n[0], n[1]
			if ctx.nonEmpty(cube.Pos{b.Position[0] + dx, b.Position[1], b.Position[2] + dz}) ||
				ctx.nonEmpty(cube.Pos{b.Position[0] + dx, b.Position[1] + 1, b.Position[2] + dz}) {
				flow = game.Normalize(flow).Add(mgl32.Vec3{0, -6, 0})
				break
			}
		}
	}
	return game.Normalize(flow)
}

func (ctx *tickContext) nonEmpty(pos cube.Pos) bool {
	b, ok := ctx.w.Block(pos)
	return ok && b.BoundingBox != world.BoundingBoxEmpty
}

// doesNotCollide returns true if the entity would neither intersect a block nor touch water at pos. Only
// water cells the box actually occupies count, the water the entity is leaving is below it.
func (ctx *tickContext) doesNotCollide(pos mgl32.Vec3) bool {
	bb := ctx.ent.BoundingBoxAt(pos)
	if utils.CollidesWithBlocks(bb, ctx.surrounding(bb)) {
		return false
	}
	for range ctx.waterInBB(bb, 0) {
		return false
	}
	return true
}
