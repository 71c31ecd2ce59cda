package utils

import (
	"iter"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/physim/game"
	"github.com/oomph-ac/physim/world"
)

// underlyingProbeDepth is how far below the floored minimum of a box the underlying scan looks.
const underlyingProbeDepth float32 = 0.251

// Blocks iterates over every loaded block in the floored query box, extended downwards by the given
// number of voxels. Iteration is y outer, then z, then x.
func Blocks(bb game.AABB, below int, w world.Provider) iter.Seq[world.Block] {
	return func(yield func(world.Block) bool) {
		fl := bb.Floored()
		minX, minY, minZ := int(fl.Min[0]), int(fl.Min[1])-below, int(fl.Min[2])
		maxX, maxY, maxZ := int(fl.Max[0]), int(fl.Max[1]), int(fl.Max[2])

		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				for x := minX; x <= maxX; x++ {
					b, ok := w.Block(cube.Pos{x, y, z})
					if !ok {
						continue
					}
					if !yield(b) {
						return
					}
				}
			}
		}
	}
}

// SurroundingBBoxes returns the world-space collision boxes of every block inside the floored query
// box, including the layer of blocks directly beneath it.
func SurroundingBBoxes(bb game.AABB, w world.Provider) []game.AABB {
	return AppendSurroundingBBoxes(nil, bb, w)
}

// AppendSurroundingBBoxes is SurroundingBBoxes, appending to dst.
func AppendSurroundingBBoxes(dst []game.AABB, bb game.AABB, w world.Provider) []game.AABB {
	for b := range Blocks(bb, 1, w) {
		dst = appendShapes(dst, b)
	}
	return dst
}

// UnderlyingBBoxes returns the world-space collision boxes of the blocks in the layer just below the
// floored query box.
func UnderlyingBBoxes(bb game.AABB, w world.Provider) []game.AABB {
	fl := bb.Floored()
	y := game.FloorInt(fl.Min[1] - underlyingProbeDepth)

	var boxes []game.AABB
	for z := int(fl.Min[2]); z <= int(fl.Max[2]); z++ {
		for x := int(fl.Min[0]); x <= int(fl.Max[0]); x++ {
			if b, ok := w.Block(cube.Pos{x, y, z}); ok {
				boxes = appendShapes(boxes, b)
			}
		}
	}
	return boxes
}

func appendShapes(dst []game.AABB, b world.Block) []game.AABB {
	for _, s := range b.Shapes {
		dst = append(dst, s.Offset(float32(b.Position[0]), float32(b.Position[1]), float32(b.Position[2])))
	}
	return dst
}

// MaterialInBB returns true if any block with the given id is inside the floored query box.
func MaterialInBB(bb game.AABB, id uint32, w world.Provider) bool {
	for b := range Blocks(bb, 0, w) {
		if b.ID == id {
			return true
		}
	}
	return false
}

// CollidesWithBlocks returns true if bb intersects any of the given boxes.
func CollidesWithBlocks(bb game.AABB, boxes []game.AABB) bool {
	for _, other := range boxes {
		if bb.Intersects(other) {
			return true
		}
	}
	return false
}

// BlockAt returns the block containing the given point.
func BlockAt(x, y, z float32, w world.Provider) (world.Block, bool) {
	return w.Block(cube.Pos{game.FloorInt(x), game.FloorInt(y), game.FloorInt(z)})
}
