package game

import (
	"github.com/chewxy/math32"
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis-aligned bounding box. Unlike cube.BBox, its constructors never reorder
// the corners, so Contract and Expand stay exact inverses of each other.
type AABB struct {
	Min, Max mgl32.Vec3
}

// NewAABB creates an AABB from its corner coordinates.
func NewAABB(minX, minY, minZ, maxX, maxY, maxZ float32) AABB {
	return AABB{
		Min: mgl32.Vec3{minX, minY, minZ},
		Max: mgl32.Vec3{maxX, maxY, maxZ},
	}
}

// EntityBox returns the box of an entity standing at pos (feet position, horizontally centered).
func EntityBox(pos mgl32.Vec3, halfWidth, height float32) AABB {
	return NewAABB(
		pos[0]-halfWidth, pos[1], pos[2]-halfWidth,
		pos[0]+halfWidth, pos[1]+height, pos[2]+halfWidth,
	)
}

// Floor floors every coordinate of the box in place.
func (bb *AABB) Floor() {
	for i := 0; i < 3; i++ {
		bb.Min[i] = math32.Floor(bb.Min[i])
		bb.Max[i] = math32.Floor(bb.Max[i])
	}
}

// Floored returns a copy of the box with every coordinate floored.
func (bb AABB) Floored() AABB {
	bb.Floor()
	return bb
}

// Extend grows the box in the direction of the given deltas: a negative delta moves only the
// minimum face of that axis, a positive one only the maximum face.
func (bb AABB) Extend(dx, dy, dz float32) AABB {
	d := mgl32.Vec3{dx, dy, dz}
	for i := 0; i < 3; i++ {
		if d[i] < 0 {
			bb.Min[i] += d[i]
		} else {
			bb.Max[i] += d[i]
		}
	}
	return bb
}

// Contract shrinks every face of the box inwards.
func (bb AABB) Contract(x, y, z float32) AABB {
	bb.Min = bb.Min.Add(mgl32.Vec3{x, y, z})
	bb.Max = bb.Max.Sub(mgl32.Vec3{x, y, z})
	return bb
}

// Expand grows every face of the box outwards.
func (bb AABB) Expand(x, y, z float32) AABB {
	bb.Min = bb.Min.Sub(mgl32.Vec3{x, y, z})
	bb.Max = bb.Max.Add(mgl32.Vec3{x, y, z})
	return bb
}

// Offset translates the box.
func (bb AABB) Offset(x, y, z float32) AABB {
	return bb.Translate(mgl32.Vec3{x, y, z})
}

// Translate translates the box by v.
func (bb AABB) Translate(v mgl32.Vec3) AABB {
	bb.Min = bb.Min.Add(v)
	bb.Max = bb.Max.Add(v)
	return bb
}

// Intersects returns true if the two boxes overlap. Touching faces do not count as an intersection.
func (bb AABB) Intersects(other AABB) bool {
	return bb.Min[0] < other.Max[0] && bb.Max[0] > other.Min[0] &&
		bb.Min[1] < other.Max[1] && bb.Max[1] > other.Min[1] &&
		bb.Min[2] < other.Max[2] && bb.Max[2] > other.Min[2]
}

// ComputeOffsetX clips the X movement delta of other so that it does not move into bb.
func (bb AABB) ComputeOffsetX(other AABB, delta float32) float32 {
	return bb.computeOffset(other, delta, 0)
}

// ComputeOffsetY clips the Y movement delta of other so that it does not move into bb.
func (bb AABB) ComputeOffsetY(other AABB, delta float32) float32 {
	return bb.computeOffset(other, delta, 1)
}

// ComputeOffsetZ clips the Z movement delta of other so that it does not move into bb.
func (bb AABB) ComputeOffsetZ(other AABB, delta float32) float32 {
	return bb.computeOffset(other, delta, 2)
}

func (bb AABB) computeOffset(other AABB, delta float32, axis int) float32 {
	for i := 0; i < 3; i++ {
		if i == axis {
			continue
		}
		if other.Max[i] <= bb.Min[i] || other.Min[i] >= bb.Max[i] {
			return delta
		}
	}

	if delta > 0 && other.Max[axis] <= bb.Min[axis] {
		return math32.Min(bb.Min[axis]-other.Max[axis], delta)
	} else if delta < 0 && other.Min[axis] >= bb.Max[axis] {
		return math32.Max(bb.Max[axis]-other.Min[axis], delta)
	}
	return delta
}

// AABBFromDFBox converts a dragonfly bounding box to an AABB.
func AABBFromDFBox(b df_cube.BBox) AABB {
	return NewAABB(
		float32(b.Min().X()), float32(b.Min().Y()), float32(b.Min().Z()),
		float32(b.Max().X()), float32(b.Max().Y()), float32(b.Max().Z()),
	)
}

// FullBlock is the local shape of a solid one-voxel block.
var FullBlock = NewAABB(0, 0, 0, 1, 1, 1)
