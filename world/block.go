package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/physim/game"
)

const (
	// BoundingBoxEmpty is the bounding box tag of blocks without collision shapes.
	BoundingBoxEmpty = "empty"
	// BoundingBoxBlock is the bounding box tag of blocks with at least one collision shape.
	BoundingBoxBlock = "block"
)

// Block describes a voxel as seen by the simulator. It is immutable for the duration of a tick.
type Block struct {
	ID       uint32
	Metadata uint32
	// BoundingBox is the collision tag of the block, either BoundingBoxEmpty or BoundingBoxBlock.
	BoundingBox string
	Position    cube.Pos
	// Shapes are the collision boxes of the block in block-local space.
	Shapes      []game.AABB
	Waterlogged bool
}

// Provider gives read-only access to the blocks of a world.
type Provider interface {
	// Block returns the block at pos. False is returned if the position is outside the loaded region,
	// in which case the cell is treated as empty.
	Block(pos cube.Pos) (Block, bool)
}

// WorldShapes returns the collision shapes of the block translated to world space.
func (b Block) WorldShapes() []game.AABB {
	if len(b.Shapes) == 0 {
		return nil
	}
	boxes := make([]game.AABB, len(b.Shapes))
	for i, s := range b.Shapes {
		boxes[i] = s.Offset(float32(b.Position[0]), float32(b.Position[1]), float32(b.Position[2]))
	}
	return boxes
}

// Solid returns a full-cube block with the given id at pos.
func Solid(id uint32, pos cube.Pos) Block {
	return Block{ID: id, BoundingBox: BoundingBoxBlock, Position: pos, Shapes: []game.AABB{game.FullBlock}}
}

// Empty returns a block without shapes with the given id at pos.
func Empty(id uint32, pos cube.Pos) Block {
	return Block{ID: id, BoundingBox: BoundingBoxEmpty, Position: pos}
}
