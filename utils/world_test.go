package utils

import (
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/physim/game"
	"github.com/oomph-ac/physim/world"
)

func floorWorld() *world.World {
	w := world.New(0, nil)
	w.Fill(cube.Pos{-2, 60, -2}, cube.Pos{2, 60, 2}, func(pos cube.Pos) world.Block {
		return world.Solid(2, pos)
	})
	w.Fill(cube.Pos{-2, 61, -2}, cube.Pos{2, 63, 2}, func(pos cube.Pos) world.Block {
		return world.Empty(0, pos)
	})
	return w
}

func TestSurroundingBBoxes(t *testing.T) {
	w := floorWorld()
	bb := game.EntityBox(mgl32.Vec3{0.5, 61, 0.5}, 0.3, 1.8)

	boxes := SurroundingBBoxes(bb, w)
	if len(boxes) != 1 {
		t.Fatalf("expected exactly the block beneath the entity, got %v", boxes)
	}
	if boxes[0] != game.NewAABB(0, 60, 0, 1, 61, 1) {
		t.Fatalf("unexpected box %v", boxes[0])
	}

	// Straddling four columns must visit every one of them.
	bb = game.EntityBox(mgl32.Vec3{0, 61, 0}, 0.3, 1.8)
	if boxes := SurroundingBBoxes(bb, w); len(boxes) != 4 {
		t.Fatalf("expected 4 boxes, got %d", len(boxes))
	}
}

func TestUnderlyingBBoxes(t *testing.T) {
	w := floorWorld()
	bb := game.EntityBox(mgl32.Vec3{0, 61, 0}, 0.3, 1.8)
	if boxes := UnderlyingBBoxes(bb, w); len(boxes) != 4 {
		t.Fatalf("expected 4 underlying boxes, got %d", len(boxes))
	}

	bb = game.EntityBox(mgl32.Vec3{0.5, 63, 0.5}, 0.3, 1.8)
	if boxes := UnderlyingBBoxes(bb, w); len(boxes) != 0 {
		t.Fatalf("expected no underlying boxes two blocks above the floor, got %v", boxes)
	}
}

func TestMaterialInBB(t *testing.T) {
	w := floorWorld()
	w.SetBlock(world.Empty(11, cube.Pos{1, 61, 1}))

	if !MaterialInBB(game.NewAABB(0.5, 61, 0.5, 1.5, 62, 1.5), 11, w) {
		t.Fatalf("expected lava to be found")
	}
	if MaterialInBB(game.NewAABB(-1.5, 61, -1.5, -0.5, 62, -0.5), 11, w) {
		t.Fatalf("expected no lava in the opposite corner")
	}
}

func TestCollidesWithBlocks(t *testing.T) {
	w := floorWorld()
	bb := game.EntityBox(mgl32.Vec3{0.5, 61, 0.5}, 0.3, 1.8)
	boxes := SurroundingBBoxes(bb.Extend(0, -0.5, 0), w)
	if CollidesWithBlocks(bb, boxes) {
		t.Fatalf("entity resting on the floor should not intersect it")
	}
	if !CollidesWithBlocks(bb.Offset(0, -0.1, 0), boxes) {
		t.Fatalf("entity sunk into the floor should intersect it")
	}
}
