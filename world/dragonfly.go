package world

import (
	"github.com/df-mc/dragonfly/server/block"
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	df_world "github.com/df-mc/dragonfly/server/world"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/physim/game"
	"github.com/zeebo/xxh3"
)

// liquidSource is implemented by dragonfly block sources that also track the liquid layer.
type liquidSource interface {
	Liquid(pos df_cube.Pos) (df_world.Liquid, bool)
}

// DragonflySource adapts a dragonfly block source into a Provider. Block ids are looked up by block name
// in the id table; blocks without an entry get an id derived from their name, see UnmappedID.
type DragonflySource struct {
	src df_world.BlockSource
	ids map[string]uint32
}

// NewDragonflySource returns a Provider reading blocks from src.
func NewDragonflySource(src df_world.BlockSource, ids map[string]uint32) *DragonflySource {
	return &DragonflySource{src: src, ids: ids}
}

// Block converts the dragonfly block at pos. A nil block is reported as unloaded.
func (s *DragonflySource) Block(pos cube.Pos) (Block, bool) {
	dfPos := dragonflyPos(pos)
	b := s.src.Block(dfPos)
	if b == nil {
		return Block{}, false
	}

	name, props := b.EncodeBlock()
	id, ok := s.ids[name]
	if !ok {
		id = UnmappedID(name)
	}

	out := Block{ID: id, Position: pos, BoundingBox: BoundingBoxEmpty}
	switch b := b.(type) {
	case block.Water:
		out.Metadata = liquidMetadata(b.Depth, b.Falling)
	case block.Lava:
		out.Metadata = liquidMetadata(b.Depth, b.Falling)
	default:
		if dragDown, ok := props["drag_down"].(bool); ok && !dragDown {
			out.Metadata = 1
		}
		if ls, ok := s.src.(liquidSource); ok {
			if liq, ok := ls.Liquid(dfPos); ok {
				_, out.Waterlogged = liq.(block.Water)
			}
		}
	}

	for _, bb := range b.Model().BBox(dfPos, s.src) {
		out.Shapes = append(out.Shapes, game.AABBFromDFBox(bb))
	}
	if len(out.Shapes) > 0 {
		out.BoundingBox = BoundingBoxBlock
	}
	return out, true
}

// UnmappedID returns the id used for a block name missing from the id table. It only depends on the
// name, so it is stable without a dragonfly block registry.
func UnmappedID(name string) uint32 {
	return uint32(xxh3.HashString(name))
}

// liquidMetadata converts a dragonfly liquid depth (8 for a source, decreasing as it spreads) into the
// legacy liquid metadata where 0 is a source block and bit 8 marks falling liquid.
func liquidMetadata(depth int, falling bool) uint32 {
	meta := uint32(max(0, min(7, 8-depth)))
	if falling {
		meta |= 8
	}
	return meta
}
