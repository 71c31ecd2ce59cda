package world

import (
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/ethaniccc/float32-cube/cube"
)

// dragonflyPos converts a block position into the dragonfly position of the same block.
func dragonflyPos(pos cube.Pos) df_cube.Pos {
	return df_cube.Pos{pos.X(), pos.Y(), pos.Z()}
}
