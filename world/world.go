package world

import (
	"log/slog"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sasha-s/go-deadlock"
)

// Range is the vertical range of blocks a World can hold.
var Range = cube.Range{-64, 319}

// World is an in-memory Provider storing blocks per chunk column. Cells inside a loaded chunk that
// were never set are reported as air.
type World struct {
	airID        uint32
	lastCleanPos protocol.ChunkPos

	chunks map[protocol.ChunkPos]map[cube.Pos]Block

	logger *slog.Logger

	deadlock.RWMutex
}

// New creates an empty world. airID is the block id reported for unset cells of loaded chunks.
func New(airID uint32, logger *slog.Logger) *World {
	return &World{
		airID:  airID,
		chunks: make(map[protocol.ChunkPos]map[cube.Pos]Block),
		logger: logger,
	}
}

func chunkPosOf(pos cube.Pos) protocol.ChunkPos {
	return protocol.ChunkPos{int32(pos[0]) >> 4, int32(pos[2]) >> 4}
}

// LoadChunk marks the chunk at pos as loaded without setting any blocks.
func (w *World) LoadChunk(pos protocol.ChunkPos) {
	w.Lock()
	defer w.Unlock()

	w.loadChunk(pos)
}

func (w *World) loadChunk(pos protocol.ChunkPos) map[cube.Pos]Block {
	c, ok := w.chunks[pos]
	if !ok {
		c = make(map[cube.Pos]Block)
		w.chunks[pos] = c
		if w.logger != nil {
			w.logger.Debug("loaded chunk", "chunkPos", pos)
		}
	}
	return c
}

// ChunkLoaded returns true if the chunk at pos is loaded.
func (w *World) ChunkLoaded(pos protocol.ChunkPos) bool {
	w.RLock()
	defer w.RUnlock()

	_, ok := w.chunks[pos]
	return ok
}

// Block returns the block at the position passed.
func (w *World) Block(pos cube.Pos) (Block, bool) {
	if pos.OutOfBounds(Range) {
		return Block{}, false
	}

	w.RLock()
	defer w.RUnlock()

	c, ok := w.chunks[chunkPosOf(pos)]
	if !ok {
		return Block{}, false
	}
	if b, ok := c[pos]; ok {
		return b, true
	}
	return Empty(w.airID, pos), true
}

// SetBlock sets the block at its position, loading the chunk it is in if necessary. The position
// stored in b is used as the location.
func (w *World) SetBlock(b Block) {
	if b.Position.OutOfBounds(Range) {
		return
	}

	w.Lock()
	defer w.Unlock()

	w.loadChunk(chunkPosOf(b.Position))[b.Position] = b
}

// RemoveBlock resets the block at pos to air.
func (w *World) RemoveBlock(pos cube.Pos) {
	w.Lock()
	defer w.Unlock()

	if c, ok := w.chunks[chunkPosOf(pos)]; ok {
		delete(c, pos)
	}
}

// Fill sets every block in the inclusive region between from and to to the block returned by fn.
func (w *World) Fill(from, to cube.Pos, fn func(pos cube.Pos) Block) {
	for y := min(from[1], to[1]); y <= max(from[1], to[1]); y++ {
		for z := min(from[2], to[2]); z <= max(from[2], to[2]); z++ {
			for x := min(from[0], to[0]); x <= max(from[0], to[0]); x++ {
				pos := cube.Pos{x, y, z}
				b := fn(pos)
				b.Position = pos
				w.SetBlock(b)
			}
		}
	}
}

// CleanChunks unloads every chunk outside the given chunk radius around pos.
func (w *World) CleanChunks(radius int32, pos protocol.ChunkPos) {
	w.Lock()
	defer w.Unlock()

	if pos == w.lastCleanPos {
		return
	}
	w.lastCleanPos = pos

	for chunkPos := range w.chunks {
		if chunkInRange(radius, chunkPos, pos) {
			continue
		}
		delete(w.chunks, chunkPos)
		if w.logger != nil {
			w.logger.Info("removed chunk", "chunkPos", chunkPos, "radius", radius, "pos", pos)
		}
	}
}

// ChunkCount returns the number of loaded chunks.
func (w *World) ChunkCount() int {
	w.RLock()
	defer w.RUnlock()

	return len(w.chunks)
}

func chunkInRange(radius int32, chunkPos, pos protocol.ChunkPos) bool {
	diffX, diffZ := chunkPos[0]-pos[0], chunkPos[1]-pos[1]
	return diffX*diffX+diffZ*diffZ <= radius*radius
}
