package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/physim/entity"
	"github.com/oomph-ac/physim/game"
	"github.com/oomph-ac/physim/settings"
	"github.com/oomph-ac/physim/simulation"
	"github.com/oomph-ac/physim/worker"
	"github.com/oomph-ac/physim/world"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

const (
	stoneID = 1
	ticks   = 40
)

// The following program loads (or creates) the simulator settings, builds a small world and ticks a few
// entities through it, printing a fingerprint of every entity after each tick.
func main() {
	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	path := "settings.toml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := settings.SaveDefault(path); err != nil {
			panic(err)
		}
		logger.Info("created default settings", "path", path)
	}
	s, err := settings.Load(path)
	if err != nil {
		panic(err)
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	w := buildWorld(s, logger)
	pool := worker.New(simulation.New(s.SimulatorConfig(logger)), 0)
	defer pool.Close()

	ents := spawnEntities()
	for i, e := range ents {
		if e.State.OnGround {
			ents[i].State.Position = simulation.SnapToGround(e, e.State.Position, w)
		}
		chunk := protocol.ChunkPos{int32(game.FloorInt(e.State.Position[0])) >> 4, int32(game.FloorInt(e.State.Position[2])) >> 4}
		if !w.ChunkLoaded(chunk) {
			logger.Warn("entity spawned in an unloaded chunk", "entity", i, "chunk", chunk)
		}
	}
	for tick := range ticks {
		ents, err = pool.Simulate(ents, w)
		if err != nil {
			logger.Error("simulation failed", "tick", tick, "err", err)
			return
		}
		for i, e := range ents {
			fmt.Printf("tick %02d entity %d (%s) pos=%v onGround=%t fingerprint=%016x\n",
				tick, i, e.Type.Name, e.State.Position, e.State.OnGround, entity.Fingerprint(e.State))
		}
	}

	w.CleanChunks(0, protocol.ChunkPos{-100, -100})
}

// buildWorld creates a stone platform with a pool of water, a slime block and a ladder on a wall.
func buildWorld(s settings.Settings, logger *slog.Logger) *world.World {
	w := world.New(s.Blocks.Air, logger)
	w.Fill(cube.Pos{-16, 58, -16}, cube.Pos{15, 60, 15}, func(pos cube.Pos) world.Block {
		return world.Solid(stoneID, pos)
	})
	w.Fill(cube.Pos{4, 59, 4}, cube.Pos{7, 60, 7}, func(pos cube.Pos) world.Block {
		return world.Empty(s.Blocks.Water, pos)
	})
	w.SetBlock(world.Solid(s.Blocks.Slime, cube.Pos{-4, 60, -4}))
	w.Fill(cube.Pos{-8, 61, 0}, cube.Pos{-8, 64, 0}, func(pos cube.Pos) world.Block {
		return world.Solid(stoneID, pos)
	})
	w.Fill(cube.Pos{-7, 61, 0}, cube.Pos{-7, 64, 0}, func(pos cube.Pos) world.Block {
		return world.Empty(s.Blocks.Ladder, pos)
	})
	return w
}

func spawnEntities() []entity.Context {
	walker := entity.NewPlayerContext(entity.State{Position: mgl32.Vec3{0.5, 61, 0.5}, OnGround: true})
	walker.State.Controls.Forward = true
	walker.State.Controls.Sprint = true
	walker.State.Controls.Jump = true

	swimmer := entity.NewPlayerContext(entity.State{Position: mgl32.Vec3{5.5, 60, 5.5}})
	swimmer.State.Controls.Jump = true

	bouncer := entity.NewPlayerContext(entity.State{Position: mgl32.Vec3{-3.5, 66, -3.5}})

	climber := entity.NewPlayerContext(entity.State{Position: mgl32.Vec3{-6.5, 61, 0.5}, Yaw: 1.5707964, OnGround: true})
	climber.State.Controls.Forward = true

	arrow := entity.NewContext(entity.State{Position: mgl32.Vec3{0.5, 70, 8.5}, Velocity: mgl32.Vec3{0, 0.5, 1.5}},
		entity.Type{Kind: entity.KindArrow, Name: "arrow", Width: 0.5, Height: 0.5}, 0.05, 0.99)
	arrow.CollisionBehavior.AffectedAfterCollision = false

	return []entity.Context{walker, swimmer, bouncer, climber, arrow}
}
