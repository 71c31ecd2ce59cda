package worker

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/physim/entity"
	"github.com/oomph-ac/physim/simulation"
	"github.com/oomph-ac/physim/world"
)

type panickingWorld struct{}

func (panickingWorld) Block(cube.Pos) (world.Block, bool) {
	panic("block lookup failed")
}

// gatedWorld blocks every lookup until release is closed.
type gatedWorld struct {
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (g *gatedWorld) Block(pos cube.Pos) (world.Block, bool) {
	g.once.Do(func() { close(g.entered) })
	<-g.release
	return world.Empty(0, pos), true
}

func testSimulator() *simulation.Simulator {
	return testSimulatorWithLogger(nil)
}

func testSimulatorWithLogger(logger *slog.Logger) *simulation.Simulator {
	return simulation.New(simulation.Config{
		SlimeID:                165,
		SoulSandID:             88,
		WebID:                  30,
		HoneyID:                475,
		BubbleColumnID:         415,
		LadderID:               65,
		VineID:                 106,
		WaterID:                9,
		LavaID:                 11,
		MovementSpeedAttribute: "minecraft:movement",
		Logger:                 logger,
	})
}

func testWorld() *world.World {
	w := world.New(0, nil)
	w.Fill(cube.Pos{-16, 59, -16}, cube.Pos{15, 60, 15}, func(pos cube.Pos) world.Block {
		return world.Solid(1, pos)
	})
	return w
}

func testEntities(n int) []entity.Context {
	ents := make([]entity.Context, n)
	for i := range ents {
		ents[i] = entity.NewPlayerContext(entity.State{
			Position: mgl32.Vec3{float32(i%8) - 4, 61 + float32(i%3), float32(i/8) - 4},
			Velocity: mgl32.Vec3{0.1, 0, -0.05},
		})
		ents[i].State.Controls.Forward = i%2 == 0
		ents[i].State.Controls.Jump = i%3 == 0
	}
	return ents
}

func TestPoolMatchesSequential(t *testing.T) {
	sim, w := testSimulator(), testWorld()
	p := New(sim, 4)
	defer p.Close()

	ents := testEntities(24)
	want := testEntities(24)
	for range 10 {
		var err error
		ents, err = p.Simulate(ents, w)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := range want {
			want[i] = sim.Simulate(want[i], w)
		}
	}

	for i := range want {
		if entity.Fingerprint(ents[i].State) != entity.Fingerprint(want[i].State) {
			t.Fatalf("entity %d: expected %+v, got %+v", i, want[i].State, ents[i].State)
		}
	}
}

func TestPoolRecoversPanics(t *testing.T) {
	var buf bytes.Buffer
	p := New(testSimulatorWithLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}))), 2)
	defer p.Close()

	ents := testEntities(3)
	out, err := p.Simulate(ents, panickingWorld{})
	if err == nil {
		t.Fatalf("expected panics to be reported")
	}
	for i := range ents {
		if out[i].State.Position != ents[i].State.Position {
			t.Fatalf("expected entity %d to be returned unchanged, got %+v", i, out[i].State)
		}
	}

	if got := strings.Count(buf.String(), "recovered simulation panic"); got != len(ents) {
		t.Fatalf("expected %d logged panics, got %d:\n%s", len(ents), got, buf.String())
	}

	// The workers must survive the panics.
	if _, err := p.Simulate(testEntities(3), testWorld()); err != nil {
		t.Fatalf("unexpected error after recovering: %v", err)
	}
}

func TestPoolClose(t *testing.T) {
	p := New(testSimulator(), 0)
	p.Close()
	p.Close()

	if _, err := p.Simulate(testEntities(1), testWorld()); err == nil {
		t.Fatalf("expected closed pool to return an error")
	}
}

func TestPoolCloseDuringBatch(t *testing.T) {
	p := New(testSimulator(), 1)
	w := &gatedWorld{entered: make(chan struct{}), release: make(chan struct{})}

	type result struct {
		ents []entity.Context
		err  error
	}
	batch := make(chan result, 1)
	go func() {
		ents, err := p.Simulate(testEntities(1), w)
		batch <- result{ents, err}
	}()
	<-w.entered

	closed := make(chan struct{})
	go func() {
		p.Close()
		close(closed)
	}()

	// The pool must refuse new batches while the running one is still blocked.
	deadline := time.After(5 * time.Second)
	for {
		if _, err := p.Simulate(nil, testWorld()); err != nil {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("expected pool to report being closed while a batch runs")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	select {
	case <-closed:
		t.Fatalf("expected Close to wait for the running batch")
	default:
	}

	close(w.release)
	res := <-batch
	if res.err != nil || len(res.ents) != 1 {
		t.Fatalf("expected running batch to finish, got %v (%d entities)", res.err, len(res.ents))
	}
	<-closed
}
