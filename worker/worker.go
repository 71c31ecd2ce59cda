package worker

import (
	"errors"
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/physim/entity"
	"github.com/oomph-ac/physim/oerror"
	"github.com/oomph-ac/physim/simulation"
	"github.com/oomph-ac/physim/world"
	"github.com/sasha-s/go-deadlock"
)

// Pool ticks independent entities on a fixed set of goroutines. Entities in one batch must not share
// attributes, as the simulator updates them in place.
type Pool struct {
	sim   *simulation.Simulator
	queue chan func()
	wg    sync.WaitGroup

	// batches counts the Simulate calls in progress. mu only guards closed and the registration of a
	// batch, never the batch itself.
	batches sync.WaitGroup
	mu      deadlock.RWMutex
	closed  bool
}

// New starts a pool with the given amount of workers. If workers is not positive, one worker per CPU
// is started.
func New(sim *simulation.Simulator, workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	p := &Pool{sim: sim, queue: make(chan func(), workers)}
	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	defer sentry.Recover()

	for f := range p.queue {
		f()
	}
}

// Simulate runs one tick for every entity and returns the results in the order of the input. An entity
// whose tick panicked is returned unchanged and its error is included in the joined error returned.
func (p *Pool) Simulate(ents []entity.Context, w world.Provider) ([]entity.Context, error) {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return nil, oerror.New("worker pool is closed")
	}
	p.batches.Add(1)
	p.mu.RUnlock()
	defer p.batches.Done()

	out := make([]entity.Context, len(ents))
	errs := make([]error, len(ents))

	var wg sync.WaitGroup
	wg.Add(len(ents))
	for i := range ents {
		p.queue <- func() {
			defer wg.Done()
			out[i], errs[i] = p.simulate(i, ents[i], w)
		}
	}
	wg.Wait()
	return out, errors.Join(errs...)
}

func (p *Pool) simulate(i int, ent entity.Context, w world.Provider) (res entity.Context, err error) {
	res = ent
	defer func() {
		if r := recover(); r != nil {
			sentry.CurrentHub().Recover(r)
			err = oerror.New("entity %d (%s): simulation panicked: %v", i, ent.Type.Name, r)
			if l := p.sim.Config().Logger; l != nil {
				l.Error("recovered simulation panic", "entity", ent.Type.Name, "index", i, "err", err)
			}
		}
	}()
	return p.sim.Simulate(ent, w), nil
}

// Close stops the workers once the batches in progress are done. Simulate returns an error after Close.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	p.batches.Wait()
	close(p.queue)
	p.wg.Wait()
}
