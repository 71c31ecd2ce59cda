package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/oomph-ac/physim/assert"
	"github.com/oomph-ac/physim/entity"
	"github.com/oomph-ac/physim/game"
	"github.com/oomph-ac/physim/world"
)

// tickContext holds everything needed while simulating a single tick of a single entity.
type tickContext struct {
	conf *Config
	ent  *entity.Context
	w    world.Provider

	// bbs is scratch space for surrounding block boxes.
	bbs []game.AABB
}

var ctxPool = sync.Pool{
	New: func() any {
		return &tickContext{bbs: make([]game.AABB, 0, 32)}
	},
}

func newCtx(conf *Config, ent *entity.Context, w world.Provider) *tickContext {
	ctx := ctxPool.Get().(*tickContext)
	assert.IsTrue(ctx.ent == nil, "tick context taken from pool while still in use")
	ctx.conf = conf
	ctx.ent = ent
	ctx.w = w
	return ctx
}

func putCtx(ctx *tickContext) {
	ctx.reset()
	ctxPool.Put(ctx)
}

func (ctx *tickContext) reset() {
	ctx.conf = nil
	ctx.ent = nil
	ctx.w = nil
	clear(ctx.bbs)
	ctx.bbs = ctx.bbs[:0]
}

func (ctx *tickContext) notify(format string, args ...any) {
	l := ctx.conf.Logger
	if l == nil || !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug(fmt.Sprintf(format, args...), "entity", ctx.ent.Type.Name, "age", ctx.ent.State.Age)
}
