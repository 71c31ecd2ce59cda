package simulation

import (
	"log/slog"
)

// Config holds the block catalog and version toggles a Simulator works with. It is never modified by
// the simulator, so one Config may be shared by simulators ticking different entities.
type Config struct {
	SlimeID        uint32
	SoulSandID     uint32
	WebID          uint32
	HoneyID        uint32
	BubbleColumnID uint32
	LadderID       uint32
	VineID         uint32
	WaterID        uint32
	LavaID         uint32
	// FlowingWaterID and FlowingLavaID are optional second ids for the liquids. Zero means the
	// liquid only has one id.
	FlowingWaterID uint32
	FlowingLavaID  uint32
	// AirID is the id the block above a bubble column must have for the surface drag to apply.
	AirID uint32

	// WaterLike are blocks that count as water source blocks, such as seagrass and kelp.
	WaterLike map[uint32]struct{}
	// Slipperiness maps block ids to their friction. Blocks not present use game.DefaultSlipperiness.
	Slipperiness map[uint32]float32

	// MovementSpeedAttribute is the name of the attribute holding the movement speed of an entity.
	MovementSpeedAttribute string
	// Features reports whether a version dependent feature is supported. A nil oracle supports nothing.
	Features func(name string) bool

	// Logger receives a debug trace of every simulated tick. It may be nil.
	Logger *slog.Logger
}

// SupportsFeature returns true if the feature oracle reports the feature as supported.
func (c Config) SupportsFeature(name string) bool {
	return c.Features != nil && c.Features(name)
}

// FeatureSet returns an oracle reporting exactly the given features as supported.
func FeatureSet(names ...string) func(string) bool {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return func(name string) bool {
		_, ok := set[name]
		return ok
	}
}

func (c Config) isWaterID(id uint32) bool {
	return id == c.WaterID || (c.FlowingWaterID != 0 && id == c.FlowingWaterID)
}

func (c Config) isWaterLike(id uint32) bool {
	_, ok := c.WaterLike[id]
	return ok
}

func (c Config) slipperiness(id uint32, def float32) float32 {
	if s, ok := c.Slipperiness[id]; ok {
		return s
	}
	return def
}
