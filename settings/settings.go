package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/oomph-ac/physim/oerror"
	"github.com/oomph-ac/physim/simulation"
	"github.com/pelletier/go-toml"
)

// Settings contains everything that can be configured for the simulator.
type Settings struct {
	Blocks struct {
		Air          uint32
		Water        uint32
		FlowingWater uint32
		Lava         uint32
		FlowingLava  uint32
		Ladder       uint32
		Vine         uint32
		Web          uint32
		SoulSand     uint32
		Slime        uint32
		BubbleColumn uint32
		Honey        uint32
		// WaterLike are blocks that always count as water source blocks.
		WaterLike []uint32
	}
	// Slipperiness overrides the friction of blocks. Blocks not listed use the default of 0.6.
	Slipperiness []Slipperiness
	Movement     struct {
		SpeedAttribute string
	}
	// Features are the version dependent features the simulator should support.
	Features []string
}

// Slipperiness is the friction of a single block.
type Slipperiness struct {
	Block uint32
	Value float64
}

// DefaultSettings returns the default settings, using Bedrock legacy block ids.
func DefaultSettings() Settings {
	s := Settings{}
	s.Blocks.Air = 0
	s.Blocks.Water = 9
	s.Blocks.FlowingWater = 8
	s.Blocks.Lava = 11
	s.Blocks.FlowingLava = 10
	s.Blocks.Ladder = 65
	s.Blocks.Vine = 106
	s.Blocks.Web = 30
	s.Blocks.SoulSand = 88
	s.Blocks.Slime = 165
	s.Blocks.BubbleColumn = 415
	s.Blocks.Honey = 475
	// Seagrass, kelp and bubble columns.
	s.Blocks.WaterLike = []uint32{385, 393, 415}

	s.Slipperiness = []Slipperiness{
		{Block: 79, Value: 0.98},
		{Block: 174, Value: 0.98},
		{Block: 266, Value: 0.989},
		{Block: 165, Value: 0.8},
	}
	s.Movement.SpeedAttribute = "minecraft:movement"
	return s
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		return oerror.New("settings file %s already exists", path)
	}
	data, err := toml.Marshal(DefaultSettings())
	if err != nil {
		return fmt.Errorf("failed encoding default settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %w", err)
	}
	return nil
}

// Load will load the settings from your settings file, and return an error if the file does not exist
// or the settings in it are invalid.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading settings: %w", err)
	}

	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("error decoding settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks that every block the simulator treats specially has its own id and that the
// slipperiness values are usable.
func (s Settings) Validate() error {
	ids := []struct {
		name string
		id   uint32
	}{
		{"Water", s.Blocks.Water},
		{"Lava", s.Blocks.Lava},
		{"Ladder", s.Blocks.Ladder},
		{"Vine", s.Blocks.Vine},
		{"Web", s.Blocks.Web},
		{"SoulSand", s.Blocks.SoulSand},
		{"Slime", s.Blocks.Slime},
		{"BubbleColumn", s.Blocks.BubbleColumn},
		{"Honey", s.Blocks.Honey},
	}
	seen := make(map[uint32]string, len(ids))
	for _, b := range ids {
		if b.id == s.Blocks.Air {
			return oerror.New("block id of %s (%d) is the air id", b.name, b.id)
		}
		if other, ok := seen[b.id]; ok {
			return oerror.New("%s and %s share block id %d", other, b.name, b.id)
		}
		seen[b.id] = b.name
	}

	for _, sl := range s.Slipperiness {
		if sl.Value <= 0 || sl.Value > 1 {
			return oerror.New("slipperiness of block %d must be in (0, 1], got %v", sl.Block, sl.Value)
		}
	}
	if s.Movement.SpeedAttribute == "" {
		return oerror.New("movement speed attribute must not be empty")
	}
	return nil
}

// SimulatorConfig converts the settings into a simulator configuration logging to the logger passed,
// which may be nil.
func (s Settings) SimulatorConfig(logger *slog.Logger) simulation.Config {
	waterLike := make(map[uint32]struct{}, len(s.Blocks.WaterLike))
	for _, id := range s.Blocks.WaterLike {
		waterLike[id] = struct{}{}
	}
	slip := make(map[uint32]float32, len(s.Slipperiness))
	for _, sl := range s.Slipperiness {
		slip[sl.Block] = float32(sl.Value)
	}

	return simulation.Config{
		SlimeID:                s.Blocks.Slime,
		SoulSandID:             s.Blocks.SoulSand,
		WebID:                  s.Blocks.Web,
		HoneyID:                s.Blocks.Honey,
		BubbleColumnID:         s.Blocks.BubbleColumn,
		LadderID:               s.Blocks.Ladder,
		VineID:                 s.Blocks.Vine,
		WaterID:                s.Blocks.Water,
		LavaID:                 s.Blocks.Lava,
		FlowingWaterID:         s.Blocks.FlowingWater,
		FlowingLavaID:          s.Blocks.FlowingLava,
		AirID:                  s.Blocks.Air,
		WaterLike:              waterLike,
		Slipperiness:           slip,
		MovementSpeedAttribute: s.Movement.SpeedAttribute,
		Features:               simulation.FeatureSet(s.Features...),
		Logger:                 logger,
	}
}
