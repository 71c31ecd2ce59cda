package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/oomph-ac/physim/game"
	"github.com/oomph-ac/physim/oerror"
)

func TestSaveAndLoadDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := SaveDefault(path); err != nil {
		t.Fatalf("unexpected error saving defaults: %v", err)
	}
	if err := SaveDefault(path); err == nil {
		t.Fatalf("expected saving over an existing file to fail")
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error loading defaults: %v", err)
	}
	def := DefaultSettings()
	if s.Blocks.Water != def.Blocks.Water || s.Blocks.BubbleColumn != def.Blocks.BubbleColumn || s.Blocks.Honey != def.Blocks.Honey {
		t.Fatalf("expected default block ids, got %+v", s.Blocks)
	}
	if len(s.Blocks.WaterLike) != 3 || len(s.Slipperiness) != 4 {
		t.Fatalf("expected lists to survive a round trip, got %+v", s)
	}
	if s.Movement.SpeedAttribute != "minecraft:movement" {
		t.Fatalf("unexpected speed attribute %q", s.Movement.SpeedAttribute)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected a not exist error, got %v", err)
	}
}

func TestLoadFeatures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	data := `
Features = ["velocityBlocksOnTop", "climbUsingJump"]

[Blocks]
Water = 9
Lava = 11
Ladder = 65
Vine = 106
Web = 30
SoulSand = 88
Slime = 165
BubbleColumn = 415
Honey = 475

[Movement]
SpeedAttribute = "minecraft:movement"

[[Slipperiness]]
Block = 79
Value = 0.98
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed writing settings: %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	conf := s.SimulatorConfig(nil)
	if !conf.SupportsFeature(game.FeatureVelocityBlocksOnTop) || !conf.SupportsFeature(game.FeatureClimbUsingJump) {
		t.Fatalf("expected listed features to be supported")
	}
	if conf.SupportsFeature(game.FeatureIndependentLiquidGravity) {
		t.Fatalf("expected unlisted feature to be unsupported")
	}
	if !game.Float32ApproxEq(conf.Slipperiness[79], 0.98) {
		t.Fatalf("expected ice slipperiness, got %v", conf.Slipperiness)
	}
	if conf.FlowingWaterID != 0 || conf.WaterID != 9 {
		t.Fatalf("unexpected water ids %d, %d", conf.WaterID, conf.FlowingWaterID)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Fatalf("expected defaults to be valid: %v", err)
	}

	tests := map[string]func(s *Settings){
		"shared id":          func(s *Settings) { s.Blocks.Web = s.Blocks.Ladder },
		"air id":             func(s *Settings) { s.Blocks.Slime = s.Blocks.Air },
		"slipperiness":       func(s *Settings) { s.Slipperiness[0].Value = 1.5 },
		"no speed attribute": func(s *Settings) { s.Movement.SpeedAttribute = "" },
	}
	for name, modify := range tests {
		s := DefaultSettings()
		modify(&s)
		err := s.Validate()
		var oerr *oerror.Error
		if !errors.As(err, &oerr) {
			t.Fatalf("%s: expected an *oerror.Error, got %v", name, err)
		}
	}
}

func TestSimulatorConfig(t *testing.T) {
	conf := DefaultSettings().SimulatorConfig(nil)
	if conf.SlimeID != 165 || conf.FlowingLavaID != 10 || conf.MovementSpeedAttribute != "minecraft:movement" {
		t.Fatalf("unexpected config %+v", conf)
	}
	if _, ok := conf.WaterLike[393]; !ok {
		t.Fatalf("expected kelp to be water-like")
	}
	if conf.SupportsFeature(game.FeatureClimbUsingJump) {
		t.Fatalf("expected no features by default")
	}
}
