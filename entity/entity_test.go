package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/physim/game"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
)

func TestAttributeValue(t *testing.T) {
	a := NewAttribute(0.1)
	if a.Value() != 0.1 {
		t.Fatalf("expected base value without modifiers, got %v", a.Value())
	}

	a.AddModifier(Modifier{UUID: "add", Operation: OperationAdd, Amount: 0.1})
	a.AddModifier(Modifier{UUID: "base-a", Operation: OperationMultiplyBase, Amount: 0.5})
	a.AddModifier(Modifier{UUID: "base-b", Operation: OperationMultiplyBase, Amount: 0.5})
	a.AddModifier(Modifier{UUID: "total", Operation: OperationMultiplyTotal, Amount: 1})
	a.AddModifier(Modifier{UUID: "total", Operation: OperationMultiplyTotal, Amount: -0.5})

	// x = 0.2, y = 0.2 + 0.2*1 = 0.4, then *2, then *0.5.
	if !game.Float32ApproxEq(a.Value(), 0.4) {
		t.Fatalf("expected 0.4, got %v", a.Value())
	}
}

func TestAttributeRemoveRestores(t *testing.T) {
	a := NewAttribute(0.1)
	a.AddModifier(Modifier{UUID: "keep", Operation: OperationAdd, Amount: 0.05})
	before := a.Value()

	a.AddModifier(Modifier{UUID: game.SprintingUUID, Operation: OperationMultiplyTotal, Amount: game.SprintSpeed})
	a.AddModifier(Modifier{UUID: game.SprintingUUID, Operation: OperationMultiplyTotal, Amount: game.SprintSpeed})
	if !a.HasModifier(game.SprintingUUID) {
		t.Fatalf("expected sprint modifier to be present")
	}
	if n := a.RemoveModifier(game.SprintingUUID); n != 2 {
		t.Fatalf("expected 2 removed modifiers, got %d", n)
	}
	if a.HasModifier(game.SprintingUUID) || a.Value() != before {
		t.Fatalf("expected value %v after removal, got %v", before, a.Value())
	}
	if !a.HasModifier("keep") {
		t.Fatalf("unrelated modifier was removed")
	}
}

func TestAttributesOrderAndClone(t *testing.T) {
	attrs := NewAttributes()
	attrs.Set("b", NewAttribute(2))
	attrs.Set("a", NewAttribute(1))
	attrs.Set("b", NewAttribute(3))

	var names []string
	for name := range attrs.All() {
		names = append(names, name)
	}
	if len(names) != 2 || names[0] != "b" || names[1] != "a" {
		t.Fatalf("unexpected iteration order %v", names)
	}

	c := attrs.Clone()
	orig, _ := attrs.Get("a")
	orig.AddModifier(Modifier{UUID: "x", Amount: 5})
	cloned, _ := c.Get("a")
	if cloned.Value() != 1 {
		t.Fatalf("clone shares modifiers with the original")
	}

	var nilAttrs *Attributes
	if _, ok := nilAttrs.Get("a"); ok || nilAttrs.Len() != 0 || nilAttrs.Clone() != nil {
		t.Fatalf("nil attribute set should behave as empty")
	}
}

func TestPlayerContextDimensions(t *testing.T) {
	ctx := NewPlayerContext(State{Position: mgl32.Vec3{0, 80, 0}})
	if ctx.State.Height != 1.8 || ctx.State.HalfWidth != 0.3 {
		t.Fatalf("unexpected standing dimensions %v/%v", ctx.State.HalfWidth, ctx.State.Height)
	}
	if bb := ctx.BoundingBox(); bb != game.NewAABB(-0.3, 80, -0.3, 0.3, 81.8, 0.3) {
		t.Fatalf("unexpected bounding box %v", bb)
	}

	ctx.State.Pose = PoseSneaking
	ctx.UpdateDimensions()
	if ctx.State.Height != 1.5 {
		t.Fatalf("expected sneaking height 1.5, got %v", ctx.State.Height)
	}
	if bb := ctx.BoundingBoxWithPose(mgl32.Vec3{}, PoseSwimming); bb.Max[1] != 0.6 {
		t.Fatalf("expected swimming box height 0.6, got %v", bb)
	}
	if d := PoseLongJumping.Dimensions(); d.Width != 0.6 || d.Height != 1.8 {
		t.Fatalf("expected long jumping to keep the standing size, got %+v", d)
	}

	arrow := NewContext(State{}, Type{Kind: KindArrow, Name: "arrow", Width: 0.5, Height: 0.5}, 0.05, 0.99)
	if arrow.State.HalfWidth != 0.25 || arrow.State.Height != 0.5 || arrow.UseControls {
		t.Fatalf("unexpected arrow context %+v", arrow)
	}
}

func TestShouldMove(t *testing.T) {
	ctx := NewPlayerContext(State{CollidedHorizontally: true})
	if !ctx.ShouldMove() {
		t.Fatalf("players keep moving after collisions")
	}
	ctx.CollisionBehavior.AffectedAfterCollision = false
	if ctx.ShouldMove() {
		t.Fatalf("entity should stop after colliding")
	}
}

func TestControlStatesByName(t *testing.T) {
	var c ControlStates
	if !c.Set(ControlSneak, true) || !c.Get(ControlSneak) || !c.Sneak {
		t.Fatalf("expected sneak to be set")
	}
	if c.Set("fly", true) || c.Get("fly") {
		t.Fatalf("unknown controls must be rejected")
	}
	c.Forward, c.Left = true, true
	if c.Forwards() != 1 || c.Strafe() != -1 {
		t.Fatalf("unexpected inputs %v/%v", c.Forwards(), c.Strafe())
	}
	c.Reset()
	if c != (ControlStates{}) {
		t.Fatalf("expected controls to be released")
	}
}

func TestHandleMobEffect(t *testing.T) {
	var s State
	HandleMobEffect(&s, &packet.MobEffect{Operation: packet.MobEffectAdd, EffectType: packet.EffectJumpBoost, Amplifier: 1})
	if s.JumpBoost != 2 {
		t.Fatalf("expected jump boost level 2, got %d", s.JumpBoost)
	}
	HandleMobEffect(&s, &packet.MobEffect{Operation: packet.MobEffectRemove, EffectType: packet.EffectJumpBoost})
	if s.JumpBoost != 0 {
		t.Fatalf("expected jump boost to be removed")
	}
	if HandleMobEffect(&s, &packet.MobEffect{Operation: packet.MobEffectAdd, EffectType: packet.EffectNightVision}) {
		t.Fatalf("night vision should not affect movement")
	}
}

func TestFingerprint(t *testing.T) {
	s := State{Position: mgl32.Vec3{1, 2, 3}, Attributes: NewAttributes()}
	s.Attributes.Set("minecraft:movement", NewAttribute(0.1))

	c := s.Clone()
	if Fingerprint(s) != Fingerprint(c) {
		t.Fatalf("clone should have the same fingerprint")
	}
	c.Velocity[1] = -0.0784
	if Fingerprint(s) == Fingerprint(c) {
		t.Fatalf("different velocity should change the fingerprint")
	}

	c = s.Clone()
	a, _ := c.Attributes.Get("minecraft:movement")
	a.AddModifier(Modifier{UUID: game.SprintingUUID, Operation: OperationMultiplyTotal, Amount: game.SprintSpeed})
	if Fingerprint(s) == Fingerprint(c) {
		t.Fatalf("modifier should change the fingerprint")
	}
}
