package entity

import (
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
)

// effectLevel returns the level counter of the state that tracks the given mob effect.
func (s *State) effectLevel(effectType int32) *uint16 {
	switch effectType {
	case packet.EffectSpeed:
		return &s.Speed
	case packet.EffectSlowness:
		return &s.Slowness
	case packet.EffectJumpBoost:
		return &s.JumpBoost
	case packet.EffectLevitation:
		return &s.Levitation
	case packet.EffectSlowFalling:
		return &s.SlowFalling
	}
	return nil
}

// SetEffect sets the level of a mob effect. Effects that do not influence movement are ignored and
// false is returned.
func (s *State) SetEffect(effectType int32, level uint16) bool {
	l := s.effectLevel(effectType)
	if l == nil {
		return false
	}
	*l = level
	return true
}

// HandleMobEffect applies a MobEffect packet to the effect levels of the state.
func HandleMobEffect(s *State, pk *packet.MobEffect) bool {
	switch pk.Operation {
	case packet.MobEffectAdd, packet.MobEffectModify:
		return s.SetEffect(pk.EffectType, uint16(max(0, pk.Amplifier+1)))
	case packet.MobEffectRemove:
		return s.SetEffect(pk.EffectType, 0)
	}
	return false
}
