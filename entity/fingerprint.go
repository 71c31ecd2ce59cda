package entity

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"
)

// Fingerprint returns a digest of the exact bits of every field of the state. Two states have the same
// fingerprint only if a simulator would treat them identically.
func Fingerprint(s State) uint64 {
	buf := make([]byte, 0, 128)
	for _, f := range []float32{
		s.Position[0], s.Position[1], s.Position[2],
		s.Velocity[0], s.Velocity[1], s.Velocity[2],
		s.Yaw, s.Pitch, s.Height, s.HalfWidth,
	} {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}

	var flags uint32
	for i, b := range []bool{
		s.OnGround, s.InWater, s.InLava, s.InWeb, s.CollidedHorizontally, s.CollidedVertically,
		s.SneakCollision, s.JumpQueued, s.UsingItem, s.UsingMainHand, s.UsingOffHand,
		s.Controls.Forward, s.Controls.Back, s.Controls.Left, s.Controls.Right,
		s.Controls.Jump, s.Controls.Sprint, s.Controls.Sneak,
	} {
		if b {
			flags |= 1 << i
		}
	}
	buf = binary.LittleEndian.AppendUint32(buf, flags)
	buf = append(buf, s.JumpTicks, byte(s.Pose))
	for _, l := range []uint16{s.JumpBoost, s.Speed, s.Slowness, s.DolphinsGrace, s.SlowFalling, s.Levitation, s.DepthStrider} {
		buf = binary.LittleEndian.AppendUint16(buf, l)
	}
	buf = binary.LittleEndian.AppendUint32(buf, s.Age)

	for name, attr := range s.Attributes.All() {
		buf = append(buf, name...)
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(attr.Base))
		for _, m := range attr.Modifiers {
			buf = append(buf, m.UUID...)
			buf = append(buf, byte(m.Operation))
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(m.Amount))
		}
	}
	return xxh3.Hash(buf)
}
