package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// Vec3ApproxEq returns true if every component of a and b is approximately equal.
func Vec3ApproxEq(a, b mgl32.Vec3) bool {
	return Float32ApproxEq(a[0], b[0]) && Float32ApproxEq(a[1], b[1]) && Float32ApproxEq(a[2], b[2])
}

// Vec3HzDistSqr returns the squared horizontal length of a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3[0]*vec3[0] + vec3[2]*vec3[2]
}

// Normalize returns the unit vector of v, or the zero vector if v has no length.
func Normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl32.Vec3{}
	}
	return mgl32.Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// ClampNegligible zeroes every component of v whose magnitude is below NegligeableVelocity.
func ClampNegligible(v mgl32.Vec3) mgl32.Vec3 {
	for i := range v {
		if math32.Abs(v[i]) < NegligeableVelocity {
			v[i] = 0
		}
	}
	return v
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}

// FloorInt floors a float32 to an int.
func FloorInt(v float32) int {
	return int(math32.Floor(v))
}
