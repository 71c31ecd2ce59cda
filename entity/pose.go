package entity

// Pose is the body pose of an entity, which determines the size of its bounding box.
type Pose uint8

const (
	PoseStanding Pose = iota
	PoseFallFlying
	PoseSleeping
	PoseSwimming
	PoseSpinAttack
	PoseSneaking
	PoseLongJumping
	PoseDying
)

// Dimensions is the width and height of a bounding box.
type Dimensions struct {
	Width, Height float32
}

// poseDimensions are the vanilla player dimensions. Sneaking lowers the box to 1.5 and long jumping
// keeps the standing size.
var poseDimensions = [...]Dimensions{
	PoseStanding:    {Width: 0.6, Height: 1.8},
	PoseFallFlying:  {Width: 0.6, Height: 0.6},
	PoseSleeping:    {Width: 0.2, Height: 0.2},
	PoseSwimming:    {Width: 0.6, Height: 0.6},
	PoseSpinAttack:  {Width: 0.6, Height: 0.6},
	PoseSneaking:    {Width: 0.6, Height: 1.5},
	PoseLongJumping: {Width: 0.6, Height: 1.8},
	PoseDying:       {Width: 0.2, Height: 0.2},
}

var poseNames = [...]string{"standing", "fall_flying", "sleeping", "swimming", "spin_attack", "sneaking", "long_jumping", "dying"}

// Dimensions returns the player dimensions of the pose. Unknown poses use the standing dimensions.
func (p Pose) Dimensions() Dimensions {
	if int(p) >= len(poseDimensions) {
		return poseDimensions[PoseStanding]
	}
	return poseDimensions[p]
}

func (p Pose) String() string {
	if int(p) >= len(poseNames) {
		return "unknown"
	}
	return poseNames[p]
}
