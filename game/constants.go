package game

// Movement constants. The float32 values are the exact single-precision representations used by the
// reference client and must not be replaced with "close" literals.
const (
	JumpHeight       float32 = 0.41999998688697815
	SprintSpeed      float32 = 0.30000001192092896
	WaterJumpImpulse float32 = 0.4000000059604645
	AirdragDefault   float32 = 0.9800000190734863

	PlayerSpeed         float32 = 0.1
	NegligeableVelocity float32 = 0.003

	SoulSandSpeed       float32 = 0.4
	HoneyBlockSpeed     float32 = 0.4
	HoneyBlockJumpSpeed float32 = 0.4

	LadderMaxSpeed   float32 = 0.15
	LadderClimbSpeed float32 = 0.2

	WaterInertia        float32 = 0.8
	LavaInertia         float32 = 0.5
	LiquidAcceleration  float32 = 0.02
	OutOfLiquidImpulse  float32 = 0.3
	WaterCurrentScale   float32 = 0.014
	DepthStriderInertia float32 = 0.546
	DepthStriderAccel   float32 = 0.7
	DolphinsGraceDrag   float32 = 0.96

	DefaultSlipperiness  float32 = 0.6
	AirborneInertia      float32 = 0.91
	AirborneAcceleration float32 = 0.02
	GroundAccelFactor    float32 = 0.1627714

	SneakSpeed     float32 = 0.3
	UsingItemSpeed float32 = 0.2
	InputFriction  float32 = 0.98

	SprintJumpBoost float32 = 0.2
	JumpBoostFactor float32 = 0.1
	LevitationSpeed float32 = 0.05
	LevitationDrag  float32 = 0.2
	SlowFalling     float32 = 0.125

	// IndependentLiquidGravity is the water and lava gravity used when the independentLiquidGravity
	// feature is supported.
	IndependentLiquidGravity float32 = 0.02

	SpeedEffectAmount    float32 = 0.2
	SlownessEffectAmount float32 = -0.15

	WebHorizontalFactor float32 = 0.25
	WebVerticalFactor   float32 = 0.05

	SneakEdgeStep float32 = 0.05
	MaxDepthStrider       = 3

	AutoJumpCooldown uint8 = 10
)

const (
	SprintingUUID = "662a6b8d-da3e-4c1c-8813-96ea6097278d"
	SpeedUUID     = "91AEAA56-376B-4498-935B-2F7F68070635"
	SlownessUUID  = "7107DE5E-7CE8-4030-940E-514C1F160890"
)

// BubbleColumnDrag holds the vertical drag a bubble column applies in either direction.
type BubbleColumnDrag struct {
	Down    float32
	MaxDown float32
	Up      float32
	MaxUp   float32
}

var (
	// BubbleColumnSurfaceDrag is used when the block above the column is air.
	BubbleColumnSurfaceDrag = BubbleColumnDrag{Down: 0.03, MaxDown: -0.9, Up: 0.1, MaxUp: 1.8}
	BubbleColumnInnerDrag   = BubbleColumnDrag{Down: 0.03, MaxDown: -0.3, Up: 0.06, MaxUp: 0.7}
)

// Feature flag names consulted by the simulator.
const (
	FeatureVelocityBlocksOnCollision = "velocityBlocksOnCollision"
	FeatureVelocityBlocksOnTop       = "velocityBlocksOnTop"
	FeatureClimbUsingJump            = "climbUsingJump"
	FeatureIndependentLiquidGravity  = "independentLiquidGravity"
	FeatureProportionalLiquidGravity = "proportionalLiquidGravity"
)
