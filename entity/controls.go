package entity

// ControlStates are the movement inputs held by an entity during a tick.
type ControlStates struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Jump    bool
	Sprint  bool
	Sneak   bool
}

// Control names accepted by ControlStates.Set and ControlStates.Get.
const (
	ControlForward = "forward"
	ControlBack    = "back"
	ControlLeft    = "left"
	ControlRight   = "right"
	ControlJump    = "jump"
	ControlSprint  = "sprint"
	ControlSneak   = "sneak"
)

func (c *ControlStates) field(name string) *bool {
	switch name {
	case ControlForward:
		return &c.Forward
	case ControlBack:
		return &c.Back
	case ControlLeft:
		return &c.Left
	case ControlRight:
		return &c.Right
	case ControlJump:
		return &c.Jump
	case ControlSprint:
		return &c.Sprint
	case ControlSneak:
		return &c.Sneak
	}
	return nil
}

// Set sets the control with the given name. It returns false if the name is unknown.
func (c *ControlStates) Set(name string, v bool) bool {
	f := c.field(name)
	if f == nil {
		return false
	}
	*f = v
	return true
}

// Get returns the value of the control with the given name. Unknown controls are never held.
func (c ControlStates) Get(name string) bool {
	if f := c.field(name); f != nil {
		return *f
	}
	return false
}

// Reset releases all controls.
func (c *ControlStates) Reset() {
	*c = ControlStates{}
}

// Strafe returns the sideways input, positive for right.
func (c ControlStates) Strafe() float32 {
	return boolToFloat(c.Right) - boolToFloat(c.Left)
}

// Forwards returns the forward input, positive for forward.
func (c ControlStates) Forwards() float32 {
	return boolToFloat(c.Forward) - boolToFloat(c.Back)
}

func boolToFloat(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
