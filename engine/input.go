package engine

// Input is the set of keys held during one tick.
type Input struct {
	YawLeft, YawRight bool
	RollUp, RollDown  bool
	FOVIncrease       bool
	FOVDecrease       bool
	LightMinusX       bool
	LightPlusX        bool
	LightMinusY       bool
	LightPlusY        bool
	LightMinusZ       bool
	LightPlusZ        bool
}

// Key names shared by the hosts. Hosts map their own key codes onto these.
const (
	KeyLeft  = "left"
	KeyRight = "right"
	KeyUp    = "up"
	KeyDown  = "down"
	KeyR     = "r"
	KeyF     = "f"
	KeyG     = "g"
	KeyJ     = "j"
	KeyH     = "h"
	KeyY     = "y"
	KeyU     = "u"
	KeyT     = "t"
)

// Set marks the flag bound to key as held. Unknown keys are ignored and
// reported as false.
func (in *Input) Set(key string) bool {
	switch key {
	case KeyLeft:
		in.YawLeft = true
	case KeyRight:
		in.YawRight = true
	case KeyUp:
		in.RollUp = true
	case KeyDown:
		in.RollDown = true
	case KeyR:
		in.FOVIncrease = true
	case KeyF:
		in.FOVDecrease = true
	case KeyG:
		in.LightMinusX = true
	case KeyJ:
		in.LightPlusX = true
	case KeyH:
		in.LightMinusY = true
	case KeyY:
		in.LightPlusY = true
	case KeyU:
		in.LightMinusZ = true
	case KeyT:
		in.LightPlusZ = true
	default:
		return false
	}
	return true
}

// Keys lists every bound key in a stable order.
func Keys() []string {
	return []string{KeyLeft, KeyRight, KeyUp, KeyDown, KeyR, KeyF, KeyG, KeyJ, KeyH, KeyY, KeyU, KeyT}
}

// Any reports whether any key is held.
func (in Input) Any() bool {
	return in != Input{}
}
