package viewport

import (
	stdmath "math"

	"github.com/yohamta/donburi/features/math"
)

// Split divides a continuous camera position into the integer position the
// low-res camera renders from and the sub-pixel remainder applied to the
// upscaled surface.
//
// Both axes floor, so the remainder is always in [0, 1). Ebitengine's world
// and screen axes both point down, so the vertical remainder is applied to
// the surface un-negated.
func Split(pos math.Vec2) (snapped, remainder math.Vec2) {
	snapped = math.Vec2{X: stdmath.Floor(pos.X), Y: stdmath.Floor(pos.Y)}
	remainder = pos.Sub(snapped)
	return snapped, remainder
}

// Snap rounds a continuous position to the nearest pixel. Used when smoothing
// is disabled and no remainder compensation happens.
func Snap(pos math.Vec2) math.Vec2 {
	return math.Vec2{X: stdmath.Round(pos.X), Y: stdmath.Round(pos.Y)}
}
