package internal

import (
	"graphics.gd/variant/Vector2"
)

// ScreenToNDC maps a screen-space pixel position to normalized device
// coordinates, x right and y up in [-1,1]. Screen space grows downward, so
// the y axis flips.
func ScreenToNDC(viewport, pos Vector2.XY) Vector2.XY {
	if viewport.X == 0 || viewport.Y == 0 {
		return Vector2.XY{}
	}
	return Vector2.New(
		pos.X/viewport.X*2-1,
		-(pos.Y/viewport.Y*2 - 1),
	)
}
