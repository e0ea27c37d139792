package starfield

import (
	"graphics.gd/variant/Angle"
	"graphics.gd/variant/Float"
	"graphics.gd/variant/Vector2"
	"graphics.gd/variant/Vector3"
)

const (
	// MinDistance and MaxDistance saturate the camera's distance from the
	// origin; zoom input beyond them is absorbed, never rejected.
	MinDistance = 20.0
	MaxDistance = 100.0

	// DefaultDistance is the camera's starting and reset distance.
	DefaultDistance = 50.0

	// RotateFactor converts a pixel of drag into radians of scene orbit.
	RotateFactor = 0.005

	// WheelStep is the camera distance change of one wheel notch.
	WheelStep = 2.0
)

// Camera is the orbit camera: it sits on the +Z axis at Distance looking at
// the origin, while Yaw and Pitch describe how the scene itself has been
// rotated under it by drag gestures.
type Camera struct {
	Yaw, Pitch Angle.Radians
	Distance   Float.X

	FieldOfView Angle.Radians // vertical field of view
	Aspect      Float.X       // viewport width over height
}

// NewCamera returns the camera at its default distance and orientation.
func NewCamera() Camera {
	return Camera{
		Distance:    DefaultDistance,
		FieldOfView: Angle.InRadians(55),
		Aspect:      16.0 / 9.0,
	}
}

// Rotate applies a drag of (dx,dy) pixels to the scene orbit.
func (c *Camera) Rotate(dx, dy Float.X) {
	c.Yaw += Angle.Radians(dx * RotateFactor)
	c.Pitch += Angle.Radians(dy * RotateFactor)
}

// Zoom moves the camera by delta along the view axis, saturated at the
// distance bounds.
func (c *Camera) Zoom(delta Float.X) {
	c.Distance = min(max(c.Distance+delta, MinDistance), MaxDistance)
}

// Reset restores the default distance and orientation. Projection
// parameters (field of view, aspect) are unaffected.
func (c *Camera) Reset() {
	c.Yaw, c.Pitch = 0, 0
	c.Distance = DefaultDistance
}

// SetViewport recomputes the projection aspect from a viewport size.
func (c *Camera) SetViewport(width, height Float.X) {
	if height > 0 {
		c.Aspect = width / height
	}
}

// Ray casts from the camera through a normalized device coordinate
// (x right, y up, both in [-1,1]) and returns the ray origin and its
// normalized direction in world space.
func (c Camera) Ray(ndc Vector2.XY) (origin, dir Vector3.XYZ) {
	origin = Vector3.New(0, 0, c.Distance)
	half := Angle.Tan(c.FieldOfView / 2)
	dir = Vector3.Normalized(Vector3.New(ndc.X*half*c.Aspect, ndc.Y*half, -1))
	return origin, dir
}

// Project maps a world-space point to normalized device coordinates.
// Points behind the camera report ok = false.
func (c Camera) Project(world Vector3.XYZ) (ndc Vector2.XY, ok bool) {
	view := Vector3.Sub(world, Vector3.New(0, 0, c.Distance))
	if view.Z >= 0 {
		return Vector2.XY{}, false
	}
	half := Angle.Tan(c.FieldOfView / 2)
	return Vector2.New(view.X/(-view.Z*half*c.Aspect), view.Y/(-view.Z*half)), true
}
