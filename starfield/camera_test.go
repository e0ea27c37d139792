package starfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"graphics.gd/variant/Vector2"
	"graphics.gd/variant/Vector3"
)

func TestZoomSaturatesAtBounds(t *testing.T) {
	c := NewCamera()
	assert.InDelta(t, DefaultDistance, float64(c.Distance), 1e-9)

	c.Zoom(-1000)
	assert.InDelta(t, MinDistance, float64(c.Distance), 1e-9)
	c.Zoom(-WheelStep)
	assert.InDelta(t, MinDistance, float64(c.Distance), 1e-9, "zoom past the floor is absorbed")

	c.Zoom(1000)
	assert.InDelta(t, MaxDistance, float64(c.Distance), 1e-9)

	for range 100 {
		c.Zoom(WheelStep)
	}
	assert.InDelta(t, MaxDistance, float64(c.Distance), 1e-9)
}

func TestResetRestoresOrbitNotProjection(t *testing.T) {
	c := NewCamera()
	c.Rotate(300, -150)
	c.Zoom(30)
	c.SetViewport(1000, 500)

	c.Reset()
	assert.Zero(t, c.Yaw)
	assert.Zero(t, c.Pitch)
	assert.InDelta(t, DefaultDistance, float64(c.Distance), 1e-9)
	assert.InDelta(t, 2.0, float64(c.Aspect), 1e-9, "reset leaves the projection alone")
}

func TestSetViewportIgnoresDegenerateSize(t *testing.T) {
	c := NewCamera()
	before := c.Aspect
	c.SetViewport(800, 0)
	assert.InDelta(t, float64(before), float64(c.Aspect), 1e-9)
}

func TestRayProjectRoundTrip(t *testing.T) {
	c := NewCamera()
	c.SetViewport(1920, 1080)

	world := Vector3.New(8, -3, -12)
	ndc, ok := c.Project(world)
	require.True(t, ok)

	origin, dir := c.Ray(ndc)
	// The ray must pass through the projected point.
	to := Vector3.Sub(world, origin)
	cross := Vector3.Cross(to, dir)
	assert.InDelta(t, 0, float64(Vector3.LengthSquared(cross)), 1e-3)
}

func TestProjectRejectsPointsBehindCamera(t *testing.T) {
	c := NewCamera()
	_, ok := c.Project(Vector3.New(0, 0, c.Distance+1))
	assert.False(t, ok)
}

func TestCenterProjectsToOrigin(t *testing.T) {
	c := NewCamera()
	ndc, ok := c.Project(Vector3.New(0, 0, 0))
	require.True(t, ok)
	assert.Equal(t, Vector2.New(0, 0), ndc)
}
