package starfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"graphics.gd/variant/Float"
	"graphics.gd/variant/Vector2"
)

func TestSmallMovementIsStillATap(t *testing.T) {
	var g Gesture

	g.PointerDown(0, Vector2.New(100, 100))
	rotate, zoom := g.PointerMove(0, Vector2.New(101.5, 101))
	assert.Zero(t, rotate)
	assert.Zero(t, zoom)
	rotate, _ = g.PointerMove(0, Vector2.New(103, 101.5))
	assert.Zero(t, rotate, "sub-threshold movement must not rotate the scene")

	tap, ok := g.PointerUp(0)
	require.True(t, ok)
	assert.Equal(t, Vector2.New(100, 100), tap, "tap reports the press position")
	assert.Equal(t, GestureIdle, g.Phase())
}

func TestDragCrossesThresholdAndCancelsTap(t *testing.T) {
	var g Gesture

	g.PointerDown(0, Vector2.New(100, 100))
	rotate, _ := g.PointerMove(0, Vector2.New(103, 100))
	assert.Zero(t, rotate)
	assert.Equal(t, GesturePotentialTap, g.Phase())

	// Crossing the threshold releases the whole accumulated displacement.
	rotate, _ = g.PointerMove(0, Vector2.New(107, 100))
	assert.Equal(t, Vector2.New(7, 0), rotate)
	assert.Equal(t, GestureDragging, g.Phase())

	// From here on, deltas are incremental.
	rotate, _ = g.PointerMove(0, Vector2.New(110, 102))
	assert.Equal(t, Vector2.New(3, 2), rotate)

	_, ok := g.PointerUp(0)
	assert.False(t, ok, "a drag must not end in a tap")
	assert.Equal(t, GestureIdle, g.Phase())
}

func TestPinchZoomsAndCancelsEverythingElse(t *testing.T) {
	var g Gesture

	g.PointerDown(0, Vector2.New(0, 0))
	g.PointerDown(1, Vector2.New(10, 0))
	assert.Equal(t, GesturePinching, g.Phase())

	// Spreading the pointers zooms in (negative distance delta).
	rotate, zoom := g.PointerMove(1, Vector2.New(20, 0))
	assert.Zero(t, rotate, "a pinch never rotates")
	assert.InDelta(t, -10*PinchFactor, float64(zoom), 1e-9)

	// Closing them zooms back out.
	_, zoom = g.PointerMove(1, Vector2.New(14, 0))
	assert.InDelta(t, float64(Float.X(6*PinchFactor)), float64(zoom), 1e-9)

	// Neither pointer can end in a tap once a pinch has begun.
	_, ok := g.PointerUp(1)
	assert.False(t, ok)
	assert.Equal(t, GesturePinching, g.Phase(), "one finger down keeps the pinch inert")
	rotate, zoom = g.PointerMove(0, Vector2.New(50, 50))
	assert.Zero(t, rotate)
	assert.Zero(t, zoom)

	_, ok = g.PointerUp(0)
	assert.False(t, ok)
	assert.Equal(t, GestureIdle, g.Phase())
}

func TestGestureResetsBetweenPresses(t *testing.T) {
	var g Gesture

	// Burn a drag.
	g.PointerDown(0, Vector2.New(0, 0))
	g.PointerMove(0, Vector2.New(40, 0))
	g.PointerUp(0)

	// The next press starts clean and can still tap.
	g.PointerDown(0, Vector2.New(5, 5))
	tap, ok := g.PointerUp(0)
	require.True(t, ok)
	assert.Equal(t, Vector2.New(5, 5), tap)
}

func TestStrayPointerEventsAreIgnored(t *testing.T) {
	var g Gesture

	rotate, zoom := g.PointerMove(3, Vector2.New(1, 1))
	assert.Zero(t, rotate)
	assert.Zero(t, zoom)
	_, ok := g.PointerUp(3)
	assert.False(t, ok)
	assert.Equal(t, GestureIdle, g.Phase())
}
