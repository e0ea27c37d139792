package starfield

import (
	"graphics.gd/variant/Float"
	"graphics.gd/variant/Vector2"
)

const (
	// TapThreshold is the cumulative per-axis displacement, in pixels,
	// above which a press stops being a tap and becomes a drag.
	TapThreshold = 5.0

	// PinchFactor converts a pixel of inter-pointer distance change into
	// camera distance.
	PinchFactor = 0.05
)

// GesturePhase is the state of the pointer gesture machine.
type GesturePhase int

const (
	GestureIdle GesturePhase = iota
	GesturePotentialTap
	GestureDragging
	GesturePinching
)

// Gesture disambiguates raw pointer streams into taps, orbit drags and
// pinch zooms. One press starts as a potential tap and is reclassified as a
// drag the moment cumulative displacement crosses the threshold; a second
// pointer reclassifies the whole gesture as a pinch, cancelling any tap or
// drag. Lifting the last pointer always returns to idle: no gesture state
// survives a full release. Wheel input bypasses the machine entirely and
// goes straight to [Camera.Zoom].
type Gesture struct {
	phase GesturePhase

	points  map[int]Vector2.XY // last sampled position per pointer index
	primary int                // the pointer that began the gesture
	a, b    int                // the two pointers measured while pinching

	origin Vector2.XY // primary press position, reported by a tap
	travel Vector2.XY // cumulative absolute displacement of the primary
	span   Float.X    // last inter-pointer distance while pinching
}

// Phase returns the machine's current state.
func (g *Gesture) Phase() GesturePhase { return g.phase }

// PointerDown records a pointer press. The first pointer arms a potential
// tap; a second switches to pinching and permanently cancels tap/drag
// classification for this gesture. Further pointers are ignored.
func (g *Gesture) PointerDown(index int, pos Vector2.XY) {
	if g.points == nil {
		g.points = make(map[int]Vector2.XY)
	}
	if _, down := g.points[index]; down {
		return
	}
	g.points[index] = pos
	switch len(g.points) {
	case 1:
		g.phase = GesturePotentialTap
		g.primary = index
		g.origin = pos
		g.travel = Vector2.XY{}
	case 2:
		g.phase = GesturePinching
		g.a, g.b = g.primary, index
		g.span = Vector2.Distance(g.points[g.a], g.points[g.b])
	}
}

// PointerMove records a pointer sample and returns the resulting camera
// input: a scene-orbit drag delta in pixels, and a camera distance delta.
// At most one of the two is nonzero. While a press is still a potential
// tap, movement accumulates without rotating the scene; the accumulated
// displacement is released as a single rotation delta the moment the press
// crosses the threshold and becomes a drag.
func (g *Gesture) PointerMove(index int, pos Vector2.XY) (rotate Vector2.XY, zoom Float.X) {
	prev, down := g.points[index]
	if !down {
		return rotate, zoom
	}
	g.points[index] = pos
	switch g.phase {
	case GesturePinching:
		if index != g.a && index != g.b {
			return rotate, zoom
		}
		pa, haveA := g.points[g.a]
		pb, haveB := g.points[g.b]
		if !haveA || !haveB {
			return rotate, zoom
		}
		next := Vector2.Distance(pa, pb)
		if g.span > 0 {
			// spreading pointers brings the camera closer.
			zoom = (g.span - next) * PinchFactor
		}
		g.span = next
	case GesturePotentialTap:
		if index != g.primary {
			return rotate, zoom
		}
		delta := Vector2.Sub(pos, prev)
		g.travel.X += Float.Abs(delta.X)
		g.travel.Y += Float.Abs(delta.Y)
		if g.travel.X > TapThreshold || g.travel.Y > TapThreshold {
			g.phase = GestureDragging
			rotate = Vector2.Sub(pos, g.origin)
		}
	case GestureDragging:
		if index != g.primary {
			return rotate, zoom
		}
		rotate = Vector2.Sub(pos, prev)
	}
	return rotate, zoom
}

// PointerUp records a pointer release. When the released pointer ends a
// press that never left the tap threshold, the original press position is
// returned as a tap; drags and pinches release without one. The machine
// returns to idle once no pointers remain down.
func (g *Gesture) PointerUp(index int) (tap Vector2.XY, ok bool) {
	if _, down := g.points[index]; !down {
		return tap, false
	}
	delete(g.points, index)
	if g.phase == GesturePotentialTap && index == g.primary {
		tap, ok = g.origin, true
	}
	if len(g.points) == 0 {
		g.phase = GestureIdle
		g.travel = Vector2.XY{}
		g.span = 0
	}
	return tap, ok
}
