package starfield

import (
	"graphics.gd/variant/Float"
	"graphics.gd/variant/Vector2"
	"graphics.gd/variant/Vector3"

	"github.com/edisedis777/Mental-Models/protocol/atlas"
)

// Pick casts a ray from the camera through the given normalized device
// coordinate and returns the model of the nearest star it intersects.
// Stars of hidden constellations are never hit, even when aimed at
// directly. A miss is an ordinary no-selection result, not an error.
func (sc *Scene) Pick(ndc Vector2.XY) (atlas.Model, bool) {
	star, ok := sc.PickStar(ndc)
	if !ok {
		return atlas.Model{}, false
	}
	return star.Model, true
}

// PickStar is Pick returning the scene's own star record. The pick sphere
// of each star grows with its current visual scale, so enlarged stars are
// proportionally easier to hit.
func (sc *Scene) PickStar(ndc Vector2.XY) (*Star, bool) {
	if sc.disposed {
		return nil, false
	}
	origin, dir := sc.Camera.Ray(ndc)
	var nearest *Star
	var nearestT Float.X
	for _, cluster := range sc.clusters {
		if !cluster.Visible {
			continue
		}
		for _, star := range cluster.Stars {
			center := sc.WorldPosition(star)
			toCenter := Vector3.Sub(center, origin)
			along := Vector3.Dot(toCenter, dir)
			if along < 0 {
				continue // behind the camera
			}
			radius := StarRadius * star.Scale()
			off := Vector3.LengthSquared(toCenter) - along*along
			if off > radius*radius {
				continue
			}
			t := along - Float.Sqrt(radius*radius-off)
			if nearest == nil || t < nearestT {
				nearest, nearestT = star, t
			}
		}
	}
	return nearest, nearest != nil
}
