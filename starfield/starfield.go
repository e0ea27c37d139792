// Package starfield is the headless scene state for the atlas: constellation
// layout, per-star visual state, picking under the orbit camera, the pointer
// gesture machine and the resize debouncer. It has no rendering dependency;
// the graphics.gd layer mirrors this state onto scene-tree nodes every frame.
package starfield

import (
	"errors"
	"math/rand/v2"
	"slices"

	"graphics.gd/variant/Angle"
	"graphics.gd/variant/Float"
	"graphics.gd/variant/Vector3"

	"github.com/edisedis777/Mental-Models/protocol/atlas"
)

const (
	// ClusterRadius is the base radial distance of a star from its
	// constellation anchor, before jitter.
	ClusterRadius = 6.0
	// RadiusJitter widens the disc so rings do not look machined.
	RadiusJitter = 2.0
	// DepthJitter lifts stars off the constellation plane.
	DepthJitter = 1.2

	// SelectedScale is applied to the selected star.
	SelectedScale = 1.5
	// HighlightedScale is applied to search-highlighted stars.
	HighlightedScale = 1.3

	// BaseEmissive is the resting emission energy of a star's material.
	BaseEmissive = 0.4
	// HighlightedEmissive is the raised emission energy while highlighted.
	HighlightedEmissive = 1.8

	// StarRadius is the pick-sphere radius of a star at scale 1.
	StarRadius = 0.55

	// RotationStep is the per-frame angle increment of every constellation
	// while global rotation is enabled. It is a constant step per frame
	// rather than scaled by elapsed time, so the drift follows frame rate.
	RotationStep = Angle.Radians(0.0015)
)

// Star is one renderable point owning exactly one model. Scale and emission
// are never stored as raw values: they are computed from the two state flags
// so that selection and highlighting cannot clobber each other.
type Star struct {
	Model atlas.Model

	// Local is the star's position within its constellation, before the
	// constellation's own rotation is applied.
	Local Vector3.XYZ

	// BaseScale varies slightly per star so the field looks organic.
	BaseScale Float.X

	Selected    bool
	Highlighted bool

	cluster *Cluster
}

// Scale returns the star's current visual scale. Selection wins over
// highlighting when both flags are set.
func (s *Star) Scale() Float.X {
	switch {
	case s.Selected:
		return s.BaseScale * SelectedScale
	case s.Highlighted:
		return s.BaseScale * HighlightedScale
	}
	return s.BaseScale
}

// Emissive returns the star's current emission energy.
func (s *Star) Emissive() Float.X {
	if s.Highlighted {
		return HighlightedEmissive
	}
	return BaseEmissive
}

// Cluster is the constellation for one category: its stars, its anchor in
// world space, a free-running rotation angle and a visibility flag that
// gates both rendering and picking.
type Cluster struct {
	Category string
	Color    uint32
	Anchor   Vector3.XYZ
	Angle    Angle.Radians
	Visible  bool
	Stars    []*Star
}

var errNoClusters = errors.New("no renderable categories: catalog and category table do not intersect")

// Scene owns every constellation and star plus the orbit camera. All
// mutation happens on the frame thread; none of the methods block.
type Scene struct {
	Camera Camera

	// OnSelected receives the model of every selection, including
	// re-selections of the already selected star.
	OnSelected func(atlas.Model)

	clusters []*Cluster
	stars    map[string]*Star
	selected string
	rotating bool
	disposed bool
}

// NewScene lays out one constellation per category present in both the
// catalog and the configuration table; other categories are skipped without
// error. Star i of n sits at angle (i/n)·2π from the anchor at a jittered
// radius with a small random offset off the constellation plane. The jitter
// is intentionally unseeded; layout is not reproducible across builds.
//
// An empty intersection is a fatal construction failure: there is no
// partial-scene mode.
func NewScene(catalog atlas.Catalog, configs []atlas.CategoryConfig) (*Scene, error) {
	scene := &Scene{
		Camera:   NewCamera(),
		stars:    make(map[string]*Star),
		rotating: true,
	}
	for _, config := range configs {
		models, ok := catalog[config.Category]
		if !ok {
			continue
		}
		cluster := &Cluster{
			Category: config.Category,
			Color:    config.Color,
			Anchor:   config.Anchor,
			Visible:  true,
		}
		for i, model := range models {
			theta := Angle.Pi * 2 * Angle.Radians(i) / Angle.Radians(len(models))
			radius := Float.X(ClusterRadius + rand.Float64()*RadiusJitter)
			star := &Star{
				Model: model,
				Local: Vector3.New(
					Angle.Cos(theta)*radius,
					Float.X((rand.Float64()*2-1)*DepthJitter),
					Angle.Sin(theta)*radius,
				),
				BaseScale: Float.X(0.85 + rand.Float64()*0.3),
				cluster:   cluster,
			}
			cluster.Stars = append(cluster.Stars, star)
			scene.stars[model.ID] = star
		}
		scene.clusters = append(scene.clusters, cluster)
	}
	if len(scene.clusters) == 0 {
		return nil, errNoClusters
	}
	return scene, nil
}

// Clusters returns the constellations in configuration order.
func (sc *Scene) Clusters() []*Cluster { return sc.clusters }

// Star resolves a model id.
func (sc *Scene) Star(id string) (*Star, bool) {
	star, ok := sc.stars[id]
	return star, ok
}

// Selected returns the currently selected model, if any.
func (sc *Scene) Selected() (atlas.Model, bool) {
	if star, ok := sc.stars[sc.selected]; ok {
		return star.Model, true
	}
	return atlas.Model{}, false
}

// Focus resolves an id to its star and selects it: the previous selection
// reverts to baseline, the new star takes the selected scale, and the
// selected event fires with the full model. Unknown ids are a no-op with no
// event. Re-selecting the current star changes nothing visually but still
// re-emits the event.
func (sc *Scene) Focus(id string) {
	star, ok := sc.stars[id]
	if !ok {
		return
	}
	if sc.selected != "" && sc.selected != id {
		if prev, ok := sc.stars[sc.selected]; ok {
			prev.Selected = false
		}
	}
	star.Selected = true
	sc.selected = id
	if sc.OnSelected != nil {
		sc.OnSelected(star.Model)
	}
}

// SetHighlighted replaces the highlight set wholesale: listed stars take the
// highlighted scale and emission, every other star reverts. It is never
// additive with a previous call.
func (sc *Scene) SetHighlighted(ids []string) {
	for _, star := range sc.stars {
		star.Highlighted = slices.Contains(ids, star.Model.ID)
	}
}

// ClearHighlight reverts every star to baseline emission and scale,
// independent of the selection.
func (sc *Scene) ClearHighlight() {
	for _, star := range sc.stars {
		star.Highlighted = false
	}
}

// SetVisibleCategories shows exactly the listed categories. Hidden
// constellations are neither rendered nor pickable.
func (sc *Scene) SetVisibleCategories(categories []string) {
	for _, cluster := range sc.clusters {
		cluster.Visible = slices.Contains(categories, cluster.Category)
	}
}

// Rotating reports whether the free-running constellation rotation is on.
func (sc *Scene) Rotating() bool { return sc.rotating }

// SetRotating toggles the free-running rotation, effective the next frame.
func (sc *Scene) SetRotating(on bool) { sc.rotating = on }

// Advance performs one frame of animation: while rotation is enabled every
// constellation turns by the fixed per-frame step.
func (sc *Scene) Advance() {
	if !sc.rotating || sc.disposed {
		return
	}
	for _, cluster := range sc.clusters {
		cluster.Angle += RotationStep
		if cluster.Angle > Angle.Pi*2 {
			cluster.Angle -= Angle.Pi * 2
		}
	}
}

// WorldPosition computes a star's position in world space: its local
// position rotated by the constellation's angle, translated to the anchor,
// then rotated by the scene orbit (gestures rotate the scene, not the
// camera).
func (sc *Scene) WorldPosition(star *Star) Vector3.XYZ {
	p := rotateY(star.Local, star.cluster.Angle)
	p = Vector3.Add(p, star.cluster.Anchor)
	p = rotateY(p, sc.Camera.Yaw)
	p = rotateX(p, sc.Camera.Pitch)
	return p
}

// Dispose tears the scene down: all lookups are cleared so that picking and
// focus resolve nothing, and Advance becomes inert. There is no partial
// teardown.
func (sc *Scene) Dispose() {
	sc.stars = map[string]*Star{}
	sc.clusters = nil
	sc.selected = ""
	sc.disposed = true
}

func rotateY(v Vector3.XYZ, by Angle.Radians) Vector3.XYZ {
	cos, sin := Angle.Cos(by), Angle.Sin(by)
	return Vector3.New(v.X*cos+v.Z*sin, v.Y, -v.X*sin+v.Z*cos)
}

func rotateX(v Vector3.XYZ, by Angle.Radians) Vector3.XYZ {
	cos, sin := Angle.Cos(by), Angle.Sin(by)
	return Vector3.New(v.X, v.Y*cos-v.Z*sin, v.Y*sin+v.Z*cos)
}
