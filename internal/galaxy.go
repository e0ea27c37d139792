package internal

import (
	"math/rand/v2"

	"graphics.gd/classdb/BaseMaterial3D"
	"graphics.gd/classdb/MultiMesh"
	"graphics.gd/classdb/MultiMeshInstance3D"
	"graphics.gd/classdb/Node3D"
	"graphics.gd/classdb/SphereMesh"
	"graphics.gd/classdb/StandardMaterial3D"
	"graphics.gd/variant/Angle"
	"graphics.gd/variant/Basis"
	"graphics.gd/variant/Color"
	"graphics.gd/variant/Euler"
	"graphics.gd/variant/Float"
	"graphics.gd/variant/Transform3D"
	"graphics.gd/variant/Vector3"

	"github.com/edisedis777/Mental-Models/starfield"
)

// backdropCount is how many decorative background points the galaxy carries.
// They are pure set dressing and are never pickable.
const backdropCount = 1000

// Galaxy mirrors a [starfield.Scene] onto scene-tree nodes: one child per
// constellation, one [StarNode] per star, plus a MultiMesh backdrop of
// distant points. It never mutates the scene; Sync copies state out of it
// once per frame.
type Galaxy struct {
	Node3D.Extension[Galaxy] `gd:"ConstellationGalaxy"`

	scene    *starfield.Scene
	clusters []Node3D.Instance
	stars    []*StarNode

	Backdrop MultiMeshInstance3D.Instance
}

func NewGalaxy(scene *starfield.Scene) *Galaxy {
	galaxy := new(Galaxy)
	galaxy.scene = scene
	return galaxy
}

func (galaxy *Galaxy) Ready() {
	for _, cluster := range galaxy.scene.Clusters() {
		node := Node3D.New()
		node.SetPosition(cluster.Anchor)
		for _, star := range cluster.Stars {
			mirror := NewStarNode(star, cluster.Color)
			node.AsNode().AddChild(mirror.AsNode())
			galaxy.stars = append(galaxy.stars, mirror)
		}
		galaxy.AsNode().AddChild(node.AsNode())
		galaxy.clusters = append(galaxy.clusters, node)
	}
	galaxy.Backdrop.SetMultimesh(newBackdrop())
}

// Sync applies the scene's per-frame state to the mirrored nodes.
func (galaxy *Galaxy) Sync() {
	for i, cluster := range galaxy.scene.Clusters() {
		if i >= len(galaxy.clusters) {
			break
		}
		node := galaxy.clusters[i]
		node.AsNode3D().SetRotation(Euler.Radians{Y: cluster.Angle})
		node.AsNode3D().SetVisible(cluster.Visible)
	}
	for _, star := range galaxy.stars {
		star.Sync()
	}
}

// newBackdrop scatters dim points on a distant shell around the origin.
func newBackdrop() MultiMesh.Instance {
	sphere := SphereMesh.New()
	sphere.SetRadius(0.08)
	sphere.SetHeight(0.16)
	sphere.SetRadialSegments(4)
	sphere.SetRings(2)

	material := StandardMaterial3D.New()
	material.AsBaseMaterial3D().SetShadingMode(BaseMaterial3D.ShadingModeUnshaded)
	material.AsBaseMaterial3D().SetAlbedoColor(Color.RGBA{0.7, 0.7, 0.8, 1})
	sphere.AsPrimitiveMesh().SetMaterial(material.AsMaterial())

	identity := Basis.XYZ{Vector3.New(1, 0, 0), Vector3.New(0, 1, 0), Vector3.New(0, 0, 1)}
	multi := MultiMesh.New()
	multi.SetTransformFormat(MultiMesh.Transform3d)
	multi.SetMesh(sphere.AsMesh())
	multi.SetInstanceCount(backdropCount)
	for i := range backdropCount {
		radius := Float.X(120 + rand.Float64()*80)
		theta := Angle.Radians(rand.Float64()) * 2 * Angle.Pi
		phi := Angle.Radians(rand.Float64()-0.5) * Angle.Pi
		pos := Vector3.New(
			radius*Angle.Cos(phi)*Angle.Cos(theta),
			radius*Angle.Sin(phi),
			radius*Angle.Cos(phi)*Angle.Sin(theta),
		)
		multi.SetInstanceTransform(i, Transform3D.BasisOrigin{identity, pos})
	}
	return multi
}
