package internal

import (
	"graphics.gd/classdb/BaseMaterial3D"
	"graphics.gd/classdb/MeshInstance3D"
	"graphics.gd/classdb/Node3D"
	"graphics.gd/classdb/SphereMesh"
	"graphics.gd/classdb/StandardMaterial3D"
	"graphics.gd/variant/Color"
	"graphics.gd/variant/Float"
	"graphics.gd/variant/Vector3"

	"github.com/edisedis777/Mental-Models/starfield"
)

// StarNode renders one star: an emissive sphere in its category's color
// with a translucent halo sphere around it. All visual state comes from the
// backing [starfield.Star] on Sync; the node itself holds none.
type StarNode struct {
	Node3D.Extension[StarNode] `gd:"ConstellationStar"`

	Mesh MeshInstance3D.Instance
	Halo MeshInstance3D.Instance

	star     *starfield.Star
	tint     Color.RGBA
	material StandardMaterial3D.Instance
}

func NewStarNode(star *starfield.Star, color uint32) *StarNode {
	node := new(StarNode)
	node.star = star
	node.tint = rgb(color)
	node.material = starMaterial(node.tint)
	return node
}

func (node *StarNode) Ready() {
	node.AsNode3D().SetPosition(node.star.Local)

	core := SphereMesh.New()
	core.SetRadius(starfield.StarRadius)
	core.SetHeight(starfield.StarRadius * 2)
	node.Mesh.SetMesh(core.AsMesh())
	node.Mesh.AsGeometryInstance3D().SetMaterialOverride(node.material.AsMaterial())

	halo := SphereMesh.New()
	halo.SetRadius(starfield.StarRadius * 1.6)
	halo.SetHeight(starfield.StarRadius * 3.2)
	node.Halo.SetMesh(halo.AsMesh())
	node.Halo.AsGeometryInstance3D().SetMaterialOverride(haloMaterial(node.tint).AsMaterial())

	node.Sync()
}

// Sync applies the star's computed scale and emission for this frame.
func (node *StarNode) Sync() {
	scale := node.star.Scale()
	node.AsNode3D().SetScale(Vector3.New(scale, scale, scale))
	node.material.AsBaseMaterial3D().SetEmissionEnergyMultiplier(node.star.Emissive())
}

func starMaterial(tint Color.RGBA) StandardMaterial3D.Instance {
	material := StandardMaterial3D.New()
	material.AsBaseMaterial3D().SetAlbedoColor(tint)
	material.AsBaseMaterial3D().SetEmissionEnabled(true)
	material.AsBaseMaterial3D().SetEmission(tint)
	material.AsBaseMaterial3D().SetEmissionEnergyMultiplier(starfield.BaseEmissive)
	return material
}

func haloMaterial(tint Color.RGBA) StandardMaterial3D.Instance {
	tint.A = 0.15
	material := StandardMaterial3D.New()
	material.AsBaseMaterial3D().SetShadingMode(BaseMaterial3D.ShadingModeUnshaded)
	material.AsBaseMaterial3D().SetTransparency(BaseMaterial3D.TransparencyAlpha)
	material.AsBaseMaterial3D().SetAlbedoColor(tint)
	return material
}

// rgb unpacks a 24-bit color into the engine's color type.
func rgb(c uint32) Color.RGBA {
	return Color.RGBA{
		Float.X((c>>16)&0xFF) / 255,
		Float.X((c>>8)&0xFF) / 255,
		Float.X(c&0xFF) / 255,
		1,
	}
}
