package internal

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"graphics.gd/classdb/Engine"
	"graphics.gd/classdb/ImageTexture"
	"graphics.gd/classdb/Node"
	"graphics.gd/classdb/OS"
	"graphics.gd/classdb/PropertyTweener"
	"graphics.gd/classdb/SceneTree"
	"graphics.gd/classdb/TextureRect"
	"graphics.gd/classdb/Viewport"
	"graphics.gd/variant/Color"
	"graphics.gd/variant/Vector2"
)

// SnapshotAnimation is the shrinking after-image played when the view is
// captured with Ctrl+S.
type SnapshotAnimation struct {
	TextureRect.Extension[SnapshotAnimation]
}

// SaveSnapshot writes the current viewport to a uniquely named png under
// the user data directory and plays [SnapshotAnimation] as feedback.
func SaveSnapshot(parent Node.Any) {
	image := Viewport.Get(parent.AsNode()).GetTexture().AsTexture2D().GetImage()
	if err := os.MkdirAll(OS.GetUserDataDir()+"/snaps", 0777); err != nil {
		Engine.Raise(fmt.Errorf("failed to create the snapshot directory: %w", err))
		return
	}
	image.SavePng(OS.GetUserDataDir() + "/snaps/" + uuid.NewString() + ".png")

	snap := new(SnapshotAnimation)
	snap.AsTextureRect().SetTexture(ImageTexture.CreateFromImage(image).AsTexture2D())
	parent.AsNode().AddChild(snap.AsNode())
}

const snapshotFade = 0.6

// Ready implements [Node.Interface.Ready]
func (anim *SnapshotAnimation) Ready() {
	var tween = SceneTree.Get(anim.AsNode()).CreateTween()
	anim.AsNode().BindTween(tween)
	PropertyTweener.Make(tween, anim.AsObject(), "scale", Vector2.XY{0.1, 0.1}, snapshotFade)
	tween.Parallel()
	PropertyTweener.Make(tween, anim.AsObject(), "modulate", Color.RGBA{1, 1, 1, 0}, snapshotFade)
	tween.OnFinished(func() {
		anim.AsNode().QueueFree()
	})
}
