package starfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"graphics.gd/variant/Vector2"
)

func TestPickHitsProjectedStar(t *testing.T) {
	scene, err := NewScene(testCatalog(), testConfigs())
	require.NoError(t, err)

	for _, id := range []string{"moat", "asymmetry", "anchoring"} {
		star, ok := scene.Star(id)
		require.True(t, ok)
		ndc, ok := scene.Camera.Project(scene.WorldPosition(star))
		require.True(t, ok, "star must be in front of the camera")

		model, ok := scene.Pick(ndc)
		require.True(t, ok, id)
		assert.Equal(t, id, model.ID)
	}
}

func TestPickMissIsNoSelection(t *testing.T) {
	scene, err := NewScene(testCatalog(), testConfigs())
	require.NoError(t, err)

	// Far corner of the frustum, nowhere near any anchor.
	_, ok := scene.Pick(Vector2.New(0.99, 0.99))
	assert.False(t, ok)
}

func TestPickIgnoresHiddenConstellations(t *testing.T) {
	scene, err := NewScene(testCatalog(), testConfigs())
	require.NoError(t, err)

	star, _ := scene.Star("anchoring")
	ndc, ok := scene.Camera.Project(scene.WorldPosition(star))
	require.True(t, ok)

	scene.SetVisibleCategories([]string{"Strategy"})
	_, ok = scene.Pick(ndc)
	assert.False(t, ok, "hidden constellation must not be pickable")

	scene.SetVisibleCategories([]string{"Strategy", "Psychology"})
	model, ok := scene.Pick(ndc)
	require.True(t, ok)
	assert.Equal(t, "anchoring", model.ID)
}

func TestPickAfterDispose(t *testing.T) {
	scene, err := NewScene(testCatalog(), testConfigs())
	require.NoError(t, err)

	star, _ := scene.Star("moat")
	ndc, ok := scene.Camera.Project(scene.WorldPosition(star))
	require.True(t, ok)

	scene.Dispose()
	_, ok = scene.Pick(ndc)
	assert.False(t, ok)
}

func TestPickTracksSceneOrbit(t *testing.T) {
	scene, err := NewScene(testCatalog(), testConfigs())
	require.NoError(t, err)
	scene.Camera.Rotate(120, -45)

	star, _ := scene.Star("asymmetry")
	ndc, ok := scene.Camera.Project(scene.WorldPosition(star))
	require.True(t, ok)

	model, ok := scene.Pick(ndc)
	require.True(t, ok)
	assert.Equal(t, "asymmetry", model.ID)
}
