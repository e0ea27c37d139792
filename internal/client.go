package internal

import (
	"fmt"

	"graphics.gd/classdb/Camera3D"
	"graphics.gd/classdb/DirectionalLight3D"
	"graphics.gd/classdb/DisplayServer"
	"graphics.gd/classdb/Engine"
	"graphics.gd/classdb/Environment"
	"graphics.gd/classdb/Input"
	"graphics.gd/classdb/InputEvent"
	"graphics.gd/classdb/InputEventKey"
	"graphics.gd/classdb/InputEventMagnifyGesture"
	"graphics.gd/classdb/InputEventMouseButton"
	"graphics.gd/classdb/InputEventMouseMotion"
	"graphics.gd/classdb/InputEventPanGesture"
	"graphics.gd/classdb/InputEventScreenDrag"
	"graphics.gd/classdb/InputEventScreenTouch"
	"graphics.gd/classdb/Light3D"
	"graphics.gd/classdb/Node3D"
	"graphics.gd/classdb/WorldEnvironment"
	"graphics.gd/variant/Angle"
	"graphics.gd/variant/Color"
	"graphics.gd/variant/Euler"
	"graphics.gd/variant/Float"
	"graphics.gd/variant/Object"
	"graphics.gd/variant/Vector2"
	"graphics.gd/variant/Vector3"

	"github.com/edisedis777/Mental-Models/protocol/atlas"
	"github.com/edisedis777/Mental-Models/starfield"
)

// Client is the root node of the constellation atlas. It owns the headless
// scene state, the camera rig, lighting and environment, and routes every
// input event through the gesture machine before it can touch the scene.
type Client struct {
	Node3D.Extension[Client] `gd:"ConstellationClient"`

	Light DirectionalLight3D.Instance

	// Tilt and Orbit carry the scene orbit: drags rotate the galaxy under
	// a fixed camera, pitch on the outer node, yaw on the inner one.
	Tilt struct {
		Node3D.Instance

		Orbit struct {
			Node3D.Instance
		}
	}

	Camera Camera3D.Instance

	scene   *starfield.Scene
	gesture starfield.Gesture

	galaxy  *Galaxy
	library *Library
	ui      *UI

	resize   *starfield.Debouncer
	lastSize Vector2.XY

	queue chan func()
}

func NewClient() *Client {
	return &Client{
		resize: starfield.NewDebouncer(starfield.DebounceInterval),
		queue:  make(chan func(), 100),
	}
}

// Ready builds the scene from the bundled library and mirrors it onto the
// scene tree. A library that yields no constellations is fatal: the client
// never starts with a partial scene.
func (client *Client) Ready() {
	catalog, err := client.loadLibrary()
	if err != nil {
		Engine.Raise(fmt.Errorf("failed to load the model library: %w", err))
		return
	}
	scene, err := starfield.NewScene(catalog, atlas.Configs())
	if err != nil {
		Engine.Raise(fmt.Errorf("failed to build the constellation scene: %w", err))
		return
	}
	client.scene = scene

	client.galaxy = NewGalaxy(scene)
	client.Tilt.Orbit.AsNode().AddChild(client.galaxy.AsNode())

	client.Camera.AsNode3D().SetPosition(Vector3.New(0, 0, scene.Camera.Distance))
	client.Camera.AsNode3D().LookAt(Vector3.Zero)
	client.Camera.SetFov(55)

	client.Light.AsNode3D().SetRotation(Euler.Radians{X: Angle.InRadians(-35), Y: Angle.InRadians(20)})
	client.Light.AsLight3D().SetLightEnergy(0.6)
	Light3D.Advanced(client.Light.AsLight3D()).SetParam(Light3D.ParamShadowMaxDistance, 30)

	env := Environment.New()
	env.SetBackgroundMode(Environment.BgColor)
	env.SetBackgroundColor(Color.RGBA{0.02, 0.02, 0.05, 1})
	env.SetAmbientLightColor(Color.RGBA{0.4, 0.4, 0.55, 1})
	env.SetAmbientLightSource(Environment.AmbientSourceColor)
	env.SetAmbientLightEnergy(0.8)
	env.SetGlowEnabled(true)
	env.SetGlowIntensity(0.6)
	env.SetGlowBloom(0.2)
	worldenv := WorldEnvironment.New()
	worldenv.SetEnvironment(env)
	client.AsNode().AddChild(worldenv.AsNode())

	client.ui = NewUI(client, catalog)
	client.AsNode().AddChild(client.ui.AsNode())
	scene.OnSelected = client.ui.ShowModel

	size := DisplayServer.WindowGetSize(0)
	client.lastSize = Vector2.New(Float.X(size.X), Float.X(size.Y))
	scene.Camera.SetViewport(Float.X(size.X), Float.X(size.Y))

	client.watchLibrary()
}

// rebuild tears the current scene down and replaces it with one built from
// the given catalog, preserving the camera so a content reload does not
// yank the viewpoint.
func (client *Client) rebuild(catalog atlas.Catalog) {
	camera := client.scene.Camera
	rotating := client.scene.Rotating()
	scene, err := starfield.NewScene(catalog, atlas.Configs())
	if err != nil {
		Engine.Raise(fmt.Errorf("failed to rebuild the constellation scene: %w", err))
		return
	}
	scene.Camera = camera
	scene.SetRotating(rotating)
	scene.OnSelected = client.ui.ShowModel
	client.scene.Dispose()
	client.scene = scene

	client.galaxy.AsNode().QueueFree()
	client.galaxy = NewGalaxy(scene)
	client.Tilt.Orbit.AsNode().AddChild(client.galaxy.AsNode())
	client.ui.SetCatalog(catalog)
}

func (client *Client) UnhandledInput(event InputEvent.Instance) {
	if client.scene == nil {
		return
	}
	if mouse, ok := Object.As[InputEventMouseButton.Instance](event); ok {
		switch mouse.ButtonIndex() {
		case Input.MouseButtonLeft:
			pos := mouse.AsInputEventMouse().Position()
			if mouse.AsInputEvent().IsPressed() {
				client.gesture.PointerDown(0, pos)
			} else if tap, ok := client.gesture.PointerUp(0); ok {
				client.pick(tap)
			}
		case Input.MouseButtonWheelUp:
			client.scene.Camera.Zoom(-starfield.WheelStep)
		case Input.MouseButtonWheelDown:
			client.scene.Camera.Zoom(starfield.WheelStep)
		}
	}
	if mouse, ok := Object.As[InputEventMouseMotion.Instance](event); ok {
		if Input.IsMouseButtonPressed(Input.MouseButtonLeft) {
			rotate, _ := client.gesture.PointerMove(0, mouse.AsInputEventMouse().Position())
			client.scene.Camera.Rotate(rotate.X, rotate.Y)
		}
	}
	if touch, ok := Object.As[InputEventScreenTouch.Instance](event); ok {
		if touch.AsInputEvent().IsPressed() {
			client.gesture.PointerDown(touch.Index(), touch.Position())
		} else if tap, ok := client.gesture.PointerUp(touch.Index()); ok {
			client.pick(tap)
		}
	}
	if drag, ok := Object.As[InputEventScreenDrag.Instance](event); ok {
		rotate, zoom := client.gesture.PointerMove(drag.Index(), drag.Position())
		client.scene.Camera.Rotate(rotate.X, rotate.Y)
		client.scene.Camera.Zoom(zoom)
	}
	if gesture, ok := Object.As[InputEventMagnifyGesture.Instance](event); ok {
		factor := gesture.Factor()
		if factor < 1.005 && factor > 0.995 {
			return
		}
		client.scene.Camera.Zoom((1 - factor) * 10)
	}
	if gesture, ok := Object.As[InputEventPanGesture.Instance](event); ok {
		client.scene.Camera.Zoom(gesture.Delta().Y * 0.1)
	}
	if key, ok := Object.As[InputEventKey.Instance](event); ok {
		if !key.AsInputEvent().IsPressed() || key.AsInputEvent().IsEcho() {
			return
		}
		switch key.Keycode() {
		case Input.KeySpace:
			client.scene.SetRotating(!client.scene.Rotating())
		case Input.KeyR, Input.KeyHome:
			client.scene.Camera.Reset()
		case Input.KeyS:
			if Input.IsKeyPressed(Input.KeyCtrl) {
				SaveSnapshot(client)
			}
		}
	}
}

func (client *Client) ExitTree() {
	if client.library != nil && client.library.watcher != nil {
		client.library.watcher.Close()
	}
	if client.scene != nil {
		client.scene.Dispose()
	}
}

// pick resolves a tap at a screen position to a star and focuses it. A miss
// leaves the current selection alone.
func (client *Client) pick(pos Vector2.XY) {
	if model, ok := client.scene.Pick(ScreenToNDC(client.lastSize, pos)); ok {
		client.scene.Focus(model.ID)
	}
}

// Process drives the frame: deferred work first, then the resize debouncer,
// then one step of animation, then the node mirror.
func (client *Client) Process(dt Float.X) {
	if client.scene == nil {
		return
	}
	Object.Use(client)
	for i := 0; i < len(client.queue); i++ {
		(<-client.queue)()
	}

	size := DisplayServer.WindowGetSize(0)
	now := Vector2.New(Float.X(size.X), Float.X(size.Y))
	if now != client.lastSize {
		client.lastSize = now
		client.resize.Trigger()
	}
	if client.resize.Ready() {
		client.scene.Camera.SetViewport(Float.X(client.lastSize.X), Float.X(client.lastSize.Y))
	}

	client.scene.Advance()

	client.Tilt.AsNode3D().SetRotation(Euler.Radians{X: client.scene.Camera.Pitch})
	client.Tilt.Orbit.AsNode3D().SetRotation(Euler.Radians{Y: client.scene.Camera.Yaw})
	client.Camera.AsNode3D().SetPosition(Vector3.New(0, 0, client.scene.Camera.Distance))
	client.galaxy.Sync()
}
