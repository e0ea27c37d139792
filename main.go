package main

import (
	"graphics.gd/classdb"
	"graphics.gd/classdb/SceneTree"
	"graphics.gd/startup"

	"github.com/edisedis777/Mental-Models/internal"
)

func main() {
	classdb.Register[internal.Client]()
	classdb.Register[internal.Galaxy]()
	classdb.Register[internal.StarNode]()
	classdb.Register[internal.UI]()
	classdb.Register[internal.SnapshotAnimation]()
	startup.LoadingScene()
	SceneTree.Add(internal.NewClient())
	startup.Scene()
}
