package internal

import (
	"graphics.gd/classdb/Button"
	"graphics.gd/classdb/Control"
	"graphics.gd/classdb/Label"
	"graphics.gd/classdb/LineEdit"
	"graphics.gd/classdb/RichTextLabel"
	"graphics.gd/classdb/VBoxContainer"
	"graphics.gd/variant/Vector2"

	"github.com/edisedis777/Mental-Models/protocol/atlas"
)

// historyLimit caps the in-memory list of previously selected models.
const historyLimit = 10

// UI is the overlay: a search box that highlights matching stars, one
// filter button per constellation, a detail panel for the selected model
// and the selection history. It talks to the scene only through its
// commands and consumes only the selected event.
type UI struct {
	Control.Extension[UI] `gd:"ConstellationUI"`

	Panel struct {
		VBoxContainer.Instance

		Search     LineEdit.Instance
		Categories VBoxContainer.Instance

		Detail struct {
			VBoxContainer.Instance

			Name        Label.Instance
			Category    Label.Instance
			Description RichTextLabel.Instance
		}

		History VBoxContainer.Instance
	}

	client  *Client
	catalog atlas.Catalog
	visible map[string]bool
	history []atlas.Model
}

func NewUI(client *Client, catalog atlas.Catalog) *UI {
	ui := new(UI)
	ui.client = client
	ui.catalog = catalog
	return ui
}

func (ui *UI) Ready() {
	ui.AsControl().SetAnchorsPreset(Control.PresetFullRect)
	ui.AsControl().SetMouseFilter(Control.MouseFilterIgnore)
	ui.Panel.AsControl().SetPosition(Vector2.New(16, 16))
	ui.Panel.AsControl().SetCustomMinimumSize(Vector2.New(260, 0))
	ui.Panel.AsControl().SetMouseFilter(Control.MouseFilterStop)

	ui.Panel.Search.SetPlaceholderText("search models")
	ui.Panel.Search.OnTextChanged(func(text string) {
		if text == "" {
			ui.client.scene.ClearHighlight()
			return
		}
		ui.client.scene.SetHighlighted(ui.catalog.Search(text))
	})

	ui.Panel.Detail.Name.SetText("")
	ui.Panel.Detail.Category.SetText("")
	ui.Panel.Detail.Description.SetFitContent(true)
	ui.Panel.Detail.Description.AsControl().SetCustomMinimumSize(Vector2.New(260, 0))

	ui.rebuildCategories()
}

// SetCatalog points the overlay at a freshly parsed catalog after a content
// reload. Filters reset to everything visible; the search box and history
// keep their contents.
func (ui *UI) SetCatalog(catalog atlas.Catalog) {
	ui.catalog = catalog
	ui.rebuildCategories()
	if text := ui.Panel.Search.Text(); text != "" {
		ui.client.scene.SetHighlighted(ui.catalog.Search(text))
	}
}

// rebuildCategories replaces the filter buttons, one toggle per category
// the scene can actually show.
func (ui *UI) rebuildCategories() {
	for _, child := range ui.Panel.Categories.AsNode().GetChildren() {
		child.QueueFree()
	}
	ui.visible = make(map[string]bool)
	for _, config := range atlas.Configs() {
		category := config.Category
		if _, ok := ui.catalog[category]; !ok {
			continue
		}
		ui.visible[category] = true
		button := Button.New()
		button.SetText(ui.filterLabel(category))
		button.AsBaseButton().OnPressed(func() {
			ui.visible[category] = !ui.visible[category]
			button.SetText(ui.filterLabel(category))
			shown := make([]string, 0, len(ui.visible))
			for name, on := range ui.visible {
				if on {
					shown = append(shown, name)
				}
			}
			ui.client.scene.SetVisibleCategories(shown)
		})
		ui.Panel.Categories.AsNode().AddChild(button.AsNode())
	}
}

func (ui *UI) filterLabel(category string) string {
	if ui.visible[category] {
		return "◉ " + category
	}
	return "○ " + category
}

// ShowModel fills the detail panel and records the selection. It is wired
// to the scene's selected event, so taps, searches and history clicks all
// land here.
func (ui *UI) ShowModel(model atlas.Model) {
	ui.Panel.Detail.Name.SetText(model.Name)
	ui.Panel.Detail.Category.SetText(model.Category)
	ui.Panel.Detail.Description.SetText(model.Description)

	if len(ui.history) > 0 && ui.history[len(ui.history)-1].ID == model.ID {
		return
	}
	ui.history = append(ui.history, model)
	if len(ui.history) > historyLimit {
		ui.history = ui.history[len(ui.history)-historyLimit:]
	}
	ui.rebuildHistory()
}

func (ui *UI) rebuildHistory() {
	for _, child := range ui.Panel.History.AsNode().GetChildren() {
		child.QueueFree()
	}
	for i := len(ui.history) - 1; i >= 0; i-- {
		model := ui.history[i]
		button := Button.New()
		button.SetText(model.Name)
		button.SetFlat(true)
		button.AsBaseButton().OnPressed(func() {
			ui.client.scene.Focus(model.ID)
		})
		ui.Panel.History.AsNode().AddChild(button.AsNode())
	}
}
