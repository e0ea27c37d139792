package atlas

import (
	"graphics.gd/variant/Vector3"
)

// CategoryConfig places one constellation in the scene. The table below is
// static curation, not derived from the library: categories present in the
// data but missing here are silently never rendered.
type CategoryConfig struct {
	Category string
	Color    uint32 // 0xRRGGBB
	Anchor   Vector3.XYZ
}

// Configs returns the category table in display order.
func Configs() []CategoryConfig {
	return []CategoryConfig{
		{"Decision Making", 0xF3A712, Vector3.New(22, 5, 0)},
		{"Problem Solving", 0x4ECDC4, Vector3.New(15.5, -3, 15.5)},
		{"Systems Thinking", 0x9B5DE5, Vector3.New(0, 6, 22)},
		{"Psychology", 0xFF6B6B, Vector3.New(-15.5, -4, 15.5)},
		{"Economics", 0x06D6A0, Vector3.New(-22, 3, 0)},
		{"Strategy", 0x118AB2, Vector3.New(-15.5, 5, -15.5)},
		{"Mathematics", 0xFFD166, Vector3.New(0, -5, -22)},
		{"Philosophy", 0xEF476F, Vector3.New(15.5, 4, -15.5)},
	}
}

// Config looks up the configuration for a single category.
func Config(category string) (CategoryConfig, bool) {
	for _, config := range Configs() {
		if config.Category == category {
			return config, true
		}
	}
	return CategoryConfig{}, false
}
