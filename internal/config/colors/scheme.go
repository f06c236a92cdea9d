package colors

// ColorScheme defines the configurable color values for the task listing
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Per-priority colors
	High   string `yaml:"high"`
	Medium string `yaml:"medium"`
	Low    string `yaml:"low"`

	// Text colors
	Header string `yaml:"header"` // Listing header row
	Subtle string `yaml:"subtle"` // Completed tasks and muted text
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "default", "":
		return Default()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base.
// If preset is specified, loads that preset first, then overrides with
// custom values.
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	if c.High == "" {
		c.High = preset.High
	}
	if c.Medium == "" {
		c.Medium = preset.Medium
	}
	if c.Low == "" {
		c.Low = preset.Low
	}
	if c.Header == "" {
		c.Header = preset.Header
	}
	if c.Subtle == "" {
		c.Subtle = preset.Subtle
	}
}
