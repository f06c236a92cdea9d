package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		High:   "#FFFFFF",
		Medium: "#D0D0D0",
		Low:    "#A8A8A8",

		Header: "#FFFFFF",
		Subtle: "#585858",
	}
}
