package colors

// Default returns the default color scheme. Priority colors follow the
// red/yellow/green urgency convention.
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		High:   "#EF4444",
		Medium: "#EAB308",
		Low:    "#22C55E",

		Header: "#D75FD7",
		Subtle: "#585858",
	}
}
