package config

import "todo/internal/config/colors"

// ColorScheme re-exports the colors type for callers that only import config
type ColorScheme = colors.ColorScheme

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() colors.ColorScheme {
	return *colors.Default()
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() colors.ColorScheme {
	return *colors.Monochrome()
}
