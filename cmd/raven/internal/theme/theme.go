// Package theme supplies the terminal front end's colors. Mode accent
// colors are blended against a shared base in a perceptual color space
// (go-colorful's Lab blending) rather than plain RGB averaging, so the
// blended status-bar color stays visually consistent across modes.
package theme

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	base   = colorful.Color{R: 0.11, G: 0.12, B: 0.16}
	normal = colorful.Color{R: 0.38, G: 0.65, B: 0.91}
	insert = colorful.Color{R: 0.45, G: 0.80, B: 0.45}
	visual = colorful.Color{R: 0.85, G: 0.55, B: 0.25}
)

// AccentForMode returns the accent color associated with a mode name, as
// reported by editor.Mode()/visual-selection state ("normal", "insert",
// or "visual").
func AccentForMode(name string) colorful.Color {
	switch name {
	case "insert":
		return insert
	case "visual":
		return visual
	default:
		return normal
	}
}

// StatusBarColor blends accent into the theme's base color and converts
// the result to a tcell color for the status line background.
func StatusBarColor(accent colorful.Color) tcell.Color {
	blended := base.BlendLab(accent, 0.35)
	r, g, b := blended.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// TextColor is the status line's foreground color.
func TextColor() tcell.Color {
	return tcell.NewRGBColor(230, 230, 230)
}
