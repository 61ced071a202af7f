// internal/ui/text.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// DrawCenteredText centers s inside rect.
func DrawCenteredText(screen *ebiten.Image, face font.Face, s string, rect image.Rectangle, clr color.Color) {
	bounds := text.BoundString(face, s)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2 - bounds.Min.X
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, s, face, x, y, clr)
}

// DrawTextAt draws s with its top-left corner at (x, y).
func DrawTextAt(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, x-bounds.Min.X, y-bounds.Min.Y, clr)
}
