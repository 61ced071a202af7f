// pkg/render/color.go
package render

import "image/color"

// BoardColors holds all the color definitions needed to render the grid.
type BoardColors struct {
	BackgroundColor   color.Color
	HiddenCellColor   color.Color
	RevealedCellColor color.Color
	MineCellColor     color.Color // background of the detonated mine
	FlagColor         color.Color
	MineColor         color.Color
	NumberColors      []color.Color
	StrokeWidth       float32
}

// NumberColor returns the digit color for an adjacent count.
func (c *BoardColors) NumberColor(count int) color.Color {
	if count < 0 || count >= len(c.NumberColors) {
		return color.Black
	}
	return c.NumberColors[count]
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{
		R: uint8(float64(r>>8) * 0.5),
		G: uint8(float64(g>>8) * 0.5),
		B: uint8(float64(b>>8) * 0.5),
		A: uint8(a >> 8),
	}
}
