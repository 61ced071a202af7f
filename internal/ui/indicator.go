// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// StatusIndicator is a colored circle with a caption showing the session
// outcome. The circle pulses briefly when the status changes.
type StatusIndicator struct {
	X, Y           float32
	Radius         float32
	LastChangeTime time.Time
	label          string
	fontFace       font.Face
}

func NewStatusIndicator(x, y, radius float32, face font.Face) *StatusIndicator {
	return &StatusIndicator{
		X:        x,
		Y:        y,
		Radius:   radius,
		fontFace: face,
	}
}

// SetLabel updates the caption and restarts the pulse when it changes.
func (i *StatusIndicator) SetLabel(label string, now time.Time) {
	if label == i.label {
		return
	}
	i.label = label
	i.LastChangeTime = now
}

func (i *StatusIndicator) Label() string {
	return i.label
}

// Draw renders the indicator.
func (i *StatusIndicator) Draw(screen *ebiten.Image, stateColor color.Color, textColor color.Color) {
	elapsed := time.Since(i.LastChangeTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1.5, color.White, true)

	if i.label != "" {
		DrawTextAt(screen, i.fontFace, i.label, int(i.X+i.Radius)+10, int(i.Y)-8, textColor)
	}
}
