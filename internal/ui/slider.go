// internal/ui/slider.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-minesweeper/internal/utils"
)

// Slider is a horizontal integer slider. Dragging the knob or clicking
// the track moves the value.
type Slider struct {
	X, Y       float32 // left end of the track, vertical center
	Width      float32
	Height     float32
	KnobRadius float32
	Min, Max   int
	Value      int
	Label      string
	TrackColor color.Color
	KnobColor  color.Color
	TextColor  color.Color

	dragging bool
	fontFace font.Face
}

func NewSlider(x, y, width float32, min, max, value int, label string, face font.Face) *Slider {
	return &Slider{
		X:          x,
		Y:          y,
		Width:      width,
		Height:     10,
		KnobRadius: 9,
		Min:        min,
		Max:        max,
		Value:      value,
		Label:      label,
		TrackColor: color.Gray{Y: 120},
		KnobColor:  color.White,
		TextColor:  color.White,
		fontFace:   face,
	}
}

// Hit reports whether (x, y) grabs the slider: the track or the knob.
func (s *Slider) Hit(x, y int) bool {
	fx, fy := float32(x), float32(y)
	kx := s.KnobX()
	dx, dy := fx-kx, fy-s.Y
	if dx*dx+dy*dy <= s.KnobRadius*s.KnobRadius {
		return true
	}
	half := s.KnobRadius
	return fx >= s.X && fx <= s.X+s.Width && fy >= s.Y-half && fy <= s.Y+half
}

// KnobX is the knob's center for the current value.
func (s *Slider) KnobX() float32 {
	return utils.PositionOfValue(s.Value, s.X, s.Width, s.Min, s.Max)
}

// Dragging reports whether a drag started on the slider is in progress.
func (s *Slider) Dragging() bool {
	return s.dragging
}

// HandleInput feeds one frame of mouse state. It returns true when the
// value changed.
func (s *Slider) HandleInput(x, y int, justPressed, pressed bool) bool {
	if justPressed && s.Hit(x, y) {
		s.dragging = true
	}
	if !pressed {
		s.dragging = false
		return false
	}
	if !s.dragging {
		return false
	}
	v := utils.ValueAtPosition(float32(x), s.X, s.Width, s.Min, s.Max)
	if v == s.Value {
		return false
	}
	s.Value = v
	return true
}

func (s *Slider) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, s.X, s.Y-s.Height/2, s.Width, s.Height, s.TrackColor, true)
	vector.DrawFilledCircle(screen, s.KnobX(), s.Y, s.KnobRadius, s.KnobColor, true)
	vector.StrokeCircle(screen, s.KnobX(), s.Y, s.KnobRadius, 1.5, color.Black, true)

	caption := fmt.Sprintf("%s: %d", s.Label, s.Value)
	DrawTextAt(screen, s.fontFace, caption, int(s.X), int(s.Y-s.KnobRadius)-22, s.TextColor)
}
