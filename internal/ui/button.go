// internal/ui/button.go
package ui

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button is a clickable rectangle with a centered caption.
type Button struct {
	Rect          image.Rectangle
	Text          string
	BgColor       color.Color
	HoverColor    color.Color
	TextColor     color.Color
	LastClickTime time.Time
	Cooldown      time.Duration
	fontFace      font.Face
}

// NewButton creates a button.
func NewButton(rect image.Rectangle, label string, face font.Face, bg, hover, fg color.Color, cooldown time.Duration) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		BgColor:    bg,
		HoverColor: hover,
		TextColor:  fg,
		Cooldown:   cooldown,
		fontFace:   face,
	}
}

// Contains reports whether (x, y) is inside the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Click registers a press at now. It returns false while the cooldown
// from the previous accepted click is still running.
func (b *Button) Click(now time.Time) bool {
	if !b.LastClickTime.IsZero() && now.Sub(b.LastClickTime) < b.Cooldown {
		return false
	}
	b.LastClickTime = now
	return true
}

// Draw renders the button. A recent click briefly inflates it.
func (b *Button) Draw(screen *ebiten.Image, hovered bool) {
	bg := b.BgColor
	if hovered {
		bg = b.HoverColor
	}

	elapsed := time.Since(b.LastClickTime).Seconds()
	grow := float32(4 * math.Exp(-elapsed*8))
	x := float32(b.Rect.Min.X) - grow
	y := float32(b.Rect.Min.Y) - grow
	w := float32(b.Rect.Dx()) + 2*grow
	h := float32(b.Rect.Dy()) + 2*grow

	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, color.White, true)
	DrawCenteredText(screen, b.fontFace, b.Text, b.Rect, b.TextColor)
}
