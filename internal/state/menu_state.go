// internal/state/menu_state.go
package state

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-minesweeper/internal/config"
	"go-minesweeper/internal/ui"
)

// MenuState — титульный экран. Пробел запускает игру.
type MenuState struct {
	sm    *StateMachine
	fonts Fonts
	next  func() State
}

func NewMenuState(sm *StateMachine, fonts Fonts, next func() State) *MenuState {
	return &MenuState{sm: sm, fonts: fonts, next: next}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(m.next())
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	mid := config.ScreenHeight / 2
	ui.DrawCenteredText(screen, m.fonts.Cell, "MINESWEEPER",
		image.Rect(0, mid-60, config.ScreenWidth, mid-20), config.SliderKnobColor)
	ui.DrawCenteredText(screen, m.fonts.UI, "Press SPACE to play",
		image.Rect(0, mid, config.ScreenWidth, mid+30), config.TextLightColor)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
