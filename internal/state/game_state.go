// internal/state/game_state.go
package state

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"

	"go-minesweeper/internal/app"
	"go-minesweeper/internal/config"
	"go-minesweeper/internal/session"
	"go-minesweeper/internal/ui"
	"go-minesweeper/internal/utils"
	"go-minesweeper/pkg/render"
)

// Fonts — шрифты, которыми рисуют экраны
type Fonts struct {
	Cell font.Face // цифры на поле
	UI   font.Face
}

// GameState — состояние игры
type GameState struct {
	sm        *StateMachine
	game      *app.Game
	renderer  *render.BoardRenderer
	slider    *ui.Slider
	resetBtn  *ui.Button
	indicator *ui.StatusIndicator
	fonts     Fonts
	log       *logrus.Entry
}

func NewGameState(sm *StateMachine, g *app.Game, fonts Fonts, logger *logrus.Logger) *GameState {
	geom := utils.GridGeometry{
		OriginX:  config.BoardMargin,
		OriginY:  config.BoardTop,
		CellSize: config.CellSize,
		Gap:      config.CellGap,
		Size:     config.GridSize,
	}
	colors := &render.BoardColors{
		BackgroundColor:   config.BackgroundColor,
		HiddenCellColor:   config.HiddenCellColor,
		RevealedCellColor: config.RevealedCellColor,
		MineCellColor:     config.MineCellColor,
		FlagColor:         config.FlagColor,
		MineColor:         config.MineColor,
		NumberColors:      config.NumberColors,
		StrokeWidth:       config.StrokeWidth,
	}

	slider := ui.NewSlider(config.BoardMargin, 40, 180, 0, config.MaxMineCount, g.MineCount(), "Mines", fonts.UI)
	slider.Height = config.SliderHeight
	slider.KnobRadius = config.SliderKnobRadius
	slider.TrackColor = config.SliderTrackColor
	slider.KnobColor = config.SliderKnobColor
	slider.TextColor = config.TextLightColor

	btnX := config.ScreenWidth - config.BoardMargin - config.ResetButtonWidth
	resetBtn := ui.NewButton(
		image.Rect(btnX, 20, btnX+config.ResetButtonWidth, 20+config.ResetButtonHeight),
		"Reset", fonts.UI,
		config.ButtonColor, config.ButtonHoverColor, config.TextLightColor,
		time.Duration(config.ClickCooldown)*time.Millisecond,
	)

	indicator := ui.NewStatusIndicator(
		float32(config.BoardMargin+config.IndicatorRadius),
		82,
		float32(config.IndicatorRadius),
		fonts.UI,
	)

	return &GameState{
		sm:        sm,
		game:      g,
		renderer:  render.NewBoardRenderer(geom, fonts.Cell, colors),
		slider:    slider,
		resetBtn:  resetBtn,
		indicator: indicator,
		fonts:     fonts,
		log:       logger.WithField("state", "game"),
	}
}

func (g *GameState) Enter() {
	g.renderer.Invalidate()
	g.slider.Value = g.game.MineCount()
	g.log.Debug("enter")
}

func (g *GameState) Update(deltaTime float64) {
	g.game.Update(deltaTime)

	x, y := ebiten.CursorPosition()
	leftJust := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	leftHeld := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if g.slider.HandleInput(x, y, leftJust, leftHeld) {
		g.slider.Value = g.game.SetMineCount(g.slider.Value)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewMenuState(g.sm, g.fonts, func() State { return g }))
		return
	}

	// Обработка левой кнопки
	if leftJust && !g.slider.Dragging() {
		if g.resetBtn.Contains(x, y) {
			if g.resetBtn.Click(time.Now()) {
				g.reset()
			}
		} else if row, col, ok := g.renderer.CellAt(x, y); ok {
			g.game.Reveal(row, col)
		}
	}

	// Обработка правой кнопки
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if row, col, ok := g.renderer.CellAt(x, y); ok {
			g.game.ToggleFlag(row, col)
		}
	}

	g.indicator.SetLabel(outcomeLabel(g.game.Outcome()), time.Now())
}

func (g *GameState) reset() {
	if err := g.game.Reset(); err != nil {
		g.log.WithError(err).Error("reset failed")
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	snap := g.game.Snapshot()
	g.renderer.Sync(snap)

	x, y := ebiten.CursorPosition()
	g.renderer.Draw(screen, x, y)
	g.slider.Draw(screen)
	g.resetBtn.Draw(screen, g.resetBtn.Contains(x, y))
	g.indicator.Draw(screen, outcomeColor(snap.Outcome), config.TextLightColor)

	ui.DrawTextAt(screen, g.fonts.UI, fmt.Sprintf("Mines left: %d", snap.MinesRemaining), 240, 22, config.TextLightColor)
	ui.DrawTextAt(screen, g.fonts.UI, "Time "+snap.Elapsed, 240, 74, config.TextLightColor)

	footerY := config.BoardTop + config.BoardWidth + 20
	stats := g.game.Stats
	ui.DrawTextAt(screen, g.fonts.UI,
		fmt.Sprintf("Played %d   Won %d   Lost %d", stats.Played, stats.Won, stats.Lost),
		config.BoardMargin, footerY, config.TextLightColor)
	ui.DrawTextAt(screen, g.fonts.UI,
		"LMB reveal   RMB flag   R new game",
		config.BoardMargin, footerY+30, color.Gray{Y: 150})
}

func (g *GameState) Exit() {
	g.log.Debug("exit")
}

func outcomeLabel(o session.Outcome) string {
	switch o {
	case session.Won:
		return "You won!"
	case session.Lost:
		return "Game over"
	default:
		return "Playing"
	}
}

func outcomeColor(o session.Outcome) color.Color {
	switch o {
	case session.Won:
		return config.WonColor
	case session.Lost:
		return config.LostColor
	default:
		return config.PlayingColor
	}
}
