// internal/config/config.go
package config

import (
	"image/color"
	"time"

	"golang.org/x/image/colornames"
)

const (
	GridSize         = 10
	DefaultMineCount = 10
	MaxMineCount     = GridSize*GridSize - 1

	// One clock tick; the timer readout has millisecond resolution.
	TickInterval = 10 * time.Millisecond
	MaxDeltaTime = 0.06

	CellSize    = 40
	CellGap     = 2
	BoardMargin = 30
	BoardTop    = 110
	BoardWidth  = GridSize*CellSize + (GridSize-1)*CellGap

	ScreenWidth  = BoardWidth + 2*BoardMargin
	ScreenHeight = BoardTop + BoardWidth + 90

	ClickCooldown = 150 // ms, for the reset button

	ResetButtonWidth  = 90
	ResetButtonHeight = 30

	SliderHeight     = 10
	SliderKnobRadius = 9.0

	IndicatorRadius = 14.0
	StrokeWidth     = 2.0
)

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	HiddenCellColor   = color.RGBA{75, 85, 99, 255}    // bg-gray-600
	RevealedCellColor = color.RGBA{209, 213, 219, 255} // bg-gray-300
	MineCellColor     = color.RGBA{239, 68, 68, 255}   // bg-red-500
	FlagColor         = colornames.Orangered
	MineColor         = colornames.Black
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}
	ButtonColor       = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor  = color.RGBA{100, 160, 210, 230}
	SliderTrackColor  = color.RGBA{70, 100, 120, 220}
	SliderKnobColor   = colornames.Gold
	PlayingColor      = color.RGBA{70, 130, 180, 220}
	WonColor          = color.RGBA{50, 205, 50, 255}
	LostColor         = color.RGBA{220, 60, 60, 220}

	// Adjacent-count digit colors, index = count.
	NumberColors = []color.Color{
		TextDarkColor,
		colornames.Blue,
		colornames.Green,
		colornames.Red,
		colornames.Navy,
		colornames.Maroon,
		colornames.Teal,
		colornames.Black,
		colornames.Dimgray,
	}
)
