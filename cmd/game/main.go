// cmd/game/main.go
package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"go-minesweeper/internal/app"
	"go-minesweeper/internal/cli"
	"go-minesweeper/internal/config"
	"go-minesweeper/internal/state"
	"go-minesweeper/pkg/render"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func run(opts config.Options, level logrus.Level) error {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(level)

	if opts.PprofAddr != "" {
		go func() {
			logger.WithError(http.ListenAndServe(opts.PprofAddr, nil)).Warn("pprof server stopped")
		}()
	}

	cellFace, err := render.LoadFace(22)
	if err != nil {
		return fmt.Errorf("load cell font: %w", err)
	}
	uiFace, err := render.LoadFace(16)
	if err != nil {
		return fmt.Errorf("load ui font: %w", err)
	}
	fonts := state.Fonts{Cell: cellFace, UI: uiFace}

	g, err := app.NewGame(opts, logger)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	sm := state.NewStateMachine(logger) // Создаём машину состояний
	gameState := state.NewGameState(sm, g, fonts, logger)
	if opts.StartMenu {
		sm.SetState(state.NewMenuState(sm, fonts, func() state.State { return gameState }))
	} else {
		sm.SetState(gameState)
	}

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Minesweeper")
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"played": g.Stats.Played,
		"won":    g.Stats.Won,
		"lost":   g.Stats.Lost,
	}).Info("bye")
	return nil
}

func main() {
	if err := cli.NewRootCommand(run).Execute(); err != nil {
		logrus.WithError(err).Fatal("minesweeper")
	}
}
