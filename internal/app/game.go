// internal/app/game.go
package app

import (
	"time"

	"github.com/sirupsen/logrus"

	"go-minesweeper/internal/board"
	"go-minesweeper/internal/config"
	"go-minesweeper/internal/event"
	"go-minesweeper/internal/session"
	"go-minesweeper/internal/utils"
	"go-minesweeper/internal/viewmodel"
)

// Game owns the current session and the settings that outlive it.
type Game struct {
	Session         *session.Session
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Stats           Stats

	mineCount int
	logger    *logrus.Logger
}

// Stats is an in-memory tally of finished sessions for this run.
type Stats struct {
	Played int
	Won    int
	Lost   int
}

// NewGame creates the controller and its first session.
func NewGame(opts config.Options, logger *logrus.Logger) (*Game, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	g := &Game{
		EventDispatcher: event.NewDispatcher(),
		Rng:             utils.NewPRNGService(opts.Seed),
		mineCount:       config.ClampMineCount(opts.MineCount),
		logger:          logger,
	}

	listener := &GameEventListener{game: g}
	g.EventDispatcher.Subscribe(event.GameWon, listener)
	g.EventDispatcher.Subscribe(event.GameLost, listener)

	logger.WithField("seed", g.Rng.Seed()).Info("random seed")
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// MineCount returns the configured mine count: the one the current session
// places on its first reveal (if it has not yet) and every later reset uses.
func (g *Game) MineCount() int {
	return g.mineCount
}

// SetMineCount clamps n to [0, GridSize²-1] and stores it. A session that
// has not placed its mines yet picks the new count up immediately; once
// mines are down it applies from the next reset. The applied value is returned.
func (g *Game) SetMineCount(n int) int {
	clamped := config.ClampMineCount(n)
	if clamped != n {
		g.logger.WithFields(logrus.Fields{"requested": n, "applied": clamped}).Debug("mine count clamped")
	}
	g.mineCount = clamped
	if g.Session != nil {
		if _, err := g.Session.SetMineCount(clamped); err != nil {
			g.logger.WithError(err).Warn("mine count rejected by session")
		}
	}
	return clamped
}

// Reset abandons the current session and starts a fresh one.
func (g *Game) Reset() error {
	if g.Session != nil {
		g.Session.Close()
	}
	s, err := session.New(session.Options{
		Size:         config.GridSize,
		MineCount:    g.mineCount,
		TickInterval: config.TickInterval,
		Rng:          g.Rng,
		Dispatcher:   g.EventDispatcher,
		Logger:       g.logger,
	})
	if err != nil {
		return err
	}
	g.Session = s
	return nil
}

// Reveal forwards a left click.
func (g *Game) Reveal(row, col int) []board.Point {
	return g.Session.Reveal(row, col)
}

// ToggleFlag forwards a right click.
func (g *Game) ToggleFlag(row, col int) bool {
	return g.Session.ToggleFlag(row, col)
}

// Update advances the session clock. deltaTime is in seconds, as the
// state machine passes it.
func (g *Game) Update(deltaTime float64) {
	g.Session.Update(time.Duration(deltaTime * float64(time.Second)))
}

// Outcome returns the state of the current session.
func (g *Game) Outcome() session.Outcome {
	return g.Session.Outcome()
}

// Snapshot returns the display of the current session.
func (g *Game) Snapshot() viewmodel.Snapshot {
	return viewmodel.NewSnapshot(g.Session)
}

// GameEventListener keeps Stats in step with finished sessions.
type GameEventListener struct {
	game *Game
}

// OnEvent implements event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.GameWon:
		l.game.Stats.Played++
		l.game.Stats.Won++
	case event.GameLost:
		l.game.Stats.Played++
		l.game.Stats.Lost++
	}
}
