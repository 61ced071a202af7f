// internal/session/session.go
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"go-minesweeper/internal/board"
	"go-minesweeper/internal/clock"
	"go-minesweeper/internal/config"
	"go-minesweeper/internal/event"
	"go-minesweeper/internal/utils"
)

var ErrInvalidMineCount = errors.New("mine count out of range")

// Options configures a new session. Zero values fall back to the game defaults.
type Options struct {
	Size         int
	MineCount    int
	TickInterval time.Duration
	Rng          board.Sampler
	Dispatcher   *event.Dispatcher
	Logger       *logrus.Logger
}

// Session is one game from a fresh grid to a win or a loss.
// It is replaced wholesale on reset, never recycled.
type Session struct {
	id            uuid.UUID
	board         *board.Board
	mineCount     int
	outcome       Outcome
	firstMoveMade bool
	detonated     *board.Point
	clock         *clock.Clock
	rng           board.Sampler
	dispatcher    *event.Dispatcher
	log           *logrus.Entry
}

// New creates a session with an empty grid and starts its clock.
func New(opts Options) (*Session, error) {
	if opts.Size == 0 {
		opts.Size = config.GridSize
	}
	if opts.TickInterval == 0 {
		opts.TickInterval = config.TickInterval
	}
	b, err := board.New(opts.Size)
	if err != nil {
		return nil, err
	}
	if opts.MineCount < 0 || opts.MineCount > opts.Size*opts.Size-1 {
		return nil, fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidMineCount, opts.MineCount, opts.Size*opts.Size-1)
	}
	if opts.Rng == nil {
		opts.Rng = utils.NewPRNGService(0)
	}
	if opts.Dispatcher == nil {
		opts.Dispatcher = event.NewDispatcher()
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	id := uuid.New()
	s := &Session{
		id:         id,
		board:      b,
		mineCount:  opts.MineCount,
		outcome:    InProgress,
		clock:      clock.New(opts.TickInterval),
		rng:        opts.Rng,
		dispatcher: opts.Dispatcher,
		log:        opts.Logger.WithField("session", id.String()),
	}
	s.dispatcher.Subscribe(event.GameWon, s.clock)
	s.dispatcher.Subscribe(event.GameLost, s.clock)
	s.clock.Start()

	s.log.WithFields(logrus.Fields{
		"size":  opts.Size,
		"mines": opts.MineCount,
	}).Info("session started")
	s.dispatcher.Dispatch(event.Event{Type: event.SessionStarted, Data: s.id.String()})
	return s, nil
}

// Close detaches the session's clock from the dispatcher.
func (s *Session) Close() {
	s.dispatcher.Unsubscribe(event.GameWon, s.clock)
	s.dispatcher.Unsubscribe(event.GameLost, s.clock)
	s.clock.Stop()
}

// ID returns the session identifier used in logs and events.
func (s *Session) ID() string {
	return s.id.String()
}

// Board exposes the grid for rendering. Callers must not mutate it.
func (s *Session) Board() *board.Board {
	return s.board
}

func (s *Session) Outcome() Outcome {
	return s.outcome
}

func (s *Session) MineCount() int {
	return s.mineCount
}

// SetMineCount changes the number of mines the first reveal will place.
// It returns false once mines are placed or the game is over, and an error
// for a count outside [0, size²-1].
func (s *Session) SetMineCount(n int) (bool, error) {
	if limit := s.board.Size()*s.board.Size() - 1; n < 0 || n > limit {
		return false, fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidMineCount, n, limit)
	}
	if s.firstMoveMade || s.outcome.Terminal() {
		return false, nil
	}
	if n != s.mineCount {
		s.log.WithFields(logrus.Fields{"from": s.mineCount, "to": n}).Debug("mine count changed")
		s.mineCount = n
	}
	return true, nil
}

func (s *Session) FirstMoveMade() bool {
	return s.firstMoveMade
}

func (s *Session) Clock() *clock.Clock {
	return s.clock
}

func (s *Session) FlagsPlaced() int {
	return s.board.FlagCount()
}

// MinesRemaining is the configured mine count minus placed flags. It goes
// negative when the player over-flags.
func (s *Session) MinesRemaining() int {
	return s.mineCount - s.board.FlagCount()
}

// Detonated returns the mine that ended the game, if any.
func (s *Session) Detonated() (board.Point, bool) {
	if s.detonated == nil {
		return board.Point{}, false
	}
	return *s.detonated, true
}

// Update advances the clock by one frame.
func (s *Session) Update(dt time.Duration) {
	s.clock.Advance(dt)
}

// Reveal opens (row, col) and returns the cells that were opened.
// The first reveal of a session places the mines around it.
func (s *Session) Reveal(row, col int) []board.Point {
	fields := logrus.Fields{"row": row, "col": col}
	if s.outcome.Terminal() {
		s.log.WithFields(fields).Debug("reveal ignored: game over")
		return nil
	}
	if !s.board.InBounds(row, col) {
		s.log.WithFields(fields).Debug("reveal ignored: out of bounds")
		return nil
	}
	if c := s.board.Cell(row, col); c.Revealed || c.Flagged {
		s.log.WithFields(fields).Debug("reveal ignored: cell revealed or flagged")
		return nil
	}

	if !s.firstMoveMade {
		if err := s.board.PlaceMines(s.mineCount, board.Point{Row: row, Col: col}, s.rng); err != nil {
			s.log.WithError(err).Error("mine placement failed")
			return nil
		}
		s.firstMoveMade = true
		s.log.WithFields(fields).WithField("mines", s.mineCount).Debug("mines placed")
	}

	revealed, hitMine := s.board.Reveal(row, col)
	s.dispatchRevealed(revealed)

	if hitMine {
		s.detonated = &board.Point{Row: row, Col: col}
		s.finish(Lost, row, col)
		return revealed
	}
	s.log.WithFields(fields).WithField("revealed", len(revealed)).Debug("cells revealed")
	s.evaluateWin(row, col)
	return revealed
}

// ToggleFlag flips the flag on a hidden cell. It reports whether anything changed.
func (s *Session) ToggleFlag(row, col int) bool {
	if s.outcome.Terminal() {
		return false
	}
	flagged, ok := s.board.ToggleFlag(row, col)
	if !ok {
		return false
	}
	s.dispatcher.Dispatch(event.Event{
		Type: event.FlagToggled,
		Data: event.FlagData{SessionID: s.ID(), Row: row, Col: col, Flagged: flagged},
	})
	s.evaluateWin(row, col)
	return true
}

// evaluateWin ends the game when the flags cover exactly the mines.
// Before the first reveal there are no mines to match, so it never fires.
func (s *Session) evaluateWin(row, col int) bool {
	if s.outcome.Terminal() || !s.board.MinesPlaced() {
		return false
	}
	if !s.board.FlagsMatchMines() {
		return false
	}
	s.finish(Won, row, col)
	return true
}

func (s *Session) finish(outcome Outcome, row, col int) {
	s.outcome = outcome
	typ := event.GameWon
	if outcome == Lost {
		typ = event.GameLost
	}
	s.dispatcher.Dispatch(event.Event{
		Type: typ,
		Data: event.OutcomeData{SessionID: s.ID(), Row: row, Col: col},
	})
	s.log.WithFields(logrus.Fields{
		"outcome": outcome.String(),
		"elapsed": s.clock.Format(),
		"row":     row,
		"col":     col,
	}).Info("game over")
}

func (s *Session) dispatchRevealed(points []board.Point) {
	if len(points) == 0 {
		return
	}
	data := event.RevealedData{
		SessionID: s.ID(),
		Rows:      make([]int, len(points)),
		Cols:      make([]int, len(points)),
	}
	for i, p := range points {
		data.Rows[i] = p.Row
		data.Cols[i] = p.Col
	}
	s.dispatcher.Dispatch(event.Event{Type: event.CellsRevealed, Data: data})
}
