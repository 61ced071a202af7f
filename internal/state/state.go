// internal/state/state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	log     *logrus.Entry
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(logger *logrus.Logger) *StateMachine {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &StateMachine{log: logger.WithField("component", "state")}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.log.WithFields(logrus.Fields{
		"from": stateName(sm.current),
		"to":   stateName(newState),
	}).Debug("state change")
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

func stateName(s State) string {
	if s == nil {
		return "none"
	}
	return fmt.Sprintf("%T", s)
}
