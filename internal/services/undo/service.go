// Package undo implements the single-slot undo service: at most one
// pending reversible action exists at any time, and showing a new one
// silently discards the previous one without running its inverse.
package undo

import (
	"context"
	"sync"
	"time"

	"jornada/internal/observe"
)

// DefaultDuration is how long an action stays undoable before it
// auto-expires and the snackbar is asked to hide.
const DefaultDuration = 10 * time.Second

// Fn reverses a previously applied mutation. Best effort: a failed
// inverse is reported but never retried.
type Fn func(ctx context.Context) error

// Action is a pending reversible mutation shown to the user.
type Action struct {
	Description string
	undoFn      Fn
	timer       *time.Timer
}

// Service holds the single undo slot and the dismiss-request flag the
// presentation layer watches to start its exit transition.
type Service struct {
	mu         sync.Mutex
	current    *Action
	dismiss    *observe.Cell[bool]
	defaultDur time.Duration
}

// NewService creates an undo service with an empty slot.
func NewService() *Service {
	return &Service{dismiss: observe.NewCell(false), defaultDur: DefaultDuration}
}

// SetDefaultDuration overrides the expiry used when ShowUndo is called
// with a non-positive duration. Non-positive values are ignored.
func (s *Service) SetDefaultDuration(d time.Duration) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	s.defaultDur = d
	s.mu.Unlock()
}

// ShowUndo replaces any pending action with a new one and starts its
// expiry timer. The superseded action's inverse is discarded, not run.
// A non-positive duration means the service default (DefaultDuration
// unless overridden).
func (s *Service) ShowUndo(description string, undoFn Fn, duration time.Duration) {
	s.mu.Lock()
	if duration <= 0 {
		duration = s.defaultDur
	}
	s.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearLocked()

	action := &Action{Description: description, undoFn: undoFn}
	action.timer = time.AfterFunc(duration, func() { s.expire(action) })
	s.current = action
}

// Undo cancels the pending action's timer, runs its inverse, and
// requests the snackbar hide. No-op when nothing is pending. On inverse
// failure the slot is cleared anyway and the error returned.
func (s *Service) Undo(ctx context.Context) error {
	s.mu.Lock()
	action := s.current
	if action == nil {
		s.mu.Unlock()
		return nil
	}
	action.timer.Stop()
	s.mu.Unlock()

	err := action.undoFn(ctx)
	s.RequestHide()
	if err != nil {
		s.Dismiss()
		return err
	}
	return nil
}

// RequestHide signals the presentation layer to begin its exit
// transition. The pending action is kept until Dismiss.
func (s *Service) RequestHide() {
	s.dismiss.Set(true)
}

// Dismiss clears the slot and resets the dismiss-request flag. Called
// once the exit transition has finished, or when no transition runs.
func (s *Service) Dismiss() {
	s.mu.Lock()
	s.clearLocked()
	s.mu.Unlock()
	s.dismiss.Set(false)
}

// Current returns the pending action, or nil.
func (s *Service) Current() *Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// DismissRequested exposes the hide-request flag for subscription.
func (s *Service) DismissRequested() *observe.Cell[bool] {
	return s.dismiss
}

// expire fires when an action's timer runs out. The identity check
// keeps a superseded action's late timer from hiding its successor.
func (s *Service) expire(action *Action) {
	s.mu.Lock()
	if s.current != action {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	s.RequestHide()
}

func (s *Service) clearLocked() {
	if s.current != nil {
		s.current.timer.Stop()
		s.current = nil
	}
}
