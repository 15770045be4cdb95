package session

import (
	"sync"
	"time"
)

// restTimer is the cancellable one-second tick behind the resting sub-state.
// The engine holds the only reference able to cancel it, and every tick
// re-checks ownership under the engine lock, so a superseded timer can never
// decrement the countdown after a new one has been started.
type restTimer struct {
	stop chan struct{}
	once sync.Once
}

func (t *restTimer) cancel() {
	t.once.Do(func() { close(t.stop) })
}

// startRestLocked enters the resting sub-state and arms a fresh timer,
// cancelling any outstanding one first. Caller must hold e.mu.
func (e *Engine) startRestLocked(seconds int) {
	e.stopRestLocked()
	e.resting = true
	e.restRemaining = seconds

	t := &restTimer{stop: make(chan struct{})}
	e.timer = t
	go e.runTimer(t)
}

// stopRestLocked deterministically leaves the resting sub-state. Caller must
// hold e.mu.
func (e *Engine) stopRestLocked() {
	if e.timer != nil {
		e.timer.cancel()
		e.timer = nil
	}
	e.resting = false
	e.restRemaining = 0
}

func (e *Engine) runTimer(t *restTimer) {
	ticker := time.NewTicker(e.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			if e.tickOnce(t) {
				return
			}
		}
	}
}

// tickOnce decrements the countdown by one second. Returns true once this
// timer should stop, either because the rest completed or because it no
// longer owns the resting state.
func (e *Engine) tickOnce(t *restTimer) bool {
	e.mu.Lock()
	if e.timer != t || !e.resting {
		e.mu.Unlock()
		return true
	}

	e.restRemaining--
	remaining := e.restRemaining
	onTick := e.onRestTick

	var onComplete func()
	done := remaining <= 0
	if done {
		e.resting = false
		e.restRemaining = 0
		e.timer = nil
		onComplete = e.onRestComplete
	}
	e.mu.Unlock()

	if onTick != nil {
		onTick(remaining)
	}
	if onComplete != nil {
		onComplete()
	}
	return done
}

// AddRestTime extends the current countdown without restarting the tick.
func (e *Engine) AddRestTime(seconds int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseActive {
		return ErrNotActive
	}
	if e.resting {
		e.restRemaining += seconds
	}
	return nil
}

// SkipRest force-stops the timer and exits resting immediately.
func (e *Engine) SkipRest() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseActive {
		return ErrNotActive
	}
	e.stopRestLocked()
	return nil
}
