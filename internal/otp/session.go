package otp

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-otp-keeper/models"
)

// DefaultTick is the countdown refresh period.
const DefaultTick = 100 * time.Millisecond

// Clock returns the current time. Tests inject a controllable one.
type Clock func() time.Time

// Session keeps the codes of one secret up to date. It owns two timers:
// a countdown ticker that re-emits the window with a fresh SecondsLeft, and
// a boundary timer aligned to the next 30-second step that recomputes the
// codes. Either path recomputes as soon as it sees the step counter change,
// so a tick delayed past one or more boundaries (e.g. after system sleep)
// still produces the right codes.
//
// Start and Stop may be called from any goroutine. After Stop returns no
// further windows are emitted.
type Session struct {
	engine *Engine
	tick   time.Duration
	now    Clock
	emit   func(models.CodeWindow)

	// lifecycle serializes Start and Stop so a restart is atomic
	lifecycle sync.Mutex

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	current models.CodeWindow
	secret  string
}

// NewSession creates an idle Session that reports windows to emit. emit is
// called from the session goroutines and must not block.
func NewSession(engine *Engine, tick time.Duration, now Clock, emit func(models.CodeWindow)) *Session {
	if tick <= 0 {
		tick = DefaultTick
	}
	if now == nil {
		now = time.Now
	}
	return &Session{
		engine: engine,
		tick:   tick,
		now:    now,
		emit:   emit,
	}
}

// Start stops the timers of a previous secret, waits for them to exit, then
// emits the window of secret right away and starts new timers. The timers
// end when ctx is cancelled or Stop is called.
func (s *Session) Start(ctx context.Context, accountID, secret string) {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	s.stop()

	runCtx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.cancel = cancel
	s.secret = secret
	s.current = s.engine.Window(accountID, secret, s.now())
	s.emit(s.current)
	s.mu.Unlock()

	s.wg.Add(2)
	go s.countdown(runCtx)
	go s.boundary(runCtx)
}

// Stop cancels both timers and blocks until they have exited. Safe to call
// on an idle session.
func (s *Session) Stop() {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	s.stop()
}

func (s *Session) stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// Current returns the last emitted window.
func (s *Session) Current() models.CodeWindow {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

func (s *Session) countdown(ctx context.Context) {
	defer s.wg.Done()

	t := time.NewTicker(s.tick)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.refresh(ctx, false)
		}
	}
}

func (s *Session) boundary(ctx context.Context) {
	defer s.wg.Done()

	t := time.NewTimer(UntilNextStep(s.now()))
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.refresh(ctx, true)
			t.Reset(UntilNextStep(s.now()))
		}
	}
}

// refresh recomputes the codes when the step counter moved and otherwise
// updates the countdown. A countdown value that did not change is only
// re-emitted when force is set.
func (s *Session) refresh(ctx context.Context, force bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ctx.Err() != nil {
		return
	}

	now := s.now()
	epoch := now.Unix()

	if Counter(epoch) != s.current.Counter {
		s.current = s.engine.Window(s.current.AccountID, s.secret, now)
		s.emit(s.current)
		return
	}

	left := SecondsLeft(epoch)
	if left == s.current.SecondsLeft && !force {
		return
	}
	s.current.SecondsLeft = left
	s.emit(s.current)
}
