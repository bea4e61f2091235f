// Package mining implements the mining simulator: a two-state machine
// (Idle, Mining) driven by a recurring timer tick. A session lasts a random
// 10–25 seconds and ends by emitting a random 1–100 TQ reward; the progress
// percentage and hash-rate readout are presentation flourishes that never
// influence the outcome.
package mining

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/torqlabs/torq-wallet/internal/common"
	"github.com/torqlabs/torq-wallet/internal/logging"
)

// State is the simulator state.
type State int

const (
	StateIdle State = iota
	StateMining
)

// Progress is the readout recomputed on every tick while mining.
type Progress struct {
	// Percent is elapsed/duration*100, clamped to 100.
	Percent float64

	// HashRate is a cosmetic display value, resampled every tick.
	HashRate float64

	// Remaining is the time left in the session, floored at zero.
	Remaining time.Duration
}

// RemainingSeconds returns the whole-second estimate shown to the user.
func (p Progress) RemainingSeconds() int {
	return int(math.Ceil(p.Remaining.Seconds()))
}

// Simulator runs at most one mining session at a time.
type Simulator struct {
	mu        sync.Mutex
	state     State
	startedAt time.Time
	duration  time.Duration
	progress  Progress
	cancel    context.CancelFunc

	tick time.Duration
	log  logging.Logger
	now  func() time.Time

	sampleDuration func() time.Duration
	sampleHashRate func() float64
	sampleReward   func() float64
}

// Option overrides a simulator default; used by tests to pin the sampled
// duration and reward.
type Option func(*Simulator)

func WithDurationSampler(fn func() time.Duration) Option {
	return func(s *Simulator) { s.sampleDuration = fn }
}

func WithRewardSampler(fn func() float64) Option {
	return func(s *Simulator) { s.sampleReward = fn }
}

func WithClock(now func() time.Time) Option {
	return func(s *Simulator) { s.now = now }
}

// New builds an idle simulator ticking at the given interval.
func New(tick time.Duration, log logging.Logger, opts ...Option) *Simulator {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	s := &Simulator{
		tick: tick,
		log:  log,
		now:  time.Now,
		sampleDuration: func() time.Duration {
			return 10*time.Second + time.Duration(rnd.Float64()*float64(15*time.Second))
		},
		sampleHashRate: func() float64 {
			return 150 + rnd.Float64()*100
		},
		sampleReward: func() float64 {
			return 1 + rnd.Float64()*99
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state.
func (s *Simulator) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Progress returns the readout from the most recent tick. Meaningful only
// while mining.
func (s *Simulator) Progress() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}

// Start transitions Idle -> Mining and begins the tick loop. It refuses to
// start for an account without a wallet address (common.ErrNoWallet) and
// while a session is already running (common.ErrAlreadyMining).
//
// onTick is invoked with the refreshed readout on every tick; onComplete is
// invoked exactly once with the sampled reward when progress reaches 100.
// A session cancelled by Stop or by ctx emits no completion.
func (s *Simulator) Start(ctx context.Context, walletAddress string, onTick func(Progress), onComplete func(reward float64)) error {
	if walletAddress == "" {
		return common.ErrNoWallet
	}

	s.mu.Lock()
	if s.state == StateMining {
		s.mu.Unlock()
		return common.ErrAlreadyMining
	}

	duration := s.sampleDuration()
	runCtx, cancel := context.WithCancel(ctx)
	s.state = StateMining
	s.startedAt = s.now()
	s.duration = duration
	s.progress = Progress{Remaining: duration}
	s.cancel = cancel
	s.mu.Unlock()

	s.log.Info(ctx, "mining session started",
		"wallet", walletAddress, "duration", duration)

	go s.run(runCtx, duration, onTick, onComplete)
	return nil
}

func (s *Simulator) run(ctx context.Context, duration time.Duration, onTick func(Progress), onComplete func(float64)) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.mu.Lock()
			s.state = StateIdle
			s.cancel = nil
			s.mu.Unlock()
			return

		case <-ticker.C:
			s.mu.Lock()
			if s.state != StateMining {
				// stopped between ticks
				s.mu.Unlock()
				return
			}
			elapsed := s.now().Sub(s.startedAt)
			percent := float64(elapsed) / float64(duration) * 100
			if percent > 100 {
				percent = 100
			}
			remaining := duration - elapsed
			if remaining < 0 {
				remaining = 0
			}
			p := Progress{
				Percent:   percent,
				HashRate:  s.sampleHashRate(),
				Remaining: remaining,
			}
			s.progress = p

			complete := percent >= 100
			if complete {
				s.state = StateIdle
				s.cancel = nil
			}
			s.mu.Unlock()

			if onTick != nil {
				onTick(p)
			}
			if complete {
				reward := s.sampleReward()
				s.log.Info(ctx, "mining session complete", "reward", reward)
				if onComplete != nil {
					onComplete(reward)
				}
				return
			}
		}
	}
}

// Stop transitions Mining -> Idle immediately. The pending completion is
// cancelled with no residual effect: no reward, no transaction. Returns
// common.ErrNotMining when no session is running.
func (s *Simulator) Stop() error {
	s.mu.Lock()
	if s.state != StateMining {
		s.mu.Unlock()
		return common.ErrNotMining
	}
	s.state = StateIdle
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	return nil
}
