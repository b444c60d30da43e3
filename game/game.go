package game

import (
	"context"
	"log/slog"
	"time"

	"hand-snake/game/manager"
	"hand-snake/game/sensor"

	"github.com/pkg/errors"
)

// State is the loop state. Stopped is terminal.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Renderer draws one snapshot per tick.
type Renderer interface {
	Draw(snap Snapshot) error
}

// AudioSink plays the eat sound. Failures are ignored by the loop.
type AudioSink interface {
	PlayEatSound() error
}

// Terminator reports a pending quit request from the host window.
type Terminator interface {
	ShouldQuit() bool
}

// EventPumper is implemented by terminators whose quit state is only
// refreshed while frames are drawn. Pump is called on ticks that draw
// nothing.
type EventPumper interface {
	Pump()
}

// Pacer blocks until the current tick has lasted d.
type Pacer interface {
	Wait(ctx context.Context, d time.Duration)
}

type Game struct {
	session  *Session
	source   sensor.PointSource
	renderer Renderer
	audio    AudioSink
	term     Terminator
	pacer    Pacer
	logger   *slog.Logger

	state   State
	ticks   uint64
	skipped uint64
}

type Option func(*Game)

// WithAudio sets the eat sound sink. A nil sink plays nothing.
func WithAudio(a AudioSink) Option {
	return func(g *Game) { g.audio = a }
}

func WithTerminator(t Terminator) Option {
	return func(g *Game) { g.term = t }
}

func WithPacer(p Pacer) Option {
	return func(g *Game) { g.pacer = p }
}

func WithLogger(l *slog.Logger) Option {
	return func(g *Game) { g.logger = l }
}

func NewGame(session *Session, source sensor.PointSource, renderer Renderer, opts ...Option) *Game {
	g := &Game{
		session:  session,
		source:   source,
		renderer: renderer,
		pacer:    NewSleepPacer(),
		logger:   slog.Default(),
		state:    Running,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Game) State() State {
	return g.state
}

// Run ticks until the terminator or ctx asks to stop.
func (g *Game) Run(ctx context.Context) error {
	g.logger.Info("session started", "session", g.session.UUID)
	for g.Tick(ctx) {
	}
	g.logger.Info("session ended",
		"session", g.session.UUID,
		"ticks", g.ticks,
		"skipped", g.skipped,
		"high_score", g.session.HighScore(),
		"runs", g.session.ScoreHistory(),
	)
	return nil
}

// Tick runs one loop iteration and reports whether the loop is still running.
func (g *Game) Tick(ctx context.Context) bool {
	if g.state == Stopped {
		return false
	}
	if g.quitRequested(ctx) {
		g.state = Stopped
		return false
	}

	raw, ok, err := g.source.Poll(ctx)
	if err != nil {
		if ctx.Err() != nil {
			g.state = Stopped
			return false
		}
		g.skipped++
		if errors.Is(err, sensor.ErrCaptureFailed) {
			g.logger.Debug("frame skipped", "err", err, "skipped", g.skipped)
		} else {
			g.logger.Warn("point source error", "err", err, "skipped", g.skipped)
		}
		if p, ok := g.term.(EventPumper); ok {
			p.Pump()
		}
		g.pacer.Wait(ctx, manager.TickInterval(g.session.Score()))
		return true
	}

	res := g.session.Step(raw, ok)
	if res.Ate {
		g.logger.Debug("food eaten", "score", g.session.Score())
		g.playEatSound()
	}
	if res.Reset {
		g.logger.Info("self collision, run reset", "high_score", g.session.HighScore())
	}

	if err := g.renderer.Draw(g.session.Snapshot()); err != nil {
		g.logger.Debug("draw failed", "err", err)
	}

	g.ticks++
	g.pacer.Wait(ctx, manager.TickInterval(g.session.Score()))
	return true
}

func (g *Game) quitRequested(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}
	return g.term != nil && g.term.ShouldQuit()
}

func (g *Game) playEatSound() {
	if g.audio == nil {
		return
	}
	if err := g.audio.PlayEatSound(); err != nil {
		g.logger.Debug("eat sound failed", "err", err)
	}
}

// SleepPacer sleeps away whatever is left of the tick, measured from the
// previous Wait.
type SleepPacer struct {
	last time.Time
	now  func() time.Time
}

func NewSleepPacer() *SleepPacer {
	return &SleepPacer{now: time.Now}
}

func (p *SleepPacer) Wait(ctx context.Context, d time.Duration) {
	if !p.last.IsZero() {
		if remaining := d - p.now().Sub(p.last); remaining > 0 {
			timer := time.NewTimer(remaining)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
			}
		}
	}
	p.last = p.now()
}
