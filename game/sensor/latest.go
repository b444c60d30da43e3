package sensor

import (
	"context"
	"sync"
	"time"

	"hand-snake/game/types"
)

// Latest is a PointSource fed by a background producer. Poll never waits
// for the producer: it hands out the newest sample once, provided it is
// younger than maxAge, and reports no signal otherwise.
type Latest struct {
	mu     sync.Mutex
	maxAge time.Duration
	now    func() time.Time

	p    types.Point
	ok   bool
	err  error
	at   time.Time
	seen bool
}

func NewLatest(maxAge time.Duration) *Latest {
	return &Latest{maxAge: maxAge, now: time.Now}
}

// Publish stores the outcome of one frame.
func (l *Latest) Publish(p types.Point, ok bool, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.p, l.ok, l.err = p, ok, err
	l.at = l.now()
	l.seen = false
}

func (l *Latest) Poll(ctx context.Context) (types.Point, bool, error) {
	if err := ctx.Err(); err != nil {
		return types.Point{}, false, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.seen || l.at.IsZero() || l.now().Sub(l.at) > l.maxAge {
		return types.Point{}, false, nil
	}
	l.seen = true
	if l.err != nil {
		return types.Point{}, false, l.err
	}
	return l.p, l.ok, nil
}
