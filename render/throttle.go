package render

import (
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/snakearcade/engine/controller"
	"golang.org/x/time/rate"
)

// Throttle limits how often frames are drawn. Frames arriving faster than
// the limit are coalesced and only the latest is kept; a frame whose status
// differs from the last drawn one is always drawn at once. Throttle is safe
// for concurrent use.
type Throttle struct {
	mu      sync.Mutex
	canvas  Canvas
	limiter *rate.Limiter
	last    controller.Status
	drawn   bool
	pending *controller.Snapshot
	frames  int
}

// NewThrottle draws onto c at most fps times per second.
func NewThrottle(c Canvas, fps rate.Limit) *Throttle {
	return &Throttle{
		canvas:  c,
		limiter: rate.NewLimiter(fps, 1),
	}
}

// Frame offers snap for drawing.
func (t *Throttle) Frame(snap controller.Snapshot) {
	t.mu.Lock()
	defer t.mu.Unlock()

	transition := !t.drawn || snap.Status != t.last
	allowed := t.limiter.Allow()
	if !transition && !allowed {
		t.pending = &snap
		return
	}
	t.draw(snap)
}

// Flush draws the coalesced frame, if any.
func (t *Throttle) Flush() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pending != nil {
		t.draw(*t.pending)
	}
}

// Frames is the number of frames actually drawn.
func (t *Throttle) Frames() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frames
}

// Inspect runs fn while no frame is being drawn, so fn may read the canvas.
func (t *Throttle) Inspect(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn()
}

func (t *Throttle) draw(snap controller.Snapshot) {
	t.pending = nil
	t.last = snap.Status
	t.drawn = true
	t.frames++
	if err := Draw(t.canvas, snap); err != nil {
		log.WithError(err).Warn("unable to draw frame")
	}
}
