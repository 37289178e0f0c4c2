// Package adaptive selects the next question's difficulty tier from a
// rolling window of recent scores.
package adaptive

import (
	"github.com/dronaai/drona-go-sdk/core"
)

// DefaultWindowSize is how many recent scores drive the tier decision.
const DefaultWindowSize = 3

// Window is a fixed-capacity FIFO of the most recent scores, oldest
// evicted first once full. It is session-scoped state: one window per
// active session, discarded at session end, never persisted.
type Window struct {
	scores   []float64
	capacity int
}

// NewWindow creates a window holding the last n scores. n <= 0 falls
// back to DefaultWindowSize.
func NewWindow(n int) *Window {
	if n <= 0 {
		n = DefaultWindowSize
	}
	return &Window{
		scores:   make([]float64, 0, n),
		capacity: n,
	}
}

// Push appends a score, evicting the oldest when the window is full.
func (w *Window) Push(score float64) {
	if len(w.scores) == w.capacity {
		copy(w.scores, w.scores[1:])
		w.scores = w.scores[:w.capacity-1]
	}
	w.scores = append(w.scores, score)
}

// Len returns how many scores the window currently holds.
func (w *Window) Len() int {
	return len(w.scores)
}

// Average returns the arithmetic mean of the window's contents. Early
// in a session the window holds fewer than capacity entries and the
// average is over whatever is present. Zero for an empty window.
func (w *Window) Average() float64 {
	if len(w.scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range w.scores {
		sum += s
	}
	return sum / float64(len(w.scores))
}

// TierFor maps an average score to a difficulty tier. Pure and total:
//
//	avg > 8       Tough
//	5 < avg <= 8  Moderate
//	avg <= 5      Easy
func TierFor(avg float64) core.Difficulty {
	switch {
	case avg > 8:
		return core.DifficultyTough
	case avg > 5:
		return core.DifficultyModerate
	default:
		return core.DifficultyEasy
	}
}

// Controller runs the rolling-window difficulty state machine for one
// session. There is no hysteresis beyond the window itself: a single
// strong or weak answer can swing the tier while the window is small,
// stabilizing as it fills.
type Controller struct {
	window *Window
}

// NewController creates a controller with a window of the given size.
func NewController(windowSize int) *Controller {
	return &Controller{window: NewWindow(windowSize)}
}

// Observe pushes a score and returns the resulting tier.
func (c *Controller) Observe(score float64) core.Difficulty {
	c.window.Push(score)
	return c.Current()
}

// Current returns the tier for the window as it stands. With no history
// yet the tier is Moderate.
func (c *Controller) Current() core.Difficulty {
	if c.window.Len() == 0 {
		return core.DifficultyModerate
	}
	return TierFor(c.window.Average())
}
