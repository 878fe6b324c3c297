// Package hearts implements the life regeneration timer. Hearts come back one
// per interval of real time, including time the program was not running.
package hearts

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Persisted keys. A timestamp of 0 means the timer is not running.
const (
	KeyLastRefill  = "hearts.last_refill_ms"
	KeySavedHearts = "hearts.saved"
)

// Regenerator restores hearts over wall-clock time. Its only state lives in
// Prefs: the time of the last refill and the heart count at that moment.
type Regenerator struct {
	prefs     Prefs
	clock     Clock
	maxHearts int
	interval  time.Duration
	logger    *log.Logger
}

// NewRegenerator creates a timer over prefs. A nil clock means the system
// clock and a nil logger means log.Default().
func NewRegenerator(prefs Prefs, clock Clock, maxHearts int, interval time.Duration, logger *log.Logger) *Regenerator {
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Regenerator{
		prefs:     prefs,
		clock:     clock,
		maxHearts: maxHearts,
		interval:  interval,
		logger:    logger,
	}
}

// MaxHearts returns the cap.
func (r *Regenerator) MaxHearts() int {
	return r.maxHearts
}

// Interval returns the time needed for one heart.
func (r *Regenerator) Interval() time.Duration {
	return r.interval
}

// Running reports whether a refill timestamp is persisted.
func (r *Regenerator) Running() bool {
	return r.lastRefill() != 0
}

// Update reconciles the persisted timer with the clock and returns the new
// heart count. Every whole interval elapsed since the last refill grants one
// heart, so a long absence is caught up in a single call. The timestamp moves
// forward by whole intervals only, keeping partial progress.
func (r *Regenerator) Update(current int) int {
	if current >= r.maxHearts {
		r.Clear()
		return current
	}

	last := r.lastRefill()
	if last == 0 {
		r.StartTimer(current)
		return current
	}
	if r.interval <= 0 {
		return current
	}

	elapsed := r.elapsedSince(last)
	add := int(elapsed / r.interval)
	if add <= 0 {
		return current
	}

	saved := r.prefs.GetInt(KeySavedHearts, current)
	hearts := min(saved+add, r.maxHearts)
	if hearts >= r.maxHearts {
		r.Clear()
	} else {
		next := time.UnixMilli(last).Add(time.Duration(add) * r.interval)
		r.prefs.PutLong(KeyLastRefill, next.UnixMilli())
		r.prefs.PutInt(KeySavedHearts, hearts)
	}
	r.logger.Info("hearts restored", "added", hearts-saved, "hearts", hearts)
	return hearts
}

// StartTimer arms the timer now. It does nothing when current is already full.
func (r *Regenerator) StartTimer(current int) {
	if current >= r.maxHearts {
		return
	}
	r.prefs.PutLong(KeyLastRefill, r.clock.Now().UnixMilli())
	r.prefs.PutInt(KeySavedHearts, current)
	r.logger.Debug("heart timer started", "hearts", current)
}

// RecordHearts updates the saved heart count of a running timer without
// touching its timestamp. It arms the timer when none is running.
func (r *Regenerator) RecordHearts(current int) {
	if current >= r.maxHearts {
		r.Clear()
		return
	}
	if !r.Running() {
		r.StartTimer(current)
		return
	}
	r.prefs.PutInt(KeySavedHearts, current)
}

// Clear stops the timer.
func (r *Regenerator) Clear() {
	if r.Running() {
		r.logger.Debug("heart timer cleared")
	}
	r.prefs.Remove(KeyLastRefill)
	r.prefs.Remove(KeySavedHearts)
}

// TimeUntilNext returns how long until the next heart. It is 0 when full, when
// no timer runs, or exactly on an interval boundary.
func (r *Regenerator) TimeUntilNext(current int) time.Duration {
	if current >= r.maxHearts {
		return 0
	}
	last := r.lastRefill()
	if last == 0 || r.interval <= 0 {
		return 0
	}
	left := r.interval - r.elapsedSince(last)%r.interval
	if left == r.interval {
		return 0
	}
	return left
}

func (r *Regenerator) lastRefill() int64 {
	return r.prefs.GetLong(KeyLastRefill, 0)
}

// elapsedSince returns the time since the unix-millis timestamp. A clock that
// went backwards counts as no time passed.
func (r *Regenerator) elapsedSince(ms int64) time.Duration {
	elapsed := r.clock.Now().Sub(time.UnixMilli(ms))
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// FormatCountdown renders d as mm:ss, truncated to whole seconds.
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
