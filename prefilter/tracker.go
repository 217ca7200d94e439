package prefilter

// Tracker wraps a Prefilter and measures how much text its finds let the
// caller skip.
//
// Each Find counts the bytes it searched. The caller credits the bytes a find
// let it jump over with Skipped. Past the warmup, the ratio of skipped to
// searched bytes is checked at a fixed interval; when it drops below the
// minimum, pieces occur so densely that searching for them only adds work,
// and the tracker retires the prefilter for good.
//
// Example usage:
//
//	tracker := prefilter.NewTracker(pf)
//	for pos < len(haystack) {
//	    next := tracker.Find(haystack, pos)
//	    if next < 0 {
//	        if tracker.IsActive() {
//	            break // no piece left
//	        }
//	        next = pos // retired, scan everything
//	    }
//	    if jump := next - window; jump > pos {
//	        tracker.Skipped(jump - pos)
//	        pos = jump
//	    }
//	    pos = scan(haystack, pos)
//	}
type Tracker struct {
	inner Prefilter

	searched uint64 // bytes examined by Find
	skipped  uint64 // bytes credited by Skipped

	checkInterval  uint64
	minSkipRatio   float64
	warmup         uint64
	lastCheckpoint uint64

	active bool
}

// TrackerConfig holds configuration for the skip tracker.
type TrackerConfig struct {
	// CheckInterval is how often to check the skip ratio, in searched bytes.
	// Default: 256
	CheckInterval uint64

	// MinSkipRatio is the minimum acceptable ratio of skipped to searched
	// bytes. Below it the prefilter is retired.
	// Default: 0.1
	MinSkipRatio float64

	// Warmup is the number of bytes to search before the first check.
	// Default: 1024
	Warmup uint64
}

// DefaultTrackerConfig returns the default tracker configuration.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		CheckInterval: 256,
		MinSkipRatio:  0.1,
		Warmup:        1024,
	}
}

// NewTracker creates a new tracker for the given prefilter with default config.
//
// Returns nil if the inner prefilter is nil.
func NewTracker(inner Prefilter) *Tracker {
	return NewTrackerWithConfig(inner, DefaultTrackerConfig())
}

// NewTrackerWithConfig creates a new tracker with custom configuration.
//
// Returns nil if the inner prefilter is nil.
func NewTrackerWithConfig(inner Prefilter, config TrackerConfig) *Tracker {
	if inner == nil {
		return nil
	}

	return &Tracker{
		inner:         inner,
		checkInterval: config.CheckInterval,
		minSkipRatio:  config.MinSkipRatio,
		warmup:        config.Warmup,
		active:        true,
	}
}

// Find returns the start of the next piece at or after start, or -1 if there
// is none or the prefilter is retired.
//
// Callers must check IsActive before treating -1 as "no piece".
func (t *Tracker) Find(haystack []byte, start int) int {
	if !t.active {
		return -1
	}

	pos := t.inner.Find(haystack, start)
	if pos >= 0 {
		t.searched += uint64(pos - start)
	} else if start < len(haystack) {
		t.searched += uint64(len(haystack) - start)
	}
	t.check()
	return pos
}

// Skipped credits n bytes the last find let the caller jump over.
func (t *Tracker) Skipped(n int) {
	if n > 0 {
		t.skipped += uint64(n)
	}
}

// IsActive returns true if the prefilter is still being used.
func (t *Tracker) IsActive() bool {
	return t.active
}

// Stats returns the current tracking statistics.
func (t *Tracker) Stats() (searched, skipped uint64, ratio float64, active bool) {
	searched = t.searched
	skipped = t.skipped
	if searched > 0 {
		ratio = float64(skipped) / float64(searched)
	}
	active = t.active
	return
}

// Inner returns the underlying prefilter.
func (t *Tracker) Inner() Prefilter {
	return t.inner
}

// check retires the prefilter when it skips too little.
func (t *Tracker) check() {
	if t.searched < t.warmup {
		return
	}

	if t.searched-t.lastCheckpoint < t.checkInterval {
		return
	}
	t.lastCheckpoint = t.searched

	if float64(t.skipped)/float64(t.searched) < t.minSkipRatio {
		t.active = false
	}
}
