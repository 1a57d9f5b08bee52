package view

// Watermark remembers the highest event timestamp already animated, so a cue
// observed on several polls (the store-side delete is asynchronous) plays at
// most once. Not safe for concurrent use; the polling loop is single-threaded.
type Watermark struct {
	last int64
}

// Observe reports whether the event at the given timestamp should play, and
// advances the mark when it does.
func (w *Watermark) Observe(at int64) bool {
	if at <= w.last {
		return false
	}
	w.last = at
	return true
}

// Last returns the highest timestamp observed so far.
func (w *Watermark) Last() int64 {
	return w.last
}
