// Package reconciler turns aggregated overlay payloads into render-ready
// frames: it selects the visible view, applies operator settings, and fires
// each animation event at most once.
package reconciler

import (
	"fmt"
	"math"

	"github.com/okian/courtside/internal/domain/overlay"
	"github.com/okian/courtside/internal/domain/view"
)

// Default side colors when the operator has not overridden them.
const (
	DefaultLeftColor  = "#0b3aa6"
	DefaultRightColor = "#c66a08"
)

// Side is one rendered half of the scoreboard after swap and overrides.
type Side struct {
	Name    string
	Color   string
	Games   int
	Points  int
	Serving bool
}

// Slate is the between-matches card.
type Slate struct {
	TournamentName string
	Subtitle       string
	LeftName       string
	RightName      string
	StartTime      string
	ClassName      string
}

// Animation is a one-shot cue attached to exactly one frame.
type Animation struct {
	Type   overlay.EventType
	Target string
}

// Frame is everything a renderer needs for one tick. It is a value: the
// reconciler never mutates a frame after returning it.
type Frame struct {
	View       view.State
	Left       Side
	Right      Side
	GameNumber int
	Tiebreak   bool
	Live       bool
	Status     string
	Clock      string
	Slate      Slate
	Animation  *Animation
	UpdatedAt  string

	// Err marks a frame carried over from the last successful poll.
	Err bool
}

// FormatClock renders a duration in seconds as mm:ss. Absent or negative
// durations render as 00:00.
func FormatClock(seconds *float64) string {
	if seconds == nil || math.IsNaN(*seconds) || math.IsInf(*seconds, 0) || *seconds < 0 {
		return "00:00"
	}
	total := int(*seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
