// Package view holds the client-side view-selection state machine and the
// event watermark. Both are pure so every branch is enumerable in tests.
package view

import (
	"github.com/okian/courtside/internal/domain/overlay"
)

// State is what the overlay client shows.
type State string

// The three client states.
const (
	StateScoreboard State = "SCOREBOARD"
	StateSlate      State = "SLATE"
	StateHidden     State = "HIDDEN"
)

// Select picks the view for one poll tick.
//
// hidden always wins; scoreboard is forced or chosen by auto for a live
// match; slate is forced or chosen by auto when no live match exists; an
// unrecognized mode hides the overlay.
func Select(mode overlay.ViewMode, matchPresent, isLive bool) State {
	switch mode {
	case overlay.ViewModeHidden:
		return StateHidden
	case overlay.ViewModeScoreboard:
		return StateScoreboard
	case overlay.ViewModeSlate:
		return StateSlate
	case overlay.ViewModeAuto:
		if matchPresent && isLive {
			return StateScoreboard
		}
		return StateSlate
	default:
		return StateHidden
	}
}
