// Package score turns the raw per-game score data into the canonical match
// state. The completion rule here is the single source of truth for counting
// won games.
package score

// Race-to-11, win-by-2 scoring format.
const (
	winningPoints = 11
	winMargin     = 2
)

// IsComplete reports whether a game with point tally (a, b) is final.
// Games may extend past 11 points until one side leads by two.
func IsComplete(a, b int) bool {
	hi, lo := a, b
	if b > a {
		hi, lo = b, a
	}
	return hi >= winningPoints && hi-lo >= winMargin
}
