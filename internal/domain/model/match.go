// Package model contains the canonical types this service guarantees to its
// consumers.
package model

// Status is the normalized match status. Known upstream actions map onto
// the LIVE/PAUSE constants; anything else passes through verbatim.
type Status string

// Normalized statuses.
const (
	StatusLive    Status = "LIVE"
	StatusPause   Status = "PAUSE"
	StatusNotLive Status = "NOT_LIVE"
)

// PointsSource records where the current game's points came from, for
// diagnosability.
type PointsSource string

// Points provenance values.
const (
	PointsDetailedLast PointsSource = "DETAILED_LAST"
	PointsTopLevel     PointsSource = "TOP_LEVEL"
)

// PlayerState is one side of the scoreboard.
type PlayerState struct {
	Name    string `json:"name"`
	Games   int    `json:"games"`
	Points  int    `json:"points"`
	Serving bool   `json:"serving"`
}

// MatchState is the canonical scoreboard state derived fresh on every poll.
// A nil *MatchState means neither a live nor an upcoming match exists;
// callers must branch on presence, not on zero values.
type MatchState struct {
	IsLive          bool         `json:"isLive"`
	Status          Status       `json:"status"`
	DurationSeconds *float64     `json:"durationSeconds,omitempty"`
	GameNumber      int          `json:"gameNumber"`
	GameComplete    bool         `json:"gameComplete"`
	PointsSource    PointsSource `json:"pointsSource"`
	Tiebreak        bool         `json:"tiebreak"`
	Player1         PlayerState  `json:"player1"`
	Player2         PlayerState  `json:"player2"`

	// Preview fields, set when no match is live but a next one is known.
	ScheduledStartTime string `json:"scheduledStartTime,omitempty"`
	ClassName          string `json:"className,omitempty"`
}
