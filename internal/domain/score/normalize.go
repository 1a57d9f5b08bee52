package score

import (
	"strings"

	"github.com/okian/courtside/internal/domain/feed"
	"github.com/okian/courtside/internal/domain/model"
)

// Fallback display names when the feed carries no usable participant names.
const (
	fallbackName1 = "Player 1"
	fallbackName2 = "Player 2"
)

// Normalize derives the canonical MatchState from the raw upstream document.
// It is a pure function of its input: re-normalizing the same document
// always yields the same state.
//
// The upstream feed does not separate finished games from the one being
// played; the tail of the ordered detailedResult sequence is treated as the
// current game and every earlier entry that satisfies IsComplete counts as
// a won game. Keep that heuristic inside this package so it can be swapped
// if the provider clarifies its schema.
func Normalize(root feed.Doc) *model.MatchState {
	live := root.Object("liveMatch")
	base := live.Object("base")
	state := live.Object("state")

	if base == nil || state == nil {
		return normalizePreview(root)
	}

	p1 := base.First("firstParticipant")
	p2 := base.First("secondParticipant")

	sc := state.Object("score")
	detailed := sc.Seq("detailedResult")

	games1, games2 := countGames(detailed)
	points1, points2, gameNumber, complete, source := currentGame(sc, detailed)

	serving1 := state.Object("serve").Flag("isFirstParticipantServing")

	m := &model.MatchState{
		IsLive:       true,
		Status:       normalizeStatus(state.Text("matchAction")),
		GameNumber:   gameNumber,
		GameComplete: complete,
		PointsSource: source,
		Tiebreak:     sc.Flag("isTieBreak"),
		Player1: model.PlayerState{
			Name:    nameOr(p1, fallbackName1),
			Games:   games1,
			Points:  points1,
			Serving: serving1,
		},
		Player2: model.PlayerState{
			Name:    nameOr(p2, fallbackName2),
			Games:   games2,
			Points:  points2,
			Serving: !serving1,
		},
	}

	if d, ok := state.NumberOK("matchTime"); ok && d >= 0 {
		m.DurationSeconds = &d
	}

	return m
}

// normalizePreview synthesizes the slate state from a next or previous match
// reference. Returns nil when no reference exists at all.
func normalizePreview(root feed.Doc) *model.MatchState {
	next := root.Object("nextMatch")
	if next == nil {
		next = root.Object("previousMatch")
	}
	if next == nil {
		return nil
	}

	return &model.MatchState{
		IsLive:             false,
		Status:             model.StatusNotLive,
		GameNumber:         1,
		PointsSource:       model.PointsTopLevel,
		Player1:            model.PlayerState{Name: nameOr(next.First("firstParticipant"), fallbackName1)},
		Player2:            model.PlayerState{Name: nameOr(next.First("secondParticipant"), fallbackName2)},
		ScheduledStartTime: next.Text("startTime"),
		ClassName:          next.Text("className"),
	}
}

// countGames folds the per-game sequence into won-game tallies. Only entries
// with two valid numeric scores satisfying IsComplete contribute; the side
// with the higher score takes the win.
func countGames(detailed []any) (g1, g2 int) {
	for _, v := range detailed {
		entry := feed.AsDoc(v)
		a, okA := entry.NumberOK("firstParticipantScore")
		b, okB := entry.NumberOK("secondParticipantScore")
		if !okA || !okB || !IsComplete(int(a), int(b)) {
			continue
		}
		if a > b {
			g1++
		} else {
			g2++
		}
	}
	return g1, g2
}

// currentGame picks the in-focus game. The last detailedResult entry is
// authoritative when the sequence is non-empty; otherwise the top-level
// score fields stand in.
func currentGame(sc feed.Doc, detailed []any) (p1, p2, gameNumber int, complete bool, source model.PointsSource) {
	if len(detailed) > 0 {
		entry := feed.AsDoc(detailed[len(detailed)-1])
		a, okA := entry.NumberOK("firstParticipantScore")
		b, okB := entry.NumberOK("secondParticipantScore")
		p1, p2 = int(a), int(b)
		complete = okA && okB && IsComplete(p1, p2)
		source = model.PointsDetailedLast

		gameNumber = int(entry.Number("index", 0))
		if gameNumber < 1 {
			gameNumber = int(sc.Number("index", 0))
		}
		if gameNumber < 1 {
			gameNumber = len(detailed)
		}
		if gameNumber < 1 {
			gameNumber = 1
		}
		return p1, p2, gameNumber, complete, source
	}

	p1 = int(sc.Number("firstParticipantScore", 0))
	p2 = int(sc.Number("secondParticipantScore", 0))
	complete = IsComplete(p1, p2)
	source = model.PointsTopLevel

	gameNumber = int(sc.Number("index", 0))
	if gameNumber < 1 {
		gameNumber = 1
	}
	return p1, p2, gameNumber, complete, source
}

// normalizeStatus maps known upstream match actions onto the canonical
// statuses and passes anything else through verbatim.
func normalizeStatus(action string) model.Status {
	switch strings.ToLower(action) {
	case "", "live":
		return model.StatusLive
	case "pause", "paused":
		return model.StatusPause
	default:
		return model.Status(action)
	}
}

func nameOr(p feed.Doc, fallback string) string {
	if name := feed.FullName(p); name != "" {
		return name
	}
	return fallback
}
