package reconciler

import (
	"github.com/okian/courtside/internal/domain/model"
	"github.com/okian/courtside/internal/domain/view"
)

// Reconciler folds successive payloads into frames. It is single-goroutine
// state owned by the polling loop; the only state carried across ticks is
// the animation watermark and the last good frame.
type Reconciler struct {
	watermark view.Watermark
	last      Frame
	hasLast   bool
}

// New creates a reconciler with an empty watermark.
func New() *Reconciler {
	return &Reconciler{}
}

// Apply produces the frame for one successful poll.
func (r *Reconciler) Apply(p model.Payload) Frame {
	settings := p.Overlay.Settings

	matchPresent := p.Match != nil
	isLive := matchPresent && p.Match.IsLive

	f := Frame{
		View:      view.Select(settings.ViewMode, matchPresent, isLive),
		Live:      isLive,
		UpdatedAt: p.UpdatedAt,
		Clock:     "00:00",
	}

	if matchPresent {
		left, right := p.Match.Player1, p.Match.Player2
		if settings.Swap {
			left, right = right, left
		}

		f.Left = Side{
			Name:    override(settings.Name1, left.Name),
			Color:   override(settings.LeftColor, DefaultLeftColor),
			Games:   left.Games,
			Points:  left.Points,
			Serving: left.Serving,
		}
		f.Right = Side{
			Name:    override(settings.Name2, right.Name),
			Color:   override(settings.RightColor, DefaultRightColor),
			Games:   right.Games,
			Points:  right.Points,
			Serving: right.Serving,
		}

		f.GameNumber = p.Match.GameNumber
		f.Tiebreak = p.Match.Tiebreak
		f.Status = string(p.Match.Status)
		f.Clock = FormatClock(p.Match.DurationSeconds)

		f.Slate = Slate{
			TournamentName: deref(settings.TournamentName),
			Subtitle:       deref(settings.Subtitle),
			LeftName:       f.Left.Name,
			RightName:      f.Right.Name,
			StartTime:      p.Match.ScheduledStartTime,
			ClassName:      p.Match.ClassName,
		}
	} else {
		f.Slate = Slate{
			TournamentName: deref(settings.TournamentName),
			Subtitle:       deref(settings.Subtitle),
		}
	}

	if e := p.Overlay.Event; e != nil && r.watermark.Observe(e.At) {
		f.Animation = &Animation{Type: e.Type, Target: e.Target}
	}

	r.last = f
	r.last.Animation = nil // animations belong to exactly one frame
	r.hasLast = true
	return f
}

// Fail produces the frame for a failed poll: the last good frame with the
// error indicator raised. Before any successful poll it returns a hidden
// error frame.
func (r *Reconciler) Fail() Frame {
	if !r.hasLast {
		return Frame{View: view.StateHidden, Status: "ERROR", Clock: "00:00", Err: true}
	}
	f := r.last
	f.Status = "ERROR"
	f.Err = true
	return f
}

// LastEventAt exposes the watermark for diagnostics.
func (r *Reconciler) LastEventAt() int64 {
	return r.watermark.Last()
}

func override(v *string, fallback string) string {
	if v != nil && *v != "" {
		return *v
	}
	return fallback
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
