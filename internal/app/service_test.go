package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/okian/courtside/internal/adapters/repository"
	service "github.com/okian/courtside/internal/app"
	"github.com/okian/courtside/internal/domain/feed"
	"github.com/okian/courtside/internal/domain/overlay"
	"github.com/okian/courtside/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

// fakeFetcher serves a canned document or a canned error.
type fakeFetcher struct {
	doc feed.Doc
	err error
}

func (f *fakeFetcher) Scoreboard(ctx context.Context, courtID string) (feed.Doc, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.doc, nil
}

func liveFeed() feed.Doc {
	return feed.Doc{
		"details": map[string]any{"courtName": "Court 1"},
		"liveMatch": map[string]any{
			"base": map[string]any{
				"firstParticipant":  []any{map[string]any{"firstName": "Anna", "lastName": "Berg"}},
				"secondParticipant": []any{map[string]any{"firstName": "Clara", "lastName": "Dahl"}},
			},
			"state": map[string]any{
				"dateSent":    "2025-06-01T10:00:00Z",
				"matchAction": "live",
				"serve":       map[string]any{"isFirstParticipantServing": true},
				"score": map[string]any{
					"isTieBreak": false,
					"detailedResult": []any{
						map[string]any{"gameNumber": float64(1), "firstParticipantScore": float64(11), "secondParticipantScore": float64(6)},
						map[string]any{"gameNumber": float64(2), "firstParticipantScore": float64(3), "secondParticipantScore": float64(2)},
					},
				},
			},
		},
	}
}

func startService(t *testing.T, opts ...service.Option) *service.Service {
	t.Helper()
	svc := service.New(opts...)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start service: %v", err)
	}
	t.Cleanup(svc.Stop)
	return svc
}

func TestCourtData(t *testing.T) {
	Convey("Given a started service with a live feed", t, func() {
		ctx := context.Background()
		fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		svc := startService(t,
			service.WithFetcher(&fakeFetcher{doc: liveFeed()}),
			service.WithClock(func() time.Time { return fixed }),
		)

		Convey("When court data is requested", func() {
			payload, err := svc.CourtData(ctx, "8400")

			Convey("Then the payload composes match, settings, and court info", func() {
				So(err, ShouldBeNil)
				So(payload.CourtID, ShouldEqual, "8400")
				So(payload.CourtName, ShouldEqual, "Court 1")
				So(payload.UpdatedAt, ShouldEqual, "2025-06-01T10:00:00Z")

				So(payload.Match, ShouldNotBeNil)
				So(payload.Match.IsLive, ShouldBeTrue)
				So(payload.Match.Player1.Name, ShouldEqual, "Anna Berg")
				So(payload.Match.Player1.Games, ShouldEqual, 1)
				So(payload.Match.Player1.Points, ShouldEqual, 3)
				So(payload.Match.Player2.Points, ShouldEqual, 2)
				So(payload.Match.GameNumber, ShouldEqual, 2)

				So(payload.Overlay.Settings, ShouldResemble, overlay.DefaultSettings())
				So(payload.Overlay.Event, ShouldBeNil)
			})
		})

		Convey("When settings have been saved", func() {
			_, err := svc.SaveSettings(ctx, "8400", map[string]any{
				"swap":  true,
				"name1": "  Custom One  ",
			})
			So(err, ShouldBeNil)

			payload, err := svc.CourtData(ctx, "8400")

			Convey("Then they ride along in the payload", func() {
				So(err, ShouldBeNil)
				So(payload.Overlay.Settings.Swap, ShouldBeTrue)
				So(payload.Overlay.Settings.Name1, ShouldNotBeNil)
				So(*payload.Overlay.Settings.Name1, ShouldEqual, "Custom One")
			})
		})

		Convey("When an event was triggered", func() {
			triggered, err := svc.Trigger(ctx, "8400", "flash", "")
			So(err, ShouldBeNil)
			So(triggered.Target, ShouldEqual, overlay.DefaultTarget)
			So(triggered.At, ShouldEqual, fixed.UnixMilli())

			Convey("Then the first read claims it and later reads do not see it", func() {
				first, err := svc.CourtData(ctx, "8400")
				So(err, ShouldBeNil)
				So(first.Overlay.Event, ShouldNotBeNil)
				So(*first.Overlay.Event, ShouldResemble, triggered)

				second, err := svc.CourtData(ctx, "8400")
				So(err, ShouldBeNil)
				So(second.Overlay.Event, ShouldBeNil)
			})
		})

		Convey("When a second trigger lands before the first is claimed", func() {
			_, err := svc.Trigger(ctx, "8400", "flash", "")
			So(err, ShouldBeNil)
			later, err := svc.Trigger(ctx, "8400", "slide", "names")
			So(err, ShouldBeNil)

			Convey("Then only the latest event is served", func() {
				payload, err := svc.CourtData(ctx, "8400")
				So(err, ShouldBeNil)
				So(payload.Overlay.Event, ShouldNotBeNil)
				So(*payload.Overlay.Event, ShouldResemble, later)
			})
		})
	})

	Convey("Given an unreachable upstream", t, func() {
		ctx := context.Background()
		feedErr := errors.New("connection refused")
		svc := startService(t, service.WithFetcher(&fakeFetcher{err: feedErr}))

		Convey("When court data is requested", func() {
			_, err := svc.CourtData(ctx, "8400")

			Convey("Then the failure propagates", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, feedErr), ShouldBeTrue)
			})
		})
	})

	Convey("Given a feed with no live match", t, func() {
		ctx := context.Background()
		fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		svc := startService(t,
			service.WithFetcher(&fakeFetcher{doc: feed.Doc{
				"details": map[string]any{"courtName": "Court 2"},
			}}),
			service.WithClock(func() time.Time { return fixed }),
		)

		Convey("When court data is requested", func() {
			payload, err := svc.CourtData(ctx, "8400")

			Convey("Then match is nil and updatedAt falls back to the clock", func() {
				So(err, ShouldBeNil)
				So(payload.Match, ShouldBeNil)
				So(payload.CourtName, ShouldEqual, "Court 2")
				So(payload.UpdatedAt, ShouldEqual, "2025-06-01T12:00:00Z")
			})
		})
	})
}

func TestSettingsOperations(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := startService(t, service.WithFetcher(&fakeFetcher{doc: liveFeed()}))

		Convey("When nothing has been saved", func() {
			got, err := svc.Settings(ctx, "8400")
			So(err, ShouldBeNil)
			So(got, ShouldResemble, overlay.DefaultSettings())
		})

		Convey("When a body with unknown and out-of-range fields is saved", func() {
			saved, err := svc.SaveSettings(ctx, "8400", map[string]any{
				"swap":        "not-a-bool",
				"logoOpacity": float64(7),
				"viewMode":    "slate",
				"__proto__":   "nope",
			})

			Convey("Then only allow-listed, clamped values persist", func() {
				So(err, ShouldBeNil)
				So(saved.Swap, ShouldBeFalse)
				So(saved.LogoOpacity, ShouldNotBeNil)
				So(*saved.LogoOpacity, ShouldEqual, overlay.LogoOpacityMax)
				So(saved.ViewMode, ShouldEqual, overlay.ViewModeSlate)

				reloaded, err := svc.Settings(ctx, "8400")
				So(err, ShouldBeNil)
				So(reloaded, ShouldResemble, saved)
			})
		})
	})
}

func TestGetStats(t *testing.T) {
	Convey("Given a started service on the in-memory store", t, func() {
		ctx := context.Background()
		kv := repository.NewMemoryStore(ctx)
		svc := startService(t,
			service.WithFetcher(&fakeFetcher{doc: liveFeed()}),
			service.WithStore(kv),
			service.WithEventTTL(45*time.Second),
		)

		Convey("When stats are requested", func() {
			stats := svc.GetStats()

			Convey("Then configuration and store size are reported", func() {
				So(stats["started"], ShouldBeTrue)
				So(stats["provider"], ShouldEqual, "rankedin")
				So(stats["eventTTLSeconds"], ShouldEqual, int64(45))
				So(stats["storedKeys"], ShouldEqual, 0)
			})
		})
	})
}
