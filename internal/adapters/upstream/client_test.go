package upstream_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/okian/courtside/internal/adapters/upstream"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClientScoreboard(t *testing.T) {
	Convey("Given a feed client pointed at a test server", t, func() {
		ctx := context.Background()

		Convey("When the server returns a valid feed", func() {
			var gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"liveMatch":{"base":{},"state":{"score":{"firstParticipantScore":7}}}}`))
			}))
			defer srv.Close()

			client := upstream.NewClient(upstream.WithBaseURL(srv.URL))
			doc, err := client.Scoreboard(ctx, "8400")

			Convey("Then the document decodes and the path is correct", func() {
				So(err, ShouldBeNil)
				So(gotPath, ShouldEqual, "/court/8400/scoreboard")

				state := doc.Object("liveMatch", "state")
				So(state, ShouldNotBeNil)
				points, ok := state.Object("score").NumberOK("firstParticipantScore")
				So(ok, ShouldBeTrue)
				So(points, ShouldEqual, 7)
			})
		})

		Convey("When the server returns a non-2xx status", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			}))
			defer srv.Close()

			client := upstream.NewClient(upstream.WithBaseURL(srv.URL))
			_, err := client.Scoreboard(ctx, "8400")

			Convey("Then the error carries the status and matches ErrUnavailable", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, upstream.ErrUnavailable), ShouldBeTrue)

				var se *upstream.StatusError
				So(errors.As(err, &se), ShouldBeTrue)
				So(se.Status, ShouldEqual, http.StatusServiceUnavailable)
			})
		})

		Convey("When the server returns malformed JSON", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"liveMatch":`))
			}))
			defer srv.Close()

			client := upstream.NewClient(upstream.WithBaseURL(srv.URL))
			_, err := client.Scoreboard(ctx, "8400")

			Convey("Then a decode error comes back", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, upstream.ErrDecode), ShouldBeTrue)
			})
		})

		Convey("When the server is unreachable", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
			srv.Close()

			client := upstream.NewClient(
				upstream.WithBaseURL(srv.URL),
				upstream.WithTimeout(time.Second),
			)
			_, err := client.Scoreboard(ctx, "8400")

			Convey("Then the failure maps to ErrUnavailable", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, upstream.ErrUnavailable), ShouldBeTrue)
			})
		})

		Convey("When the court id needs escaping", func() {
			var gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.EscapedPath()
				_, _ = w.Write([]byte(`{}`))
			}))
			defer srv.Close()

			client := upstream.NewClient(upstream.WithBaseURL(srv.URL))
			_, err := client.Scoreboard(ctx, "a/b")

			Convey("Then the id is path-escaped", func() {
				So(err, ShouldBeNil)
				So(gotPath, ShouldEqual, "/court/a%2Fb/scoreboard")
			})
		})
	})
}
