package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/okian/courtside/internal/adapters/repository"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeClock hands the store a controllable time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemoryStore(t *testing.T) {
	Convey("Given a memory store with a fake clock", t, func() {
		ctx := context.Background()
		clock := &fakeClock{now: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
		store := repository.NewMemoryStore(ctx,
			repository.WithClock(clock.Now),
			repository.WithJanitorInterval(time.Hour),
		)
		defer func() { _ = store.Close() }()

		Convey("When setting and getting a key without TTL", func() {
			So(store.Set(ctx, "k", []byte("v"), 0), ShouldBeNil)

			val, ok, err := store.Get(ctx, "k")
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(string(val), ShouldEqual, "v")

			Convey("Then it survives arbitrary time passing", func() {
				clock.Advance(240 * time.Hour)
				_, ok, err := store.Get(ctx, "k")
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
			})
		})

		Convey("When setting a key with a TTL", func() {
			So(store.Set(ctx, "e", []byte("soon"), 30*time.Second), ShouldBeNil)

			Convey("Then it reads back before expiry", func() {
				clock.Advance(29 * time.Second)
				_, ok, err := store.Get(ctx, "e")
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
			})

			Convey("Then it is gone after expiry without janitor help", func() {
				clock.Advance(31 * time.Second)
				_, ok, err := store.Get(ctx, "e")
				So(err, ShouldBeNil)
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When deleting keys", func() {
			So(store.Set(ctx, "k", []byte("v"), 0), ShouldBeNil)
			So(store.Delete(ctx, "k"), ShouldBeNil)

			_, ok, err := store.Get(ctx, "k")
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)

			Convey("Then deleting a missing key is not an error", func() {
				So(store.Delete(ctx, "never-existed"), ShouldBeNil)
			})
		})

		Convey("When the store is closed", func() {
			So(store.Close(), ShouldBeNil)

			Convey("Then operations report the closed state", func() {
				So(store.Set(ctx, "k", []byte("v"), 0), ShouldEqual, repository.ErrClosed)
				_, _, err := store.Get(ctx, "k")
				So(err, ShouldEqual, repository.ErrClosed)
				So(store.Delete(ctx, "k"), ShouldEqual, repository.ErrClosed)
			})

			Convey("Then closing again is fine", func() {
				So(store.Close(), ShouldBeNil)
			})
		})

		Convey("When callers mutate a returned value", func() {
			So(store.Set(ctx, "k", []byte("abc"), 0), ShouldBeNil)
			val, _, _ := store.Get(ctx, "k")
			val[0] = 'X'

			Convey("Then the stored value is unaffected", func() {
				again, _, _ := store.Get(ctx, "k")
				So(string(again), ShouldEqual, "abc")
			})
		})
	})

	Convey("Given a memory store with a fast janitor", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore(ctx,
			repository.WithJanitorInterval(10*time.Millisecond),
		)
		defer func() { _ = store.Close() }()

		Convey("When a key expires", func() {
			So(store.Set(ctx, "e", []byte("v"), time.Millisecond), ShouldBeNil)

			Convey("Then the sweep removes it from the map", func() {
				So(func() bool {
					deadline := time.Now().Add(time.Second)
					for time.Now().Before(deadline) {
						if store.Len() == 0 {
							return true
						}
						time.Sleep(5 * time.Millisecond)
					}
					return false
				}(), ShouldBeTrue)
			})
		})
	})
}
