package main

import (
	"context"
	"testing"

	"github.com/okian/courtside/internal/adapters/repository"
	"github.com/okian/courtside/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewStore(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		ctx := context.Background()
		cfg := config.New(ctx)

		Convey("When the store is opened", func() {
			kv, err := newStore(ctx, cfg)

			Convey("Then it is the in-memory backend", func() {
				So(err, ShouldBeNil)
				_, ok := kv.(*repository.MemoryStore)
				So(ok, ShouldBeTrue)
				So(kv.Close(), ShouldBeNil)
			})
		})
	})

	Convey("Given an unrecognized backend name", t, func() {
		ctx := context.Background()
		cfg := config.New(ctx)
		cfg.StoreBackend = "something-else"

		Convey("When the store is opened", func() {
			kv, err := newStore(ctx, cfg)

			Convey("Then it falls back to memory", func() {
				So(err, ShouldBeNil)
				_, ok := kv.(*repository.MemoryStore)
				So(ok, ShouldBeTrue)
				So(kv.Close(), ShouldBeNil)
			})
		})
	})
}

func TestUpdateSystemMetrics(t *testing.T) {
	Convey("When system metrics are sampled", t, func() {
		So(updateSystemMetrics, ShouldNotPanic)
	})
}
