package metrics_test

import (
	"testing"

	"github.com/okian/courtside/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManager(t *testing.T) {
	Convey("Given a metrics manager on a private registry", t, func() {
		reg := prometheus.NewRegistry()

		Convey("When creating it with options", func() {
			m := metrics.NewManager(
				metrics.WithPrometheusRegistry(reg),
				metrics.WithNamespace("test"),
				metrics.WithSubsystem("suite"),
				metrics.WithHistogramBuckets([]float64{1, 10, 100}),
			)

			Convey("Then it registers its collectors", func() {
				So(m, ShouldNotBeNil)
				families, err := reg.Gather()
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)
			})
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("Then the record helpers do not panic", func() {
			So(func() {
				metrics.RecordHTTPRequest("data", "GET", "200")
				metrics.RecordHTTPRequestDuration("data", "GET", "200", 3.5)
				metrics.RecordUpstreamRequest("ok")
				metrics.RecordUpstreamLatency(12)
				metrics.RecordStoreOperation("get", "miss")
				metrics.RecordEventTriggered("flash")
				metrics.RecordEventConsumed()
				metrics.RecordNormalization("DETAILED_LAST")
				metrics.UpdateSystemMemoryUsage(1024)
				metrics.UpdateSystemGoroutineCount(8)
				metrics.RecordSystemGCPauseTime(0.2)
			}, ShouldNotPanic)
		})

		Convey("Then the registry serves gathered families", func() {
			families, err := metrics.GetRegistry().Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)
		})
	})
}
