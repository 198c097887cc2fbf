package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

// counterValue sums every series of the named family in the custom registry.
func counterValue(name string) float64 {
	families, err := GetRegistry().Gather()
	if err != nil {
		return -1
	}
	total := 0.0
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				total += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				total += m.GetGauge().GetValue()
			}
		}
	}
	return total
}

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with a private registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it registers its collectors there", func() {
				So(manager, ShouldNotBeNil)
				manager.signups.Inc()
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test_namespace"),
				WithSubsystem("test_subsystem"),
				WithMetricPrefix("test_"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithCustomLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)
			manager.signups.Inc()

			Convey("Then names carry namespace, subsystem and prefix", func() {
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				found := false
				for _, mf := range families {
					if mf.GetName() == "test_namespace_test_subsystem_test_signups_total" {
						found = true
						So(mf.GetMetric()[0].GetLabel()[0].GetName(), ShouldEqual, "env")
					}
				}
				So(found, ShouldBeTrue)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics", t, func() {
		Convey("When recording directory changes", func() {
			before := counterValue("mergington_activities_signups_total")
			RecordSignup()
			RecordSignup()
			removalsBefore := counterValue("mergington_activities_removals_total")
			RecordRemoval()

			Convey("Then counters advance", func() {
				So(counterValue("mergington_activities_signups_total"), ShouldEqual, before+2)
				So(counterValue("mergington_activities_removals_total"), ShouldEqual, removalsBefore+1)
			})
		})

		Convey("When setting directory gauges", func() {
			UpdateActivitiesTotal(9)
			UpdateParticipantsTotal(18)

			Convey("Then the gauges hold the last value", func() {
				So(counterValue("mergington_activities_activities"), ShouldEqual, 9)
				So(counterValue("mergington_activities_participants"), ShouldEqual, 18)
			})
		})

		Convey("When recording rejections", func() {
			before := counterValue("mergington_activities_rejections_total")
			RecordRejection("signup", "already_signed_up")
			RecordRejection("unregister", "participant_not_found")

			Convey("Then every label set is counted", func() {
				So(counterValue("mergington_activities_rejections_total"), ShouldEqual, before+2)
			})
		})

		Convey("When recording the remaining metrics", func() {
			Convey("Then nothing panics", func() {
				So(func() {
					RecordRepositoryUpdateLatency(0.2)
					RecordRepositoryQueryLatency(0.1)
					UpdateQueueSize(3)
					UpdateQueueCapacity(10)
					UpdateQueueUtilization(0.3)
					RecordQueueEnqueue()
					RecordQueueDequeue()
					RecordQueueEnqueueError()
					UpdateWorkerCount(2)
					RecordNotification()
					RecordNotificationError()
					RecordWorkerProcessingLatency(1)
					RecordHTTPRequest("/activities", "GET", "200")
					RecordHTTPRequestDuration("/activities", "GET", "200", 1.5)
					RecordErrorByComponent("queue", "full")
					RecordErrorByType("not_found", "medium")
					RecordErrorByEndpoint("/activities/{activity_name}/signup", "POST", "client_error")
					RecordErrorLatency("http", "not_found", 2)
					UpdateSystemMemoryUsage(1024)
					UpdateSystemGoroutineCount(10)
					RecordSystemGCPauseTime(0.5)
				}, ShouldNotPanic)
			})
		})
	})
}
