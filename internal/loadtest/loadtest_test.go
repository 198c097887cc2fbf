package loadtest_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devhenode/skills-getting-started-with-github-copilot/internal/adapters/http/api"
	service "github.com/devhenode/skills-getting-started-with-github-copilot/internal/app"
	"github.com/devhenode/skills-getting-started-with-github-copilot/internal/loadtest"
	"github.com/devhenode/skills-getting-started-with-github-copilot/internal/seed"
	"github.com/devhenode/skills-getting-started-with-github-copilot/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func newTestServer() (*httptest.Server, *service.Service) {
	dir, err := seed.Default()
	if err != nil {
		panic(err)
	}
	svc := service.New(service.WithSeed(dir))
	r := api.NewRouter(nil)
	api.NewServer(svc, svc, nil).Register(r)
	return httptest.NewServer(r), svc
}

func TestRun(t *testing.T) {
	Convey("Given a running activity service", t, func() {
		srv, svc := newTestServer()
		defer srv.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		Convey("When running a load test with cleanup", func() {
			stats, err := loadtest.Run(ctx, &loadtest.Config{
				BaseURL:         srv.URL,
				Activity:        "Chess Club",
				Signups:         40,
				Workers:         8,
				Timeout:         5 * time.Second,
				Cleanup:         true,
				DuplicateSample: 5,
			})

			Convey("Then every request behaves and the directory is restored", func() {
				So(err, ShouldBeNil)
				So(stats.Generated, ShouldEqual, 40)
				So(stats.Successful, ShouldEqual, 40)
				So(stats.Failed, ShouldEqual, 0)
				So(stats.DuplicatesRejected, ShouldEqual, 5)
				So(stats.Removed, ShouldEqual, 40)

				dir, _ := svc.ListActivities(ctx)
				chess, _ := dir.Get("Chess Club")
				So(chess.Participants, ShouldResemble, []string{"michael@mergington.edu", "daniel@mergington.edu"})
			})
		})

		Convey("When running without cleanup", func() {
			_, err := loadtest.Run(ctx, &loadtest.Config{
				BaseURL:  srv.URL,
				Activity: "Art Club",
				Signups:  10,
				Workers:  4,
			})

			Convey("Then the generated emails stay signed up", func() {
				So(err, ShouldBeNil)
				dir, _ := svc.ListActivities(ctx)
				art, _ := dir.Get("Art Club")
				So(len(art.Participants), ShouldEqual, 12)
			})
		})

		Convey("When targeting an unknown activity", func() {
			_, err := loadtest.Run(ctx, &loadtest.Config{
				BaseURL:  srv.URL,
				Activity: "Nonexistent",
				Signups:  3,
			})

			Convey("Then verification fails", func() {
				So(errors.Is(err, loadtest.ErrVerification), ShouldBeTrue)
			})
		})
	})

	Convey("Given an unhealthy service", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		Convey("When running a load test", func() {
			_, err := loadtest.Run(context.Background(), &loadtest.Config{BaseURL: srv.URL})

			Convey("Then it stops at the health check", func() {
				So(errors.Is(err, loadtest.ErrUnhealthy), ShouldBeTrue)
			})
		})
	})
}

func TestConfig_Normalize(t *testing.T) {
	Convey("Given an empty config", t, func() {
		c := &loadtest.Config{DuplicateSample: 500}
		c.Normalize()

		Convey("Then defaults are filled in", func() {
			So(c.BaseURL, ShouldEqual, loadtest.DefaultBaseURL)
			So(c.Activity, ShouldEqual, "Chess Club")
			So(c.Signups, ShouldEqual, loadtest.DefaultSignups)
			So(c.Workers, ShouldEqual, loadtest.DefaultWorkers)
			So(c.Timeout, ShouldEqual, loadtest.DefaultTimeout)
			So(c.DuplicateSample, ShouldEqual, c.Signups)
		})
	})
}
