package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerInit(t *testing.T) {
	Convey("Given the default initializer", t, func() {
		So(Init(), ShouldBeNil)

		Convey("Then a global logger is available", func() {
			So(Get(), ShouldNotBeNil)
			So(Sync(), ShouldBeNil)
		})
	})

	Convey("Given an unknown format", t, func() {
		err := InitWithWriter(&bytes.Buffer{}, "xml")

		Convey("Then initialization fails", func() {
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given a nil writer", t, func() {
		So(InitWithWriter(nil, FormatText), ShouldNotBeNil)
	})
}

func TestLoggerJSONOutput(t *testing.T) {
	Convey("Given a JSON logger writing to a buffer", t, func() {
		var buf bytes.Buffer
		So(InitWithWriter(&buf, FormatJSON), ShouldBeNil)
		ctx := context.Background()

		Convey("When logging with fields", func() {
			Named("directory").With(String("activity", "Chess Club")).Info(ctx, "signed up",
				String("email", "a@mergington.edu"), Int("participants", 3), Bool("ok", true))

			Convey("Then the entry carries every field and the caller", func() {
				var entry map[string]any
				So(json.Unmarshal(buf.Bytes(), &entry), ShouldBeNil)
				So(entry["msg"], ShouldEqual, "signed up")
				So(entry["logger"], ShouldEqual, "directory")
				So(entry["activity"], ShouldEqual, "Chess Club")
				So(entry["email"], ShouldEqual, "a@mergington.edu")
				So(entry["participants"], ShouldEqual, float64(3))
				So(entry["ok"], ShouldEqual, true)
				So(entry["source"], ShouldContainSubstring, "logger_test.go")
			})
		})

		Convey("When logging below the level", func() {
			So(SetLevelString("warn"), ShouldBeNil)
			Get().Info(ctx, "hidden")
			Get().Error(ctx, "shown", Error(errors.New("boom")))

			Convey("Then only the enabled entry is written", func() {
				So(buf.String(), ShouldNotContainSubstring, "hidden")
				So(buf.String(), ShouldContainSubstring, "boom")
			})
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given level names", t, func() {
		for _, lvl := range []string{"debug", "INFO", "", "warning", "warn", " error "} {
			So(SetLevelString(lvl), ShouldBeNil)
		}
		So(SetLevelString("verbose"), ShouldNotBeNil)
	})
}
