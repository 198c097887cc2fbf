package activity_test

import (
	"encoding/json"
	"testing"

	"github.com/devhenode/skills-getting-started-with-github-copilot/internal/domain/activity"
	. "github.com/smartystreets/goconvey/convey"
)

func newDirectory() *activity.Directory {
	d := activity.NewDirectory()
	_ = d.Add("Chess Club", activity.Activity{
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 2,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	})
	_ = d.Add("Art Club", activity.Activity{
		Description:     "Painting and drawing",
		Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
		MaxParticipants: 15,
	})
	return d
}

func TestActivity_Membership(t *testing.T) {
	Convey("Given an activity with two participants", t, func() {
		a := activity.Activity{Participants: []string{"a@x.edu", "b@x.edu"}, MaxParticipants: 2}

		Convey("When adding a new email", func() {
			err := a.Add("c@x.edu")

			Convey("Then it is appended in signup order even past capacity", func() {
				So(err, ShouldBeNil)
				So(a.Participants, ShouldResemble, []string{"a@x.edu", "b@x.edu", "c@x.edu"})
				So(a.SpotsLeft(), ShouldEqual, -1)
			})
		})

		Convey("When adding an existing email", func() {
			err := a.Add("a@x.edu")

			Convey("Then it is rejected and the list is unchanged", func() {
				So(err, ShouldEqual, activity.ErrAlreadySignedUp)
				So(a.Participants, ShouldResemble, []string{"a@x.edu", "b@x.edu"})
			})
		})

		Convey("When adding an email that differs only by case", func() {
			err := a.Add("A@x.edu")

			Convey("Then it is treated as a different participant", func() {
				So(err, ShouldBeNil)
				So(a.Has("A@x.edu"), ShouldBeTrue)
			})
		})

		Convey("When removing the first participant", func() {
			err := a.Remove("a@x.edu")

			Convey("Then the rest keep their order", func() {
				So(err, ShouldBeNil)
				So(a.Participants, ShouldResemble, []string{"b@x.edu"})
			})
		})

		Convey("When removing an unknown email", func() {
			err := a.Remove("nobody@x.edu")

			Convey("Then it reports participant not found", func() {
				So(err, ShouldEqual, activity.ErrParticipantNotFound)
				So(len(a.Participants), ShouldEqual, 2)
			})
		})
	})
}

func TestDirectory_Operations(t *testing.T) {
	Convey("Given a seeded directory", t, func() {
		d := newDirectory()

		Convey("Then names keep insertion order", func() {
			So(d.Names(), ShouldResemble, []string{"Chess Club", "Art Club"})
			So(d.Len(), ShouldEqual, 2)
			So(d.ParticipantCount(), ShouldEqual, 2)
		})

		Convey("When adding a duplicate name", func() {
			err := d.Add("Chess Club", activity.Activity{})

			Convey("Then it fails", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When signing up to an unknown activity", func() {
			So(d.Signup("chess club", "x@x.edu"), ShouldEqual, activity.ErrActivityNotFound)
			So(d.Unregister("Nonexistent", "x@x.edu"), ShouldEqual, activity.ErrActivityNotFound)
		})

		Convey("When the same email joins two activities", func() {
			So(d.Signup("Art Club", "michael@mergington.edu"), ShouldBeNil)

			Convey("Then both memberships exist", func() {
				chess, _ := d.Get("Chess Club")
				art, _ := d.Get("Art Club")
				So(chess.Has("michael@mergington.edu"), ShouldBeTrue)
				So(art.Has("michael@mergington.edu"), ShouldBeTrue)
			})
		})

		Convey("When a clone is mutated", func() {
			c := d.Clone()
			So(c.Signup("Art Club", "new@x.edu"), ShouldBeNil)

			Convey("Then the original is untouched", func() {
				art, _ := d.Get("Art Club")
				So(art.Has("new@x.edu"), ShouldBeFalse)
			})
		})

		Convey("When a copy returned by Get is mutated", func() {
			chess, ok := d.Get("Chess Club")
			So(ok, ShouldBeTrue)
			chess.Participants[0] = "changed@x.edu"

			Convey("Then the directory is untouched", func() {
				again, _ := d.Get("Chess Club")
				So(again.Participants[0], ShouldEqual, "michael@mergington.edu")
			})
		})
	})
}

func TestDirectory_MarshalJSON(t *testing.T) {
	Convey("Given a seeded directory", t, func() {
		d := newDirectory()

		Convey("When encoding to JSON", func() {
			raw, err := json.Marshal(d)
			So(err, ShouldBeNil)

			Convey("Then keys follow insertion order and empty lists are arrays", func() {
				s := string(raw)
				So(s, ShouldStartWith, `{"Chess Club":`)
				So(s, ShouldContainSubstring, `"Art Club":{"description":"Painting and drawing"`)
				So(s, ShouldContainSubstring, `"participants":[]`)
			})

			Convey("And it decodes as a plain name to activity map", func() {
				var out map[string]activity.Activity
				So(json.Unmarshal(raw, &out), ShouldBeNil)
				So(out["Chess Club"].MaxParticipants, ShouldEqual, 2)
				So(out["Chess Club"].Participants, ShouldResemble, []string{"michael@mergington.edu", "daniel@mergington.edu"})
			})
		})

		Convey("When encoding an empty directory", func() {
			raw, err := json.Marshal(activity.NewDirectory())

			Convey("Then it is an empty object", func() {
				So(err, ShouldBeNil)
				So(string(raw), ShouldEqual, "{}")
			})
		})
	})
}
