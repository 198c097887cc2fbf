package seed

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/devhenode/skills-getting-started-with-github-copilot/internal/domain/activity"
	"github.com/google/go-cmp/cmp"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDefault(t *testing.T) {
	Convey("Given the embedded seed", t, func() {
		dir, err := Default()

		Convey("Then it loads every activity in file order", func() {
			So(err, ShouldBeNil)
			So(dir.Names(), ShouldResemble, []string{
				"Chess Club", "Programming Class", "Gym Class", "Soccer Team", "Basketball Team",
				"Art Club", "Drama Club", "Math Club", "Debate Team",
			})
		})

		Convey("And Chess Club matches the published data", func() {
			chess, ok := dir.Get("Chess Club")
			So(ok, ShouldBeTrue)
			want := activity.Activity{
				Description:     "Learn strategies and compete in chess tournaments",
				Schedule:        "Fridays, 3:30 PM - 5:00 PM",
				MaxParticipants: 12,
				Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
			}
			So(cmp.Diff(want, chess), ShouldBeEmpty)
		})

		Convey("And Load with an empty path returns the same data", func() {
			again, err := Load("  ")
			So(err, ShouldBeNil)
			So(cmp.Diff(dir.Map(), again.Map()), ShouldBeEmpty)
		})
	})
}

func TestLoadFile(t *testing.T) {
	Convey("Given a seed file", t, func() {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		content := `
activities:
  - name: Robotics
    description: Build robots
    schedule: Mondays
    max_participants: "4"
  - name: Choir
    description: Sing
    schedule: Fridays
    max_participants: 30
    participants: [a@mergington.edu, b@mergington.edu]
`
		So(os.WriteFile(path, []byte(content), 0o600), ShouldBeNil)

		Convey("When loading it", func() {
			dir, err := Load(path)

			Convey("Then it replaces the default set", func() {
				So(err, ShouldBeNil)
				So(dir.Names(), ShouldResemble, []string{"Robotics", "Choir"})
				robotics, _ := dir.Get("Robotics")
				So(robotics.MaxParticipants, ShouldEqual, 4)
				So(robotics.Participants, ShouldBeEmpty)
				choir, _ := dir.Get("Choir")
				So(choir.Participants, ShouldResemble, []string{"a@mergington.edu", "b@mergington.edu"})
			})
		})
	})

	Convey("Given a missing file", t, func() {
		_, err := Load("/non/existent/seed.yaml")

		Convey("Then loading fails", func() {
			So(errors.Is(err, ErrLoadSeed), ShouldBeTrue)
		})
	})
}

func TestParseValidation(t *testing.T) {
	Convey("Given invalid seed documents", t, func() {
		cases := map[string]string{
			"broken yaml":           `activities: [`,
			"no activities":         `activities: []`,
			"missing name":          "activities:\n  - description: x\n    max_participants: 1\n",
			"zero capacity":         "activities:\n  - name: A\n    max_participants: 0\n",
			"duplicate name":        "activities:\n  - name: A\n    max_participants: 1\n  - name: A\n    max_participants: 2\n",
			"duplicate participant": "activities:\n  - name: A\n    max_participants: 3\n    participants: [x@y.z, x@y.z]\n",
		}

		for name, doc := range cases {
			_, err := Parse([]byte(doc))
			Convey("Then "+name+" is rejected", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, ErrLoadSeed) || errors.Is(err, ErrInvalidSeed), ShouldBeTrue)
			})
		}
	})

	Convey("Given a duplicate name", t, func() {
		_, err := Build([]Entry{{Name: "A", MaxParticipants: 1}, {Name: "A", MaxParticipants: 1}})

		Convey("Then the directory error is preserved", func() {
			So(errors.Is(err, activity.ErrDuplicateActivity), ShouldBeTrue)
		})
	})
}
