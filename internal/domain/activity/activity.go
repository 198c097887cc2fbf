// Package activity holds the activity directory model and its membership rules.
package activity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Activity is a named extracurricular record. The name is the directory key and
// is not stored on the record itself.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Has reports whether email is already signed up.
func (a *Activity) Has(email string) bool {
	return slices.Contains(a.Participants, email)
}

// SpotsLeft is informational only; capacity is never enforced.
func (a *Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// Add appends email in signup order.
func (a *Activity) Add(email string) error {
	if a.Has(email) {
		return ErrAlreadySignedUp
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// Remove drops the first entry equal to email, keeping the order of the rest.
func (a *Activity) Remove(email string) error {
	i := slices.Index(a.Participants, email)
	if i < 0 {
		return ErrParticipantNotFound
	}
	a.Participants = slices.Delete(a.Participants, i, i+1)
	return nil
}

// Clone returns a deep copy. Participants is never nil in the copy so it
// encodes as [] rather than null.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}

// Directory maps activity names to activities and remembers insertion order.
// It is not safe for concurrent use; see repository.MemoryStore.
type Directory struct {
	names      []string
	activities map[string]*Activity
}

// NewDirectory returns an empty directory.
func NewDirectory() *Directory {
	return &Directory{activities: make(map[string]*Activity)}
}

// Add inserts a new activity under name.
func (d *Directory) Add(name string, a Activity) error {
	if _, ok := d.activities[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateActivity, name)
	}
	c := a.Clone()
	d.names = append(d.names, name)
	d.activities[name] = &c
	return nil
}

// Get returns a copy of the named activity.
func (d *Directory) Get(name string) (Activity, bool) {
	a, ok := d.activities[name]
	if !ok {
		return Activity{}, false
	}
	return a.Clone(), true
}

// Names returns activity names in insertion order.
func (d *Directory) Names() []string {
	return slices.Clone(d.names)
}

// Len returns the number of activities.
func (d *Directory) Len() int {
	return len(d.names)
}

// ParticipantCount sums participants across all activities.
func (d *Directory) ParticipantCount() int {
	n := 0
	for _, a := range d.activities {
		n += len(a.Participants)
	}
	return n
}

// Signup registers email for the named activity.
func (d *Directory) Signup(name, email string) error {
	a, ok := d.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	return a.Add(email)
}

// Unregister removes email from the named activity.
func (d *Directory) Unregister(name, email string) error {
	a, ok := d.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	return a.Remove(email)
}

// Clone returns a deep copy.
func (d *Directory) Clone() *Directory {
	out := &Directory{
		names:      slices.Clone(d.names),
		activities: make(map[string]*Activity, len(d.activities)),
	}
	for name, a := range d.activities {
		c := a.Clone()
		out.activities[name] = &c
	}
	return out
}

// Map returns the activities as a plain map of copies.
func (d *Directory) Map() map[string]Activity {
	out := make(map[string]Activity, len(d.activities))
	for name, a := range d.activities {
		out[name] = a.Clone()
	}
	return out
}

// MarshalJSON encodes the directory as a JSON object keyed by name, in
// insertion order.
func (d *Directory) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range d.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(d.activities[name].Clone())
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
