// Package seed builds the initial activity directory from YAML.
//
// The default data set is embedded in the binary. A file with the same shape
// can replace it at startup:
//
//	activities:
//	  - name: Chess Club
//	    description: ...
//	    schedule: ...
//	    max_participants: 12
//	    participants: [michael@mergington.edu]
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/devhenode/skills-getting-started-with-github-copilot/internal/domain/activity"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed activities.yaml
var defaultYAML []byte

// Entry is one activity as written in a seed file.
type Entry struct {
	Name            string   `koanf:"name"`
	Description     string   `koanf:"description"`
	Schedule        string   `koanf:"schedule"`
	MaxParticipants int      `koanf:"max_participants"`
	Participants    []string `koanf:"participants"`
}

// bytesProvider feeds an in-memory document to koanf.
type bytesProvider []byte

func (b bytesProvider) ReadBytes() ([]byte, error) { return b, nil }

func (b bytesProvider) Read() (map[string]any, error) {
	return nil, errors.New("bytesProvider does not support Read()")
}

// Default returns the embedded directory.
func Default() (*activity.Directory, error) {
	return parse(bytesProvider(defaultYAML))
}

// Load returns the directory in the YAML file at path, or the embedded
// default when path is empty.
func Load(path string) (*activity.Directory, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	return parse(file.Provider(path))
}

// Parse builds a directory from a YAML document.
func Parse(doc []byte) (*activity.Directory, error) {
	return parse(bytesProvider(doc))
}

func parse(p koanf.Provider) (*activity.Directory, error) {
	k := koanf.New(".")
	if err := k.Load(p, yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadSeed, err)
	}

	var entries []Entry
	if err := k.UnmarshalWithConf("activities", &entries, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadSeed, err)
	}
	return Build(entries)
}

// Build validates entries and assembles them into a directory in order.
func Build(entries []Entry) (*activity.Directory, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no activities", ErrInvalidSeed)
	}
	dir := activity.NewDirectory()
	for i, e := range entries {
		if err := e.validate(); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrInvalidSeed, i, err)
		}
		if err := dir.Add(e.Name, activity.Activity{
			Description:     e.Description,
			Schedule:        e.Schedule,
			MaxParticipants: e.MaxParticipants,
			Participants:    e.Participants,
		}); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrInvalidSeed, i, err)
		}
	}
	return dir, nil
}

func (e Entry) validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return errors.New("missing name")
	}
	if e.MaxParticipants <= 0 {
		return fmt.Errorf("%q: max_participants must be positive", e.Name)
	}
	seen := make(map[string]struct{}, len(e.Participants))
	for _, p := range e.Participants {
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%q: duplicate participant %q", e.Name, p)
		}
		seen[p] = struct{}{}
	}
	return nil
}
