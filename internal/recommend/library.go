// Package recommend serves the mood based media library: songs, talks and
// books per mood, search links, and the history entries for what was played.
package recommend

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed moods.yaml
var defaultLibrary []byte

// ErrUnknownMood is returned for a mood the library does not have.
var ErrUnknownMood = errors.New("unknown mood")

// ErrUnknownItem is returned when a title is not listed for the mood.
var ErrUnknownItem = errors.New("unknown item")

// Video is a talk or podcast episode. At most one of the links may be empty.
type Video struct {
	Title   string `yaml:"title"`
	YouTube string `yaml:"youtube"`
	Spotify string `yaml:"spotify"`
}

// Book is a reading suggestion with a store link.
type Book struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Link        string `yaml:"link"`
}

// Mood is the content listed for one mood.
type Mood struct {
	Name   string   `yaml:"name"`
	Songs  []string `yaml:"songs"`
	Videos []Video  `yaml:"videos"`
	Books  []Book   `yaml:"books"`
}

// Library is an immutable set of moods, in display order.
type Library struct {
	moods []Mood
}

type document struct {
	Moods []Mood `yaml:"moods"`
}

// Load parses a library document.
func Load(r io.Reader) (*Library, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode mood library: %w", err)
	}

	seen := make(map[string]bool, len(doc.Moods))
	for i, m := range doc.Moods {
		name := strings.ToLower(strings.TrimSpace(m.Name))
		if name == "" {
			return nil, fmt.Errorf("mood %d has no name", i)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate mood %q", name)
		}
		if len(m.Songs) == 0 {
			return nil, fmt.Errorf("mood %q has no songs", name)
		}
		seen[name] = true
		doc.Moods[i].Name = name
	}

	return &Library{moods: doc.Moods}, nil
}

var (
	defaultOnce sync.Once
	defaultLib  *Library
)

// Default returns the embedded library.
func Default() *Library {
	defaultOnce.Do(func() {
		lib, err := Load(bytes.NewReader(defaultLibrary))
		if err != nil {
			panic(fmt.Sprintf("recommend: embedded library is invalid: %v", err))
		}
		defaultLib = lib
	})
	return defaultLib
}

// Moods returns the mood names in display order.
func (l *Library) Moods() []string {
	names := make([]string, len(l.moods))
	for i, m := range l.moods {
		names[i] = m.Name
	}
	return names
}

// ForMood returns the content of a mood, matched case-insensitively.
func (l *Library) ForMood(name string) (Mood, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, m := range l.moods {
		if m.Name == key {
			return m, nil
		}
	}
	return Mood{}, fmt.Errorf("%w: %s (valid: %s)", ErrUnknownMood, name, strings.Join(l.Moods(), ", "))
}

// RandomPick picks a song. With an empty mood the mood is picked at random
// too. It returns the mood the song was taken from.
func (l *Library) RandomPick(rng *rand.Rand, mood string) (string, string, error) {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	var m Mood
	if mood == "" {
		m = l.moods[rng.IntN(len(l.moods))]
	} else {
		var err error
		if m, err = l.ForMood(mood); err != nil {
			return "", "", err
		}
	}
	return m.Name, m.Songs[rng.IntN(len(m.Songs))], nil
}

func (m Mood) video(title string) (Video, bool) {
	for _, v := range m.Videos {
		if v.Title == title {
			return v, true
		}
	}
	return Video{}, false
}

func (m Mood) book(title string) (Book, bool) {
	for _, b := range m.Books {
		if b.Title == title {
			return b, true
		}
	}
	return Book{}, false
}

func (m Mood) hasSong(title string) bool {
	for _, s := range m.Songs {
		if s == title {
			return true
		}
	}
	return false
}
