package recommend

import (
	"fmt"

	"github.com/mrsinham/hilom/internal/audit"
)

// Playback is what to open for a picked item.
type Playback struct {
	Category string
	Title    string
	URL      string
	// Alternate is a second way to reach the item, if any.
	Alternate string
}

// Player resolves picks to links and records them in the history log.
type Player struct {
	lib     *Library
	history *audit.Log
}

func NewPlayer(lib *Library, history *audit.Log) *Player {
	return &Player{lib: lib, history: history}
}

// Song plays a song of mood through a YouTube search.
func (p *Player) Song(mood, title string) (Playback, error) {
	m, err := p.lib.ForMood(mood)
	if err != nil {
		return Playback{}, err
	}
	if !m.hasSong(title) {
		return Playback{}, fmt.Errorf("%w: song %q in %s", ErrUnknownItem, title, m.Name)
	}

	return p.record(Playback{
		Category:  audit.CategoryMusic,
		Title:     title,
		URL:       YouTubeSearchURL(title),
		Alternate: SpotifySearchURL(title),
	})
}

// Video opens a talk: its YouTube link, else its Spotify link, else a search.
func (p *Player) Video(mood, title string) (Playback, error) {
	m, err := p.lib.ForMood(mood)
	if err != nil {
		return Playback{}, err
	}
	v, ok := m.video(title)
	if !ok {
		return Playback{}, fmt.Errorf("%w: video %q in %s", ErrUnknownItem, title, m.Name)
	}

	pb := Playback{Category: audit.CategoryVideo, Title: title}
	switch {
	case v.YouTube != "":
		pb.URL, pb.Alternate = v.YouTube, v.Spotify
	case v.Spotify != "":
		pb.URL = v.Spotify
	default:
		pb.URL = YouTubeSearchURL(title)
	}
	return p.record(pb)
}

// Book opens the store page of a book.
func (p *Player) Book(mood, title string) (Playback, error) {
	m, err := p.lib.ForMood(mood)
	if err != nil {
		return Playback{}, err
	}
	b, ok := m.book(title)
	if !ok {
		return Playback{}, fmt.Errorf("%w: book %q in %s", ErrUnknownItem, title, m.Name)
	}

	return p.record(Playback{Category: audit.CategoryBook, Title: title, URL: b.Link})
}

func (p *Player) record(pb Playback) (Playback, error) {
	if _, err := p.history.Append(pb.Category, pb.Title); err != nil {
		return pb, fmt.Errorf("failed to record %s: %w", pb.Category, err)
	}
	return pb, nil
}
