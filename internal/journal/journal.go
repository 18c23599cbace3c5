// Package journal stores free-form journal entries.
package journal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mrsinham/hilom/internal/audit"
)

// ErrEmptyEntry is returned when an entry has no content.
var ErrEmptyEntry = errors.New("journal entry is empty")

// UntitledEntry is logged to history for entries without a title.
const UntitledEntry = "Untitled entry"

var header = []string{"id", "date", "time", "title", "feeling", "content"}

// Entry is one saved journal page.
type Entry struct {
	ID      uuid.UUID
	Date    string
	Time    string
	Title   string
	Feeling string
	Content string
}

// HistoryItem is the text recorded in the history log for e.
func (e Entry) HistoryItem() string {
	if e.Title == "" {
		return UntitledEntry
	}
	return e.Title
}

// Store is a CSV journal plus the shared history log.
type Store struct {
	path    string
	history *audit.Log
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used to date entries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(path string, history *audit.Log, opts ...Option) *Store {
	s := &Store{path: path, history: history, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save writes a new entry and logs it under the journal category.
func (s *Store) Save(title, feeling, content string) (Entry, error) {
	if strings.TrimSpace(content) == "" {
		return Entry{}, ErrEmptyEntry
	}

	now := s.now()
	e := Entry{
		ID:      uuid.New(),
		Date:    now.Format("2006-01-02"),
		Time:    now.Format("15:04:05"),
		Title:   strings.TrimSpace(title),
		Feeling: strings.TrimSpace(feeling),
		Content: content,
	}

	if err := s.append(e); err != nil {
		return Entry{}, err
	}
	if _, err := s.history.Append(audit.CategoryJournal, e.HistoryItem()); err != nil {
		return e, fmt.Errorf("journal entry saved but not logged: %w", err)
	}
	return e, nil
}

func (s *Store) append(e Entry) error {
	_, statErr := os.Stat(s.path)
	fresh := errors.Is(statErr, os.ErrNotExist)

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if fresh {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("failed to write journal: %w", err)
		}
	}
	if err := w.Write([]string{e.ID.String(), e.Date, e.Time, e.Title, e.Feeling, e.Content}); err != nil {
		return fmt.Errorf("failed to write journal: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write journal: %w", err)
	}
	return nil
}

// Entries returns every entry, newest first.
func (s *Store) Entries() ([]Entry, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var out []Entry
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read journal: %w", err)
		}
		if len(rec) != len(header) {
			continue
		}
		id, err := uuid.Parse(rec[0])
		if err != nil {
			// header or foreign row
			continue
		}
		out = append(out, Entry{
			ID:      id,
			Date:    rec[1],
			Time:    rec[2],
			Title:   rec[3],
			Feeling: rec[4],
			Content: rec[5],
		})
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
