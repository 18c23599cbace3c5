// Package audit manages the append-only history log shared by every feature.
package audit

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Categories written by the application.
const (
	CategoryMusic       = "music"
	CategoryVideo       = "video"
	CategoryBook        = "book"
	CategoryJournal     = "journal"
	CategoryAppointment = "appointment"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
	columns    = 4
)

// Entry is one line of the history log.
type Entry struct {
	Category string
	Item     string
	Date     string
	Time     string
}

// String renders the entry the way history views list it.
func (e Entry) String() string {
	return fmt.Sprintf("%s - %s %s", e.Item, e.Date, e.Time)
}

// Log is a CSV history file with rows category,item,date,time.
type Log struct {
	path string
	now  func() time.Time
}

// Option configures a Log.
type Option func(*Log)

// WithClock sets the clock used to stamp new entries.
func WithClock(now func() time.Time) Option {
	return func(l *Log) { l.now = now }
}

// New returns a Log backed by path. The file is created on first append.
func New(path string, opts ...Option) *Log {
	l := &Log{path: path, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Path returns the file backing the log.
func (l *Log) Path() string { return l.path }

// Append writes one entry stamped with the current date and time.
func (l *Log) Append(category, item string) (Entry, error) {
	now := l.now()
	e := Entry{
		Category: category,
		Item:     item,
		Date:     now.Format(dateLayout),
		Time:     now.Format(timeLayout),
	}

	if dir := filepath.Dir(l.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return e, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return e, fmt.Errorf("failed to open history: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{e.Category, e.Item, e.Date, e.Time}); err != nil {
		return e, fmt.Errorf("failed to write history: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return e, fmt.Errorf("failed to write history: %w", err)
	}
	return e, nil
}

// Entries reads the whole log in file order. Rows that do not have exactly
// four columns are skipped. A missing file is an empty log.
func (l *Log) Entries() ([]Entry, error) {
	f, err := os.Open(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var entries []Entry
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read history: %w", err)
		}
		if len(rec) != columns {
			continue
		}
		entries = append(entries, Entry{Category: rec[0], Item: rec[1], Date: rec[2], Time: rec[3]})
	}
	return entries, nil
}

// ByCategory returns the entries of one category, most recent first.
func (l *Log) ByCategory(category string) ([]Entry, error) {
	all, err := l.Entries()
	if err != nil {
		return nil, err
	}

	var out []Entry
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].Category == category {
			out = append(out, all[i])
		}
	}
	return out, nil
}
