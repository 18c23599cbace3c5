package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2025, 12, 20, 14, 5, 9, 0, time.UTC)
}

func TestAppend_FourColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	l := New(path, WithClock(fixedClock))

	if _, err := l.Append(CategoryAppointment, "Appointment for Jane Doe - online - $100"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	expected := "appointment,Appointment for Jane Doe - online - $100,2025-12-20,14:05:09\n"
	if string(data) != expected {
		t.Errorf("Expected %q, got %q", expected, string(data))
	}
}

func TestAppend_QuotesCommas(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "history.csv"), WithClock(fixedClock))

	if _, err := l.Append(CategoryBook, "Eat, Pray, Love"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	entries, err := l.Entries()
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Item != "Eat, Pray, Love" {
		t.Errorf("Expected item with commas to round-trip, got %+v", entries)
	}
}

func TestEntries_MissingFile(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "nope.csv"))

	entries, err := l.Entries()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty log, got %d entries", len(entries))
	}
}

func TestEntries_SkipsMalformedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	content := strings.Join([]string{
		"music,Happy,2025-01-01,10:00:00",
		"broken,row",
		"video,Up,2025-01-02,11:00:00,extra",
		"journal,Untitled entry,2025-01-03,12:00:00",
		"",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := New(path).Entries()
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d: %+v", len(entries), entries)
	}
	if entries[0].Category != CategoryMusic || entries[1].Category != CategoryJournal {
		t.Errorf("Unexpected categories: %s, %s", entries[0].Category, entries[1].Category)
	}
}

func TestByCategory(t *testing.T) {
	clock := fixedClock()
	l := New(filepath.Join(t.TempDir(), "history.csv"), WithClock(func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}))

	for _, item := range []string{"first", "second"} {
		if _, err := l.Append(CategoryMusic, item); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := l.Append(CategoryVideo, "other"); err != nil {
		t.Fatal(err)
	}

	got, err := l.ByCategory(CategoryMusic)
	if err != nil {
		t.Fatalf("ByCategory failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 music entries, got %d", len(got))
	}
	if got[0].Item != "second" {
		t.Errorf("Expected most recent first, got %q", got[0].Item)
	}
	if got[0].String() != "second - 2025-12-20 14:07:09" {
		t.Errorf("Unexpected rendering %q", got[0].String())
	}
}
