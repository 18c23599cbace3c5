package favorites

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestAdd_Dedupe(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "favorites.csv"))

	added, err := s.Add("music", "Coldplay – Fix You")
	if err != nil || !added {
		t.Fatalf("Expected first add to succeed, got added=%v err=%v", added, err)
	}

	added, err = s.Add("music", "  Coldplay – Fix You ")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if added {
		t.Error("Expected duplicate to be ignored")
	}

	// Same title in another category is a different favorite.
	if added, _ := s.Add("video", "Coldplay – Fix You"); !added {
		t.Error("Expected same title in another category to be added")
	}

	all, err := s.List("")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected 2 favorites, got %d: %v", len(all), all)
	}
}

func TestAdd_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.csv")

	if _, err := New(path).Add("book", "The Comfort Book — Matt Haig"); err != nil {
		t.Fatal(err)
	}
	if _, err := New(path).Add("music", "Enya – Only Time"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	expected := "music,Enya – Only Time\nbook,The Comfort Book — Matt Haig\n"
	if string(data) != expected {
		t.Errorf("Expected %q, got %q", expected, string(data))
	}

	books, err := New(path).List("book")
	if err != nil {
		t.Fatal(err)
	}
	if len(books) != 1 || books[0].Item != "The Comfort Book — Matt Haig" {
		t.Errorf("Unexpected books: %v", books)
	}
}

func TestAdd_Rejects(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "favorites.csv"))

	if _, err := s.Add("podcast", "x"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("Expected ErrUnknownCategory, got %v", err)
	}
	if _, err := s.Add("music", "   "); !errors.Is(err, ErrEmptyItem) {
		t.Errorf("Expected ErrEmptyItem, got %v", err)
	}
	if _, err := s.List("podcast"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("Expected ErrUnknownCategory from List, got %v", err)
	}
}

func TestList_SkipsForeignRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.csv")
	content := "music,a\njournal,b\nvideo,c,extra\nvideo,d\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	all, err := New(path).List("")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected 2 favorites, got %v", all)
	}
}
