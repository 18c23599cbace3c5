// Package favorites keeps the songs, videos and books a user starred.
package favorites

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/mrsinham/hilom/internal/audit"
)

var (
	ErrUnknownCategory = errors.New("unknown favorites category")
	ErrEmptyItem       = errors.New("favorite item is empty")
)

// Categories lists the favorite kinds in the order they are written.
var Categories = []string{audit.CategoryMusic, audit.CategoryVideo, audit.CategoryBook}

// Favorite is one starred item.
type Favorite struct {
	Category string
	Item     string
}

// Store is a two column CSV file, rewritten on every change.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) load() ([]Favorite, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read favorites: %w", err)
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse favorites: %w", err)
	}

	var out []Favorite
	for _, row := range rows {
		if len(row) != 2 || !slices.Contains(Categories, row[0]) {
			continue
		}
		out = append(out, Favorite{Category: row[0], Item: row[1]})
	}
	return out, nil
}

// List returns the favorites of category, or all of them when category is
// empty, grouped by category.
func (s *Store) List(category string) ([]Favorite, error) {
	if category != "" && !slices.Contains(Categories, category) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}

	all, err := s.load()
	if err != nil {
		return nil, err
	}

	var out []Favorite
	for _, c := range Categories {
		if category != "" && c != category {
			continue
		}
		for _, f := range all {
			if f.Category == c {
				out = append(out, f)
			}
		}
	}
	return out, nil
}

// Add stars item. It reports false when the item was already a favorite.
func (s *Store) Add(category, item string) (bool, error) {
	if !slices.Contains(Categories, category) {
		return false, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	item = strings.TrimSpace(item)
	if item == "" {
		return false, ErrEmptyItem
	}

	all, err := s.List("")
	if err != nil {
		return false, err
	}
	if slices.Contains(all, Favorite{Category: category, Item: item}) {
		return false, nil
	}

	all = append(all, Favorite{Category: category, Item: item})
	if err := s.save(all); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) save(all []Favorite) error {
	// Group by category, keeping insertion order inside each group.
	slices.SortStableFunc(all, func(a, b Favorite) int {
		return slices.Index(Categories, a.Category) - slices.Index(Categories, b.Category)
	})

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, f := range all {
		if err := w.Write([]string{f.Category, f.Item}); err != nil {
			return fmt.Errorf("failed to encode favorites: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write favorites: %w", err)
	}
	return nil
}
