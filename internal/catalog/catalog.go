// Package catalog holds the static hospital and doctor reference lists.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Hospital is a bookable hospital or clinic.
type Hospital struct {
	ID        int     `yaml:"id"`
	Name      string  `yaml:"name"`
	Address   string  `yaml:"address"`
	Rating    float64 `yaml:"rating"`
	Distance  string  `yaml:"distance"`
	OpenHours string  `yaml:"open_hours"`
}

// Doctor is a practitioner that can be booked at any listed hospital.
type Doctor struct {
	ID        int     `yaml:"id"`
	Name      string  `yaml:"name"`
	Years     int     `yaml:"years"`
	Rating    float64 `yaml:"rating"`
	Specialty string  `yaml:"specialty"`
}

// Catalog is an immutable view over hospitals and doctors.
// It is safe to share once built.
type Catalog struct {
	hospitals []Hospital
	doctors   []Doctor

	hospitalByID map[int]int
	doctorByID   map[int]int
}

type document struct {
	Hospitals []Hospital `yaml:"hospitals"`
	Doctors   []Doctor   `yaml:"doctors"`
}

// Load parses a YAML catalog document and checks its invariants.
func Load(r io.Reader) (*Catalog, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	return New(doc.Hospitals, doc.Doctors)
}

// New builds a catalog from the given records. Ids must be positive and
// unique per list, and ratings must lie in [1, 5]. Id 0 means "not chosen"
// in a booking draft.
func New(hospitals []Hospital, doctors []Doctor) (*Catalog, error) {
	c := &Catalog{
		hospitals:    append([]Hospital(nil), hospitals...),
		doctors:      append([]Doctor(nil), doctors...),
		hospitalByID: make(map[int]int, len(hospitals)),
		doctorByID:   make(map[int]int, len(doctors)),
	}

	for i, h := range c.hospitals {
		if h.ID <= 0 {
			return nil, fmt.Errorf("hospital %q: id must be positive, got %d", h.Name, h.ID)
		}
		if _, dup := c.hospitalByID[h.ID]; dup {
			return nil, fmt.Errorf("duplicate hospital id %d", h.ID)
		}
		if err := checkRating(h.Rating); err != nil {
			return nil, fmt.Errorf("hospital %d: %w", h.ID, err)
		}
		c.hospitalByID[h.ID] = i
	}
	for i, d := range c.doctors {
		if d.ID <= 0 {
			return nil, fmt.Errorf("doctor %q: id must be positive, got %d", d.Name, d.ID)
		}
		if _, dup := c.doctorByID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate doctor id %d", d.ID)
		}
		if err := checkRating(d.Rating); err != nil {
			return nil, fmt.Errorf("doctor %d: %w", d.ID, err)
		}
		c.doctorByID[d.ID] = i
	}

	return c, nil
}

func checkRating(r float64) error {
	if r < 1 || r > 5 {
		return fmt.Errorf("rating %.1f out of range [1, 5]", r)
	}
	return nil
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the catalog shipped with the binary. It is parsed once.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(bytes.NewReader(defaultCatalog))
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded catalog is invalid: %v", err))
		}
		defaultCat = c
	})
	return defaultCat
}

// Hospitals returns a copy of the hospital list in catalog order.
func (c *Catalog) Hospitals() []Hospital {
	return append([]Hospital(nil), c.hospitals...)
}

// Doctors returns a copy of the doctor list in catalog order.
func (c *Catalog) Doctors() []Doctor {
	return append([]Doctor(nil), c.doctors...)
}

// Hospital looks up a hospital by id.
func (c *Catalog) Hospital(id int) (Hospital, bool) {
	i, ok := c.hospitalByID[id]
	if !ok {
		return Hospital{}, false
	}
	return c.hospitals[i], true
}

// Doctor looks up a doctor by id.
func (c *Catalog) Doctor(id int) (Doctor, bool) {
	i, ok := c.doctorByID[id]
	if !ok {
		return Doctor{}, false
	}
	return c.doctors[i], true
}

// MustHospital is like Hospital but panics on a miss. Ids handed to the
// booking flow only ever come from this catalog, so a miss is a bug.
func (c *Catalog) MustHospital(id int) Hospital {
	h, ok := c.Hospital(id)
	if !ok {
		panic(fmt.Sprintf("catalog: unknown hospital id %d", id))
	}
	return h
}

// MustDoctor is like Doctor but panics on a miss.
func (c *Catalog) MustDoctor(id int) Doctor {
	d, ok := c.Doctor(id)
	if !ok {
		panic(fmt.Sprintf("catalog: unknown doctor id %d", id))
	}
	return d
}
