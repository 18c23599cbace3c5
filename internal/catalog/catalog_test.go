package catalog

import (
	"strings"
	"testing"
)

func TestDefault_Shape(t *testing.T) {
	c := Default()

	if got := len(c.Hospitals()); got != 3 {
		t.Errorf("Expected 3 hospitals, got %d", got)
	}
	if got := len(c.Doctors()); got != 3 {
		t.Errorf("Expected 3 doctors, got %d", got)
	}

	for _, h := range c.Hospitals() {
		if h.Name == "" || h.Address == "" || h.Distance == "" || h.OpenHours == "" {
			t.Errorf("Hospital %d has empty descriptive fields: %+v", h.ID, h)
		}
		if h.Rating < 1 || h.Rating > 5 {
			t.Errorf("Hospital %d rating %.1f out of range", h.ID, h.Rating)
		}
	}
	for _, d := range c.Doctors() {
		if d.Name == "" || d.Specialty == "" {
			t.Errorf("Doctor %d has empty descriptive fields: %+v", d.ID, d)
		}
		if d.Years <= 0 {
			t.Errorf("Doctor %d has non-positive years %d", d.ID, d.Years)
		}
		if d.Rating < 1 || d.Rating > 5 {
			t.Errorf("Doctor %d rating %.1f out of range", d.ID, d.Rating)
		}
	}
}

func TestDefault_UniqueIDs(t *testing.T) {
	c := Default()

	seen := map[int]bool{}
	for _, h := range c.Hospitals() {
		if seen[h.ID] {
			t.Errorf("Duplicate hospital id %d", h.ID)
		}
		seen[h.ID] = true
	}

	seen = map[int]bool{}
	for _, d := range c.Doctors() {
		if seen[d.ID] {
			t.Errorf("Duplicate doctor id %d", d.ID)
		}
		seen[d.ID] = true
	}
}

func TestLoad_RejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		errorMsg string
	}{
		{
			name: "duplicate_hospital",
			doc: `
hospitals:
  - {id: 1, name: A, rating: 4}
  - {id: 1, name: B, rating: 4}
`,
			errorMsg: "duplicate hospital id 1",
		},
		{
			name: "duplicate_doctor",
			doc: `
doctors:
  - {id: 7, name: A, rating: 4}
  - {id: 7, name: B, rating: 4}
`,
			errorMsg: "duplicate doctor id 7",
		},
		{
			name: "rating_too_high",
			doc: `
hospitals:
  - {id: 1, name: A, rating: 5.5}
`,
			errorMsg: "out of range",
		},
		{
			name: "missing_hospital_id",
			doc: `
hospitals:
  - {name: A, rating: 4}
`,
			errorMsg: "id must be positive",
		},
		{
			name: "negative_doctor_id",
			doc: `
doctors:
  - {id: -2, name: A, rating: 4}
`,
			errorMsg: "id must be positive",
		},
		{
			name:     "not_yaml",
			doc:      "hospitals: [",
			errorMsg: "decoding catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("Expected error but got nil")
			}
			if !strings.Contains(err.Error(), tt.errorMsg) {
				t.Errorf("Expected error containing '%s', got: %v", tt.errorMsg, err)
			}
		})
	}
}

func TestNew_RejectsZeroID(t *testing.T) {
	if _, err := New([]Hospital{{ID: 0, Name: "Nowhere", Rating: 4}}, nil); err == nil {
		t.Error("Expected hospital id 0 to be rejected")
	}
	if _, err := New(nil, []Doctor{{ID: 0, Name: "Dr. Nobody", Rating: 4}}); err == nil {
		t.Error("Expected doctor id 0 to be rejected")
	}
}

func TestLookup(t *testing.T) {
	c := Default()

	h, ok := c.Hospital(2)
	if !ok {
		t.Fatal("Expected hospital 2 to exist")
	}
	if h.Name != "We Care Hospital" {
		t.Errorf("Expected 'We Care Hospital', got %q", h.Name)
	}

	if _, ok := c.Doctor(99); ok {
		t.Error("Expected doctor 99 to be missing")
	}
}

func TestMustHospital_PanicsOnMiss(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected MustHospital to panic on unknown id")
		}
	}()
	Default().MustHospital(42)
}

func TestHospitals_ReturnsCopy(t *testing.T) {
	c := Default()
	list := c.Hospitals()
	list[0].Name = "changed"

	if c.MustHospital(list[0].ID).Name == "changed" {
		t.Error("Expected catalog to be immutable through returned slices")
	}
}
