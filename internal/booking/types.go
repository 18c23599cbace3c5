package booking

import (
	"fmt"
	"strings"
)

// Gender is the patient's self-reported gender.
type Gender int

const (
	GenderUnspecified Gender = iota
	GenderMale
	GenderFemale
	GenderOther
)

// String returns the label shown to the user and stored in the database.
func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	case GenderOther:
		return "Other"
	default:
		return "Prefer not to say"
	}
}

// ParseGender parses a gender label, case-insensitively.
// The empty string means unspecified.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unspecified", "prefer not to say":
		return GenderUnspecified, nil
	case "male", "m":
		return GenderMale, nil
	case "female", "f":
		return GenderFemale, nil
	case "other", "o":
		return GenderOther, nil
	default:
		return GenderUnspecified, fmt.Errorf("invalid gender: %s (valid: male, female, other, unspecified)", s)
	}
}

// ConsultationType is how the patient meets the doctor.
type ConsultationType int

const (
	ConsultationNone ConsultationType = iota
	ConsultationOnline
	ConsultationFaceToFace
)

// String returns the wire form used in history entries and the database.
func (c ConsultationType) String() string {
	switch c {
	case ConsultationOnline:
		return "online"
	case ConsultationFaceToFace:
		return "face-to-face"
	default:
		return ""
	}
}

// Title returns the label shown on screens.
func (c ConsultationType) Title() string {
	switch c {
	case ConsultationOnline:
		return "Online"
	case ConsultationFaceToFace:
		return "Face-to-Face"
	default:
		return "None"
	}
}

// Price is the consultation fee. It depends on the type only.
func (c ConsultationType) Price() int {
	switch c {
	case ConsultationOnline:
		return 100
	case ConsultationFaceToFace:
		return 150
	default:
		return 0
	}
}

// ParseConsultationType parses "online" or "face-to-face".
func ParseConsultationType(s string) (ConsultationType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "online":
		return ConsultationOnline, nil
	case "face-to-face", "face to face", "facetoface", "in-person":
		return ConsultationFaceToFace, nil
	default:
		return ConsultationNone, fmt.Errorf("invalid consultation type: %s (valid: online, face-to-face)", s)
	}
}
