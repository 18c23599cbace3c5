package components

import (
	"errors"
	"strings"

	"github.com/mrsinham/hilom/internal/booking"
)

// Errors renders the fields that blocked a step, one per line. It returns
// an empty string for a nil error.
func Errors(err error) string {
	if err == nil {
		return ""
	}

	var verr *booking.ValidationError
	if !errors.As(err, &verr) {
		return ErrorStyle.Render("! " + err.Error())
	}

	lines := make([]string, len(verr.Fields))
	for i, f := range verr.Fields {
		lines[i] = ErrorStyle.Render("! " + f.String())
	}
	return strings.Join(lines, "\n")
}
