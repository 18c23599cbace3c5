package recommend

import (
	"encoding/csv"
	"errors"
	"math/rand/v2"
	"os"
	"strings"
)

// FallbackQuote is shown when no quote file is available.
const FallbackQuote = "Every day is a fresh start."

// Quotes reads the first column of every non-empty row of path.
func Quotes(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	var out []string
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if q := strings.TrimSpace(row[0]); q != "" {
			out = append(out, q)
		}
	}
	return out, nil
}

// DailyQuote picks one quote from path, or FallbackQuote when the file is
// missing, empty or unreadable.
func DailyQuote(path string, rng *rand.Rand) string {
	quotes, err := Quotes(path)
	if err != nil || len(quotes) == 0 {
		return FallbackQuote
	}
	if rng == nil {
		return quotes[rand.IntN(len(quotes))]
	}
	return quotes[rng.IntN(len(quotes))]
}
