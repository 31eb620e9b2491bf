package billing

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NextNumber suggests the next invoice number after last, in YYYY-NNN form.
// last is the number of the tenant's most recently created invoice, or the
// empty string when none exists yet.
//
// The sequence resets to 001 on a new year, and any number that does not
// parse as exactly {year}-{seq} falls back to a fresh sequence for the
// current year (legacy data may hold free-form numbers).
//
// This is advisory only: the suggestion is never reserved, and the stored
// number is whatever the client submits on creation.
func NextNumber(last string, now time.Time) string {
	year := now.Year()
	fresh := fmt.Sprintf("%d-001", year)
	if last == "" {
		return fresh
	}

	parts := strings.Split(last, "-")
	if len(parts) != 2 {
		return fresh
	}
	lastYear, err := strconv.Atoi(parts[0])
	if err != nil || lastYear != year {
		return fresh
	}
	seq, err := strconv.Atoi(parts[1])
	if err != nil {
		return fresh
	}
	return fmt.Sprintf("%d-%03d", year, seq+1)
}
