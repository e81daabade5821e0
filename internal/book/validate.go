package book

import (
	"strings"
	"time"
	"unicode"
)

// Validation reasons returned by Validate, keyed by field name.
// The TUI form translates these into full sentences; scripting commands
// print them as-is.
const (
	ReasonRequired      = "Required"
	ReasonOutOfRange    = "OutOfRange"
	ReasonInvalidFormat = "InvalidFormat"
)

// MinYear is the earliest publication year accepted by the catalog.
const MinYear = 1000

// ISBNLength is the number of digits in an ISBN-13.
const ISBNLength = 13

// MaxYear returns the latest publication year currently accepted.
// Books may be catalogued up to ten years ahead of print.
func MaxYear() int {
	return time.Now().Year() + 10
}

// Validate checks every field of a candidate record and reports all
// failures at once, so a form can mark every invalid field in a single
// pass. An empty map means the record is valid. Validation never touches
// the network; ISBN uniqueness is the service's job.
func Validate(b Book) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(b.Title) == "" {
		errs["title"] = ReasonRequired
	}
	if strings.TrimSpace(b.Author) == "" {
		errs["author"] = ReasonRequired
	}
	if b.Year < MinYear || b.Year > MaxYear() {
		errs["year"] = ReasonOutOfRange
	}
	if strings.TrimSpace(b.ISBN) == "" {
		errs["isbn"] = ReasonRequired
	} else if len(digits(b.ISBN)) != ISBNLength {
		errs["isbn"] = ReasonInvalidFormat
	}

	return errs
}

// NormalizeISBN strips everything that is not a digit and truncates the
// result to thirteen digits. The form runs typed input through this on
// every keystroke, so the field can never exceed the limit; a shorter
// string passes through untouched and only fails at submit time.
func NormalizeISBN(s string) string {
	d := digits(s)
	if len(d) > ISBNLength {
		return d[:ISBNLength]
	}
	return d
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
