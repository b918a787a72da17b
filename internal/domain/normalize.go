package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	slugStripRe    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapseRe = regexp.MustCompile(`[\s_-]+`)
	slugTrimRe     = regexp.MustCompile(`^-+|-+$`)

	dateRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	timeRe = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):([0-5][0-9])$`)
)

// Slugify derives the canonical URL-safe identifier from a title: lowercase,
// strip everything that is not a word character, space, or hyphen, collapse
// runs of whitespace/underscores/hyphens to a single hyphen, and trim leading
// and trailing hyphens. The result may be empty (e.g. a title of only
// punctuation); callers treat that as a validation error.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugCollapseRe.ReplaceAllString(s, "-")
	return slugTrimRe.ReplaceAllString(s, "")
}

// NormalizeDate validates a calendar date in YYYY-MM-DD form and returns its
// canonical rendering. Input failing the pattern or naming a day that does not
// exist (2024-02-31) is rejected. No timezone component is involved; the date
// is interpreted in UTC.
func NormalizeDate(s string) (string, error) {
	m := dateRe.FindStringSubmatch(s)
	if m == nil {
		return "", fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	// time.Date normalizes overflow (Feb 31 becomes Mar 2), so a round-trip
	// component comparison detects non-existent dates.
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return "", fmt.Errorf("%w: date does not exist", ErrInvalidInput)
	}
	return d.Format("2006-01-02"), nil
}

// NormalizeTime validates a 24-hour clock time and returns canonical HH:MM
// with a zero-padded hour. Accepts H:MM or HH:MM with hour 0-23, minute 00-59.
func NormalizeTime(s string) (string, error) {
	m := timeRe.FindStringSubmatch(s)
	if m == nil {
		return "", fmt.Errorf("%w: time must be in HH:MM format", ErrInvalidInput)
	}
	hour := m[1]
	if len(hour) == 1 {
		hour = "0" + hour
	}
	return hour + ":" + m[2], nil
}

// EventChanges names the fields that are part of the current write. Slug,
// date, and time are (re-)derived only for changed fields, so an update that
// touches neither title, date, nor time leaves them untouched.
type EventChanges struct {
	Title bool
	Date  bool
	Time  bool
}

// AllChanged marks every normalized field as part of the write. Used for
// fresh inserts.
func AllChanged() EventChanges {
	return EventChanges{Title: true, Date: true, Time: true}
}

// Normalize canonicalizes the changed fields of an in-flight event record
// before it is committed: slug from title, date to YYYY-MM-DD, time to HH:MM.
// It mutates only the record itself and rejects the write on malformed input.
// Slug uniqueness is not checked here; the storage layer enforces it at
// commit time and surfaces ErrSlugExists.
func (e *Event) Normalize(changed EventChanges) error {
	if changed.Title {
		slug := Slugify(e.Title)
		if slug == "" {
			return fmt.Errorf("%w: title yields empty slug", ErrInvalidInput)
		}
		e.Slug = slug
	}
	if changed.Date {
		date, err := NormalizeDate(e.Date)
		if err != nil {
			return err
		}
		e.Date = date
	}
	if changed.Time {
		t, err := NormalizeTime(e.Time)
		if err != nil {
			return err
		}
		e.Time = t
	}
	return nil
}
