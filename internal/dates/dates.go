// Package dates converts between the legacy compact date form (YYYYMMDD) and
// the canonical YYYY/MM/DD form used for both display and storage.
//
// Every conversion here is total: malformed input is passed through trimmed
// rather than rejected. Callers that want validation use Check.
package dates

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Sep separates the year, month and day components in canonical form.
const Sep = "/"

const (
	unsetYear = "0000"
	unsetPart = "00"
)

// ErrInvalidDate is wrapped by Check for values that are not canonical dates.
var ErrInvalidDate = errors.New("invalid date")

// ToDisplay returns the canonical form of v.
//
// Trailing ".0" suffixes left over from numeric coercion are stripped, values that
// already contain a separator are returned as-is, and exactly eight digits are
// split into YYYY/MM/DD. Anything else comes back trimmed.
func ToDisplay(v string) string {
	v = strings.TrimSpace(v)
	for strings.HasSuffix(v, ".0") {
		v = strings.TrimSpace(strings.TrimSuffix(v, ".0"))
	}
	if strings.Contains(v, Sep) {
		return v
	}
	if len(v) == 8 && allDigits(v) {
		return v[:4] + Sep + v[4:6] + Sep + v[6:]
	}
	return v
}

// ToStorage returns the form written to the data files. The store keeps a
// single canonical form, so this is the same rule set as ToDisplay.
func ToStorage(v string) string {
	return ToDisplay(v)
}

// IsLegacy reports whether ToStorage would rewrite v.
func IsLegacy(v string) bool {
	return ToStorage(v) != v
}

// ParseFromFields joins field-level editor input into canonical form.
// Blank components become "0000" / "00"; single-digit month and day values are
// zero-padded. Calendar validity is not checked.
func ParseFromFields(year, month, day string) string {
	year = strings.TrimSpace(year)
	if year == "" {
		year = unsetYear
	}
	return year + Sep + padPart(month) + Sep + padPart(day)
}

// SplitToFields is the inverse of ParseFromFields. Unset components ("0000"
// for the year, "00" for month and day) are returned as empty strings.
func SplitToFields(v string) (year, month, day string) {
	v = ToDisplay(v)
	if v == "" {
		return "", "", ""
	}
	parts := strings.SplitN(v, Sep, 3)
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	year = strings.TrimSpace(parts[0])
	if year == unsetYear {
		year = ""
	}
	return year, unsetToBlank(parts[1]), unsetToBlank(parts[2])
}

// Today returns the canonical form of now's calendar date.
func Today(now time.Time) string {
	return now.Format("2006" + Sep + "01" + Sep + "02")
}

// Check validates a stored value. The empty string is valid (no date).
// Unset components are allowed; when all three are set they must form a
// real calendar date.
func Check(v string) error {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, Sep)
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return fmt.Errorf("%w: %q is not in YYYY/MM/DD form", ErrInvalidDate, v)
	}
	for _, p := range parts {
		if !allDigits(p) {
			return fmt.Errorf("%w: %q has non-digit components", ErrInvalidDate, v)
		}
	}
	y, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	d, _ := strconv.Atoi(parts[2])
	if m > 12 {
		return fmt.Errorf("%w: month %02d out of range", ErrInvalidDate, m)
	}
	if d > 31 {
		return fmt.Errorf("%w: day %02d out of range", ErrInvalidDate, d)
	}
	if y == 0 || m == 0 || d == 0 {
		return nil
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Day() != d {
		return fmt.Errorf("%w: %s does not exist", ErrInvalidDate, v)
	}
	return nil
}

func padPart(s string) string {
	s = strings.TrimSpace(s)
	switch len(s) {
	case 0:
		return unsetPart
	case 1:
		return "0" + s
	default:
		return s
	}
}

func unsetToBlank(s string) string {
	s = strings.TrimSpace(s)
	if s == unsetPart || s == "0" {
		return ""
	}
	return s
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
