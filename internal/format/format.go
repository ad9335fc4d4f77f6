// Package format provides display formatting for dates, currency amounts,
// and social insurance numbers.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("en-CA"))

// SetLocale switches the currency printer to the given BCP 47 tag. Call it
// once at startup, before rendering begins.
func SetLocale(tag string) error {
	t, err := language.Parse(tag)
	if err != nil {
		return fmt.Errorf("parse locale %q: %w", tag, err)
	}
	printer = message.NewPrinter(t)
	return nil
}

var (
	nineDigits = regexp.MustCompile(`^\d{9}$`)
	sinPattern = regexp.MustCompile(`^\d{9}$|^\d{3}-\d{3}-\d{3}$`)
)

// Date normalizes a date string into MM/DD/YYYY display form without
// timezone shifts. ISO dates (YYYY-MM-DD) are split textually; strings
// already containing slashes pass through unchanged, as does anything
// unparseable.
func Date(s string) string {
	if s == "" {
		return ""
	}
	if strings.Contains(s, "-") {
		parts := strings.Split(s, "-")
		if len(parts) == 3 {
			year, errY := strconv.Atoi(parts[0])
			month, errM := strconv.Atoi(parts[1])
			day, errD := strconv.Atoi(parts[2])
			if errY == nil && errM == nil && errD == nil {
				return fmt.Sprintf("%02d/%02d/%04d", month, day, year)
			}
		}
		return s
	}
	if strings.Contains(s, "/") {
		return s
	}
	if t, err := time.Parse("January 2, 2006", s); err == nil {
		return t.Format("01/02/2006")
	}
	return s
}

// Currency renders a monetary amount with locale grouping, e.g. 1000 →
// "1,000". Fractional cents are kept only when present.
func Currency(v float64) string {
	return printer.Sprintf("%v", number.Decimal(v))
}

// Amount2 renders a derived amount with exactly two decimals and no
// grouping, matching the fixed-point derivation output.
func Amount2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// SIN re-groups a 9-digit social insurance number as 123-456-789. Input that
// is not nine digits after dash removal is returned unchanged.
func SIN(s string) string {
	if s == "" {
		return ""
	}
	clean := strings.ReplaceAll(s, "-", "")
	if nineDigits.MatchString(clean) {
		return clean[0:3] + "-" + clean[3:6] + "-" + clean[6:9]
	}
	return s
}

// ValidSIN reports whether s is an acceptable SIN entry: nine digits with or
// without grouping dashes.
func ValidSIN(s string) bool {
	return sinPattern.MatchString(s)
}
