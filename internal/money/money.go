// Package money parses and formats the string-encoded currency and
// timestamp fields used on the wire. Currency values never pass through
// binary floating point: every amount is handled as an exact decimal.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// Parse converts a decimal string such as "8.50" into an exact decimal.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

// Format renders an amount with exactly two decimal places, rounding
// half away from zero.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// ParseUnix converts a string-encoded Unix-seconds timestamp.
func ParseUnix(s string) (int64, error) {
	sec, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
	}
	return sec, nil
}

// FormatUnix renders a time as string-encoded Unix seconds.
func FormatUnix(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}
