package ingest

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Per-field parse/fallback helpers. Each one is total: any raw value maps to a
// usable typed value, so normalization never fails row-by-row. The sentinels
// are not interchangeable — downstream aggregation groups on them verbatim.

// text returns the trimmed raw value, or fallback when it is empty.
func text(raw, fallback string) string {
	if raw == "" {
		return fallback
	}
	return raw
}

// integer parses a whole number, accepting a decimal representation by
// truncation. Absent, unparseable or negative values yield the fallback.
func integer(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return fallback
		}
		n = int(f)
	}
	if n < 0 {
		return fallback
	}
	return n
}

// money parses a non-negative decimal with a zero-style fallback. Used for
// fields where "unknown" and "zero" are the same thing (MRP, discounts).
func money(raw string, fallback decimal.Decimal) decimal.Decimal {
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return fallback
	}
	return d
}

// nullableMoney parses a non-negative decimal where absence means unknown
// rather than zero: absent, unparseable and negative values all map to nil.
func nullableMoney(raw string) *decimal.Decimal {
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return nil
	}
	return &d
}

// totalValue applies the three-way policy of the sales Total column:
// the literal markers "cancelled" and "returned" mean the line carries no
// revenue (nil, not an error); any other unparseable value is also nil;
// a valid value parses to a non-negative decimal.
func totalValue(raw string) *decimal.Decimal {
	switch strings.ToLower(raw) {
	case "cancelled", "returned":
		return nil
	}
	return nullableMoney(raw)
}

// dateValue parses an ISO calendar date, defaulting to the processing date
// (not the upload's original date) when absent or unparseable.
func dateValue(raw string) time.Time {
	if raw != "" {
		if d, err := time.Parse("2006-01-02", raw); err == nil {
			return d
		}
	}
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
