// Package format renders engagement counts in the Korean abbreviated style
// used across the dashboard.
package format

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	hundredMillion = 100_000_000 // 억
	tenThousand    = 10_000      // 만
)

var grouped = message.NewPrinter(language.Korean)

// Count formats a raw count string from the API. Values of at least one
// hundred million become "N.N억", values of at least ten thousand become
// "N.N만", smaller values are thousands-grouped. Input that does not parse
// as an integer is returned unchanged.
func Count(raw string) string {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return raw
	}
	return CountInt(v)
}

// CountInt is the integer form of Count.
func CountInt(v int64) string {
	switch {
	case v >= hundredMillion:
		return strconv.FormatFloat(float64(v)/hundredMillion, 'f', 1, 64) + "억"
	case v >= tenThousand:
		return strconv.FormatFloat(float64(v)/tenThousand, 'f', 1, 64) + "만"
	default:
		return grouped.Sprintf("%d", v)
	}
}
