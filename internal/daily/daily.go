// Package daily maps calendar dates to positions in an answer list.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// Epoch is the date of the first answer in the published answer history.
var Epoch = time.Date(2021, time.June, 19, 0, 0, 0, 0, time.UTC)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ParseDate parses a YYYY-MM-DD key.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// DayNumber returns the answer-history index for date, counted in whole
// UTC days from Epoch. Dates before Epoch give a negative number.
func DayNumber(date time.Time) int {
	d := date.UTC().Truncate(24 * time.Hour)
	return int(d.Sub(Epoch).Hours() / 24)
}

// WordIndex returns a deterministic index for a date using
// HMAC(salt, YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Index picks the answer for date: the history position when the date is
// covered by a list of length n, otherwise the salted WordIndex.
func Index(date time.Time, salt string, n int) int {
	if day := DayNumber(date); day >= 0 && day < n {
		return day
	}
	return WordIndex(date, salt, n)
}
