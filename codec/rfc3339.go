// Package codec carries extra value kinds built on goattr.Custom for
// types the core leaves out: timestamps and durations.
package codec

import (
	"errors"
	"time"

	goattr "github.com/reoring/goattr"
)

// RFC3339 returns the codec for a timestamp argument written as an
// RFC3339 string ("2026-01-02T15:04:05Z").
func RFC3339() goattr.Codec[time.Time, time.Time] {
	return goattr.Custom(parseRFC3339)
}

func parseRFC3339(n goattr.Node) (time.Time, error) {
	s, ok := n.Text()
	if !ok {
		return time.Time{}, errors.New("RFC3339 timestamp string")
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errors.New("RFC3339 timestamp string")
	}
	return t, nil
}

// FormatRFC3339 renders t canonically: UTC when the offset is zero,
// keeping the original zone otherwise.
func FormatRFC3339(t time.Time) string {
	if _, off := t.Zone(); off == 0 {
		return t.UTC().Format(time.RFC3339)
	}
	return t.Format(time.RFC3339)
}
