package codec

import (
	"errors"
	"time"

	goattr "github.com/reoring/goattr"
)

// Duration returns the codec for a duration argument in Go syntax
// ("1h30m", "250ms").
func Duration() goattr.Codec[time.Duration, time.Duration] {
	return goattr.Custom(parseDuration)
}

func parseDuration(n goattr.Node) (time.Duration, error) {
	s, ok := n.Text()
	if !ok {
		return 0, errors.New("duration string such as 1h30m")
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, errors.New("duration string such as 1h30m")
	}
	return d, nil
}
