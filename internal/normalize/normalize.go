// Package normalize coerces raw source fields into their typed destination
// values. Every function is stateless; a value that does not fit its rule is
// a source error.
package normalize

import (
	"strconv"
	"strings"
	"time"

	"github.com/fortuna/rinkside/internal/etl"
)

const dateLayout = "2006-01-02"

// Date parses a strict YYYY-MM-DD value.
func Date(raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, etl.Wrap(err, etl.KindSource, "malformed date %q", raw)
	}
	return t, nil
}

// Int parses a base-10 integer, stripping thousands separators first
// ("12,345" -> 12345).
func Int(raw string) (int, error) {
	n, err := strconv.Atoi(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return 0, etl.Wrap(err, etl.KindSource, "malformed integer %q", raw)
	}
	return n, nil
}

// NonNegativeInt is Int restricted to values >= 0.
func NonNegativeInt(raw string) (int, error) {
	n, err := Int(raw)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, etl.New(etl.KindSource, "negative value %d where a count was expected", n)
	}
	return n, nil
}

// ClockMinutes reduces an MM:SS value to whole minutes. The minutes component
// is taken as-is and seconds beyond the minute are discarded ("65:30" -> 65),
// but both components must parse so a malformed clock is still rejected.
func ClockMinutes(raw string) (int, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return 0, etl.New(etl.KindSource, "malformed clock %q", raw)
	}
	minutes, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, etl.Wrap(err, etl.KindSource, "malformed clock %q", raw)
	}
	if _, err := strconv.Atoi(parts[1]); err != nil {
		return 0, etl.Wrap(err, etl.KindSource, "malformed clock %q", raw)
	}
	return minutes, nil
}

// HeightInches converts a F'II" height to total inches (5'11" -> 71).
func HeightInches(raw string) (int, error) {
	parts := strings.Split(strings.ReplaceAll(raw, `"`, ""), "'")
	if len(parts) != 2 {
		return 0, etl.New(etl.KindSource, "malformed height %q", raw)
	}
	feet, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, etl.Wrap(err, etl.KindSource, "malformed height %q", raw)
	}
	inches, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, etl.Wrap(err, etl.KindSource, "malformed height %q", raw)
	}
	return feet*12 + inches, nil
}
