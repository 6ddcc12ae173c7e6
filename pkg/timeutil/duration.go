package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultWindow is how far back history listings look when no --since is
// given.
const DefaultWindow = "2w"

const day = 24 * time.Hour

type unit struct {
	label   string
	aliases []string
	value   time.Duration
}

// units is ordered largest first; FormatWindow relies on that.
var units = []unit{
	{"w", []string{"wk", "wks", "week", "weeks"}, 7 * day},
	{"d", []string{"day", "days"}, day},
	{"h", []string{"hr", "hrs", "hour", "hours"}, time.Hour},
	{"m", []string{"min", "mins", "minute", "minutes"}, time.Minute},
	{"s", []string{"sec", "secs", "second", "seconds"}, time.Second},
}

var segment = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)

func lookupUnit(name string) (time.Duration, bool) {
	for _, u := range units {
		if u.label == name {
			return u.value, true
		}
		for _, a := range u.aliases {
			if a == name {
				return u.value, true
			}
		}
	}
	return 0, false
}

// ParseWindow reads a lookback such as "3d", "2 weeks" or "1w2d" and returns
// it with its compact spelling. Empty input means DefaultWindow.
func ParseWindow(input string) (time.Duration, string, error) {
	rest := strings.ToLower(strings.TrimSpace(input))
	if rest == "" {
		rest = DefaultWindow
	}

	var total time.Duration
	for len(rest) > 0 {
		m := segment.FindStringSubmatch(rest)
		if m == nil {
			return 0, "", fmt.Errorf("timeutil: invalid window segment %q", strings.TrimSpace(rest))
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("timeutil: invalid window value %q: %w", m[1], err)
		}
		base, ok := lookupUnit(m[2])
		if !ok {
			return 0, "", fmt.Errorf("timeutil: unsupported window unit %q", m[2])
		}
		total += time.Duration(n) * base
		rest = strings.TrimSpace(rest[len(m[0]):])
	}
	if total <= 0 {
		return 0, "", fmt.Errorf("timeutil: window must be greater than zero")
	}
	return total, FormatWindow(total), nil
}

// FormatWindow is the inverse of ParseWindow, e.g. 1w2d6h.
func FormatWindow(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	var b strings.Builder
	for _, u := range units {
		if d < u.value {
			continue
		}
		n := d / u.value
		d -= n * u.value
		fmt.Fprintf(&b, "%d%s", n, u.label)
	}
	if b.Len() == 0 {
		return "0s"
	}
	return b.String()
}

// Since returns the start of a window of length d ending at now.
func Since(now time.Time, d time.Duration) time.Time {
	return now.Add(-d)
}
