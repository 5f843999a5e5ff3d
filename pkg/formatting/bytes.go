// Package formatting converts byte sizes between counts and the short
// human-readable forms used in config files and CLI output.
package formatting

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

var units = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}

// FormatBytes renders n with the largest base-1024 unit that keeps the value
// at or above one. Negative precision is treated as zero.
func FormatBytes(n int64, precision int) string {
	precision = max(precision, 0)
	if n < 1024 && n > -1024 {
		return strconv.FormatInt(n, 10) + " B"
	}

	v, i := float64(n), 0
	for math.Abs(v) >= 1024 && i < len(units)-1 {
		v /= 1024
		i++
	}
	return strconv.FormatFloat(v, 'f', precision, 64) + " " + units[i]
}

// ParseBytes reads sizes such as "16KB", "1.5 MiB", or "2048". Units are
// base-1024 and case-insensitive; the IEC spelling (KiB) and the short
// spelling (KB, K) are equivalent. A bare number is a byte count.
func ParseBytes(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty byte size")
	}

	split := strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsDigit(r) && r != '.'
	})
	num, unit := s, ""
	if split >= 0 {
		num, unit = s[:split], strings.TrimSpace(s[split:])
	}

	value, err := strconv.ParseFloat(num, 64)
	if err != nil || num == "" {
		return 0, fmt.Errorf("invalid byte size %q", s)
	}

	exp, ok := unitExponent(unit)
	if !ok {
		return 0, fmt.Errorf("unknown byte size unit %q", unit)
	}

	bytes := value * math.Pow(1024, float64(exp))
	if bytes >= math.MaxInt64 {
		return 0, fmt.Errorf("byte size %q overflows", s)
	}
	return int64(bytes), nil
}

func unitExponent(unit string) (int, bool) {
	u := strings.ToUpper(unit)
	if u == "" || u == "B" {
		return 0, true
	}

	u = strings.TrimSuffix(strings.TrimSuffix(u, "B"), "I")
	if len(u) != 1 {
		return 0, false
	}
	for i, name := range units[1:] {
		if name[0] == u[0] {
			return i + 1, true
		}
	}
	return 0, false
}
