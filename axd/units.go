package axd

import (
	"math"
	"strconv"
	"strings"
)

// PrefixMultiplier maps a one-character SI prefix code to its factor.
// Unknown or empty codes give 1.
func PrefixMultiplier(code string) float64 {
	switch strings.TrimSpace(code) {
	case "f":
		return 1e-15
	case "p":
		return 1e-12
	case "n":
		return 1e-9
	case "u":
		return 1e-6
	case "m":
		return 1e-3
	default:
		return 1
	}
}

// NormalizeAngle maps degrees into (-180, 180]. Non-finite input gives 0.
func NormalizeAngle(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}

// ParseScanAngle reads a ScanAngle tag value such as "45 deg". The number
// is the text before the first space; a value with no space is 0.
func ParseScanAngle(value string) float64 {
	value = strings.TrimLeft(value, " \t\r\n")
	idx := strings.IndexByte(value, ' ')
	if idx < 0 {
		return 0
	}
	return NormalizeAngle(parseFloat(value[:idx]))
}

// parseFloat parses the leading number of s, ignoring surrounding
// whitespace and trailing garbage. Anything unparseable is 0.
func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	v, err := strconv.ParseFloat(s[:numberPrefix(s)], 64)
	if err != nil {
		return 0
	}
	return v
}

// parseInt parses the leading integer of s. Unparseable or negative
// values are 0.
func parseInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// numberPrefix returns the length of the longest decimal floating-point
// literal at the start of s.
func numberPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
