// Copyright (c) 2026 Diwan. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert turns loosely typed text into numbers.

Query parameters and remote catalogue fields both arrive as strings of
uncertain quality ("12", " 12 ", "12.0", ""). These helpers never fail;
callers that must tell malformed input from zero parse with [strconv] instead.
*/
package convert

import (
	"math"
	"strconv"
	"strings"
)

// ToInt converts s to an int, returning 0 when it is blank or not numeric.
// Integral floats such as "12.0" are accepted; fractions are truncated and
// out-of-range values saturate at the int limits.
func ToInt(s string) int {
	return ToIntD(s, 0)
}

// ToIntD converts s to an int, returning def when it is blank or not numeric.
func ToIntD(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}

	if v, err := strconv.Atoi(s); err == nil {
		return v
	}

	// Remote sources sometimes serialize counts as JSON floats
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return def
	}
	switch {
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}
