// Copyright (c) 2026 Diwan. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/diwan/pkg/convert"
)

/*
TestToIntD verifies tolerant integer parsing of query and remote values.
*/
func TestToIntD(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"plain", "12", 12},
		{"padded", " 7 ", 7},
		{"negative", "-3", -3},
		{"integral float", "12.0", 12},
		{"fraction truncated", "4.9", 4},
		{"blank", "", 5},
		{"word", "twelve", 5},
		{"nan", "NaN", 5},
		{"infinite", "Inf", math.MaxInt},
		{"beyond int", "99999999999999999999", math.MaxInt},
		{"below int", "-99999999999999999999", math.MinInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convert.ToIntD(tt.in, 5))
		})
	}
}

/*
TestToInt verifies that unparsable input collapses to zero.
*/
func TestToInt(t *testing.T) {
	assert.Equal(t, 40, convert.ToInt("40"))
	assert.Zero(t, convert.ToInt("n/a"))
	assert.Zero(t, convert.ToInt(""))
}
