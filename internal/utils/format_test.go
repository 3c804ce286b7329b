package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToRoman(t *testing.T) {
	cases := map[int]string{
		-1:   "",
		0:    "",
		1:    "I",
		4:    "IV",
		9:    "IX",
		14:   "XIV",
		40:   "XL",
		1994: "MCMXCIV",
	}
	for in, want := range cases {
		assert.Equal(t, want, ToRoman(in), "ToRoman(%d)", in)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "0:00", FormatClock(-3))
	assert.Equal(t, "0:02", FormatClock(2.9))
	assert.Equal(t, "1:05", FormatClock(65))
	assert.Equal(t, "12:00", FormatClock(720))
}
