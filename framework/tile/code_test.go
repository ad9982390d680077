package tile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCode(t *testing.T) {
	h, err := ParseCode("123m456p789s1122z")
	require.NoError(t, err)

	var want Counts
	for _, i := range []Type{Man1, Man2, Man3, Pin4, Pin5, Pin6, So7, So8, So9, East, East, South, South} {
		want[i]++
	}
	assert.Equal(t, want, h)
	assert.Equal(t, 13, h.Sum())
}

func TestParseCodeEmpty(t *testing.T) {
	h, err := ParseCode("")
	require.NoError(t, err)
	assert.Equal(t, Counts{}, h)
	assert.ErrorIs(t, h.Validate(), ErrEmptyHand)
}

func TestParseCodeReorderInvariant(t *testing.T) {
	codes := []string{
		"123m456p789s1122z",
		"1122z789s456p123m",
		"321m654p987s2121z",
		"12m3m456p7s8s9s11z22z",
	}
	first := MustParse(codes[0])
	for _, c := range codes[1:] {
		assert.Equal(t, first, MustParse(c), c)
	}
}

func TestParseCodeWhitespace(t *testing.T) {
	assert.Equal(t, MustParse("123m456p"), MustParse(" 123m 456p\t"))
}

func TestParseCodeErrors(t *testing.T) {
	cases := []struct {
		code string
		want error
	}{
		{"123", ErrNoSuit},
		{"1m2", ErrNoSuit},
		{"8z", ErrRankOutOfRange},
		{"0m", ErrRankOutOfRange},
		{"11111m", ErrTooManyCopies},
		{"12x3m", ErrInvalidChar},
		{"123M", ErrInvalidChar},
	}
	for _, tc := range cases {
		_, err := ParseCode(tc.code)
		if !errors.Is(err, tc.want) {
			t.Fatalf("ParseCode(%q) expected %v, got %v", tc.code, tc.want, err)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("9z") })
}
