package shanten

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleValues(t *testing.T) {
	cases := []struct {
		b      Blocks
		want8  int8
		want13 int8
	}{
		{Blocks{Melds: 4, Pair: true}, -1, -1},
		{Blocks{Melds: 4}, 0, 1},
		{Blocks{Melds: 4, Isolated: 1}, 0, 0},
		{Blocks{Melds: 3, Cands: 1, Pair: true}, 0, 0},
		{Blocks{Isolated: 14}, 8, 8},
		{Blocks{Isolated: 13}, 8, 8},
		{Blocks{Cands: 1, Isolated: 12}, 7, 7},
		{Blocks{Melds: 2, Cands: 3, Isolated: 1}, 2, 2},
		{Blocks{Melds: 2, Cands: 1, Isolated: 1}, 3, 4},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want8, Scale8.Shanten(tc.b), "%+v", tc.b)
		assert.Equal(t, tc.want13, Scale13.Shanten(tc.b), "%+v", tc.b)
	}
}

func TestCapMovesExcessBlocks(t *testing.T) {
	b := Scale8.Cap(Blocks{Melds: 5, Cands: 1})
	assert.Equal(t, Blocks{Melds: 4, Cands: 0}, b)

	b = Scale13.Cap(Blocks{Melds: 3, Cands: 3, Isolated: 0})
	assert.Equal(t, Blocks{Melds: 3, Cands: 1, Isolated: 1}, b)

	b = Scale13.Cap(Blocks{Melds: 1, Cands: 1, Isolated: 6, Pair: true})
	assert.Equal(t, Blocks{Melds: 1, Cands: 1, Isolated: 2, Pair: true}, b)
}

func TestScaleIdentity(t *testing.T) {
	for m := int8(0); m <= 6; m++ {
		for c := int8(0); c <= 7; c++ {
			for i := int8(0); i <= 14; i++ {
				for _, p := range []bool{false, true} {
					b := Blocks{Melds: m, Cands: c, Isolated: i, Pair: p}
					slack := Slack(b)
					if slack < 0 {
						t.Fatalf("%+v: slack expected >= 0, got %d", b, slack)
					}
					if got, want := Scale13.Shanten(b), Scale8.Shanten(b)+slack; got != want {
						t.Fatalf("%+v: expected %d, got %d", b, want, got)
					}
				}
			}
		}
	}
}

func TestNumCallAndBound(t *testing.T) {
	assert.Equal(t, int8(0), NumCall(14))
	assert.Equal(t, int8(0), NumCall(13))
	assert.Equal(t, int8(1), NumCall(11))
	assert.Equal(t, int8(1), NumCall(10))
	assert.Equal(t, int8(4), NumCall(2))
	assert.Equal(t, int8(4), NumCall(1))

	assert.Equal(t, int8(-1), LowerBound(4, 1))
	assert.Equal(t, int8(4), LowerBound(0, 0))
}
