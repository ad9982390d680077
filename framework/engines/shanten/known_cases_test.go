package shanten_test

import (
	"testing"

	"github.com/Apricot-S/shanten-algorithm-collection/framework/engines/shanten"
	"github.com/Apricot-S/shanten-algorithm-collection/framework/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 只看块数的公式会把已用满 4 张的孤张也算作可用，少算一向听
var quadShortfall = map[string]int8{
	"1111m123p112233s": 0,
	"1111234444m1111p": 0,
	"11112222333444z":  0,
	"11114444m":        0,
	"1111444478m":      1,
	"1111z":            0,
	"123m1111z":        0,
	"11112222z":        0,
	"123m11p11112222z": 1,
}

// 8 权重的块公式还会把两个面子之外没有任何牌的情形算成听牌
var blockOnlyShortfall = map[string]int8{
	"234p567s": 0,
}

func deviations(name string) map[string]int8 {
	out := map[string]int8{}
	switch name {
	case shanten.NameDecomp, shanten.NameDecompPruned, shanten.NameAraRemoval:
		for k, v := range blockOnlyShortfall {
			out[k] = v
		}
		fallthrough
	case shanten.NameKobayashi:
		for k, v := range quadShortfall {
			out[k] = v
		}
	}
	return out
}

func TestKnownCases(t *testing.T) {
	for _, name := range shanten.CrossCheckNames() {
		calc, err := shanten.New(name)
		require.NoError(t, err)
		dev := deviations(name)
		t.Run(name, func(t *testing.T) {
			for _, tc := range shanten.KnownCases {
				want := tc.Want
				if v, ok := dev[tc.Code]; ok {
					want = v
				}
				got := calc.CalculateShanten(tile.MustParse(tc.Code))
				if got != want {
					t.Fatalf("%s: expected %d, got %d", tc.Code, want, got)
				}
			}
		})
	}
}

func TestOraclesAreExact(t *testing.T) {
	oracles := shanten.OracleNames()
	assert.Equal(t, []string{shanten.NameDecompFixed, shanten.NameMeldSearch}, oracles)
	for _, name := range oracles {
		assert.Empty(t, deviations(name), name)
	}
}

func TestDeviationsAreUndercounts(t *testing.T) {
	want := map[string]int8{}
	for _, tc := range shanten.KnownCases {
		want[tc.Code] = tc.Want
	}
	for _, name := range shanten.CrossCheckNames() {
		for code, v := range deviations(name) {
			w, ok := want[code]
			require.True(t, ok, code)
			assert.Equal(t, w-1, v, "%s %s", name, code)
		}
	}
}
