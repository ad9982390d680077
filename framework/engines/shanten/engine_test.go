package shanten_test

import (
	"sync"
	"testing"

	"github.com/Apricot-S/shanten-algorithm-collection/framework/engines/shanten"
	"github.com/Apricot-S/shanten-algorithm-collection/framework/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{
		"decomp", "decomp-pruned", "decomp-fixed", "ara-removal", "kobayashi", "meld-search", "zero",
	}, shanten.Names())
	assert.NotContains(t, shanten.CrossCheckNames(), shanten.NameZero)

	for _, d := range shanten.Descriptors() {
		calc := d.New()
		assert.Equal(t, d.Name, calc.Name())
		assert.NotEmpty(t, d.Summary)
	}

	_, err := shanten.New("nope")
	assert.ErrorIs(t, err, shanten.ErrUnknownEngine)
}

func TestScalesPerEngine(t *testing.T) {
	for _, name := range shanten.Names() {
		calc, err := shanten.New(name)
		require.NoError(t, err)
		want := shanten.Scale8
		if name == shanten.NameKobayashi {
			want = shanten.Scale13
		}
		assert.Equal(t, want, calc.Scale(), name)
	}
}

func TestDocumentedScenarios(t *testing.T) {
	cases := []shanten.KnownCase{
		{Code: "11m19p19s1234567z", Want: 7},
		{Code: "19m19p19s1234567z", Want: 8},
		{Code: "123m456p789s1122z", Want: 0},
		{Code: "123m456p789s11222z", Want: -1},
		{Code: "234p567s", Want: 1},
		{Code: "133345568m23677z", Want: 2},
	}
	for _, name := range shanten.OracleNames() {
		calc, _ := shanten.New(name)
		for _, tc := range cases {
			assert.Equal(t, tc.Want, calc.CalculateShanten(tile.MustParse(tc.Code)), "%s %s", name, tc.Code)
		}
	}
}

func TestZero(t *testing.T) {
	z := shanten.Zero{}
	assert.Equal(t, int8(0), z.CalculateShanten(tile.MustParse("19m19p19s1234567z")))
	assert.Equal(t, int8(0), z.CalculateShanten(tile.MustParse("123m456p789s11222z")))
}

func TestPurity(t *testing.T) {
	for _, name := range shanten.CrossCheckNames() {
		calc, _ := shanten.New(name)
		for _, tc := range shanten.KnownCases {
			h := tile.MustParse(tc.Code)
			before := h
			first := calc.CalculateShanten(h)
			second := calc.CalculateShanten(h)
			if first != second {
				t.Fatalf("%s %s: expected %d, got %d", name, tc.Code, first, second)
			}
			assert.Equal(t, before, h)
		}
	}
}

func TestReorderInvariant(t *testing.T) {
	a := tile.MustParse("12389m456p12789s1z")
	b := tile.MustParse("1z98s7s21s654p98m321m")
	for _, name := range shanten.CrossCheckNames() {
		calc, _ := shanten.New(name)
		assert.Equal(t, calc.CalculateShanten(a), calc.CalculateShanten(b), name)
	}
}

func TestMonotonicImprovement(t *testing.T) {
	// 把孤张 7z 换成 1z，形成对子
	worse := tile.MustParse("123m456p789s1357z")
	better := tile.MustParse("123m456p789s1135z")
	for _, name := range shanten.CrossCheckNames() {
		calc, _ := shanten.New(name)
		w, b := calc.CalculateShanten(worse), calc.CalculateShanten(better)
		assert.Equal(t, int8(2), w, name)
		assert.Equal(t, int8(1), b, name)
	}
}

func TestSmallHands(t *testing.T) {
	cases := []shanten.KnownCase{
		{Code: "1m", Want: 0},
		{Code: "11m", Want: -1},
		{Code: "13m", Want: 0},
		{Code: "1112345678999m", Want: 0},
		{Code: "1112345678999m1z", Want: 0},
		{Code: "123456789m1234z", Want: 2},
	}
	for _, name := range shanten.CrossCheckNames() {
		calc, _ := shanten.New(name)
		for _, tc := range cases {
			assert.Equal(t, tc.Want, calc.CalculateShanten(tile.MustParse(tc.Code)), "%s %s", name, tc.Code)
		}
	}
}

func TestConcurrentUse(t *testing.T) {
	for _, name := range shanten.CrossCheckNames() {
		calc, _ := shanten.New(name)
		var wg sync.WaitGroup
		for g := 0; g < 8; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for _, tc := range shanten.KnownCases[:8] {
					if got := calc.CalculateShanten(tile.MustParse(tc.Code)); got != tc.Want {
						t.Errorf("%s %s: expected %d, got %d", name, tc.Code, tc.Want, got)
					}
				}
			}()
		}
		wg.Wait()
	}
}
