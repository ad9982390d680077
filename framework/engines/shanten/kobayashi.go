package shanten

import "github.com/Apricot-S/shanten-algorithm-collection/framework/tile"

// Kobayashi 按花色拆面子，剩余部分按连续段一次性数出搭子和孤张
// 用 13 权重公式计分
type Kobayashi struct {
	counter suitCounter
}

func NewKobayashi() *Kobayashi {
	return &Kobayashi{counter: suitCounter{
		// 孤张少优先，其次搭子少
		betterA: func(x, y blockCount) bool {
			return x.isolated < y.isolated || (x.isolated == y.isolated && x.cands < y.cands)
		},
		// 面子多优先，其次搭子多
		betterB: func(x, y blockCount) bool {
			return x.melds > y.melds || (x.melds == y.melds && x.cands > y.cands)
		},
		rest: func(_ *suitCounter, s *suit) patterns {
			b := countSegments(s)
			return patterns{b, b}
		},
	}}
}

func (k *Kobayashi) Name() string { return NameKobayashi }

func (k *Kobayashi) Scale() Scale { return Scale13 }

func (k *Kobayashi) CalculateShanten(h tile.Counts) int8 {
	return minOverHeads(h, k.evaluate)
}

func (k *Kobayashi) evaluate(h *tile.Counts, calls int8, pair bool) int8 {
	var ps [3]patterns
	for i := range ps {
		s := suitOf(h, i)
		ps[i] = k.counter.cutMeld(&s, 0)
	}
	return combine(Scale13, ps, honorBlocks(h), calls, pair)
}

// countSegments 相隔两格以上的空位把花色切成若干段
// 每段 t 张记 t/2 个搭子和 t%2 个孤张
func countSegments(s *suit) blockCount {
	var b blockCount
	var t uint8
	for i := 0; i < 9; i++ {
		t += s[i]
		if i < 7 && s[i+1] == 0 && s[i+2] == 0 {
			b.cands += int8(t / 2)
			b.isolated += int8(t % 2)
			t = 0
		}
	}
	b.cands += int8(t / 2)
	b.isolated += int8(t % 2)
	return b
}
