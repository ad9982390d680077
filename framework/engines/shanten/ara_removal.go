package shanten

import "github.com/Apricot-S/shanten-algorithm-collection/framework/tile"

// AraRemoval 先去掉前后两格内没有邻牌的单张，再按花色拆面子和搭子
// 用 8 权重公式计分
type AraRemoval struct {
	counter suitCounter
}

func NewAraRemoval() *AraRemoval {
	return &AraRemoval{counter: suitCounter{
		betterA: func(x, y blockCount) bool {
			return 2*x.melds+x.cands > 2*y.melds+y.cands
		},
		betterB: func(x, y blockCount) bool {
			return 10*x.melds+x.cands > 10*y.melds+y.cands
		},
		rest: func(c *suitCounter, s *suit) patterns {
			return c.cutCand(s, 0)
		},
	}}
}

func (a *AraRemoval) Name() string { return NameAraRemoval }

func (a *AraRemoval) Scale() Scale { return Scale8 }

func (a *AraRemoval) CalculateShanten(h tile.Counts) int8 {
	return minOverHeads(h, a.evaluate)
}

func (a *AraRemoval) evaluate(h *tile.Counts, calls int8, pair bool) int8 {
	var ps [3]patterns
	for i := range ps {
		s := removeIsolated(suitOf(h, i))
		ps[i] = a.counter.cutMeld(&s, 0)
	}
	return combine(Scale8, ps, honorBlocks(h), calls, pair)
}

// removeIsolated 单张且前后两格内无牌的直接丢弃
func removeIsolated(s suit) suit {
	var out suit
	for i := 0; i < 9; i++ {
		switch {
		case s[i] == 0:
		case s[i] >= 2:
			out[i] = s[i]
		case hasNeighbor(&s, i):
			out[i] = 1
		}
	}
	return out
}

func hasNeighbor(s *suit, i int) bool {
	for d := -2; d <= 2; d++ {
		j := i + d
		if d != 0 && j >= 0 && j < 9 && s[j] > 0 {
			return true
		}
	}
	return false
}

// cutCand 从第 n 张起拆搭子：两面/边张、嵌张、恰好两张的对子
func (c *suitCounter) cutCand(s *suit, n int) patterns {
	if n >= 9 {
		return patterns{}
	}
	mx := c.cutCand(s, n+1)

	try := func(a, b int) {
		s[a]--
		s[b]--
		r := c.cutCand(s, n)
		s[a]++
		s[b]++
		r[0].cands++
		r[1].cands++
		c.keep(&mx, r)
	}
	if n < 8 && s[n] > 0 && s[n+1] > 0 {
		try(n, n+1)
	}
	if n < 7 && s[n] > 0 && s[n+2] > 0 {
		try(n, n+2)
	}
	if s[n] == 2 {
		try(n, n)
	}
	return mx
}
