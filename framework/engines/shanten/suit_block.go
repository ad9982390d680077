package shanten

import "github.com/Apricot-S/shanten-algorithm-collection/framework/tile"

type suit [9]uint8

// blockCount 单一花色的块计数
type blockCount struct {
	melds    int8
	cands    int8
	isolated int8
}

// patterns 每种花色保留两种最优：A 按公式权重，B 面子最多
type patterns [2]blockCount

type better func(x, y blockCount) bool

// suitCounter 按花色拆面子，拆完后由 rest 统计剩余部分
type suitCounter struct {
	betterA better
	betterB better
	rest    func(c *suitCounter, s *suit) patterns
}

func (c *suitCounter) keep(mx *patterns, r patterns) {
	if c.betterA(r[0], mx[0]) {
		mx[0] = r[0]
	}
	if c.betterB(r[1], mx[1]) {
		mx[1] = r[1]
	}
}

// cutMeld 从第 n 张起拆面子，不拆当前张的分支先算
func (c *suitCounter) cutMeld(s *suit, n int) patterns {
	if n >= 9 {
		return c.rest(c, s)
	}
	mx := c.cutMeld(s, n+1)

	// 顺子
	if n < 7 && s[n] > 0 && s[n+1] > 0 && s[n+2] > 0 {
		s[n]--
		s[n+1]--
		s[n+2]--
		r := c.cutMeld(s, n)
		s[n]++
		s[n+1]++
		s[n+2]++
		r[0].melds++
		r[1].melds++
		c.keep(&mx, r)
	}

	// 刻子
	if s[n] >= 3 {
		s[n] -= 3
		r := c.cutMeld(s, n)
		s[n] += 3
		r[0].melds++
		r[1].melds++
		c.keep(&mx, r)
	}
	return mx
}

// suitOf 取出第 k 个花色
func suitOf(h *tile.Counts, k int) suit {
	var s suit
	copy(s[:], h[k*9:k*9+9])
	return s
}

// honorBlocks 字牌只能成刻子或对子，直接计数
func honorBlocks(h *tile.Counts) blockCount {
	var b blockCount
	for i := int(tile.East); i <= int(tile.Red); i++ {
		switch {
		case h[i] >= 3:
			b.melds++
		case h[i] == 2:
			b.cands++
		case h[i] == 1:
			b.isolated++
		}
	}
	return b
}

// combine 三种花色各取 A/B 共 8 种组合，取最小向听
func combine(scale Scale, ps [3]patterns, honors blockCount, calls int8, pair bool) int8 {
	best := scale.Worst()
	for _, a := range ps[0] {
		for _, b := range ps[1] {
			for _, c := range ps[2] {
				v := scale.Shanten(Blocks{
					Melds:    calls + a.melds + b.melds + c.melds + honors.melds,
					Cands:    a.cands + b.cands + c.cands + honors.cands,
					Isolated: a.isolated + b.isolated + c.isolated + honors.isolated,
					Pair:     pair,
				})
				if v < best {
					best = v
				}
			}
		}
	}
	return best
}

// minOverHeads 无雀头以及每种可取的雀头都算一遍
func minOverHeads(h tile.Counts, eval func(h *tile.Counts, calls int8, pair bool) int8) int8 {
	calls := NumCall(h.Sum())
	best := eval(&h, calls, false)
	for i := 0; i < tile.NumTileType; i++ {
		if h[i] < 2 {
			continue
		}
		h[i] -= 2
		if v := eval(&h, calls, true); v < best {
			best = v
		}
		h[i] += 2
	}
	return best
}
