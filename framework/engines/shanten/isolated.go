package shanten

import "github.com/Apricot-S/shanten-algorithm-collection/framework/tile"

// isolatedShortage 叶子上剩余孤张不够用时需要额外的一次摸切
// 公式默认剩下的孤张都能变成所需的块，但同种牌已经用满 4 张时做不到
func (s *decompSearch) isolatedShortage() int8 {
	m, c, p := s.melds, s.cands, s.pair
	switch {
	case (m == 4 && c == 0 && p == 0) || (m == 3 && c == 1 && p == 0):
		// 单骑：需要一张还能再摸到的孤张
		for i := 0; i < tile.NumTileType; i++ {
			if s.hand[i] > 0 && s.orig[i] < 3 {
				return 0
			}
		}
		return 1
	case m == 3 && c == 0 && p == 1:
		// 需要一张能组搭子的孤张
		if s.usableIsolated() > 0 {
			return 0
		}
		return 1
	case m == 3 && c == 0 && p == 0:
		// 需要两张
		if s.usableIsolated() >= 2 {
			return 0
		}
		return 1
	}
	return 0
}

// usableIsolated 数牌孤张都可用，字牌孤张在原手牌中少于 3 张才可用
func (s *decompSearch) usableIsolated() int {
	n := 0
	for i := 0; i < tile.NumTileType; i++ {
		if s.hand[i] == 0 {
			continue
		}
		if tile.IsSuit(i) || s.orig[i] < 3 {
			n++
		}
	}
	return n
}
