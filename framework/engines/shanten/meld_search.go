package shanten

import "github.com/Apricot-S/shanten-algorithm-collection/framework/tile"

type meld [3]int

// MeldSearch 枚举面子组合 + 雀头，取与手牌差距最小的目标牌型
type MeldSearch struct {
	catalog []meld
}

// NewMeldSearch 预先生成 34 个刻子和 21 个顺子
func NewMeldSearch() *MeldSearch {
	catalog := make([]meld, 0, 55)
	for i := 0; i < tile.NumTileType; i++ {
		catalog = append(catalog, meld{i, i, i})
	}
	for i := 0; i < tile.NumSuitTypes; i++ {
		if tile.CanStartSequence(i) {
			catalog = append(catalog, meld{i, i + 1, i + 2})
		}
	}
	return &MeldSearch{catalog: catalog}
}

func (m *MeldSearch) Name() string { return NameMeldSearch }

func (m *MeldSearch) Scale() Scale { return Scale8 }

func (m *MeldSearch) CalculateShanten(h tile.Counts) int8 {
	s := meldSearch{hand: h, catalog: m.catalog}
	return s.search(h.Sum()/3, 0, Scale8.Worst())
}

type meldSearch struct {
	hand    tile.Counts
	target  tile.Counts
	catalog []meld
}

// search 按目录顺序不降地选 left 个面子，ub 为当前上界
func (s *meldSearch) search(left, from int, ub int8) int8 {
	if left == 0 {
		for i := 0; i < tile.NumTileType; i++ {
			s.target[i] += 2
			if s.target[i] <= tile.MaxTileCount {
				if v := s.deficiency(); v < ub {
					ub = v
				}
			}
			s.target[i] -= 2
		}
		return ub
	}

	for k := from; k < len(s.catalog); k++ {
		m := s.catalog[k]
		s.add(m)
		if s.fits(m) {
			if lb := s.deficiency(); lb < ub {
				if v := s.search(left-1, k, ub); v < ub {
					ub = v
				}
			}
		}
		s.remove(m)
	}
	return ub
}

func (s *meldSearch) add(m meld) {
	for _, i := range m {
		s.target[i]++
	}
}

func (s *meldSearch) remove(m meld) {
	for _, i := range m {
		s.target[i]--
	}
}

func (s *meldSearch) fits(m meld) bool {
	for _, i := range m {
		if s.target[i] > tile.MaxTileCount {
			return false
		}
	}
	return true
}

// deficiency 目标牌型中手牌缺少的张数减一
func (s *meldSearch) deficiency() int8 {
	var n int8
	for i := 0; i < tile.NumTileType; i++ {
		if s.target[i] > s.hand[i] {
			n += int8(s.target[i] - s.hand[i])
		}
	}
	return n - 1
}
