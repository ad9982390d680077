package shanten

import "github.com/Apricot-S/shanten-algorithm-collection/framework/tile"

// Decomp 面子/搭子分解的深度优先搜索
// prune 打开时用下界剪枝，fixIsolated 打开时在叶子上修正孤张不足
type Decomp struct {
	name        string
	prune       bool
	fixIsolated bool
}

// NewDecomp 无剪枝的基准实现
func NewDecomp() *Decomp {
	return &Decomp{name: NameDecomp}
}

// NewDecompPruned 带下界剪枝
func NewDecompPruned() *Decomp {
	return &Decomp{name: NameDecompPruned, prune: true}
}

// NewDecompFixed 带剪枝和孤张修正，结果与真实向听一致
func NewDecompFixed() *Decomp {
	return &Decomp{name: NameDecompFixed, prune: true, fixIsolated: true}
}

func (d *Decomp) Name() string { return d.name }

func (d *Decomp) Scale() Scale { return Scale8 }

func (d *Decomp) CalculateShanten(h tile.Counts) int8 {
	s := d.newSearch(h)
	return s.run()
}

func (d *Decomp) newSearch(h tile.Counts) *decompSearch {
	return &decompSearch{
		hand:        h,
		orig:        h,
		melds:       NumCall(h.Sum()),
		best:        Scale8.Worst(),
		prune:       d.prune,
		fixIsolated: d.fixIsolated,
		pairIndex:   tile.NumTileType,
	}
}

// decompSearch 单次计算的搜索状态，hand 是可回溯的草稿
type decompSearch struct {
	hand tile.Counts
	orig tile.Counts

	melds int8
	cands int8
	pair  int8
	best  int8

	// 当前雀头的牌种，无雀头时为 34
	pairIndex int
	// 候选阶段的下界 4 - m - p
	bound int8
	nodes int

	prune       bool
	fixIsolated bool
}

func (s *decompSearch) run() int8 {
	for i := 0; i < tile.NumTileType; i++ {
		if s.hand[i] < 2 {
			continue
		}
		s.hand[i] -= 2
		s.pair, s.pairIndex = 1, i
		s.cutMeld(0)
		s.pair, s.pairIndex = 0, tile.NumTileType
		s.hand[i] += 2
	}
	s.cutMeld(0)
	return s.best
}

// cutMeld 从下标 i 起拆面子，拆完进入搭子阶段
func (s *decompSearch) cutMeld(i int) {
	if i >= tile.NumTileType {
		s.bound = LowerBound(s.melds, s.pair)
		s.cutCand(0)
		return
	}

	// 刻子
	if s.hand[i] >= 3 {
		s.hand[i] -= 3
		s.melds++
		s.cutMeld(i)
		s.melds--
		s.hand[i] += 3
	}

	// 顺子
	if tile.CanStartSequence(i) && s.hand[i] > 0 && s.hand[i+1] > 0 && s.hand[i+2] > 0 {
		s.takeSequence(i)
		s.melds++
		s.cutMeld(i)
		s.melds--
		s.putSequence(i)
	}

	s.cutMeld(i + 1)
}

// cutCand 从下标 i 起拆搭子，面子加搭子不超过 4
func (s *decompSearch) cutCand(i int) {
	s.nodes++
	if s.prune && s.best <= s.bound {
		return
	}
	if i >= tile.NumTileType {
		s.leaf()
		return
	}

	if s.melds+s.cands < maxBlocks {
		// 对子当刻子搭子
		if s.pairCandidate(i) {
			s.hand[i] -= 2
			s.cands++
			s.cutCand(i)
			s.cands--
			s.hand[i] += 2
		}

		// 两面/边张
		if tile.IsSuit(i) && i%9 < 8 && s.hand[i] > 0 && s.hand[i+1] > 0 {
			s.takeGap(i, 1)
			s.cands++
			s.cutCand(i)
			s.cands--
			s.putGap(i, 1)
		}

		// 嵌张
		if tile.CanStartSequence(i) && s.hand[i] > 0 && s.hand[i+2] > 0 {
			s.takeGap(i, 2)
			s.cands++
			s.cutCand(i)
			s.cands--
			s.putGap(i, 2)
		}
	}

	s.cutCand(i + 1)
}

func (s *decompSearch) pairCandidate(i int) bool {
	if s.fixIsolated {
		return s.hand[i] == 2 && i != s.pairIndex
	}
	return s.hand[i] >= 2
}

func (s *decompSearch) leaf() {
	v := Scale8.Raw(Blocks{Melds: s.melds, Cands: s.cands, Pair: s.pair == 1})
	if s.fixIsolated {
		v += s.isolatedShortage()
	}
	if v < s.best {
		s.best = v
	}
}

func (s *decompSearch) takeSequence(i int) {
	s.hand[i]--
	s.hand[i+1]--
	s.hand[i+2]--
}

func (s *decompSearch) putSequence(i int) {
	s.hand[i]++
	s.hand[i+1]++
	s.hand[i+2]++
}

func (s *decompSearch) takeGap(i, gap int) {
	s.hand[i]--
	s.hand[i+gap]--
}

func (s *decompSearch) putGap(i, gap int) {
	s.hand[i]++
	s.hand[i+gap]++
}
