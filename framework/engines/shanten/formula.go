package shanten

// Blocks 一次分解得到的块计数
// Melds 含副露修正 (4 - 张数/3)，Pair 表示是否已取雀头
type Blocks struct {
	Melds    int8
	Cands    int8
	Isolated int8
	Pair     bool
}

// Scale 向听计分公式
// Scale8: 8 - 2m - c - p，按块计数
// Scale13: 13 - 3m - 2c - i，按张数计，雀头当作一个搭子
// 两者截断后都落在标准向听区间 [-1, 8]，并满足
// Scale13.Shanten(b) == Scale8.Shanten(b) + Slack(b)
type Scale struct {
	name       string
	worst      int8
	weighsTile bool
}

var (
	Scale8  = Scale{name: "8-weight", worst: 8}
	Scale13 = Scale{name: "13-weight", worst: 13, weighsTile: true}
)

const (
	maxBlocks  = 4
	slotBudget = 5
)

func (s Scale) String() string { return s.name }

// Worst 搜索初值
func (s Scale) Worst() int8 { return s.worst }

// Cap 把超出的面子降为搭子、超出的搭子降为孤张
// Scale13 另外把孤张限制在剩余块数之内
func (s Scale) Cap(b Blocks) Blocks {
	if b.Melds > maxBlocks {
		b.Cands += b.Melds - maxBlocks
		b.Melds = maxBlocks
	}
	if b.Melds+b.Cands > maxBlocks {
		if s.weighsTile {
			b.Isolated += b.Melds + b.Cands - maxBlocks
		}
		b.Cands = maxBlocks - b.Melds
	}
	if s.weighsTile {
		if budget := Budget(b.Pair); b.Melds+b.Cands+b.Isolated > budget {
			b.Isolated = budget - b.Melds - b.Cands
		}
	}
	return b
}

// Raw 不截断直接套公式
func (s Scale) Raw(b Blocks) int8 {
	var p int8
	if b.Pair {
		p = 1
	}
	if s.weighsTile {
		return 13 - 3*b.Melds - 2*(b.Cands+p) - b.Isolated
	}
	return 8 - 2*b.Melds - b.Cands - p
}

// Shanten 截断后的向听数
func (s Scale) Shanten(b Blocks) int8 {
	return s.Raw(s.Cap(b))
}

// Budget 可用块数，取了雀头后为 4
func Budget(pair bool) int8 {
	if pair {
		return slotBudget - 1
	}
	return slotBudget
}

// Slack 没有任何牌可用的块数，按 Scale13 截断后计算
func Slack(b Blocks) int8 {
	b = Scale13.Cap(b)
	return Budget(b.Pair) - b.Melds - b.Cands - b.Isolated
}

// LowerBound 已有 m 个面子、p 个雀头时 Scale8 能达到的最小值
func LowerBound(melds, pair int8) int8 {
	return maxBlocks - melds - pair
}

// NumCall 副露修正：张数不足 14 时视为已鸣牌的面子数
func NumCall(total int) int8 {
	return int8(maxBlocks - total/3)
}
