package bench

import (
	"context"
	"fmt"

	"github.com/Apricot-S/shanten-algorithm-collection/framework/engines/shanten"
	"github.com/Apricot-S/shanten-algorithm-collection/framework/tile"
)

// Mismatch 某一手上引擎之间的分歧
type Mismatch struct {
	Index  int
	Hand   tile.Counts
	Values map[string]int8
}

func (m Mismatch) String() string {
	return fmt.Sprintf("#%d %s %v", m.Index, m.Hand, m.Values)
}

// Verification 交叉校验结果，Mismatches 最多保留 limit 条
type Verification struct {
	Engines    []string
	Hands      int
	Disagreed  int
	Mismatches []Mismatch
}

func (v Verification) OK() bool { return v.Disagreed == 0 }

// Verify 所有引擎逐手比较，以第一个引擎为基准
func (r *Runner) Verify(ctx context.Context, calcs []shanten.Calculator, hands []tile.Counts, limit int) (Verification, error) {
	res := Verification{Hands: len(hands)}
	values := make([][]int8, len(calcs))
	for k, calc := range calcs {
		res.Engines = append(res.Engines, calc.Name())
		vs, err := r.Compute(ctx, calc, hands)
		if err != nil {
			return Verification{}, fmt.Errorf("%s: %w", calc.Name(), err)
		}
		values[k] = vs
	}

	for i := range hands {
		same := true
		for k := 1; k < len(calcs); k++ {
			if values[k][i] != values[0][i] {
				same = false
				break
			}
		}
		if same {
			continue
		}
		res.Disagreed++
		if len(res.Mismatches) >= limit {
			continue
		}
		m := Mismatch{Index: i, Hand: hands[i], Values: make(map[string]int8, len(calcs))}
		for k, name := range res.Engines {
			m.Values[name] = values[k][i]
		}
		res.Mismatches = append(res.Mismatches, m)
	}
	return res, nil
}
