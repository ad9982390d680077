package shanten

import (
	"errors"
	"fmt"

	"github.com/Apricot-S/shanten-algorithm-collection/framework/tile"
)

var ErrUnknownEngine = errors.New("shanten: unknown engine")

// Calculator 向听数计算器
// CalculateShanten 只计算一般型 (4 面子 1 雀头)，-1 和了，0 听牌
// 实现必须是纯函数，入参按值传递，可并发调用
type Calculator interface {
	Name() string
	Scale() Scale
	CalculateShanten(h tile.Counts) int8
}

const (
	NameDecomp       = "decomp"
	NameDecompPruned = "decomp-pruned"
	NameDecompFixed  = "decomp-fixed"
	NameAraRemoval   = "ara-removal"
	NameKobayashi    = "kobayashi"
	NameMeldSearch   = "meld-search"
	NameZero         = "zero"
)

// Descriptor 引擎登记信息
type Descriptor struct {
	Name    string
	Summary string
	// Exact 在已知牌例上与真实向听完全一致，可作为校验基准
	Exact bool
	// Reference 仅作对照，不参与交叉校验
	Reference bool
	New       func() Calculator
}

var registry = []Descriptor{
	{
		Name:    NameDecomp,
		Summary: "exhaustive meld/candidate decomposition",
		New:     func() Calculator { return NewDecomp() },
	},
	{
		Name:    NameDecompPruned,
		Summary: "decomposition with lower-bound pruning",
		New:     func() Calculator { return NewDecompPruned() },
	},
	{
		Name:    NameDecompFixed,
		Summary: "pruned decomposition with isolated-tile shortage correction",
		Exact:   true,
		New:     func() Calculator { return NewDecompFixed() },
	},
	{
		Name:    NameAraRemoval,
		Summary: "isolated-tile removal and per-suit decomposition",
		New:     func() Calculator { return NewAraRemoval() },
	},
	{
		Name:    NameKobayashi,
		Summary: "per-suit meld search with segment block counting",
		New:     func() Calculator { return NewKobayashi() },
	},
	{
		Name:    NameMeldSearch,
		Summary: "brute-force meld subset enumeration",
		Exact:   true,
		New:     func() Calculator { return NewMeldSearch() },
	},
	{
		Name:      NameZero,
		Summary:   "always returns zero",
		Reference: true,
		New:       func() Calculator { return Zero{} },
	},
}

// Descriptors 全部引擎，按登记顺序
func Descriptors() []Descriptor {
	out := make([]Descriptor, len(registry))
	copy(out, registry)
	return out
}

// Lookup 按名字查找
func Lookup(name string) (Descriptor, error) {
	for _, d := range registry {
		if d.Name == name {
			return d, nil
		}
	}
	return Descriptor{}, fmt.Errorf("%w: %s", ErrUnknownEngine, name)
}

// New 按名字创建
func New(name string) (Calculator, error) {
	d, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return d.New(), nil
}

// Names 所有引擎名
func Names() []string {
	out := make([]string, 0, len(registry))
	for _, d := range registry {
		out = append(out, d.Name)
	}
	return out
}

// CrossCheckNames 参与交叉校验的引擎
func CrossCheckNames() []string {
	var out []string
	for _, d := range registry {
		if !d.Reference {
			out = append(out, d.Name)
		}
	}
	return out
}

// OracleNames 校验基准引擎
func OracleNames() []string {
	var out []string
	for _, d := range registry {
		if d.Exact {
			out = append(out, d.Name)
		}
	}
	return out
}
