package shanten

import "github.com/Apricot-S/shanten-algorithm-collection/framework/tile"

// Zero 总是返回 0，只用于测量调用开销
type Zero struct{}

func (Zero) Name() string { return NameZero }

func (Zero) Scale() Scale { return Scale8 }

func (Zero) CalculateShanten(tile.Counts) int8 { return 0 }
