package tile

import (
	"errors"
	"fmt"
	"strings"
)

// Type 牌种下标 (0-33)
type Type int

const (
	// 万子 (0-8)
	Man1 Type = iota
	Man2
	Man3
	Man4
	Man5
	Man6
	Man7
	Man8
	Man9

	// 筒子 (9-17)
	Pin1
	Pin2
	Pin3
	Pin4
	Pin5
	Pin6
	Pin7
	Pin8
	Pin9

	// 索子 (18-26)
	So1
	So2
	So3
	So4
	So5
	So6
	So7
	So8
	So9

	// 字牌 (27-33)
	East
	South
	West
	North
	White
	Green
	Red
)

const (
	NumTileType  = 34
	NumSuitTypes = 27
	MaxTileCount = 4
	MinHandSize  = 1
	MaxHandSize  = 14
)

var (
	ErrEmptyHand      = errors.New("tile: empty hand")
	ErrTooManyTiles   = errors.New("tile: too many tiles")
	ErrTooManyCopies  = errors.New("tile: more than four copies of a tile")
	ErrTypeOutOfRange = errors.New("tile: type index out of range")
)

// Counts 34 种牌的张数向量
type Counts [NumTileType]uint8

// IsSuit 是否数牌
func IsSuit(i int) bool { return i >= int(Man1) && i <= int(So9) }

// IsHonor 是否字牌
func IsHonor(i int) bool { return i >= int(East) && i <= int(Red) }

// SuitOf 万 0 / 筒 1 / 索 2，字牌返回 -1
func SuitOf(i int) int {
	if !IsSuit(i) {
		return -1
	}
	return i / 9
}

// Rank 数牌点数 (1-9)，字牌 1-7
func Rank(i int) int {
	if IsHonor(i) {
		return i - int(East) + 1
	}
	return i%9 + 1
}

// CanStartSequence 能否作为顺子的第一张 (1-7)
func CanStartSequence(i int) bool { return IsSuit(i) && i%9 < 7 }

// Sum 手牌总张数
func (h Counts) Sum() int {
	n := 0
	for _, c := range h {
		n += int(c)
	}
	return n
}

// Validate 检查手牌结构：1-14 张，每种不超过 4 张
func (h Counts) Validate() error {
	for i, c := range h {
		if c > MaxTileCount {
			return fmt.Errorf("%w: %s x%d", ErrTooManyCopies, Type(i), c)
		}
	}
	n := h.Sum()
	if n < MinHandSize {
		return ErrEmptyHand
	}
	if n > MaxHandSize {
		return fmt.Errorf("%w: %d", ErrTooManyTiles, n)
	}
	return nil
}

// FromIndices 由牌种下标列表构造
func FromIndices(indices []int) (Counts, error) {
	var h Counts
	for _, idx := range indices {
		if idx < 0 || idx >= NumTileType {
			return Counts{}, fmt.Errorf("%w: %d", ErrTypeOutOfRange, idx)
		}
		h[idx]++
		if h[idx] > MaxTileCount {
			return Counts{}, fmt.Errorf("%w: %s", ErrTooManyCopies, Type(idx))
		}
	}
	return h, nil
}

// Indices 按下标升序展开
func (h Counts) Indices() []int {
	out := make([]int, 0, h.Sum())
	for i, c := range h {
		for k := uint8(0); k < c; k++ {
			out = append(out, i)
		}
	}
	return out
}

var suitLetters = [4]byte{'m', 'p', 's', 'z'}

// String 规范记法，如 123m456p789s11z
func (h Counts) String() string {
	var sb strings.Builder
	for s := 0; s < 4; s++ {
		lo, hi := s*9, s*9+9
		if s == 3 {
			hi = NumTileType
		}
		wrote := false
		for i := lo; i < hi; i++ {
			for k := uint8(0); k < h[i]; k++ {
				sb.WriteByte(byte('0' + i - lo + 1))
				wrote = true
			}
		}
		if wrote {
			sb.WriteByte(suitLetters[s])
		}
	}
	return sb.String()
}

func (t Type) String() string {
	i := int(t)
	if i < 0 || i >= NumTileType {
		return fmt.Sprintf("Type(%d)", i)
	}
	return fmt.Sprintf("%d%c", Rank(i), suitLetters[i/9])
}
