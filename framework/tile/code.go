package tile

import (
	"errors"
	"fmt"
	"unicode"
)

var (
	ErrNoSuit         = errors.New("tile: digit without a suit letter")
	ErrRankOutOfRange = errors.New("tile: rank out of range")
	ErrInvalidChar    = errors.New("tile: invalid character")
)

// ParseCode 解析天凤式记法，如 "123m456p789s1122z"
// 从右往左扫描，字母决定其左侧数字的花色，空白忽略
func ParseCode(code string) (Counts, error) {
	var h Counts
	runes := []rune(code)
	base := -1
	for k := len(runes) - 1; k >= 0; k-- {
		r := runes[k]
		switch {
		case r == 'm':
			base = int(Man1)
		case r == 'p':
			base = int(Pin1)
		case r == 's':
			base = int(So1)
		case r == 'z':
			base = int(East)
		case r >= '0' && r <= '9':
			if base < 0 {
				return Counts{}, fmt.Errorf("%w: %q at %d", ErrNoSuit, r, k)
			}
			rank := int(r - '0')
			if rank == 0 || (base == int(East) && rank > 7) {
				return Counts{}, fmt.Errorf("%w: %q at %d", ErrRankOutOfRange, r, k)
			}
			idx := base + rank - 1
			h[idx]++
			if h[idx] > MaxTileCount {
				return Counts{}, fmt.Errorf("%w: %s", ErrTooManyCopies, Type(idx))
			}
		case unicode.IsSpace(r):
		default:
			return Counts{}, fmt.Errorf("%w: %q at %d", ErrInvalidChar, r, k)
		}
	}
	return h, nil
}

// MustParse 用于测试和固定表，解析失败直接 panic
func MustParse(code string) Counts {
	h, err := ParseCode(code)
	if err != nil {
		panic(err)
	}
	return h
}
