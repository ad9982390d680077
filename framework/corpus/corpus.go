package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Apricot-S/shanten-algorithm-collection/framework/tile"
)

// Kind 语料种类
type Kind string

const (
	Normal          Kind = "normal"
	HalfFlush       Kind = "half_flush"
	FullFlush       Kind = "full_flush"
	ThirteenOrphans Kind = "thirteen_orphans"
)

// Kinds 全部语料种类
var Kinds = []Kind{Normal, HalfFlush, FullFlush, ThirteenOrphans}

const (
	HandSize = tile.MaxHandSize
	// NumCases 基准语料的行数
	NumCases = 10000
)

var (
	ErrUnknownKind    = errors.New("corpus: unknown kind")
	ErrMalformedLine  = errors.New("corpus: malformed line")
	ErrTileOutOfRange = errors.New("corpus: tile out of range")
	ErrLineCount      = errors.New("corpus: unexpected line count")
)

// ParseKind 解析语料种类
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownKind, s)
}

// FileName 基准语料文件名，如 hands_normal_10000.txt
func FileName(k Kind) string {
	return FileNameN(k, NumCases)
}

// FileNameN n 手语料的文件名，n <= 0 时按 NumCases
func FileNameN(k Kind, n int) string {
	if n <= 0 {
		n = NumCases
	}
	return fmt.Sprintf("hands_%s_%d.txt", k, n)
}

// Read 每行 14 个以空白分隔的牌种下标
// expected > 0 时要求行数恰好相等
func Read(r io.Reader, expected int) ([]tile.Counts, error) {
	var hands []tile.Counts
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		h, err := parseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		hands = append(hands, h)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if expected > 0 && len(hands) != expected {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrLineCount, expected, len(hands))
	}
	return hands, nil
}

func parseLine(text string) (tile.Counts, error) {
	fields := strings.Fields(text)
	if len(fields) != HandSize {
		return tile.Counts{}, fmt.Errorf("%w: %d tiles", ErrMalformedLine, len(fields))
	}
	indices := make([]int, len(fields))
	for k, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return tile.Counts{}, fmt.Errorf("%w: %q", ErrMalformedLine, f)
		}
		indices[k] = v
	}
	h, err := tile.FromIndices(indices)
	if errors.Is(err, tile.ErrTypeOutOfRange) {
		return tile.Counts{}, fmt.Errorf("%w: %w", ErrTileOutOfRange, err)
	}
	return h, err
}

// Load 读取语料文件
func Load(path string, expected int) ([]tile.Counts, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	hands, err := Read(f, expected)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return hands, nil
}

// Write 按摸牌顺序写出，每行一手
func Write(w io.Writer, hands [][HandSize]int) error {
	bw := bufio.NewWriter(w)
	for _, hand := range hands {
		for i, t := range hand {
			if i > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(strconv.Itoa(t)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
