package corpus

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/Apricot-S/shanten-algorithm-collection/common/log"
	"github.com/Apricot-S/shanten-algorithm-collection/framework/tile"
)

// 幺九牌
var terminalsAndHonors = [13]int{0, 8, 9, 17, 18, 26, 27, 28, 29, 30, 31, 32, 33}

// Generator 洗牌山后取前 14 张，同一种子结果可复现
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Hand 生成一手指定种类的牌
func (g *Generator) Hand(k Kind) ([HandSize]int, error) {
	var wall []int
	switch k {
	case Normal:
		wall = tilesOf(0, tile.NumTileType)
	case HalfFlush:
		start := g.suitStart()
		wall = append(tilesOf(start, start+9), tilesOf(int(tile.East), tile.NumTileType)...)
	case FullFlush:
		start := g.suitStart()
		wall = tilesOf(start, start+9)
	case ThirteenOrphans:
		wall = make([]int, 0, len(terminalsAndHonors)*tile.MaxTileCount)
		for c := 0; c < tile.MaxTileCount; c++ {
			wall = append(wall, terminalsAndHonors[:]...)
		}
	default:
		return [HandSize]int{}, fmt.Errorf("%w: %s", ErrUnknownKind, k)
	}

	g.rng.Shuffle(len(wall), func(i, j int) { wall[i], wall[j] = wall[j], wall[i] })
	var hand [HandSize]int
	copy(hand[:], wall[:HandSize])
	return hand, nil
}

func (g *Generator) suitStart() int {
	return 9 * g.rng.Intn(3)
}

// tilesOf [lo, hi) 每种 4 张
func tilesOf(lo, hi int) []int {
	out := make([]int, 0, (hi-lo)*tile.MaxTileCount)
	for t := lo; t < hi; t++ {
		for k := 0; k < tile.MaxTileCount; k++ {
			out = append(out, t)
		}
	}
	return out
}

// Generate 每种语料各生成 n 手，四种交替抽取
func (g *Generator) Generate(n int) (map[Kind][][HandSize]int, error) {
	out := make(map[Kind][][HandSize]int, len(Kinds))
	for i := 0; i < n; i++ {
		for _, k := range Kinds {
			h, err := g.Hand(k)
			if err != nil {
				return nil, err
			}
			out[k] = append(out[k], h)
		}
	}
	return out, nil
}

// WriteAll 生成并写出四个语料文件，返回写出的路径
func WriteAll(dir string, seed int64, n int) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	sets, err := NewGenerator(seed).Generate(n)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, k := range Kinds {
		path := filepath.Join(dir, FileNameN(k, n))
		if err := writeFile(path, sets[k]); err != nil {
			return paths, err
		}
		log.Info("写出语料 %s: %d 手", path, len(sets[k]))
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, hands [][HandSize]int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, hands); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
