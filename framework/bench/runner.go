package bench

import (
	"context"
	"sync"
	"time"

	"github.com/Apricot-S/shanten-algorithm-collection/framework/corpus"
	"github.com/Apricot-S/shanten-algorithm-collection/framework/engines/shanten"
	"github.com/Apricot-S/shanten-algorithm-collection/framework/tile"
)

// 每个任务处理的手数
const chunkSize = 256

// Result 一个引擎在一份语料上的结果
type Result struct {
	Engine  string
	Kind    corpus.Kind
	Hands   int
	Elapsed time.Duration
	// Histogram 下标为向听数 + 1
	Histogram [10]int
}

// HandsPerSecond 吞吐
func (r Result) HandsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Hands) / r.Elapsed.Seconds()
}

// Runner 固定大小的 worker 池
type Runner struct {
	workers int
}

func NewRunner(workers int) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{workers: workers}
}

type chunk struct {
	lo, hi int
}

// Compute 并发计算每一手的向听数，结果顺序与输入一致
func (r *Runner) Compute(ctx context.Context, calc shanten.Calculator, hands []tile.Counts) ([]int8, error) {
	out := make([]int8, len(hands))
	jobs := make(chan chunk)

	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				for i := c.lo; i < c.hi; i++ {
					out[i] = calc.CalculateShanten(hands[i])
				}
			}
		}()
	}

	var err error
feed:
	for lo := 0; lo < len(hands); lo += chunkSize {
		if err = ctx.Err(); err != nil {
			break
		}
		hi := min(lo+chunkSize, len(hands))
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- chunk{lo: lo, hi: hi}:
		}
	}
	close(jobs)
	wg.Wait()
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Bench 计时并统计分布
func (r *Runner) Bench(ctx context.Context, calc shanten.Calculator, kind corpus.Kind, hands []tile.Counts) (Result, error) {
	start := time.Now()
	values, err := r.Compute(ctx, calc, hands)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Engine:  calc.Name(),
		Kind:    kind,
		Hands:   len(hands),
		Elapsed: time.Since(start),
	}
	for _, v := range values {
		if idx := int(v) + 1; idx >= 0 && idx < len(res.Histogram) {
			res.Histogram[idx]++
		}
	}
	return res, nil
}
