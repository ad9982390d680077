package bench

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/Apricot-S/shanten-algorithm-collection/common/log"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// Sample 一次进程资源采样
type Sample struct {
	CPUPercent float64
	RSS        uint64
	MemPercent float64
}

// Usage 一段时间内的峰值
type Usage struct {
	Samples  int
	PeakCPU  float64
	PeakRSS  uint64
	PeakMem  float64
	Duration time.Duration
}

// Monitor 基准运行期间定期采样本进程的 CPU 和内存
type Monitor struct {
	proc     *process.Process
	total    uint64
	interval time.Duration

	mu    sync.Mutex
	usage Usage
	start time.Time
	done  chan struct{}
}

// NewMonitor interval 为采样间隔
func NewMonitor(interval time.Duration) (*Monitor, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil, err
	}
	return &Monitor{
		proc:     proc,
		total:    vm.Total,
		interval: interval,
	}, nil
}

// Sample 立即采样一次，CPU 为距上次采样的平均值，不可与 Start 并发调用
func (m *Monitor) Sample() (Sample, error) {
	cpu, err := m.proc.Percent(0)
	if err != nil {
		return Sample{}, err
	}
	info, err := m.proc.MemoryInfo()
	if err != nil {
		return Sample{}, err
	}
	s := Sample{CPUPercent: cpu, RSS: info.RSS}
	if m.total > 0 {
		s.MemPercent = float64(info.RSS) / float64(m.total) * 100.0
	}
	return s, nil
}

// Start 在后台采样直到 ctx 结束或调用 Stop
func (m *Monitor) Start(ctx context.Context) {
	m.mu.Lock()
	m.usage = Usage{}
	m.start = time.Now()
	m.done = make(chan struct{})
	done := m.done
	m.mu.Unlock()

	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		m.record()
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case <-ticker.C:
				m.record()
			}
		}
	}()
}

// Stop 停止采样并返回峰值，未调用 Start 时返回零值
func (m *Monitor) Stop() Usage {
	m.mu.Lock()
	started := !m.start.IsZero()
	m.mu.Unlock()
	if !started {
		return Usage{}
	}

	m.record()
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done != nil {
		close(m.done)
		m.done = nil
	}
	m.usage.Duration = time.Since(m.start)
	return m.usage
}

func (m *Monitor) record() {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, err := m.Sample()
	if err != nil {
		log.Warn("Monitor 采样失败: %v", err)
		return
	}
	m.usage.Samples++
	m.usage.PeakCPU = max(m.usage.PeakCPU, s.CPUPercent)
	m.usage.PeakRSS = max(m.usage.PeakRSS, s.RSS)
	m.usage.PeakMem = max(m.usage.PeakMem, s.MemPercent)
}
