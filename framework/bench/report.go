package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
)

// Report 一次基准运行
type Report struct {
	ID      string
	Started time.Time
	Workers int
	Results []Result
	Usage   Usage
}

func NewReport(workers int) *Report {
	return &Report{
		ID:      uuid.NewString(),
		Started: time.Now(),
		Workers: workers,
	}
}

func (r *Report) Add(res Result) {
	r.Results = append(r.Results, res)
}

// WriteTo 以表格写出
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	fmt.Fprintf(cw, "run %s started %s workers=%d\n", r.ID, r.Started.Format(time.DateTime), r.Workers)
	tw := tabwriter.NewWriter(cw, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "engine\tcorpus\thands\telapsed\thands/s")
	for _, res := range r.Results {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%v\t%.0f\n",
			res.Engine, res.Kind, res.Hands, res.Elapsed.Round(time.Microsecond), res.HandsPerSecond())
	}
	if err := tw.Flush(); err != nil {
		return cw.n, err
	}
	if r.Usage.Samples > 0 {
		fmt.Fprintf(cw, "peak cpu %.1f%%, peak rss %.1f MiB (%.2f%% of memory), %d samples\n",
			r.Usage.PeakCPU, float64(r.Usage.PeakRSS)/(1<<20), r.Usage.PeakMem, r.Usage.Samples)
	}
	return cw.n, cw.err
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
