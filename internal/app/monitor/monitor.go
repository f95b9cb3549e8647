//go:generate mockgen -source=monitor.go -destination=monitor_mock.go -package=monitor
package monitor

import (
	"context"
	"math"

	"github.com/shirou/gopsutil/v4/process"
)

// Stats contains process resource statistics
type Stats struct {
	CPU float64
	RSS uint64
}

// Monitor provides process resource monitoring
type Monitor interface {
	GetStats(ctx context.Context, pid int) (Stats, error)
}

type monitor struct{}

// NewMonitor creates a new Monitor instance
func NewMonitor() Monitor {
	return &monitor{}
}

// GetStats samples CPU percent and resident memory of pid; a non-positive PID yields zero stats.
// Counters the OS refuses to report are left at zero rather than failing the sample.
func (m *monitor) GetStats(ctx context.Context, pid int) (Stats, error) {
	if pid <= 0 || pid > math.MaxInt32 {
		return Stats{}, nil
	}

	p, err := process.NewProcessWithContext(ctx, int32(pid)) // #nosec G115 -- bounded above
	if err != nil {
		return Stats{}, err
	}

	var s Stats

	if cpu, err := p.CPUPercentWithContext(ctx); err == nil {
		s.CPU = cpu
	}

	if mem, err := p.MemoryInfoWithContext(ctx); err == nil && mem != nil {
		s.RSS = mem.RSS
	}

	return s, nil
}

// Peak tracks the highest values seen across samples
type Peak struct {
	CPU float64
	RSS uint64
}

// Observe folds one sample into the peak
func (p *Peak) Observe(s Stats) {
	p.CPU = max(p.CPU, s.CPU)
	p.RSS = max(p.RSS, s.RSS)
}
