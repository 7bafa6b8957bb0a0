// Package host describes the machine a run is measured on.
package host

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shirou/gopsutil/v3/cpu"
	gohost "github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/ja7ad/energystudy/pkg/types"
)

// Summary identifies the host behind a report.
type Summary struct {
	Hostname string
	Kernel   string
	Platform string
	CPUs     int
	Memory   types.Bytes
	Cgroup   Cgroup
}

// Describe collects a Summary. Any collaborator failure is returned as-is;
// partial summaries are not produced.
func Describe(ctx context.Context) (Summary, error) {
	info, err := gohost.InfoWithContext(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("host: info: %w", err)
	}
	cpus, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return Summary{}, fmt.Errorf("host: cpu count: %w", err)
	}
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("host: memory: %w", err)
	}
	cg, err := DetectCgroup()
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Hostname: info.Hostname,
		Kernel:   info.KernelVersion,
		Platform: fmt.Sprintf("%s %s", info.Platform, info.PlatformVersion),
		CPUs:     cpus,
		Memory:   types.ToBytes(vm.Total),
		Cgroup:   cg,
	}, nil
}

// LogValue renders the summary as a slog group.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("hostname", s.Hostname),
		slog.String("kernel", s.Kernel),
		slog.String("platform", s.Platform),
		slog.Int("cpus", s.CPUs),
		slog.String("mem", s.Memory.String()),
		slog.String("cgroup", s.Cgroup.String()),
	)
}
