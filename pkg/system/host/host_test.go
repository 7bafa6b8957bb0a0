package host

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	s, err := Describe(context.Background())
	require.NoError(t, err)

	assert.Greater(t, s.CPUs, 0)
	assert.Greater(t, s.Memory.ToUint64(), uint64(0))
	t.Logf("host: %s kernel=%s cpus=%d mem=%s %s", s.Hostname, s.Kernel, s.CPUs, s.Memory, s.Cgroup)
}

func TestSummary_LogValue(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	s := Summary{Hostname: "node-1", Kernel: "6.1.0", CPUs: 8, Memory: 16 << 30, Cgroup: CgroupV2}
	log.Info("host", "host", s)

	out := buf.String()
	for _, want := range []string{"host.hostname=node-1", "host.cpus=8", `host.mem="16.00 GiB"`, `host.cgroup="cgroup v2"`} {
		assert.Contains(t, out, want)
	}
}

func TestParseCgroup(t *testing.T) {
	const (
		v2Line = "35 1 0:30 / /sys/fs/cgroup rw,nosuid,nodev,noexec,relatime shared:9 - cgroup2 cgroup2 rw,nsdelegate"
		v1Line = "40 30 0:35 / /sys/fs/cgroup/cpu rw,nosuid shared:15 - cgroup cgroup rw,cpu,cpuacct"
		other  = "22 1 8:1 / / rw,relatime shared:1 - ext4 /dev/sda1 rw"
	)

	cases := []struct {
		name  string
		lines []string
		want  Cgroup
	}{
		{"v2", []string{other, v2Line}, CgroupV2},
		{"v1", []string{other, v1Line}, CgroupV1},
		{"hybrid", []string{v1Line, other, v2Line}, CgroupHybrid},
		{"none", []string{other, "garbage without separator"}, NoCgroup},
		{"empty", nil, NoCgroup},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseCgroup(strings.NewReader(strings.Join(tc.lines, "\n")))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			t.Logf("detected %s", got)
		})
	}
}

func TestCgroup_String(t *testing.T) {
	assert.Equal(t, "cgroup v1", CgroupV1.String())
	assert.Equal(t, "cgroup v2", CgroupV2.String())
	assert.Equal(t, "cgroup hybrid", CgroupHybrid.String())
	assert.Equal(t, "none", NoCgroup.String())
}
