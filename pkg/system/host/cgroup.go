package host

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Cgroup is the cgroup hierarchy mode of the host. Under cgroup limits the
// process-scoped CPU figure is relative to the CPUs the process can see.
type Cgroup int

const (
	NoCgroup     Cgroup = iota // non-Linux or no cgroup mounts
	CgroupV1                   // legacy multi-hierarchy cgroup v1
	CgroupV2                   // unified cgroup v2
	CgroupHybrid               // both v1 and v2 present
)

func (c Cgroup) String() string {
	switch c {
	case CgroupV1:
		return "cgroup v1"
	case CgroupV2:
		return "cgroup v2"
	case CgroupHybrid:
		return "cgroup hybrid"
	default:
		return "none"
	}
}

const mountinfo = "/proc/self/mountinfo"

// DetectCgroup reads /proc/self/mountinfo. A missing file means NoCgroup.
func DetectCgroup() (Cgroup, error) {
	f, err := os.Open(mountinfo)
	if err != nil {
		if os.IsNotExist(err) {
			return NoCgroup, nil
		}
		return NoCgroup, fmt.Errorf("host: open mountinfo: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return parseCgroup(f)
}

// parseCgroup scans mountinfo lines, "<fields> - <fstype> <source> <superopts>",
// and only looks at fstype.
func parseCgroup(r io.Reader) (Cgroup, error) {
	var (
		hasV1, hasV2 bool
		sc           = bufio.NewScanner(r)
	)
	for sc.Scan() {
		line := sc.Text()
		i := strings.LastIndex(line, " - ")
		if i < 0 {
			continue
		}
		fields := strings.Fields(line[i+3:])
		if len(fields) < 1 {
			continue
		}
		switch fields[0] {
		case "cgroup2":
			hasV2 = true
		case "cgroup":
			hasV1 = true
		}
	}
	if err := sc.Err(); err != nil {
		return NoCgroup, fmt.Errorf("host: scan mountinfo: %w", err)
	}

	switch {
	case hasV1 && hasV2:
		return CgroupHybrid, nil
	case hasV2:
		return CgroupV2, nil
	case hasV1:
		return CgroupV1, nil
	default:
		return NoCgroup, nil
	}
}
