//go:build unix

package diskguard

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Usage returns the used-capacity percentage of the filesystem containing
// path, computed against the space visible to unprivileged users so the
// result matches df's Use%.
func Usage(path string) (float64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, fmt.Errorf("statfs %s: %v", path, err)
	}

	bsize := uint64(st.Bsize)
	total := st.Blocks * bsize
	if total == 0 {
		return 0, fmt.Errorf("statfs %s: filesystem reports zero capacity", path)
	}

	used := (st.Blocks - st.Bfree) * bsize
	available := st.Bavail * bsize
	if used+available == 0 {
		return 100, nil
	}
	return float64(used) / float64(used+available) * 100, nil
}
