//go:build windows

package diskguard

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// Usage returns the used-capacity percentage of the volume containing path.
func Usage(path string) (float64, error) {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, fmt.Errorf("invalid path %s: %v", path, err)
	}

	var freeToCaller, total, totalFree uint64
	if err := windows.GetDiskFreeSpaceEx(pathPtr, &freeToCaller, &total, &totalFree); err != nil {
		return 0, fmt.Errorf("GetDiskFreeSpaceEx %s: %v", path, err)
	}
	if total == 0 {
		return 0, fmt.Errorf("volume %s reports zero capacity", path)
	}

	used := total - totalFree
	if used+freeToCaller == 0 {
		return 100, nil
	}
	return float64(used) / float64(used+freeToCaller) * 100, nil
}
