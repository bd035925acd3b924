package diskguard

import (
	"errors"
	"fmt"
)

// DefaultHighWater is the used-capacity percentage at which further writes
// are considered unsafe. 99 approximates "effectively full" while tolerating
// filesystem accounting rounding.
const DefaultHighWater = 99.0

// ErrDiskExhausted indicates the filesystem is at or above the high-water
// mark. The caller must treat it as fatal and stop without writing.
var ErrDiskExhausted = errors.New("disk usage at or above high-water mark")

// Guard checks filesystem usage at a path against a high-water mark. It
// keeps no memory of prior samples; Check must be called immediately before
// every write because other processes may be consuming the same disk.
type Guard struct {
	Path      string
	HighWater float64 // percent used; zero means DefaultHighWater

	// usageFn overrides the platform usage query in tests.
	usageFn func(string) (float64, error)
}

// New returns a guard for the filesystem containing path, using the default
// high-water mark.
func New(path string) *Guard {
	return &Guard{Path: path, HighWater: DefaultHighWater}
}

// Check returns nil when the filesystem is below the high-water mark and an
// error wrapping ErrDiskExhausted once usage reaches it.
func (g *Guard) Check() error {
	usage := g.usageFn
	if usage == nil {
		usage = Usage
	}
	highWater := g.HighWater
	if highWater <= 0 {
		highWater = DefaultHighWater
	}

	pct, err := usage(g.Path)
	if err != nil {
		return fmt.Errorf("disk usage check on %s: %w", g.Path, err)
	}
	if pct >= highWater {
		return fmt.Errorf("%s is %.1f%% full (limit %.1f%%): %w", g.Path, pct, highWater, ErrDiskExhausted)
	}
	return nil
}
