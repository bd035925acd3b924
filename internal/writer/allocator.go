package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const megabyte = 1 << 20

// DefaultChunkSize is the write buffer size used when filling a file.
const DefaultChunkSize = 4 * megabyte

// Allocator materializes zero-filled files of a requested size in a target
// directory. Content bytes carry no meaning; only the size does.
type Allocator struct {
	Dir       string
	ChunkSize int // bytes per write; zero means DefaultChunkSize
}

// NewAllocator returns an allocator writing into dir.
func NewAllocator(dir string) *Allocator {
	return &Allocator{Dir: dir, ChunkSize: DefaultChunkSize}
}

// Prepare creates the target directory if needed and verifies it is
// writable by creating and removing a probe file.
func (a *Allocator) Prepare() error {
	if err := os.MkdirAll(a.Dir, 0o755); err != nil {
		return fmt.Errorf("cannot create directory %s: %v", a.Dir, err)
	}

	probe, err := os.CreateTemp(a.Dir, ".diskpress-write-test-")
	if err != nil {
		return fmt.Errorf("directory %s is not writable: %v", a.Dir, err)
	}
	probe.Close()
	os.Remove(probe.Name())
	return nil
}

// Allocate creates a file of sizeMB megabytes in the target directory and
// returns its path. The name encodes a timestamp, a uniqueness token and the
// size. On failure the partial file is left in place for the caller to
// inspect; writes are never retried.
func (a *Allocator) Allocate(sizeMB int64) (string, error) {
	if sizeMB < 1 {
		return "", fmt.Errorf("file size must be at least 1 MB, got %d", sizeMB)
	}

	name := fmt.Sprintf("fill-%s-%s-%dMB.dat",
		time.Now().Format("20060102-150405"),
		uuid.NewString()[:8],
		sizeMB)
	path := filepath.Join(a.Dir, name)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %v", path, err)
	}

	if err := a.fill(file, sizeMB*megabyte); err != nil {
		file.Close()
		return path, err
	}

	if err := file.Sync(); err != nil {
		file.Close()
		return path, fmt.Errorf("failed to sync %s: %v", path, err)
	}
	if err := file.Close(); err != nil {
		return path, fmt.Errorf("failed to close %s: %v", path, err)
	}
	return path, nil
}

func (a *Allocator) fill(file *os.File, size int64) error {
	chunkSize := a.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	buf := make([]byte, chunkSize)
	for remaining := size; remaining > 0; {
		n := int64(len(buf))
		if remaining < n {
			n = remaining
		}

		wrote, err := file.Write(buf[:n])
		if err != nil {
			return fmt.Errorf("failed to write to %s: %v", file.Name(), err)
		}
		if int64(wrote) != n {
			return fmt.Errorf("short write to %s: wrote %d bytes out of %d", file.Name(), wrote, n)
		}
		remaining -= n
	}
	return nil
}
