package preflight

import (
	"fmt"
	"syscall"
)

// MinDiskSpaceBytes is the minimum free space required to grow the index.
const MinDiskSpaceBytes = 100 * 1024 * 1024

// CheckDiskSpace checks free space at path.
func (c *Checker) CheckDiskSpace(path string) Result {
	r := Result{Name: "disk_space", Required: true}

	var stat syscall.Statfs_t
	if err := syscall.Statfs(path, &stat); err != nil {
		r.Status = StatusFail
		r.Message = fmt.Sprintf("failed to check disk space: %v", err)
		return r
	}

	available := stat.Bavail * uint64(stat.Bsize)
	r.Message = fmt.Sprintf("%s free (minimum: 100 MB)", formatBytes(available))
	if available < MinDiskSpaceBytes {
		r.Status = StatusFail
		return r
	}
	r.Status = StatusPass
	return r
}

func formatBytes(b uint64) string {
	const (
		KB = 1024
		MB = 1024 * KB
		GB = 1024 * MB
	)
	switch {
	case b >= GB:
		return fmt.Sprintf("%.1f GB", float64(b)/GB)
	case b >= MB:
		return fmt.Sprintf("%.1f MB", float64(b)/MB)
	case b >= KB:
		return fmt.Sprintf("%.1f KB", float64(b)/KB)
	default:
		return fmt.Sprintf("%d bytes", b)
	}
}
