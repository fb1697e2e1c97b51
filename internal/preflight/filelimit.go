package preflight

import (
	"fmt"
	"syscall"
)

// MinFileDescriptors is the minimum open-file limit needed for a parallel
// tree-walk plus an open SQLite handle.
const MinFileDescriptors = 1024

// CheckFileDescriptors checks the process's open-file rlimit.
func (c *Checker) CheckFileDescriptors() Result {
	r := Result{Name: "file_descriptors", Required: true}

	var rLimit syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		r.Status = StatusFail
		r.Message = fmt.Sprintf("failed to check file descriptor limit: %v", err)
		return r
	}

	r.Message = fmt.Sprintf("%d (minimum: %d)", rLimit.Cur, MinFileDescriptors)
	if rLimit.Cur < MinFileDescriptors {
		r.Status = StatusFail
		r.Details = "raise the limit with 'ulimit -n 4096'"
		return r
	}
	r.Status = StatusPass
	return r
}
