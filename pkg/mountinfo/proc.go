package mountinfo

import (
	"fmt"
	"os"
)

const selfMountInfoPath = "/proc/self/mountinfo"

// File is a Scanner bound to an open mountinfo file. Close releases the
// underlying file once scanning is done.
type File struct {
	*Scanner
	f *os.File
}

// Close closes the underlying file.
func (f *File) Close() error {
	return f.f.Close()
}

// Open opens a mountinfo-formatted file at an arbitrary path.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &File{Scanner: NewScanner(f), f: f}, nil
}

// Self opens the mount table of the current process.
func Self() (*File, error) {
	return Open(selfMountInfoPath)
}

// Proc opens the mount table of the process with the given pid, as seen in
// that process's mount namespace.
func Proc(pid uint32) (*File, error) {
	return Open(fmt.Sprintf("/proc/%d/mountinfo", pid))
}
