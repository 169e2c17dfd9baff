package mountinfo

import (
	"bufio"
	"io"
)

// Scanner streams a mountinfo document one line at a time, without reading
// ahead or materializing the table.
//
// Usage follows bufio.Scanner, except that failures are per line: a line
// that does not parse still yields an item (Scan returns true and Err
// returns the parse failure for that line), and the next Scan moves on to
// the following line. Whether to stop at the first bad line or keep
// scanning is the caller's decision. A failure reading the source itself
// is yielded once, as a ReadError, after which Scan returns false.
type Scanner struct {
	s    *bufio.Scanner
	ent  MountEntry
	err  error
	done bool
}

// maxLineLen caps a single mountinfo line. bufio's 64 KiB default is too
// small: overlay mounts with long lowerdir lists can push a real line well
// past it.
const maxLineLen = 4 << 20

// NewScanner returns a Scanner reading mount entries from r. The Scanner
// assumes exclusive use of r for its lifetime.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(nil, maxLineLen)
	return &Scanner{s: s}
}

// Scan advances to the next line. It returns false when the input is
// exhausted; the per-line result is then available from Entry and Err.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}

	if !s.s.Scan() {
		s.done = true
		if err := s.s.Err(); err != nil {
			s.ent, s.err = MountEntry{}, ReadError{Err: err}
			return true
		}
		return false
	}

	s.ent, s.err = ParseLine(s.s.Text())
	return true
}

// Entry returns the entry parsed by the last call to Scan. It is only
// meaningful when Err returns nil.
func (s *Scanner) Entry() MountEntry {
	return s.ent
}

// Err returns the failure, if any, for the line consumed by the last call
// to Scan.
func (s *Scanner) Err() error {
	return s.err
}

// ParseAll eagerly reads every mount entry from r, stopping at the first
// failed line or read error. Useful when the caller wants the whole table
// and has no per-line error policy of its own.
func ParseAll(r io.Reader) ([]MountEntry, error) {
	var entries []MountEntry

	s := NewScanner(r)
	for s.Scan() {
		if err := s.Err(); err != nil {
			return nil, err
		}
		entries = append(entries, s.Entry())
	}

	return entries, nil
}
