// Package mountinfo parses the Linux /proc/<pid>/mountinfo mount table
// format into typed entries.
//
// The format is line oriented: one mount per line, eleven whitespace
// separated fields, with a variable-length list of optional tag fields
// terminated by a literal "-":
//
//	36 35 98:0 /mnt1 /mnt2 rw,noatime master:1 - ext3 /dev/root rw,errors=continue
//	(1)(2)(3)   (4)   (5)      (6)      (7)   (8) (9)   (10)         (11)
//
// ParseLine handles a single line; Scanner streams a whole table one line
// at a time without materializing it. Parsing is purely syntactic: mount
// semantics (whether IDs form a tree, whether mount points exist) are not
// validated here.
package mountinfo

import "github.com/marmos91/procmount/pkg/mntopt"

// MountEntry is one line of the mount table: a single mount in the
// process's mount namespace.
//
// Entries are plain values. They hold no handles and carry no state beyond
// the line they were parsed from; copying and sharing them is safe.
type MountEntry struct {
	// MountID is a unique identifier for the mount (may be reused after
	// umount).
	MountID uint64 `json:"mount_id" yaml:"mount_id"`

	// ParentID is the ID of the mount this one is nested under (or of
	// self for the root of the mount tree).
	ParentID uint64 `json:"parent_id" yaml:"parent_id"`

	// Major and Minor are the st_dev device number for files on this
	// filesystem.
	Major uint32 `json:"major" yaml:"major"`
	Minor uint32 `json:"minor" yaml:"minor"`

	// Root is the pathname of the directory in the filesystem which forms
	// the root of this mount.
	Root string `json:"root" yaml:"root"`

	// MountPoint is the pathname of the mount point relative to the
	// process's root directory.
	MountPoint string `json:"mount_point" yaml:"mount_point"`

	// MountOpts are the per-mount options.
	MountOpts []mntopt.Opt `json:"mount_opts" yaml:"mount_opts"`

	// Tags are the optional "name" or "name:value" fields, terminated on
	// the line by the "-" separator. May be empty; order and duplicates
	// are preserved.
	Tags []Tag `json:"tags,omitempty" yaml:"tags,omitempty"`

	// FSType is the filesystem type.
	FSType string `json:"fstype" yaml:"fstype"`

	// Source is filesystem-specific information, or "none".
	Source string `json:"source" yaml:"source"`

	// SuperOpts are the per-superblock options.
	SuperOpts []mntopt.Opt `json:"super_opts" yaml:"super_opts"`
}

// Tag is one optional field of a mount entry, e.g. "shared:7" or "unbindable".
type Tag struct {
	Name string `json:"name" yaml:"name"`

	// Value is nil for a tag with no colon ("unbindable"). A tag with a
	// trailing colon ("shared:") has an empty, non-nil value.
	Value *string `json:"value,omitempty" yaml:"value,omitempty"`
}
