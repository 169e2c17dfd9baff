package mountinfo

import "fmt"

// Field identifies one positional field of a mountinfo line. Values are the
// 1-based field numbers of the documented layout, so diagnostics can name
// the exact position without re-parsing the line.
type Field int

const (
	FieldMountID Field = iota + 1
	FieldParentID
	FieldDevID
	FieldRoot
	FieldMountPoint
	FieldMountOpts
	FieldTag
	FieldSeparator
	FieldFSType
	FieldSource
	FieldSuperOpts
)

func (f Field) String() string {
	switch f {
	case FieldMountID:
		return "mount id"
	case FieldParentID:
		return "parent id"
	case FieldDevID:
		return "dev id"
	case FieldRoot:
		return "root"
	case FieldMountPoint:
		return "mount point"
	case FieldMountOpts:
		return "mount opts"
	case FieldTag:
		return "tag"
	case FieldSeparator:
		return "separator"
	case FieldFSType:
		return "filesystem"
	case FieldSource:
		return "mount source"
	case FieldSuperOpts:
		return "super opts"
	default:
		return "unknown"
	}
}

// MissingFieldError reports that the line ended before the named field.
// It is a comparable value type; use the ErrMissing* variables with
// errors.Is to match a specific field.
type MissingFieldError struct {
	Field Field
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("missing field #%d (%s)", int(e.Field), e.Field)
}

// The full set of missing-field failures, one per mandatory position.
// ErrMissingSeparator is returned when the token stream runs out before
// the literal "-" that ends the tag list.
var (
	ErrMissingMountID    = MissingFieldError{FieldMountID}
	ErrMissingParentID   = MissingFieldError{FieldParentID}
	ErrMissingDevID      = MissingFieldError{FieldDevID}
	ErrMissingRoot       = MissingFieldError{FieldRoot}
	ErrMissingMountPoint = MissingFieldError{FieldMountPoint}
	ErrMissingMountOpts  = MissingFieldError{FieldMountOpts}
	ErrMissingSeparator  = MissingFieldError{FieldSeparator}
	ErrMissingFSType     = MissingFieldError{FieldFSType}
	ErrMissingSource     = MissingFieldError{FieldSource}
	ErrMissingSuperOpts  = MissingFieldError{FieldSuperOpts}
)

// InvalidFieldError reports a field whose token is present but malformed:
// a dev id without exactly two colon-separated parts, or a tag with an
// empty name. Token is the exact offending token from the line.
type InvalidFieldError struct {
	Field Field
	Token string
}

func (e InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid field #%d (%s): %q", int(e.Field), e.Field, e.Token)
}

// IntError reports a numeric field that failed integer conversion. Err is
// the underlying *strconv.NumError, which carries the offending token.
type IntError struct {
	Field Field
	Err   error
}

func (e IntError) Error() string {
	return fmt.Sprintf("invalid integer in field #%d (%s): %v", int(e.Field), e.Field, e.Err)
}

func (e IntError) Unwrap() error {
	return e.Err
}

// ReadError reports a failure reading a line from the underlying source,
// as opposed to a parse failure of a line that was read. It wraps the
// original I/O error, so errors.Is still matches OS classifications such
// as fs.ErrPermission through it.
type ReadError struct {
	Err error
}

func (e ReadError) Error() string {
	return fmt.Sprintf("read line: %v", e.Err)
}

func (e ReadError) Unwrap() error {
	return e.Err
}
