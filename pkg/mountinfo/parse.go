package mountinfo

import (
	"strconv"
	"strings"

	"github.com/marmos91/procmount/pkg/mntopt"
)

// ParseLine parses a single mountinfo line into a MountEntry.
//
// The line is split on runs of spaces and tabs and the resulting tokens are
// consumed strictly left to right. Only space and tab delimit fields: the
// kernel octal-escapes those (and newline and backslash) inside paths, so
// any other character, including other whitespace, belongs to the token it
// appears in. The first malformed or missing field stops the parse; no
// partial entry is ever returned alongside an error. Tokens after the super
// options field are ignored, so lines from newer kernels that grow extra
// fields still parse.
func ParseLine(line string) (MountEntry, error) {
	var ent MountEntry

	toks := strings.FieldsFunc(line, isFieldSep)
	pos := 0
	next := func() (string, bool) {
		if pos >= len(toks) {
			return "", false
		}
		tok := toks[pos]
		pos++
		return tok, true
	}

	// (1) mount id
	tok, ok := next()
	if !ok {
		return MountEntry{}, ErrMissingMountID
	}
	mountID, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return MountEntry{}, IntError{Field: FieldMountID, Err: err}
	}
	ent.MountID = mountID

	// (2) parent id
	tok, ok = next()
	if !ok {
		return MountEntry{}, ErrMissingParentID
	}
	parentID, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return MountEntry{}, IntError{Field: FieldParentID, Err: err}
	}
	ent.ParentID = parentID

	// (3) major:minor
	tok, ok = next()
	if !ok {
		return MountEntry{}, ErrMissingDevID
	}
	ent.Major, ent.Minor, err = parseDevID(tok)
	if err != nil {
		return MountEntry{}, err
	}

	// (4) root
	tok, ok = next()
	if !ok {
		return MountEntry{}, ErrMissingRoot
	}
	ent.Root = tok

	// (5) mount point
	tok, ok = next()
	if !ok {
		return MountEntry{}, ErrMissingMountPoint
	}
	ent.MountPoint = tok

	// (6) per-mount options
	tok, ok = next()
	if !ok {
		return MountEntry{}, ErrMissingMountOpts
	}
	ent.MountOpts, err = parseOptField(tok)
	if err != nil {
		return MountEntry{}, err
	}

	// (7) optional tags, (8) "-" separator
	for {
		tok, ok = next()
		if !ok {
			return MountEntry{}, ErrMissingSeparator
		}
		if tok == "-" {
			break
		}
		tag, err := parseTag(tok)
		if err != nil {
			return MountEntry{}, err
		}
		ent.Tags = append(ent.Tags, tag)
	}

	// (9) filesystem type
	tok, ok = next()
	if !ok {
		return MountEntry{}, ErrMissingFSType
	}
	ent.FSType = tok

	// (10) mount source
	tok, ok = next()
	if !ok {
		return MountEntry{}, ErrMissingSource
	}
	ent.Source = tok

	// (11) per-superblock options; anything after this is ignored
	tok, ok = next()
	if !ok {
		return MountEntry{}, ErrMissingSuperOpts
	}
	ent.SuperOpts, err = parseOptField(tok)
	if err != nil {
		return MountEntry{}, err
	}

	return ent, nil
}

// isFieldSep reports whether r delimits mountinfo fields.
func isFieldSep(r rune) bool {
	return r == ' ' || r == '\t'
}

// parseDevID splits a "major:minor" token. Anything other than exactly two
// colon-separated parts is invalid and reports the whole token. A part that
// is present but non-numeric instead reports that component's integer
// conversion failure; the components are converted left to right, so the
// error names the first bad one. This asymmetry is deliberate and matches
// the field's historical behavior.
func parseDevID(tok string) (uint32, uint32, error) {
	majTok, minTok, found := strings.Cut(tok, ":")
	if !found || minTok == "" || strings.Contains(minTok, ":") {
		return 0, 0, InvalidFieldError{Field: FieldDevID, Token: tok}
	}

	major, err := strconv.ParseUint(majTok, 10, 32)
	if err != nil {
		return 0, 0, IntError{Field: FieldDevID, Err: err}
	}
	minor, err := strconv.ParseUint(minTok, 10, 32)
	if err != nil {
		return 0, 0, IntError{Field: FieldDevID, Err: err}
	}

	return uint32(major), uint32(minor), nil
}

// parseTag splits a tag token at its first colon. "master:1" has a value,
// "unbindable" does not, and "shared:" has an empty (but present) value.
func parseTag(tok string) (Tag, error) {
	name, value, found := strings.Cut(tok, ":")
	if name == "" {
		return Tag{}, InvalidFieldError{Field: FieldTag, Token: tok}
	}
	if !found {
		return Tag{Name: name}, nil
	}
	return Tag{Name: name, Value: &value}, nil
}

// parseOptField splits a comma-separated option field and delegates each
// piece to mntopt.Parse. Empty pieces produced by adjacent commas are
// dropped; a piece the option parser rejects propagates its error as-is.
func parseOptField(field string) ([]mntopt.Opt, error) {
	var opts []mntopt.Opt
	for _, piece := range strings.Split(field, ",") {
		if piece == "" {
			continue
		}
		opt, err := mntopt.Parse(piece)
		if err != nil {
			return nil, err
		}
		opts = append(opts, opt)
	}
	return opts, nil
}
