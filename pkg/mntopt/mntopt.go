// Package mntopt parses individual mount option tokens as they appear in
// the comma-separated option fields of /proc/<pid>/mountinfo (and mount(8)
// output in general).
//
// Each token is either a known flag keyword ("rw", "nosuid", "relatime", ...)
// or an uninterpreted extra such as "errors=continue". Known keywords come in
// positive/negative pairs and parse to the same Kind with On reporting which
// half was seen.
package mntopt

import (
	"errors"
	"strings"
)

// Kind classifies a mount option token.
type Kind int

const (
	// KindWrite is rw/ro.
	KindWrite Kind = iota

	// KindSuid is suid/nosuid.
	KindSuid

	// KindDev is dev/nodev.
	KindDev

	// KindExec is exec/noexec.
	KindExec

	// KindSync is sync/async.
	KindSync

	// KindAtime is atime/noatime.
	KindAtime

	// KindDirAtime is diratime/nodiratime.
	KindDirAtime

	// KindRelAtime is relatime/norelatime.
	KindRelAtime

	// KindExtra is any token not in the keyword table, kept verbatim
	// (typically filesystem-specific "key=value" options).
	KindExtra
)

// Opt is a single parsed mount option.
//
// For keyword kinds, On reports whether the positive form was seen
// ("rw" → true, "ro" → false). For KindExtra, Extra holds the raw token
// and On is meaningless.
type Opt struct {
	Kind  Kind
	On    bool
	Extra string
}

// ErrEmpty is returned by Parse for an empty token.
var ErrEmpty = errors.New("empty mount option")

var keywords = map[string]Opt{
	"rw":         {Kind: KindWrite, On: true},
	"ro":         {Kind: KindWrite, On: false},
	"suid":       {Kind: KindSuid, On: true},
	"nosuid":     {Kind: KindSuid, On: false},
	"dev":        {Kind: KindDev, On: true},
	"nodev":      {Kind: KindDev, On: false},
	"exec":       {Kind: KindExec, On: true},
	"noexec":     {Kind: KindExec, On: false},
	"sync":       {Kind: KindSync, On: true},
	"async":      {Kind: KindSync, On: false},
	"atime":      {Kind: KindAtime, On: true},
	"noatime":    {Kind: KindAtime, On: false},
	"diratime":   {Kind: KindDirAtime, On: true},
	"nodiratime": {Kind: KindDirAtime, On: false},
	"relatime":   {Kind: KindRelAtime, On: true},
	"norelatime": {Kind: KindRelAtime, On: false},
}

// canonical tokens for the keyword kinds, indexed [Kind][On]
var tokens = map[Kind][2]string{
	KindWrite:    {"ro", "rw"},
	KindSuid:     {"nosuid", "suid"},
	KindDev:      {"nodev", "dev"},
	KindExec:     {"noexec", "exec"},
	KindSync:     {"async", "sync"},
	KindAtime:    {"noatime", "atime"},
	KindDirAtime: {"nodiratime", "diratime"},
	KindRelAtime: {"norelatime", "relatime"},
}

// Parse parses one option token.
//
// Unknown tokens are not an error: anything outside the keyword table
// becomes a KindExtra option carrying the raw token. Only an empty token
// fails, with ErrEmpty.
func Parse(token string) (Opt, error) {
	if token == "" {
		return Opt{}, ErrEmpty
	}
	if opt, ok := keywords[token]; ok {
		return opt, nil
	}
	return Opt{Kind: KindExtra, Extra: token}, nil
}

// String renders the canonical token for the option ("rw", "noexec",
// "errors=continue", ...).
func (o Opt) String() string {
	if o.Kind == KindExtra {
		return o.Extra
	}
	pair, ok := tokens[o.Kind]
	if !ok {
		return o.Extra
	}
	if o.On {
		return pair[1]
	}
	return pair[0]
}

// MarshalText implements encoding.TextMarshaler so options serialize as
// their canonical tokens in JSON and YAML output.
func (o Opt) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Join renders a list of options back into a comma-separated option field.
func Join(opts []Opt) string {
	parts := make([]string, len(opts))
	for i, o := range opts {
		parts[i] = o.String()
	}
	return strings.Join(parts, ",")
}
