// Package render turns parsed mount entries into human- or machine-readable
// output. Each Renderer writes a whole table at once; which one is used is
// decided by configuration (see pkg/config).
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/marmos91/procmount/pkg/mntopt"
	"github.com/marmos91/procmount/pkg/mountinfo"
	"gopkg.in/yaml.v3"
)

// Renderer writes mount entries to an output stream.
type Renderer interface {
	Render(w io.Writer, entries []mountinfo.MountEntry) error
}

// Table renders an aligned text table, one mount per row.
type Table struct {
	headers bool
}

// NewTable creates a table renderer. If headers is true a column header row
// is written first.
func NewTable(headers bool) *Table {
	return &Table{headers: headers}
}

func (t *Table) Render(w io.Writer, entries []mountinfo.MountEntry) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	if t.headers {
		fmt.Fprintln(tw, "ID\tPARENT\tDEV\tROOT\tMOUNT POINT\tTYPE\tSOURCE\tOPTIONS")
	}

	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%d\t%d:%d\t%s\t%s\t%s\t%s\t%s\n",
			e.MountID, e.ParentID, e.Major, e.Minor,
			e.Root, e.MountPoint, e.FSType, e.Source,
			mntopt.Join(e.MountOpts))
	}

	return tw.Flush()
}

// JSON renders the entries as a JSON array.
type JSON struct {
	pretty bool
}

// NewJSON creates a JSON renderer. If pretty is true the output is indented.
func NewJSON(pretty bool) *JSON {
	return &JSON{pretty: pretty}
}

func (j *JSON) Render(w io.Writer, entries []mountinfo.MountEntry) error {
	if entries == nil {
		entries = []mountinfo.MountEntry{}
	}

	enc := json.NewEncoder(w)
	if j.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(entries)
}

// YAML renders the entries as a YAML sequence.
type YAML struct{}

// NewYAML creates a YAML renderer.
func NewYAML() *YAML {
	return &YAML{}
}

func (y *YAML) Render(w io.Writer, entries []mountinfo.MountEntry) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
