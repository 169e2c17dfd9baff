package config

import (
	"fmt"

	"github.com/marmos91/procmount/pkg/mountinfo"
	"github.com/marmos91/procmount/pkg/render"
	"github.com/mitchellh/mapstructure"
)

// OpenSource opens the mount table selected by the configuration.
//
// Supported types:
//   - "self": the current process's mount table (/proc/self/mountinfo)
//   - "pid": the mount table of the configured process id
//   - "file": an arbitrary mountinfo-formatted file
//
// The caller owns the returned file and must Close it.
func OpenSource(cfg *SourceConfig) (*mountinfo.File, error) {
	switch cfg.Type {
	case "self":
		return mountinfo.Self()
	case "pid":
		return mountinfo.Proc(cfg.PID)
	case "file":
		return mountinfo.Open(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown source type: %q", cfg.Type)
	}
}

// CreateRenderer creates an output renderer based on configuration.
//
// This factory function uses the Format field to determine which renderer
// to create, then decodes the format-specific options from the
// corresponding map and passes them to the renderer's constructor.
func CreateRenderer(cfg *OutputConfig) (render.Renderer, error) {
	switch cfg.Format {
	case "table":
		return createTableRenderer(cfg.Table)
	case "json":
		return createJSONRenderer(cfg.JSON)
	case "yaml":
		return render.NewYAML(), nil
	default:
		return nil, fmt.Errorf("unknown output format: %q", cfg.Format)
	}
}

// createTableRenderer creates the aligned-text renderer.
func createTableRenderer(options map[string]any) (render.Renderer, error) {
	type TableOptions struct {
		// Headers controls the column header row (default true)
		Headers *bool `mapstructure:"headers"`
	}

	var opts TableOptions
	if err := mapstructure.Decode(options, &opts); err != nil {
		return nil, fmt.Errorf("failed to decode table output config: %w", err)
	}

	headers := true
	if opts.Headers != nil {
		headers = *opts.Headers
	}

	return render.NewTable(headers), nil
}

// createJSONRenderer creates the JSON renderer.
func createJSONRenderer(options map[string]any) (render.Renderer, error) {
	type JSONOptions struct {
		// Pretty indents the output (default true)
		Pretty *bool `mapstructure:"pretty"`
	}

	var opts JSONOptions
	if err := mapstructure.Decode(options, &opts); err != nil {
		return nil, fmt.Errorf("failed to decode json output config: %w", err)
	}

	pretty := true
	if opts.Pretty != nil {
		pretty = *opts.Pretty
	}

	return render.NewJSON(pretty), nil
}
