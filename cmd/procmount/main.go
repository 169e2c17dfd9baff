package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/marmos91/procmount/internal/logger"
	"github.com/marmos91/procmount/pkg/config"
	"github.com/marmos91/procmount/pkg/mountinfo"
)

func main() {
	configPath := flag.String("config", "", "Path to config file (default: "+config.GetDefaultConfigPath()+")")
	logLevel := flag.String("log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	pid := flag.Uint("pid", 0, "Read the mount table of this process instead of the current one")
	file := flag.String("file", "", "Read a mountinfo-formatted file instead of /proc")
	format := flag.String("format", "", "Output format (table, json, yaml)")
	fstypes := flag.String("fstype", "", "Comma-separated filesystem types to show")
	prefix := flag.String("prefix", "", "Only show mounts under this mount point prefix")
	strict := flag.Bool("strict", false, "Fail on the first malformed line instead of skipping it")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// CLI flags take precedence over environment and config file
	if *logLevel != "" {
		cfg.Logging.Level = strings.ToUpper(*logLevel)
	}
	if *pid != 0 {
		cfg.Source = config.SourceConfig{Type: "pid", PID: uint32(*pid)}
	}
	if *file != "" {
		cfg.Source = config.SourceConfig{Type: "file", Path: *file}
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *fstypes != "" {
		cfg.Filter.FSTypes = strings.Split(*fstypes, ",")
	}
	if *prefix != "" {
		cfg.Filter.Prefix = *prefix
	}

	// Flag overrides can invalidate a config that passed Load
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger.SetLevel(cfg.Logging.Level)

	if err := run(cfg, *strict); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(cfg *config.Config, strict bool) error {
	src, err := config.OpenSource(&cfg.Source)
	if err != nil {
		return fmt.Errorf("failed to open mount table: %w", err)
	}
	defer src.Close()

	logger.Debug("Reading mount table (source=%s)", cfg.Source.Type)

	// The parser yields one result per line and keeps going after a bad
	// line; whether that stops the run is our decision, not the parser's.
	var entries []mountinfo.MountEntry
	lineNo := 0
	for src.Scan() {
		lineNo++
		if err := src.Err(); err != nil {
			if strict {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			logger.Warn("Skipping line %d: %v", lineNo, err)
			continue
		}

		entry := src.Entry()
		if !matches(&cfg.Filter, &entry) {
			continue
		}
		entries = append(entries, entry)
	}

	logger.Debug("Parsed %d mounts from %d lines", len(entries), lineNo)

	renderer, err := config.CreateRenderer(&cfg.Output)
	if err != nil {
		return err
	}

	return renderer.Render(os.Stdout, entries)
}

func matches(f *config.FilterConfig, e *mountinfo.MountEntry) bool {
	if len(f.FSTypes) > 0 && !slices.Contains(f.FSTypes, e.FSType) {
		return false
	}
	if f.Prefix != "" && !strings.HasPrefix(e.MountPoint, f.Prefix) {
		return false
	}
	return true
}
