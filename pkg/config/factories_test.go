package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/marmos91/procmount/pkg/render"
)

func TestCreateRenderer_Table(t *testing.T) {
	r, err := CreateRenderer(&OutputConfig{Format: "table", Table: map[string]any{}})
	if err != nil {
		t.Fatalf("Failed to create table renderer: %v", err)
	}
	if _, ok := r.(*render.Table); !ok {
		t.Errorf("Expected *render.Table, got %T", r)
	}
}

func TestCreateRenderer_JSONOptions(t *testing.T) {
	r, err := CreateRenderer(&OutputConfig{
		Format: "json",
		JSON:   map[string]any{"pretty": false},
	})
	if err != nil {
		t.Fatalf("Failed to create json renderer: %v", err)
	}
	if _, ok := r.(*render.JSON); !ok {
		t.Errorf("Expected *render.JSON, got %T", r)
	}
}

func TestCreateRenderer_YAML(t *testing.T) {
	r, err := CreateRenderer(&OutputConfig{Format: "yaml"})
	if err != nil {
		t.Fatalf("Failed to create yaml renderer: %v", err)
	}
	if _, ok := r.(*render.YAML); !ok {
		t.Errorf("Expected *render.YAML, got %T", r)
	}
}

func TestCreateRenderer_Unknown(t *testing.T) {
	if _, err := CreateRenderer(&OutputConfig{Format: "xml"}); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestCreateRenderer_BadOptionType(t *testing.T) {
	_, err := CreateRenderer(&OutputConfig{
		Format: "json",
		JSON:   map[string]any{"pretty": "sometimes"},
	})
	if err == nil {
		t.Error("Expected error decoding non-boolean pretty option")
	}
}

func TestOpenSource_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mountinfo")
	line := "26 0 8:2 / / rw - ext4 /dev/sda2 rw\n"
	if err := os.WriteFile(path, []byte(line), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	f, err := OpenSource(&SourceConfig{Type: "file", Path: path})
	if err != nil {
		t.Fatalf("Failed to open source: %v", err)
	}
	defer f.Close()

	if !f.Scan() {
		t.Fatal("Expected one entry")
	}
	if err := f.Err(); err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}
	if f.Entry().FSType != "ext4" {
		t.Errorf("Expected fstype ext4, got %q", f.Entry().FSType)
	}
}

func TestOpenSource_Unknown(t *testing.T) {
	if _, err := OpenSource(&SourceConfig{Type: "network"}); err == nil {
		t.Error("Expected error for unknown source type")
	}
}
