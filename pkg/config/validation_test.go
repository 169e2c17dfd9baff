package config

import "testing"

func validConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

func TestValidate_Defaults(t *testing.T) {
	if err := Validate(validConfig()); err != nil {
		t.Errorf("Default config should validate, got: %v", err)
	}
}

func TestValidate_BadLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "TRACE"

	if err := Validate(cfg); err == nil {
		t.Error("Expected error for unknown log level")
	}
}

func TestValidate_BadSourceType(t *testing.T) {
	cfg := validConfig()
	cfg.Source.Type = "network"

	if err := Validate(cfg); err == nil {
		t.Error("Expected error for unknown source type")
	}
}

func TestValidate_PidSourceRequiresPid(t *testing.T) {
	cfg := validConfig()
	cfg.Source.Type = "pid"

	if err := Validate(cfg); err == nil {
		t.Error("Expected error for pid source without pid")
	}

	cfg.Source.PID = 1
	if err := Validate(cfg); err != nil {
		t.Errorf("Expected pid source with pid to validate, got: %v", err)
	}
}

func TestValidate_FileSourceRequiresPath(t *testing.T) {
	cfg := validConfig()
	cfg.Source.Type = "file"

	if err := Validate(cfg); err == nil {
		t.Error("Expected error for file source without path")
	}

	cfg.Source.Path = "/proc/1/mountinfo"
	if err := Validate(cfg); err != nil {
		t.Errorf("Expected file source with path to validate, got: %v", err)
	}
}

func TestValidate_RelativePrefix(t *testing.T) {
	cfg := validConfig()
	cfg.Filter.Prefix = "mnt/data"

	if err := Validate(cfg); err == nil {
		t.Error("Expected error for relative filter prefix")
	}
}
