package config

import (
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// validate is the singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate validates the configuration using struct tags and custom rules.
//
// This function uses go-playground/validator for declarative validation
// via struct tags, with additional custom validation for rules that cannot
// be expressed in tags.
//
// Note: Log level normalization is handled in ApplyDefaults, not here.
// Validation accepts both uppercase and lowercase log levels.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}

	return validateCustomRules(cfg)
}

// validateCustomRules performs custom validation beyond struct tags.
func validateCustomRules(cfg *Config) error {
	// The source type decides which of the other source fields is required
	switch cfg.Source.Type {
	case "pid":
		if cfg.Source.PID == 0 {
			return fmt.Errorf("source: type is \"pid\" but pid is not set")
		}
	case "file":
		if cfg.Source.Path == "" {
			return fmt.Errorf("source: type is \"file\" but path is not set")
		}
	}

	if cfg.Filter.Prefix != "" && !filepath.IsAbs(cfg.Filter.Prefix) {
		return fmt.Errorf("filter: prefix %q is not an absolute path", cfg.Filter.Prefix)
	}

	return nil
}

// formatValidationError converts validator errors into user-friendly messages.
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		// Return the first validation error with context
		if len(validationErrs) > 0 {
			e := validationErrs[0]
			return fmt.Errorf("%s: validation failed on '%s' tag (value: %v)",
				e.Namespace(), e.Tag(), e.Value())
		}
	}
	return err
}
