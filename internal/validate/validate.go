// Package validate provides configuration validation for devlog.
package validate

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/tralse/devlog/devlog"
	"github.com/tralse/devlog/internal/config"
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string
	Message string
	Hint    string
}

// ValidationResult contains all validation results
type ValidationResult struct {
	Valid    bool
	Errors   []ValidationError
	Warnings []ValidationError
}

var envKeyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateConfig performs comprehensive validation on a config
func ValidateConfig(cfg *config.Config, projectRoot string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	validateHeader(cfg, result)
	validateVars(cfg, result)
	validateColor(cfg, result)
	validateEnvFiles(cfg, projectRoot, result)

	result.Valid = len(result.Errors) == 0
	return result
}

func validateHeader(cfg *config.Config, result *ValidationResult) {
	if strings.ContainsAny(cfg.Header, "\r\n") {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "header",
			Message: "Header must be a single line",
			Hint:    "Remove line breaks from 'header'",
		})
		return
	}

	if strings.ContainsAny(cfg.Header, "[]") {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "header",
			Message: fmt.Sprintf("Header contains brackets: '%s'", cfg.Header),
			Hint:    "The header is already printed inside brackets",
		})
	}

	if strings.TrimSpace(cfg.Header) != cfg.Header {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "header",
			Message: fmt.Sprintf("Header has leading or trailing whitespace: '%s'", cfg.Header),
		})
	}
}

func validateVars(cfg *config.Config, result *ValidationResult) {
	vars := []struct {
		field string
		value string
	}{
		{"mode_var", cfg.ModeVar},
		{"verbosity_var", cfg.VerbosityVar},
	}

	for _, v := range vars {
		if !envKeyPattern.MatchString(v.value) {
			result.Errors = append(result.Errors, ValidationError{
				Field:   v.field,
				Message: fmt.Sprintf("Invalid environment variable name: '%s'", v.value),
				Hint:    "Use letters, digits and underscores, not starting with a digit",
			})
		}
	}

	if cfg.ModeVar != "" && cfg.ModeVar == cfg.VerbosityVar {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "verbosity_var",
			Message: fmt.Sprintf("mode_var and verbosity_var are both '%s'", cfg.ModeVar),
			Hint:    fmt.Sprintf("Use separate variables, e.g. %s and %s", devlog.DefaultModeVar, devlog.DefaultVerbosityVar),
		})
	}
}

func validateColor(cfg *config.Config, result *ValidationResult) {
	if _, ok := devlog.LookupColor(cfg.Color); ok {
		return
	}

	names := make([]string, 0)
	for _, c := range devlog.Colors() {
		names = append(names, string(c))
	}
	result.Errors = append(result.Errors, ValidationError{
		Field:   "color",
		Message: fmt.Sprintf("Unknown color: '%s'", cfg.Color),
		Hint:    fmt.Sprintf("Supported colors: %s", strings.Join(names, ", ")),
	})
}

func validateEnvFiles(cfg *config.Config, projectRoot string, result *ValidationResult) {
	for i, path := range cfg.EnvFilePaths(projectRoot) {
		info, err := os.Stat(path)
		if err != nil {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   fmt.Sprintf("env_files[%d]", i),
				Message: fmt.Sprintf("Env file not found: '%s'", cfg.EnvFiles[i]),
				Hint:    "Missing env files are skipped",
			})
			continue
		}
		if info.IsDir() {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("env_files[%d]", i),
				Message: fmt.Sprintf("Env file is a directory: '%s'", cfg.EnvFiles[i]),
			})
			continue
		}
		if _, err := devlog.ReadDotenv(path); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("env_files[%d]", i),
				Message: err.Error(),
				Hint:    "Use KEY=VALUE lines",
			})
		}
	}
}

// FormatValidationResult returns a formatted string of validation results
func FormatValidationResult(result *ValidationResult) string {
	var sb strings.Builder

	if result.Valid && len(result.Warnings) == 0 {
		sb.WriteString("✓ Configuration is valid\n")
		return sb.String()
	}

	if len(result.Errors) > 0 {
		sb.WriteString("✗ Configuration errors:\n\n")
		for _, err := range result.Errors {
			sb.WriteString(fmt.Sprintf("  [ERROR] %s\n", err.Field))
			sb.WriteString(fmt.Sprintf("          %s\n", err.Message))
			if err.Hint != "" {
				sb.WriteString(fmt.Sprintf("          → %s\n", err.Hint))
			}
			sb.WriteString("\n")
		}
	}

	if len(result.Warnings) > 0 {
		sb.WriteString("⚠ Configuration warnings:\n\n")
		for _, warn := range result.Warnings {
			sb.WriteString(fmt.Sprintf("  [WARN] %s\n", warn.Field))
			sb.WriteString(fmt.Sprintf("         %s\n", warn.Message))
			if warn.Hint != "" {
				sb.WriteString(fmt.Sprintf("         → %s\n", warn.Hint))
			}
			sb.WriteString("\n")
		}
	}

	if result.Valid {
		sb.WriteString("✓ Configuration is valid (with warnings)\n")
	} else {
		sb.WriteString("✗ Configuration is invalid. Please fix the errors above.\n")
	}

	return sb.String()
}

// QuickValidate returns the first validation error, if any
func QuickValidate(cfg *config.Config, projectRoot string) error {
	result := ValidateConfig(cfg, projectRoot)
	if len(result.Errors) > 0 {
		err := result.Errors[0]
		if err.Hint == "" {
			return fmt.Errorf("%s: %s", err.Field, err.Message)
		}
		return fmt.Errorf("%s: %s\n  Hint: %s", err.Field, err.Message, err.Hint)
	}
	return nil
}
