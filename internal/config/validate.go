package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

var validate = newValidator()

// newValidator reports fields by their YAML key.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks a normalized config for correctness and referenced files.
func Validate(cfg *Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validate config: %w", err)
		}
		for _, fieldErr := range fieldErrs {
			add(fieldErr.Field(), describe(fieldErr))
		}
	}

	if path := cfg.QuestionsPath(); path != "" {
		info, err := os.Stat(path)
		if err != nil {
			add("questions_file", fmt.Sprintf("file not found at %q", cfg.QuestionsFile))
		} else if info.IsDir() {
			add("questions_file", fmt.Sprintf("path %q is a directory", cfg.QuestionsFile))
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// describe turns a validator failure into a short message.
func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "eq":
		return fmt.Sprintf("unsupported value %v", fieldErr.Value())
	case "gte":
		return fmt.Sprintf("must be >= %s", fieldErr.Param())
	case "lte":
		return fmt.Sprintf("must be <= %s", fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("invalid value %q (expected %s)", fieldErr.Value(), strings.ReplaceAll(fieldErr.Param(), " ", "|"))
	default:
		return fmt.Sprintf("failed %s check", fieldErr.Tag())
	}
}
