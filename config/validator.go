package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/buckets/core"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// ConfigValidator validates configuration values.
type ConfigValidator interface {
	Validate(cfg *Config) error
}

// validatorImpl implements ConfigValidator using go-playground/validator.
type validatorImpl struct {
	validate *validator.Validate
	caps     core.Capacities
}

// NewValidator creates a ConfigValidator for the default bucket capacities.
func NewValidator() ConfigValidator {
	return &validatorImpl{
		validate: validator.New(),
		caps:     core.DefaultCapacities,
	}
}

// Validate checks struct tags first, then the domain rules: the start state
// parses and fits the buckets, and the threshold fits the first bucket.
func (v *validatorImpl) Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: configuration is nil", ErrInvalidConfig)
	}

	if err := v.validate.Struct(cfg); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}

		messages := make([]string, 0, len(validationErrs))
		for _, e := range validationErrs {
			messages = append(messages, formatValidationError(e))
		}

		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(messages, "\n  - "))
	}

	start, err := cfg.Search.Start()
	if err != nil {
		return fmt.Errorf("%w: search.start_state: %w", ErrInvalidConfig, err)
	}
	if err = start.Validate(v.caps); err != nil {
		return fmt.Errorf("%w: search.start_state: %w", ErrInvalidConfig, err)
	}
	if cfg.Search.ObjectiveThreshold > v.caps.A {
		return fmt.Errorf("%w: search.objective_threshold must be at most %d (got: %d)",
			ErrInvalidConfig, v.caps.A, cfg.Search.ObjectiveThreshold)
	}

	return nil
}

// formatValidationError renders one field error.
func formatValidationError(e validator.FieldError) string {
	field := e.Namespace()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s (got: %v)", field, e.Param(), e.Value())
	case "max":
		return fmt.Sprintf("%s must be at most %s (got: %v)", field, e.Param(), e.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s] (got: %v)", field, e.Param(), e.Value())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}
