package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Inputs []string `validate:"min=1,dive,required"`

	Layout     string `validate:"oneof=canonical pipe"`
	LayoutFile string
	Delimiter  string
	SkipHeader bool
	Grouped    bool
	NoPrune    bool

	SummaryPath string

	LogFormat       string `validate:"oneof=text json auto"`
	LogLevel        string `validate:"oneof=debug info warn error"`
	HealthcheckPort int    `validate:"min=0,max=65535"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewConfig fills in defaults and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Layout == "" {
		cfg.Layout = "canonical"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "auto"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	cfg.Layout = strings.ToLower(cfg.Layout)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, describe(verrs)
		}
		return nil, err
	}
	return &cfg, nil
}

// describe turns validator output into one readable error.
func describe(verrs validator.ValidationErrors) error {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("invalid %s %q: must be one of %s", fe.Field(), fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", ")))
		case "min":
			if fe.Field() == "Inputs" {
				msgs = append(msgs, "at least one input is required")
				continue
			}
			msgs = append(msgs, fmt.Sprintf("invalid %s %v: must be at least %s", fe.Field(), fe.Value(), fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("invalid %s %v: must be at most %s", fe.Field(), fe.Value(), fe.Param()))
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s must not contain empty values", fe.Namespace()))
		default:
			msgs = append(msgs, fe.Error())
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
