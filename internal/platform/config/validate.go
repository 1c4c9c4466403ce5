package config

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// tagRule marks failures reported by the cross-field checks below. The
// param carries the message.
const tagRule = "rule"

var exporters = []string{"stdout", "otlp", "prometheus"}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report koanf keys rather than Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		return name
	})
	v.RegisterStructValidation(validateServer, ServerConfig{})
	v.RegisterStructValidation(validateRateLimit, RateLimitConfig{})
	v.RegisterStructValidation(validateStore, StoreConfig{})
	v.RegisterStructValidation(validateTelemetry, TelemetryConfig{})
	return v
}

// Validate reports every invalid setting, one joined error per key.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, errors.New(describe(fe)))
	}
	return errors.Join(errs...)
}

func describe(fe validator.FieldError) string {
	_, key, _ := strings.Cut(fe.Namespace(), ".")

	switch fe.Tag() {
	case tagRule:
		return key + " " + fe.Param()
	case "required":
		return key + " must not be empty"
	case "url":
		return fmt.Sprintf("%s must be an absolute URL, got %q", key, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s; got %q",
			key, strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	case "gt":
		return fmt.Sprintf("%s must be positive, got %v", key, fe.Value())
	case "min", "gte":
		return fmt.Sprintf("%s must be >= %s, got %v", key, fe.Param(), fe.Value())
	case "max", "lte":
		return fmt.Sprintf("%s must be <= %s, got %v", key, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", key, fe.Tag())
	}
}

func validateServer(sl validator.StructLevel) {
	s := sl.Current().Interface().(ServerConfig)
	if s.RequestTimeout > 0 && s.WriteTimeout > 0 && s.WriteTimeout <= s.RequestTimeout {
		sl.ReportError(s.WriteTimeout, "write_timeout", "WriteTimeout", tagRule,
			fmt.Sprintf("must exceed request_timeout (%s), got %s", s.RequestTimeout, s.WriteTimeout))
	}
}

func validateRateLimit(sl validator.StructLevel) {
	r := sl.Current().Interface().(RateLimitConfig)
	if r.RequestsPerSecond > 0 && r.Burst < 1 {
		sl.ReportError(r.Burst, "burst", "Burst", tagRule,
			fmt.Sprintf("must be >= 1 when requests_per_second is set, got %d", r.Burst))
	}
}

func validateStore(sl validator.StructLevel) {
	s := sl.Current().Interface().(StoreConfig)
	switch s.Driver {
	case DriverBolt:
		if s.Bolt.Path == "" {
			sl.ReportError(s.Bolt.Path, "bolt.path", "Path", tagRule, "must not be empty when driver is bolt")
		}
	case DriverPostgres:
		if s.Postgres.DSN == "" {
			sl.ReportError(s.Postgres.DSN, "postgres.dsn", "DSN", tagRule, "must not be empty when driver is postgres")
		}
	}
}

func validateTelemetry(sl validator.StructLevel) {
	t := sl.Current().Interface().(TelemetryConfig)
	if !t.Enabled {
		return
	}
	if !slices.Contains(exporters, t.Exporter) {
		sl.ReportError(t.Exporter, "exporter", "Exporter", tagRule,
			fmt.Sprintf("must be one of: %s; got %q", strings.Join(exporters, ", "), t.Exporter))
	}
	if t.Exporter == "otlp" && t.Endpoint == "" {
		sl.ReportError(t.Endpoint, "endpoint", "Endpoint", tagRule, "must not be empty when exporter is otlp")
	}
}
