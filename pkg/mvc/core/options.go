package core

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/puremvc-go/pkg/mvc"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/logging"
)

// DuplicatePolicy decides what RegisterCommand does for an already mapped name
type DuplicatePolicy string

const (
	// DuplicateOverwrite replaces the existing mapping
	DuplicateOverwrite DuplicatePolicy = "overwrite"
	// DuplicateReject keeps the existing mapping and returns an error
	DuplicateReject DuplicatePolicy = "reject"
)

// ParseDuplicatePolicy converts a configuration value to a DuplicatePolicy
func ParseDuplicatePolicy(value string) (DuplicatePolicy, error) {
	switch DuplicatePolicy(strings.ToLower(strings.TrimSpace(value))) {
	case "", DuplicateOverwrite:
		return DuplicateOverwrite, nil
	case DuplicateReject:
		return DuplicateReject, nil
	default:
		return "", fmt.Errorf("unknown duplicate policy %q", value)
	}
}

type options struct {
	logger          logging.Logger
	duplicatePolicy DuplicatePolicy
	middleware      []mvc.Middleware
}

// Option configures a View or Controller
type Option func(*options)

// WithLogger sets the logger used by the host and injected into dispatch contexts
func WithLogger(logger logging.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithDuplicatePolicy sets the Controller's re-registration policy
func WithDuplicatePolicy(policy DuplicatePolicy) Option {
	return func(o *options) {
		if policy != "" {
			o.duplicatePolicy = policy
		}
	}
}

// WithMiddleware appends command middleware to the Controller
func WithMiddleware(middleware ...mvc.Middleware) Option {
	return func(o *options) {
		o.middleware = append(o.middleware, middleware...)
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger:          logging.NoOp(),
		duplicatePolicy: DuplicateOverwrite,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
