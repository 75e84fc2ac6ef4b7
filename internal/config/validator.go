package config

import (
	"errors"
	"strings"

	"github.com/indaco/jsrgen/internal/exports"
	"github.com/indaco/jsrgen/internal/filter"
)

// Validate checks the glob patterns of the configuration.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Name) != c.Name {
		errs = append(errs, errors.New("name must not have surrounding whitespace"))
	}
	if err := exports.ValidatePatterns(c.Exports); err != nil {
		errs = append(errs, err)
	}
	if _, err := filter.NewMatcher(c.Ignore); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
