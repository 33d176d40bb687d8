package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xraph/weave/internal/logger"
)

var namespacePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Validate checks the values that would otherwise fail later, when the registry
// builds its logger or registers metrics.
func (c Config) Validate() error {
	if !strings.EqualFold(strings.TrimSpace(c.LogLevel), "off") {
		if _, err := logger.ParseLevel(c.LogLevel); err != nil {
			return ErrConfigError(fmt.Sprintf("invalid log_level %q", c.LogLevel), err).
				WithContext("field", "log_level")
		}
	}
	if c.Metrics.Enabled && !namespacePattern.MatchString(c.Metrics.Namespace) {
		return ErrConfigError(fmt.Sprintf("invalid metrics.namespace %q", c.Metrics.Namespace), nil).
			WithContext("field", "metrics.namespace")
	}
	return nil
}
