package config

import (
	"fmt"
	"strings"
	"time"
)

// SecurityConfig holds the browser-facing hardening settings: secure response
// headers and the rate limit applied to mutating routes.
type SecurityConfig struct {
	Production bool `koanf:"production"`
	RateLimit  struct {
		Requests int           `koanf:"requests"`
		Window   time.Duration `koanf:"window"`
	} `koanf:"rateLimit"`
}

// String returns a string representation of the security configuration.
func (c *SecurityConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Security ---\n")
	b.WriteString(fmt.Sprintf("  production: %t\n", c.Production))
	b.WriteString(fmt.Sprintf("  rateLimit.requests: %d\n", c.RateLimit.Requests))
	b.WriteString(fmt.Sprintf("  rateLimit.window: %s\n", c.RateLimit.Window))
	return b.String()
}

func (c *SecurityConfig) Validate() error {
	if c.RateLimit.Requests <= 0 {
		return fmt.Errorf("invalid rate limit request count: %d", c.RateLimit.Requests)
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("invalid rate limit window: %v", c.RateLimit.Window)
	}
	return nil
}
