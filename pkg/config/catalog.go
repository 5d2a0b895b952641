package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// CatalogConfig holds the connection settings for the remote catalog API.
type CatalogConfig struct {
	URL     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`
}

// String returns a string representation of the catalog configuration.
func (c *CatalogConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Catalog ---\n")
	b.WriteString(fmt.Sprintf("  url: %s\n", c.URL))
	b.WriteString(fmt.Sprintf("  timeout: %s\n", c.Timeout))
	return b.String()
}

func (c *CatalogConfig) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("catalog URL cannot be empty")
	}
	parsed, err := url.Parse(c.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid catalog URL: %s", c.URL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid catalog request timeout: %v", c.Timeout)
	}
	return nil
}
