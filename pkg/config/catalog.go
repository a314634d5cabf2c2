package config

import (
	"fmt"
	"strings"
	"time"
)

// CatalogConfig holds the connection settings for the commerce platform's
// storefront API.
type CatalogConfig struct {
	Domain     string        `koanf:"domain"`
	APIVersion string        `koanf:"apiversion"`
	Token      string        `koanf:"token"`
	Timeout    time.Duration `koanf:"timeout"`
}

// URL returns the storefront GraphQL endpoint for the configured domain and
// API version.
func (c *CatalogConfig) URL() string {
	return fmt.Sprintf("https://%s/api/%s/graphql.json", c.Domain, c.APIVersion)
}

// String returns a string representation of the catalog configuration.
// The access token is never printed.
func (c *CatalogConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Catalog ---\n")
	b.WriteString(fmt.Sprintf("  domain: %s\n", c.Domain))
	b.WriteString(fmt.Sprintf("  apiversion: %s\n", c.APIVersion))
	b.WriteString(fmt.Sprintf("  token: %s\n", maskSecret(c.Token)))
	b.WriteString(fmt.Sprintf("  timeout: %s\n", c.Timeout))
	return b.String()
}

func (c *CatalogConfig) Validate() error {
	if c.Domain == "" {
		return fmt.Errorf("catalog domain is not configured")
	}
	if c.APIVersion == "" {
		return fmt.Errorf("catalog API version is not configured")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("catalog request timeout is not configured")
	}
	return nil
}

// maskSecret hides a credential from log output, keeping only its presence.
func maskSecret(s string) string {
	if s == "" {
		return "<not configured>"
	}
	return "****"
}
