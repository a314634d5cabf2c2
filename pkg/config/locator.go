package config

import (
	"fmt"
	"strings"
	"time"
)

// LocatorConfig holds the settings for the published spreadsheet feed the
// store locator reads retail locations from.
type LocatorConfig struct {
	FeedURL string        `koanf:"feedurl"`
	Timeout time.Duration `koanf:"timeout"`
}

// String returns a string representation of the locator configuration.
func (c *LocatorConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Locator ---\n")
	b.WriteString(fmt.Sprintf("  feedurl: %s\n", c.FeedURL))
	b.WriteString(fmt.Sprintf("  timeout: %s\n", c.Timeout))
	return b.String()
}

func (c *LocatorConfig) Validate() error {
	if c.FeedURL == "" {
		return fmt.Errorf("locator feed URL is not configured")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("locator request timeout is not configured")
	}
	return nil
}
