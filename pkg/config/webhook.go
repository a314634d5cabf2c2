package config

import (
	"fmt"
	"strings"
	"time"
)

// WebhookConfig holds the settings for the workflow-automation webhook that
// receives form submissions.
type WebhookConfig struct {
	URL     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`
}

// String returns a string representation of the webhook configuration.
// The URL carries a routing secret and is never printed in full.
func (c *WebhookConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Webhook ---\n")
	b.WriteString(fmt.Sprintf("  url: %s\n", maskSecret(c.URL)))
	b.WriteString(fmt.Sprintf("  timeout: %s\n", c.Timeout))
	return b.String()
}

func (c *WebhookConfig) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("webhook URL is not configured")
	}
	if !strings.HasPrefix(c.URL, "https://") && !strings.HasPrefix(c.URL, "http://") {
		return fmt.Errorf("webhook URL must be an http(s) URL")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("webhook request timeout is not configured")
	}
	return nil
}
