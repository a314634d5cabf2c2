package config

import (
	"fmt"
	"strings"

	"github.com/duckydrinks/storefront/pkg/config"
	"github.com/duckydrinks/storefront/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

// Config is the full storefront service configuration.
type Config struct {
	HTTPServer config.HTTPConfig       `koanf:"server"`
	Catalog    config.CatalogConfig    `koanf:"catalog"`
	Webhook    config.WebhookConfig    `koanf:"webhook"`
	Locator    config.LocatorConfig    `koanf:"locator"`
	Cart       config.CartConfig       `koanf:"cart"`
	Resilience config.ResilienceConfig `koanf:"resilience"`
	Log        config.LogConfig        `koanf:"log"`
	PProf      config.PProfConfig      `koanf:"pprof"`
	Shutdown   config.ShutdownConfig   `koanf:"shutdown"`
}

func (c *Config) String() string {
	var b strings.Builder

	b.WriteString("\n--- Server Configuration ---\n")
	b.WriteString(fmt.Sprintf("  server.port: %d\n", c.HTTPServer.Port))
	b.WriteString(fmt.Sprintf("  server.maxHeaderBytes: %d\n", c.HTTPServer.MaxHeaderBytes))
	b.WriteString(fmt.Sprintf("  server.timeout.read: %v\n", c.HTTPServer.Timeout.Read))
	b.WriteString(fmt.Sprintf("  server.timeout.write: %v\n", c.HTTPServer.Timeout.Write))
	b.WriteString(fmt.Sprintf("  server.timeout.idle: %v\n", c.HTTPServer.Timeout.Idle))
	b.WriteString(fmt.Sprintf("  server.timeout.readHeader: %v\n", c.HTTPServer.Timeout.ReadHeader))

	b.WriteString(c.Catalog.String())
	b.WriteString(c.Webhook.String())
	b.WriteString(c.Locator.String())
	b.WriteString(c.Cart.String())
	b.WriteString(c.Resilience.String())
	b.WriteString(c.Log.String())
	b.WriteString(c.PProf.String())
	b.WriteString(c.Shutdown.String())

	return b.String()
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if err := c.HTTPServer.Validate(); err != nil {
		return err
	}
	if err := c.Catalog.Validate(); err != nil {
		return err
	}
	if err := c.Webhook.Validate(); err != nil {
		return err
	}
	if err := c.Locator.Validate(); err != nil {
		return err
	}
	if err := c.Cart.Validate(); err != nil {
		return err
	}
	if err := c.Resilience.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.PProf.Validate(); err != nil {
		return err
	}
	return c.Shutdown.Validate()
}
