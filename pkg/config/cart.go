package config

import (
	"fmt"
	"strings"
	"time"
)

// CartConfig holds the settings for the cart persistence store.
type CartConfig struct {
	// DBPath is the path of the embedded key-value store file carts are
	// persisted to. When empty the service falls back to in-memory carts.
	DBPath string `koanf:"dbpath"`
	// LockTimeout bounds the wait for the store's file lock on startup.
	LockTimeout time.Duration `koanf:"locktimeout"`
}

// String returns a string representation of the cart configuration.
func (c *CartConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Cart ---\n")
	if c.DBPath == "" {
		b.WriteString("  dbpath: <in-memory>\n")
	} else {
		b.WriteString(fmt.Sprintf("  dbpath: %s\n", c.DBPath))
		b.WriteString(fmt.Sprintf("  locktimeout: %v\n", c.LockTimeout))
	}
	return b.String()
}

func (c *CartConfig) Validate() error {
	if c.DBPath != "" && c.LockTimeout <= 0 {
		return fmt.Errorf("cart store lock timeout is not configured")
	}
	return nil
}
