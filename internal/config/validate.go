// internal/config/validate.go
package config

import (
	"errors"
	"fmt"
	"strconv"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	d := cfg.Watchdog.Device

	switch d.Backend {
	case BackendDevmem:
		if d.BaseAddress == "" {
			return fmt.Errorf("config: backend %q requires base_address", d.Backend)
		}
		if _, err := ParseBaseAddress(d.BaseAddress); err != nil {
			return err
		}

	case BackendModbus:
		if d.Endpoint == "" {
			return fmt.Errorf("config: backend %q requires endpoint", d.Backend)
		}

	case "":
		return errors.New("config: device backend required")

	default:
		return fmt.Errorf("config: unknown backend %q", d.Backend)
	}

	if cfg.Watchdog.TimeoutMs < 0 {
		return errors.New("config: timeout_ms must be >= 0")
	}
	if d.TimeoutMs < 0 {
		return errors.New("config: device timeout_ms must be >= 0")
	}

	return nil
}

// ParseBaseAddress accepts a decimal or 0x-prefixed hex physical address.
func ParseBaseAddress(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("config: bad base_address %q: %w", s, err)
	}
	if v == 0 {
		return 0, errors.New("config: base_address must be non-zero")
	}
	return v, nil
}
