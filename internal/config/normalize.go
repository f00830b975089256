// internal/config/normalize.go
package config

// Default values applied by Normalize.
const (
	DefaultTimeoutMs          = 5000
	DefaultTransportTimeoutMs = 1000
)

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Watchdog.TimeoutMs == 0 {
		cfg.Watchdog.TimeoutMs = DefaultTimeoutMs
	}

	if cfg.Watchdog.Device.Backend == BackendModbus && cfg.Watchdog.Device.TimeoutMs == 0 {
		cfg.Watchdog.Device.TimeoutMs = DefaultTransportTimeoutMs
	}
}
