// internal/config/config.go
package config

type Config struct {
	Watchdog WatchdogConfig `yaml:"watchdog"`
}

// ---- WATCHDOG ----

type WatchdogConfig struct {
	Device    DeviceConfig `yaml:"device"`
	TimeoutMs int          `yaml:"timeout_ms"` // default arm timeout
}

// ---- DEVICE ----

// Backend names.
const (
	BackendDevmem = "devmem"
	BackendModbus = "modbus"
)

type DeviceConfig struct {
	Backend string `yaml:"backend"`

	// devmem
	BaseAddress string `yaml:"base_address"` // physical address, decimal or 0x hex

	// modbus register gateway
	Endpoint     string `yaml:"endpoint"`
	UnitID       uint8  `yaml:"unit_id"`
	RegisterBase uint16 `yaml:"register_base"` // first holding register of the block
	TimeoutMs    int    `yaml:"timeout_ms"`    // transport timeout
}
