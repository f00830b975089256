// cmd/rkwdctl/backend.go
package main

import (
	"fmt"
	"time"

	"github.com/cjb1312/rockchip/internal/config"
	"github.com/cjb1312/rockchip/internal/regio/devmem"
	"github.com/cjb1312/rockchip/internal/regio/modbusreg"
	"github.com/cjb1312/rockchip/internal/wdt"
)

// backend is what every register backend provides: the controller's write
// set, a counter read for the status command, and a closer.
type backend interface {
	wdt.RegisterWriter
	ReadCounter() (uint32, error)
	Close() error
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	config.Normalize(cfg)
	return cfg, nil
}

// openBackend builds the register backend the config names.
func openBackend(cfg *config.Config) (backend, error) {
	d := cfg.Watchdog.Device

	switch d.Backend {
	case config.BackendDevmem:
		base, err := config.ParseBaseAddress(d.BaseAddress)
		if err != nil {
			return nil, err
		}
		dev, err := devmem.Open(uintptr(base))
		if err != nil {
			return nil, err
		}
		return dev, nil

	case config.BackendModbus:
		cli, err := modbusreg.New(modbusreg.Config{
			Endpoint: d.Endpoint,
			UnitID:   d.UnitID,
			Base:     d.RegisterBase,
			Timeout:  time.Duration(d.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			return nil, err
		}
		return cli, nil

	default:
		return nil, fmt.Errorf("unknown backend %q", d.Backend)
	}
}

// bindController loads config, opens the backend and claims the watchdog.
func bindController() (*wdt.Controller, *config.Config, backend, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	b, err := openBackend(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	ctl, err := wdt.Bind(b)
	if err != nil {
		b.Close()
		return nil, nil, nil, err
	}

	return ctl, cfg, b, nil
}
