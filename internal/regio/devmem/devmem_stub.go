// internal/regio/devmem/devmem_stub.go
//go:build !linux

package devmem

import "errors"

var errUnsupported = errors.New("devmem: /dev/mem access requires linux")

// Device is unavailable on this platform; Open always fails.
type Device struct{}

func Open(phys uintptr) (*Device, error) { return nil, errUnsupported }

func (d *Device) Close() error { return nil }

func (d *Device) WriteControl(v uint32)        {}
func (d *Device) WriteTimeoutRange(v uint32)   {}
func (d *Device) WriteCounterRestart(v uint32) {}

func (d *Device) ReadCounter() (uint32, error) { return 0, errUnsupported }
