// internal/regio/devmem/devmem.go
//go:build linux

// Package devmem backs the watchdog register block with a /dev/mem mapping
// of the peripheral's physical address. This is the backend used when
// running on the SoC itself.
package devmem

import (
	"fmt"
	"os"
	"sync/atomic"
	"syscall"
	"unsafe"

	"github.com/cjb1312/rockchip/internal/wdt"
)

// Device is one mapped watchdog register block.
type Device struct {
	f    *os.File
	mem  []byte
	base uintptr // offset of the block within the mapped page
}

// Open maps the page containing the register block at physical address phys.
func Open(phys uintptr) (*Device, error) {
	pageSize := uintptr(syscall.Getpagesize())
	pageBase := phys &^ (pageSize - 1)

	f, err := os.OpenFile("/dev/mem", os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("devmem: %w", err)
	}

	mem, err := syscall.Mmap(int(f.Fd()), int64(pageBase), int(pageSize),
		syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("devmem: mmap %#x: %w", pageBase, err)
	}

	return &Device{f: f, mem: mem, base: phys - pageBase}, nil
}

// Close unmaps the register block.
func (d *Device) Close() error {
	if err := syscall.Munmap(d.mem); err != nil {
		d.f.Close()
		return err
	}
	return d.f.Close()
}

// write32 issues exactly one 32-bit store; atomic ops keep the compiler from
// splitting or reordering MMIO accesses.
func (d *Device) write32(off uintptr, v uint32) {
	atomic.StoreUint32((*uint32)(unsafe.Pointer(&d.mem[d.base+off])), v)
}

func (d *Device) read32(off uintptr) uint32 {
	return atomic.LoadUint32((*uint32)(unsafe.Pointer(&d.mem[d.base+off])))
}

// ---- wdt.RegisterWriter ----

func (d *Device) WriteControl(v uint32)        { d.write32(wdt.RegCtrl, v) }
func (d *Device) WriteTimeoutRange(v uint32)   { d.write32(wdt.RegTimeoutRange, v) }
func (d *Device) WriteCounterRestart(v uint32) { d.write32(wdt.RegCounterRestart, v) }

// ReadCounter returns the live countdown value (CCVR).
func (d *Device) ReadCounter() (uint32, error) {
	return d.read32(wdt.RegCurrentCounter), nil
}
