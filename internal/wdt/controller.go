// internal/wdt/controller.go
package wdt

import (
	"log"
	"math/bits"
	"sync"
	"sync/atomic"
	"time"
)

// RegisterWriter is the register access the controller needs. Each call is a
// single 32-bit write to the named register; the backend guarantees the
// hardware observes writes in program order. Writes do not fail: a backend
// that can lose writes deals with that below this interface.
type RegisterWriter interface {
	WriteControl(v uint32)
	WriteTimeoutRange(v uint32)
	WriteCounterRestart(v uint32)
}

// Controller owns the single watchdog instance. Configure, Disable and Armed
// are serialized by an internal mutex so the arm sequence is never
// interleaved between callers. ForceReset deliberately bypasses that mutex;
// see its comment.
type Controller struct {
	mu    sync.Mutex
	regs  RegisterWriter
	armed bool

	// halt parks the CPU once ForceReset has programmed the minimum
	// timeout. Never returns on hardware; tests substitute it.
	halt func()
}

// singleton guards the one-controller-per-process invariant.
type singleton struct {
	c atomic.Pointer[Controller]
}

func (s *singleton) bind(rw RegisterWriter) (*Controller, error) {
	c := &Controller{regs: rw, halt: spin}
	if !s.c.CompareAndSwap(nil, c) {
		return nil, ErrAlreadyBound
	}
	return c, nil
}

func (s *singleton) forceReset() error {
	c := s.c.Load()
	if c == nil {
		log.Print("wdt: reset requested before watchdog was bound")
		return ErrNotBound
	}
	c.regs.WriteTimeoutRange(uint32(wdIntervals[0].encoded) << torrIntervalShift)
	c.regs.WriteControl(ctrlArm)
	c.halt()
	return nil
}

// hardware is the process-wide binding.
var hardware singleton

// Bind claims the watchdog behind rw. There is exactly one watchdog per
// platform; a second Bind fails with ErrAlreadyBound and touches no
// registers. The controller lives for the rest of the process.
func Bind(rw RegisterWriter) (*Controller, error) {
	return hardware.bind(rw)
}

// Configure arms the watchdog with the timeout carried in cmd, or disarms it
// when the interval field of cmd is zero. cmd follows the timeout-command
// convention: the low bits select a timeout of 2^n nanoseconds; all other
// bits are flags for other consumers and are masked off here.
//
// The requested timeout is rounded up to the nearest supported range. When
// even the largest range is too short the watchdog is disabled instead of
// armed short, and ErrTimeoutTooLong is returned for the caller to report.
func (c *Controller) Configure(cmd uint32) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	exp := cmd & intervalMask
	if exp == 0 {
		c.disarm()
		return nil
	}

	ms := (uint64(1) << exp) / uint64(time.Millisecond)
	encoded, ok := resolveInterval(ms)
	if !ok {
		c.disarm()
		log.Printf("wdt: cannot arm: %dms requested, hardware maximum is %dms", ms, MaxTimeoutMS)
		return ErrTimeoutTooLong
	}

	// Program the range before enabling, and refresh the counter last,
	// so the countdown resumes under the new interval.
	c.regs.WriteTimeoutRange(uint32(encoded) << torrIntervalShift)
	c.regs.WriteControl(ctrlArm)
	c.regs.WriteCounterRestart(counterRestartKey)
	c.armed = true
	return nil
}

// Disable stops the countdown. Safe to call whether or not the watchdog is
// armed.
func (c *Controller) Disable() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disarm()
}

// Armed reports whether the watchdog is counting down.
func (c *Controller) Armed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.armed
}

// disarm writes the disable pattern. Callers hold c.mu.
func (c *Controller) disarm() {
	c.regs.WriteControl(ctrlDisable)
	c.armed = false
}

// ForceReset programs the shortest supported timeout without refreshing the
// counter and spins until the hardware resets the platform. It is the
// last-resort restart path and must work from contexts where the Configure
// mutex may be held by a defunct caller, so it takes no locks. It may race
// an in-flight Configure; that race is accepted, since the hardware honors
// whichever write lands last and the process is about to end either way.
//
// Before Bind has succeeded there is no hardware to reset; ForceReset logs,
// touches no registers and returns ErrNotBound.
func ForceReset() error {
	return hardware.forceReset()
}

func spin() {
	for {
	}
}

// ExponentForTimeout converts a duration into the smallest power-of-two
// nanosecond exponent that covers it, the form Configure consumes. A
// non-positive duration maps to zero, the disarm command.
func ExponentForTimeout(d time.Duration) uint32 {
	if d <= 0 {
		return 0
	}
	e := uint32(bits.Len64(uint64(d.Nanoseconds()) - 1))
	if e == 0 {
		e = 1 // 2^0 ns would collide with the disarm encoding
	}
	return e
}
