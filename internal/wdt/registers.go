// internal/wdt/registers.go
package wdt

// Register offsets of the RK30xx watchdog block (DesignWare dw_wdt layout).
const (
	RegCtrl           = 0x00 // control
	RegTimeoutRange   = 0x04 // timeout range selector (TORR)
	RegCurrentCounter = 0x08 // current counter value (CCVR, read-only)
	RegCounterRestart = 0x0c // counter restart (CRR)
	RegStat           = 0x10 // interrupt status (unused: reset-only wiring)
	RegEOI            = 0x14 // interrupt clear (unused)
)

// Control register bits.
const (
	ctrlEnable       = 1 << 0
	ctrlResponseMode = 1 << 1
	ctrlResetPulse   = 4 << 2

	// ctrlArm is the full arm pattern: counter enabled, system-reset
	// response mode, 8-pclk reset pulse.
	ctrlArm uint32 = ctrlEnable | ctrlResponseMode | ctrlResetPulse

	// ctrlDisable stops the counter. Opaque datasheet value; not a
	// combination of the named bits above.
	ctrlDisable uint32 = 0x0a
)

// torrIntervalShift positions the encoded interval in TORR (bits 0-3).
const torrIntervalShift = 0

// counterRestartKey is the magic value written to CRR to refresh the countdown.
const counterRestartKey uint32 = 0x76

// intervalMask extracts the interval-selector field from a timeout command.
// The remaining bits carry caller-side flags the watchdog ignores.
const intervalMask uint32 = 0x3f
