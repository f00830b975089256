// internal/wdt/controller_test.go
package wdt

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// ---- fake register interface ----

type regWrite struct {
	reg string
	val uint32
}

type fakeRegs struct {
	mu     sync.Mutex
	writes []regWrite
}

func (f *fakeRegs) record(reg string, v uint32) {
	f.mu.Lock()
	f.writes = append(f.writes, regWrite{reg, v})
	f.mu.Unlock()
}

func (f *fakeRegs) WriteControl(v uint32)        { f.record("ctrl", v) }
func (f *fakeRegs) WriteTimeoutRange(v uint32)   { f.record("torr", v) }
func (f *fakeRegs) WriteCounterRestart(v uint32) { f.record("crr", v) }

func (f *fakeRegs) recorded() []regWrite {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]regWrite, len(f.writes))
	copy(out, f.writes)
	return out
}

// mustBind binds a fresh singleton so tests do not share the process-wide one.
func mustBind(t *testing.T, fake *fakeRegs) (*singleton, *Controller) {
	t.Helper()
	hw := &singleton{}
	c, err := hw.bind(fake)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	return hw, c
}

// ---- tests ----

func TestBindTwice(t *testing.T) {
	fake := &fakeRegs{}
	hw, _ := mustBind(t, fake)

	if _, err := hw.bind(fake); !errors.Is(err, ErrAlreadyBound) {
		t.Fatalf("second bind err=%v, want ErrAlreadyBound", err)
	}
	if n := len(fake.recorded()); n != 0 {
		t.Fatalf("bind performed %d register writes, want 0", n)
	}
}

func TestConfigureZeroDisarms(t *testing.T) {
	fake := &fakeRegs{}
	_, c := mustBind(t, fake)

	// Arm first so the disarm is observed from the armed state too.
	if err := c.Configure(33); err != nil {
		t.Fatalf("Configure(33): %v", err)
	}
	if err := c.Configure(0); err != nil {
		t.Fatalf("Configure(0): %v", err)
	}

	writes := fake.recorded()
	last := writes[len(writes)-1]
	if last.reg != "ctrl" || last.val != ctrlDisable {
		t.Fatalf("last write %v, want ctrl=%#x", last, ctrlDisable)
	}
	if c.Armed() {
		t.Fatal("controller reports armed after Configure(0)")
	}
}

func TestConfigureArmSequence(t *testing.T) {
	fake := &fakeRegs{}
	_, c := mustBind(t, fake)

	// Exponent 33 derives 8589ms, covered by the 10920ms range (encoding 2).
	if err := c.Configure(33); err != nil {
		t.Fatalf("Configure(33): %v", err)
	}

	want := []regWrite{
		{"torr", 2},
		{"ctrl", ctrlArm},
		{"crr", counterRestartKey},
	}
	got := fake.recorded()
	if len(got) != len(want) {
		t.Fatalf("got %d writes, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("write %d = %v, want %v", i, got[i], want[i])
		}
	}
	if !c.Armed() {
		t.Fatal("controller not armed after successful Configure")
	}
}

func TestConfigureMasksFlagBits(t *testing.T) {
	fake := &fakeRegs{}
	_, c := mustBind(t, fake)

	// High bits are caller-side flags and must not affect the interval.
	if err := c.Configure(33 | 0xffffffc0); err != nil {
		t.Fatalf("Configure with flag bits: %v", err)
	}
	if got := fake.recorded()[0]; got.reg != "torr" || got.val != 2 {
		t.Fatalf("first write %v, want torr=2", got)
	}
}

func TestConfigureTimeoutTooLong(t *testing.T) {
	fake := &fakeRegs{}
	_, c := mustBind(t, fake)

	// Exponent 63 derives ~9.2e12ms, far beyond the largest range.
	err := c.Configure(63)
	if !errors.Is(err, ErrTimeoutTooLong) {
		t.Fatalf("Configure(63) err=%v, want ErrTimeoutTooLong", err)
	}

	writes := fake.recorded()
	if len(writes) != 1 || writes[0].reg != "ctrl" || writes[0].val != ctrlDisable {
		t.Fatalf("writes=%v, want single ctrl=%#x disable", writes, ctrlDisable)
	}
	if c.Armed() {
		t.Fatal("controller armed after unsatisfiable request")
	}
}

func TestDisable(t *testing.T) {
	fake := &fakeRegs{}
	_, c := mustBind(t, fake)

	if err := c.Configure(33); err != nil {
		t.Fatalf("Configure(33): %v", err)
	}
	c.Disable()

	writes := fake.recorded()
	last := writes[len(writes)-1]
	if last.reg != "ctrl" || last.val != ctrlDisable {
		t.Fatalf("last write %v, want ctrl=%#x", last, ctrlDisable)
	}
	if c.Armed() {
		t.Fatal("controller reports armed after Disable")
	}
}

func TestForceResetUnbound(t *testing.T) {
	hw := &singleton{}
	if err := hw.forceReset(); !errors.Is(err, ErrNotBound) {
		t.Fatalf("forceReset err=%v, want ErrNotBound", err)
	}
}

func TestForceResetWriteSet(t *testing.T) {
	fake := &fakeRegs{}
	hw, c := mustBind(t, fake)

	halted := false
	c.halt = func() { halted = true }

	if err := hw.forceReset(); err != nil {
		t.Fatalf("forceReset: %v", err)
	}
	if !halted {
		t.Fatal("halt was not invoked")
	}

	want := []regWrite{
		{"torr", 0}, // shortest range
		{"ctrl", ctrlArm},
	}
	got := fake.recorded()
	if len(got) != len(want) {
		t.Fatalf("got %d writes, want %d (no counter refresh): %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("write %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestConfigureConcurrentNoInterleave(t *testing.T) {
	fake := &fakeRegs{}
	_, c := mustBind(t, fake)

	const goroutines = 8
	const rounds = 50

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(exp uint32) {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				if err := c.Configure(exp); err != nil {
					t.Errorf("Configure(%d): %v", exp, err)
				}
			}
		}(uint32(32 + i%4))
	}
	wg.Wait()

	writes := fake.recorded()
	if len(writes) != goroutines*rounds*3 {
		t.Fatalf("got %d writes, want %d", len(writes), goroutines*rounds*3)
	}
	for i := 0; i < len(writes); i += 3 {
		if writes[i].reg != "torr" ||
			writes[i+1].reg != "ctrl" || writes[i+1].val != ctrlArm ||
			writes[i+2].reg != "crr" || writes[i+2].val != counterRestartKey {
			t.Fatalf("arm sequence interleaved at write %d: %v", i, writes[i:i+3])
		}
	}
}

func TestExponentForTimeout(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want uint32
	}{
		{0, 0},
		{-time.Second, 0},
		{time.Nanosecond, 1},
		{1 << 30 * time.Nanosecond, 30}, // exact power of two
		{5 * time.Second, 33},
		{90 * time.Second, 37},
	}
	for _, tc := range cases {
		if got := ExponentForTimeout(tc.d); got != tc.want {
			t.Fatalf("ExponentForTimeout(%v)=%d, want %d", tc.d, got, tc.want)
		}
	}
}
