// internal/regio/modbusreg/client_test.go
package modbusreg

import (
	"testing"

	"github.com/goburrow/modbus"
)

// ---- fake gateway ----

type regWrite struct {
	addr  uint16
	value uint16
}

type fakeGateway struct {
	modbus.Client // unused methods panic if reached

	writes  []regWrite
	counter []byte
}

func (f *fakeGateway) WriteSingleRegister(addr, value uint16) ([]byte, error) {
	f.writes = append(f.writes, regWrite{addr, value})
	return nil, nil
}

func (f *fakeGateway) ReadHoldingRegisters(addr, qty uint16) ([]byte, error) {
	return f.counter, nil
}

// ---- tests ----

func TestRegisterAddressMapping(t *testing.T) {
	fake := &fakeGateway{}
	c := &Client{client: fake, base: 100}

	c.WriteControl(0x13)
	c.WriteTimeoutRange(2)
	c.WriteCounterRestart(0x76)

	want := []regWrite{
		{100, 0x13}, // CTRL at offset 0x00
		{101, 2},    // TORR at offset 0x04
		{103, 0x76}, // CRR at offset 0x0c
	}
	if len(fake.writes) != len(want) {
		t.Fatalf("got %d writes, want %d", len(fake.writes), len(want))
	}
	for i := range want {
		if fake.writes[i] != want[i] {
			t.Fatalf("write %d = %v, want %v", i, fake.writes[i], want[i])
		}
	}
}

func TestReadCounter(t *testing.T) {
	fake := &fakeGateway{counter: []byte{0x12, 0x34}}
	c := &Client{client: fake}

	v, err := c.ReadCounter()
	if err != nil {
		t.Fatalf("ReadCounter: %v", err)
	}
	if v != 0x1234 {
		t.Fatalf("ReadCounter=%#x, want 0x1234", v)
	}
}

func TestReadCounterShortPayload(t *testing.T) {
	fake := &fakeGateway{counter: []byte{0x12}}
	c := &Client{client: fake}

	if _, err := c.ReadCounter(); err == nil {
		t.Fatal("expected error on short payload")
	}
}
