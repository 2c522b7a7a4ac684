// Package tester contains fakes for exercising drivers without hardware.
package tester

import "fmt"

// Failer is implemented by *testing.T and *quicktest.C.
type Failer interface {
	Helper()
	Fatalf(format string, args ...interface{})
}

// I2CBus implements drivers.I2C by dispatching each transaction to the fake
// device at its address.
type I2CBus struct {
	c       Failer
	devices []*I2CDevice
}

func NewI2CBus(c Failer) *I2CBus {
	return &I2CBus{c: c}
}

// AddDevice attaches d to the bus.
func (b *I2CBus) AddDevice(d *I2CDevice) {
	b.devices = append(b.devices, d)
}

func (b *I2CBus) FindDevice(addr uint8) *I2CDevice {
	for _, d := range b.devices {
		if d.addr == addr {
			return d
		}
	}
	return nil
}

func (b *I2CBus) Tx(addr uint16, w, r []byte) error {
	b.c.Helper()
	d := b.FindDevice(uint8(addr))
	if d == nil {
		b.c.Fatalf("invalid device address %#x", addr)
		return fmt.Errorf("no device at %#x", addr)
	}
	return d.Tx(w, r)
}

func (b *I2CBus) ReadRegister(addr uint8, reg uint8, buf []byte) error {
	b.c.Helper()
	return b.Tx(uint16(addr), []byte{reg}, buf)
}

func (b *I2CBus) WriteRegister(addr uint8, reg uint8, buf []byte) error {
	b.c.Helper()
	w := append([]byte{reg}, buf...)
	return b.Tx(uint16(addr), w, nil)
}

// I2CDevice is a chip with 256 byte-wide registers and an auto-incrementing
// register pointer. The first byte of a write sets the pointer; any further
// bytes are stored from there on. Reads continue from the pointer.
type I2CDevice struct {
	c    Failer
	addr uint8

	Registers [256]byte
	pointer   uint8

	// Writes records every write, register address included.
	Writes [][]byte
	// Err, when set, fails every transaction without touching the registers.
	Err error
}

func NewI2CDevice(c Failer, addr uint8) *I2CDevice {
	return &I2CDevice{c: c, addr: addr}
}

func (d *I2CDevice) Addr() uint8 {
	return d.addr
}

// Tx performs a write followed by a read, as a bus transaction with a
// repeated start would.
func (d *I2CDevice) Tx(w, r []byte) error {
	if d.Err != nil {
		return d.Err
	}
	if len(w) > 0 {
		d.Writes = append(d.Writes, append([]byte(nil), w...))
		d.pointer = w[0]
		for _, b := range w[1:] {
			d.Registers[d.pointer] = b
			d.pointer++
		}
	}
	for i := range r {
		r[i] = d.Registers[d.pointer]
		d.pointer++
	}
	return nil
}

// LastWrite returns the most recent write, or nil when there has been none.
func (d *I2CDevice) LastWrite() []byte {
	if len(d.Writes) == 0 {
		return nil
	}
	return d.Writes[len(d.Writes)-1]
}

// SetRegisters stores data starting at register reg.
func (d *I2CDevice) SetRegisters(reg uint8, data ...byte) {
	for _, b := range data {
		d.Registers[reg] = b
		reg++
	}
}
