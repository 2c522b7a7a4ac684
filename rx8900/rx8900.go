// Package rx8900 implements a driver for the Epson RX8900 Real-Time Clock (RTC), providing read-write of the calendar,
// the single minute/hour alarm and conversion between the calendar and epoch seconds. The chip's timer, update
// interrupt and temperature compensation settings are left at their defaults.
//
// The driver keeps a copy of the calendar in memory. Get and Set work on that copy only; ReadClock replaces it with the
// chip's registers and WriteClock pushes it to the chip. A Device is not safe for concurrent use.
//
// Datasheet: https://support.epson.biz/td/api/doc_check.php?dl=brief_RX8900CE&lang=en
package rx8900

import (
	"fmt"
	"time"

	"tinygo.org/x/drivers"
)

type Device struct {
	bus     drivers.I2C
	Address uint8

	now        DateTime
	configured bool
}

type Config struct {
	// Address overrides the default I2C address when non-zero.
	Address uint8
}

// BusError records a failed transaction with the chip.
type BusError struct {
	Op       string
	Register uint8
	Err      error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("rx8900: %s register %#02x: %v", e.Op, e.Register, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}

func New(bus drivers.I2C) Device {
	return Device{
		bus:     bus,
		Address: Address,
	}
}

// Configure clears the control register so that the alarm and timers start from a known state. Only the first
// successful call on a Device touches the chip.
func (d *Device) Configure(c Config) error {
	if c.Address != 0 {
		d.Address = c.Address
	}
	if d.configured {
		return nil
	}
	err := d.write([]byte{Control, 0x00})
	if err != nil {
		return err
	}
	d.configured = true
	return nil
}

// ReadClock replaces the cached calendar with the chip's time registers.
func (d *Device) ReadClock() error {
	// the trailing RAM byte is read as well, but not used
	buf := [rRAM + 1]byte{}
	err := d.read(Time, buf[:])
	if err != nil {
		return err
	}
	d.now = decodeClock(buf[:], d.now)
	return nil
}

// WriteClock writes the cached calendar to the chip. The weekday register is derived from the date, so whatever is in
// the cached Weekday is ignored.
func (d *Device) WriteClock() error {
	err := d.now.Validate()
	if err != nil {
		return err
	}
	buf := encodeClock(d.now)
	return d.write(buf[:])
}

// Get returns one field of the cached calendar. Unix combines all of them into epoch seconds.
func (d *Device) Get(f Field) int64 {
	switch f {
	case Year:
		return int64(d.now.Year)
	case Month:
		return int64(d.now.Month)
	case Day:
		return int64(d.now.Day)
	case Weekday:
		return int64(d.now.Weekday)
	case Hour:
		return int64(d.now.Hour)
	case Minute:
		return int64(d.now.Minute)
	case Second:
		return int64(d.now.Second)
	case Unix:
		return d.now.Epoch()
	}
	return 0
}

// Set changes one field of the cached calendar without touching the chip. Setting Unix replaces every field;
// otherwise no other field is adjusted to match.
func (d *Device) Set(f Field, v int64) {
	switch f {
	case Year:
		d.now.Year = int(v)
	case Month:
		d.now.Month = int(v)
	case Day:
		d.now.Day = int(v)
	case Weekday:
		d.now.Weekday = time.Weekday(v)
	case Hour:
		d.now.Hour = int(v)
	case Minute:
		d.now.Minute = int(v)
	case Second:
		d.now.Second = int(v)
	case Unix:
		d.now = FromEpoch(v)
	}
}

// DateTime returns the cached calendar.
func (d *Device) DateTime() DateTime {
	return d.now
}

func (d *Device) SetDateTime(dt DateTime) {
	d.now = dt
}

// Now reads the chip and returns its time.
func (d *Device) Now() (time.Time, error) {
	err := d.ReadClock()
	if err != nil {
		return time.Time{}, err
	}
	return d.now.Time(), nil
}

// SetTime writes the wall clock fields of t to the chip.
func (d *Device) SetTime(t time.Time) error {
	dt := FromTime(t)
	err := dt.Validate()
	if err != nil {
		return err
	}
	d.now = dt
	return d.WriteClock()
}

func (d *Device) write(buf []byte) error {
	err := d.bus.Tx(uint16(d.Address), buf, nil)
	if err != nil {
		return &BusError{Op: "write", Register: buf[0], Err: err}
	}
	return nil
}

func (d *Device) read(reg uint8, buf []byte) error {
	err := d.bus.ReadRegister(d.Address, reg, buf)
	if err != nil {
		return &BusError{Op: "read", Register: reg, Err: err}
	}
	return nil
}
