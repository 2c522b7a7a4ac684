// Package linuxi2c provides a drivers.I2C bus on top of the Linux i2c-dev
// interface, so the drivers in this repository can run on a single board
// computer such as a Raspberry Pi as well as under TinyGo.
package linuxi2c

import (
	"github.com/hashicorp/go-multierror"
	"golang.org/x/exp/io/i2c"
	"golang.org/x/exp/io/i2c/driver"
)

// Bus opens a device for each address it is asked to talk to and keeps it
// open until Close. The i2c-dev interface has no combined write/read, so a Tx
// with both is sent as a write followed by a separate read.
type Bus struct {
	opener driver.Opener
	devs   map[uint16]*i2c.Device
}

func New(o driver.Opener) *Bus {
	return &Bus{
		opener: o,
		devs:   make(map[uint16]*i2c.Device),
	}
}

// Open returns a Bus on the given device file, e.g. /dev/i2c-1.
func Open(dev string) *Bus {
	return New(&i2c.Devfs{Dev: dev})
}

func (b *Bus) device(addr uint16) (*i2c.Device, error) {
	if d, ok := b.devs[addr]; ok {
		return d, nil
	}
	d, err := i2c.Open(b.opener, int(addr))
	if err != nil {
		return nil, err
	}
	b.devs[addr] = d
	return d, nil
}

func (b *Bus) Tx(addr uint16, w, r []byte) error {
	d, err := b.device(addr)
	if err != nil {
		return err
	}
	if len(w) > 0 {
		if err := d.Write(w); err != nil {
			return err
		}
	}
	if len(r) > 0 {
		return d.Read(r)
	}
	return nil
}

func (b *Bus) ReadRegister(addr uint8, r uint8, buf []byte) error {
	d, err := b.device(uint16(addr))
	if err != nil {
		return err
	}
	return d.ReadReg(r, buf)
}

func (b *Bus) WriteRegister(addr uint8, r uint8, buf []byte) error {
	d, err := b.device(uint16(addr))
	if err != nil {
		return err
	}
	return d.WriteReg(r, buf)
}

// Close closes every device opened so far.
func (b *Bus) Close() error {
	var result error
	for addr, d := range b.devs {
		if err := d.Close(); err != nil {
			result = multierror.Append(result, err)
		}
		delete(b.devs, addr)
	}
	return result
}
