package linuxi2c

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
	"golang.org/x/exp/io/i2c/driver"

	"github.com/ajanata/rtcdrivers/rx8900"
)

type tx struct {
	Addr int
	W    []byte
	R    int
}

type opener struct {
	opened   []int
	txs      []tx
	reply    []byte
	closeErr error
	openErr  error
}

func (o *opener) Open(addr int, tenbit bool) (driver.Conn, error) {
	if o.openErr != nil {
		return nil, o.openErr
	}
	o.opened = append(o.opened, addr)
	return &conn{o: o, addr: addr}, nil
}

type conn struct {
	o    *opener
	addr int
}

func (c *conn) Tx(w, r []byte) error {
	c.o.txs = append(c.o.txs, tx{Addr: c.addr, W: append([]byte(nil), w...), R: len(r)})
	copy(r, c.o.reply)
	return nil
}

func (c *conn) Close() error {
	return c.o.closeErr
}

func TestTx(t *testing.T) {
	c := qt.New(t)
	o := &opener{reply: []byte{1, 2}}
	b := New(o)

	buf := make([]byte, 2)
	c.Assert(b.Tx(0x32, []byte{0x0E}, buf), qt.IsNil)
	c.Assert(buf, qt.DeepEquals, []byte{1, 2})
	c.Assert(b.Tx(0x32, []byte{0x0F, 0x00}, nil), qt.IsNil)

	// one device per address, write and read sent separately
	c.Assert(o.opened, qt.DeepEquals, []int{0x32})
	c.Assert(o.txs, qt.DeepEquals, []tx{
		{Addr: 0x32, W: []byte{0x0E}},
		{Addr: 0x32, R: 2},
		{Addr: 0x32, W: []byte{0x0F, 0x00}},
	})
}

func TestRegisters(t *testing.T) {
	c := qt.New(t)
	o := &opener{reply: []byte{0x40}}
	b := New(o)

	buf := make([]byte, 1)
	c.Assert(b.ReadRegister(0x32, 0x0E, buf), qt.IsNil)
	c.Assert(buf, qt.DeepEquals, []byte{0x40})
	c.Assert(b.WriteRegister(0x68, 0x07, []byte{0x03}), qt.IsNil)

	c.Assert(o.opened, qt.DeepEquals, []int{0x32, 0x68})
	c.Assert(o.txs, qt.DeepEquals, []tx{
		{Addr: 0x32, W: []byte{0x0E}, R: 1},
		{Addr: 0x68, W: []byte{0x07, 0x03}},
	})
}

func TestOpenError(t *testing.T) {
	c := qt.New(t)
	b := New(&opener{openErr: errors.New("no such device")})
	c.Assert(b.Tx(0x32, []byte{0}, nil), qt.ErrorMatches, `no such device`)
}

func TestClose(t *testing.T) {
	c := qt.New(t)
	o := &opener{closeErr: errors.New("busy")}
	b := New(o)
	c.Assert(b.Tx(0x32, []byte{0}, nil), qt.IsNil)
	c.Assert(b.Tx(0x68, []byte{0}, nil), qt.IsNil)

	err := b.Close()
	c.Assert(err, qt.ErrorMatches, `(?s)2 errors occurred:.*busy.*busy.*`)

	o.closeErr = nil
	c.Assert(b.Close(), qt.IsNil)
}

func TestDriver(t *testing.T) {
	c := qt.New(t)
	o := &opener{reply: []byte{0x40}}
	d := rx8900.New(New(o))
	fired, err := d.AlarmFired(0)
	c.Assert(err, qt.IsNil)
	c.Assert(fired, qt.Equals, true)
	c.Assert(d.ClearAlarm(0), qt.IsNil)
	c.Assert(o.txs[len(o.txs)-1].W, qt.DeepEquals, []byte{0x08, 0x80, 0x80, 0x80})
}
