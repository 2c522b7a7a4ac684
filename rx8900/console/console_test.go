package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/ajanata/rtcdrivers/rx8900"
	"github.com/ajanata/rtcdrivers/tester"
)

func newClock(c *qt.C) (*rx8900.Device, *tester.I2CDevice) {
	bus := tester.NewI2CBus(c)
	fake := tester.NewI2CDevice(c, rx8900.Address)
	bus.AddDevice(fake)
	d := rx8900.New(bus)
	return &d, fake
}

var handleTests = []struct {
	testName    string
	line        string
	expect      string
	expectWrite []byte
	expectError string
}{{
	testName:    "set",
	line:        "s,2024,3,15,9,30,0",
	expectWrite: []byte{0x00, 0x00, 0x30, 0x09, 0x20, 0x15, 0x03, 0x24},
}, {
	testName:    "set-with-spaces",
	line:        "s 2024, 3, 15, 9, 30, 0\r",
	expectWrite: []byte{0x00, 0x00, 0x30, 0x09, 0x20, 0x15, 0x03, 0x24},
}, {
	testName:    "set-extra-values-ignored",
	line:        "set,2024,3,15,9,30,0,99",
	expectWrite: []byte{0x00, 0x00, 0x30, 0x09, 0x20, 0x15, 0x03, 0x24},
}, {
	testName:    "set-too-few",
	line:        "s,2024,3,15",
	expectError: `bad command: want 6 values, got 3`,
}, {
	testName:    "set-not-a-number",
	line:        "s,2024,march,15,9,30,0",
	expectError: `bad command: month "march" is not a number`,
}, {
	testName:    "set-out-of-range",
	line:        "s,2024,3,15,25,30,0",
	expectError: `hour 25: value out of range`,
}, {
	testName: "get",
	line:     "g",
	expect:   "2011,7,9,6,13,14,15\r\n",
}, {
	testName: "ignored",
	line:     "hello",
}, {
	testName: "empty",
	line:     "",
}}

func TestHandle(t *testing.T) {
	c := qt.New(t)
	for _, test := range handleTests {
		c.Run(test.testName, func(c *qt.C) {
			d, fake := newClock(c)
			fake.SetRegisters(rx8900.Time, 0x15, 0x14, 0x13, 0x40, 0x09, 0x07, 0x11)
			var out bytes.Buffer
			err := Handle(d, test.line, &out)
			if test.expectError != "" {
				c.Assert(err, qt.ErrorMatches, test.expectError)
				return
			}
			c.Assert(err, qt.IsNil)
			c.Assert(out.String(), qt.Equals, test.expect)
			if test.expectWrite != nil {
				c.Assert(fake.LastWrite(), qt.DeepEquals, test.expectWrite)
			}
		})
	}
}

func TestBadCommandIs(t *testing.T) {
	c := qt.New(t)
	d, _ := newClock(c)
	err := Handle(d, "s,1", new(bytes.Buffer))
	c.Assert(errors.Is(err, ErrBadCommand), qt.Equals, true)
}

func TestServe(t *testing.T) {
	c := qt.New(t)
	d, _ := newClock(c)
	in := strings.NewReader("s,2000,2,29,23,59,58\ng\ns,oops\nnoise\ng\n")
	var out bytes.Buffer
	c.Assert(Serve(d, in, &out), qt.IsNil)
	c.Assert(out.String(), qt.Equals, ""+
		"2000,2,29,2,23,59,58\r\n"+
		"error: bad command: want 6 values, got 1\r\n"+
		"2000,2,29,2,23,59,58\r\n")
}

func TestServeBusError(t *testing.T) {
	c := qt.New(t)
	d, fake := newClock(c)
	fake.Err = errors.New("nack")
	var out bytes.Buffer
	c.Assert(Serve(d, strings.NewReader("g\n"), &out), qt.IsNil)
	c.Assert(out.String(), qt.Equals, "error: rx8900: read register 0x00: nack\r\n")
}
