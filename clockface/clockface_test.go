package clockface

import (
	"image/color"
	"testing"

	qt "github.com/frankban/quicktest"
	"tinygo.org/x/tinyfont/proggy"
)

type display struct {
	w, h     int16
	pixels   map[[2]int16]color.RGBA
	displays int
}

func newDisplay(w, h int16) *display {
	return &display{w: w, h: h, pixels: make(map[[2]int16]color.RGBA)}
}

func (d *display) Size() (x, y int16) {
	return d.w, d.h
}

func (d *display) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		return
	}
	d.pixels[[2]int16{x, y}] = c
}

func (d *display) Display() error {
	d.displays++
	return nil
}

func (d *display) count(c color.RGBA) int {
	n := 0
	for _, p := range d.pixels {
		if p == c {
			n++
		}
	}
	return n
}

func TestText(t *testing.T) {
	c := qt.New(t)
	c.Assert(Text(9, 5), qt.Equals, "9:5")
	c.Assert(Text(23, 59), qt.Equals, "23:59")
	c.Assert(Text(0, 0), qt.Equals, "0:0")
}

func TestShow(t *testing.T) {
	c := qt.New(t)
	white := color.RGBA{255, 255, 255, 255}
	d := newDisplay(64, 16)
	f := New(d, &proggy.TinySZ8pt7b, white)

	c.Assert(f.Show(12, 34), qt.IsNil)
	c.Assert(d.displays, qt.Equals, 1)
	c.Assert(len(d.pixels), qt.Equals, 64*16)
	lit := d.count(white)
	c.Assert(lit > 0, qt.Equals, true)

	// drawing a different time starts from a blank display
	c.Assert(f.Show(1, 1), qt.IsNil)
	c.Assert(d.displays, qt.Equals, 2)
	c.Assert(d.count(white) < lit, qt.Equals, true)
}
