// Package clockface draws the time as hour:minute on a pixel display.
package clockface

import (
	"image/color"
	"strconv"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

var black = color.RGBA{0, 0, 0, 255}

type Face struct {
	display drivers.Displayer
	font    *tinyfont.Font
	color   color.RGBA
	// X and Y are the position of the text baseline.
	X, Y int16
}

// New returns a Face that writes with font in c, starting one line down from
// the top left corner.
func New(display drivers.Displayer, font *tinyfont.Font, c color.RGBA) *Face {
	return &Face{
		display: display,
		font:    font,
		color:   c,
		Y:       int16(font.YAdvance),
	}
}

// Text formats the time without zero padding, e.g. "9:5".
func Text(hour, minute int) string {
	return strconv.Itoa(hour) + ":" + strconv.Itoa(minute)
}

// Show clears the display and draws hour:minute.
func (f *Face) Show(hour, minute int) error {
	w, h := f.display.Size()
	for x := int16(0); x < w; x++ {
		for y := int16(0); y < h; y++ {
			f.display.SetPixel(x, y, black)
		}
	}
	tinyfont.WriteLine(f.display, f.font, f.X, f.Y, Text(hour, minute), f.color)
	return f.display.Display()
}
