// Package console implements a line protocol for reading and setting an
// RX8900 from a serial terminal.
//
// A line starting with "g" reads the clock and replies with
//
//	year,month,day,weekday,hour,minute,second
//
// A line starting with "s" sets the clock, for example
//
//	s,2024,3,15,9,30,0
//
// The numbers are normally separated by commas. As an extension, spaces and
// surrounding whitespace are accepted too, so "s 2024, 3, 15, 9, 30, 0" sets the
// year to 2024 rather than skipping a field. Any other line is ignored.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"github.com/ajanata/rtcdrivers/rx8900"
)

// Clock is the part of *rx8900.Device the protocol needs.
type Clock interface {
	ReadClock() error
	WriteClock() error
	Get(rx8900.Field) int64
	Set(rx8900.Field, int64)
}

var ErrBadCommand = errors.New("bad command")

// reported in reply to "g", in this order
var reportFields = []rx8900.Field{
	rx8900.Year,
	rx8900.Month,
	rx8900.Day,
	rx8900.Weekday,
	rx8900.Hour,
	rx8900.Minute,
	rx8900.Second,
}

// taken from an "s" line, in this order
var setFields = []rx8900.Field{
	rx8900.Year,
	rx8900.Month,
	rx8900.Day,
	rx8900.Hour,
	rx8900.Minute,
	rx8900.Second,
}

// Handle runs a single command line against c, writing any reply to w.
func Handle(c Clock, line string, w io.Writer) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	switch line[0] {
	case 'g':
		if err := c.ReadClock(); err != nil {
			return err
		}
		return Report(c, w)
	case 's':
		return set(c, line)
	}
	return nil
}

// Report writes the cached calendar of c without reading the chip.
func Report(c Clock, w io.Writer) error {
	vals := make([]string, len(reportFields))
	for i, f := range reportFields {
		vals[i] = strconv.FormatInt(c.Get(f), 10)
	}
	_, err := io.WriteString(w, strings.Join(vals, ",")+"\r\n")
	return err
}

func set(c Clock, line string) error {
	args, err := shlex.Split(strings.ReplaceAll(line, ",", " "))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadCommand, err)
	}
	// args[0] is the command itself; trailing values are ignored
	if len(args) < len(setFields)+1 {
		return fmt.Errorf("%w: want %d values, got %d", ErrBadCommand, len(setFields), len(args)-1)
	}
	vals := make([]int64, len(setFields))
	for i, arg := range args[1 : len(setFields)+1] {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s %q is not a number", ErrBadCommand, setFields[i], arg)
		}
		vals[i] = v
	}
	for i, f := range setFields {
		c.Set(f, vals[i])
	}
	return c.WriteClock()
}

// Serve handles each line read from r until it is exhausted. Errors from
// individual commands are written to w and do not stop the loop.
func Serve(c Clock, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := Handle(c, scanner.Text(), w); err != nil {
			if _, err := fmt.Fprintf(w, "error: %v\r\n", err); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}
