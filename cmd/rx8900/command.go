package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/ajanata/rtcdrivers/rx8900"
	"github.com/ajanata/rtcdrivers/rx8900/console"
)

var errUsage = errors.New("no command given")

// command runs one subcommand against an RTC.
type command struct {
	rtc  *rx8900.Device
	in   io.Reader
	out  io.Writer
	poll time.Duration
}

func (c *command) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "init":
		return c.rtc.Configure(rx8900.Config{})
	case "get":
		return c.get(args)
	case "set":
		return c.set(args)
	case "epoch":
		return c.epoch(args)
	case "alarm":
		return c.alarm(args)
	case "watch":
		return c.watch(ctx)
	case "console":
		return console.Serve(c.rtc, c.in, c.out)
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func (c *command) get(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("usage: get [field]")
	}
	if err := c.rtc.ReadClock(); err != nil {
		return err
	}
	if len(args) == 1 {
		f, err := rx8900.ParseField(args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.out, c.rtc.Get(f))
		return err
	}
	return c.show()
}

func (c *command) show() error {
	dt := c.rtc.DateTime()
	_, err := fmt.Fprintf(c.out, "%s %s\n", dt.Time().Format("2006-01-02 15:04:05"), dt.Weekday)
	return err
}

// set accepts an RFC3339 time, "now" for the host's wall clock, or
// year,month,day,hour,minute,second.
func (c *command) set(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: set <time>")
	}
	if args[0] == "now" {
		return c.rtc.SetTime(time.Now())
	}
	if t, err := time.Parse(time.RFC3339, args[0]); err == nil {
		return c.rtc.SetTime(t)
	}
	return console.Handle(c.rtc, "s,"+args[0], c.out)
}

func (c *command) epoch(args []string) error {
	switch len(args) {
	case 0:
		if err := c.rtc.ReadClock(); err != nil {
			return err
		}
		_, err := fmt.Fprintln(c.out, c.rtc.Get(rx8900.Unix))
		return err
	case 1:
		s, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid epoch %q", args[0])
		}
		if s < 0 || s >= rx8900.MaxEpoch {
			return fmt.Errorf("epoch %d: %w", s, rx8900.ErrOutOfRange)
		}
		c.rtc.Set(rx8900.Unix, s)
		return c.rtc.WriteClock()
	}
	return fmt.Errorf("usage: epoch [seconds]")
}

func (c *command) alarm(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: alarm <hh:mm|clear|check>")
	}
	switch args[0] {
	case "clear":
		return c.rtc.ClearAlarm(0)
	case "check":
		fired, err := c.rtc.AlarmFired(0)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.out, fired)
		return err
	}
	var hour, minute int
	if _, err := fmt.Sscanf(args[0], "%d:%d", &hour, &minute); err != nil {
		return fmt.Errorf("invalid alarm time %q", args[0])
	}
	return c.rtc.SetAlarm(0, hour, minute)
}

// watch prints the time each time the seconds change, until ctx is done.
func (c *command) watch(ctx context.Context) error {
	ticker := time.NewTicker(c.poll)
	defer ticker.Stop()
	prev := -1
	fired := false
	for {
		if err := c.rtc.ReadClock(); err != nil {
			return err
		}
		if s := c.rtc.DateTime().Second; s != prev {
			prev = s
			if err := c.show(); err != nil {
				return err
			}
		}
		f, err := c.rtc.AlarmFired(0)
		if err != nil {
			return err
		}
		if f && !fired {
			logger.Infof("alarm fired at %s", c.rtc.DateTime().Time().Format("15:04:05"))
		}
		fired = f
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
