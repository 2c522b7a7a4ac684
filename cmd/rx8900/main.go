package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	flag "github.com/juju/gnuflag"
	"github.com/juju/loggo"

	"github.com/ajanata/rtcdrivers/linuxi2c"
	"github.com/ajanata/rtcdrivers/rx8900"
)

var (
	configPath = flag.String("config", "", "read settings from this YAML file")
	devPath    = flag.String("dev", "", "i2c device file, overriding the configuration")
	debug      = flag.Bool("debug", false, "log every register read")
)

var logger = loggo.GetLogger("rx8900")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `
Usage: rx8900 [flags] <command> [args]

Commands:
	init                 clear the control register
	get [field]          print the time, or one of year, month, day,
	                     weekday, hour, minute, second, unix
	set <time>           set the time from RFC3339, "now", or
	                     year,month,day,hour,minute,second
	epoch [seconds]      print or set the time as epoch seconds
	alarm <hh:mm>        arm the daily alarm
	alarm clear          disarm the alarm
	alarm check          print whether the alarm has fired
	watch                print the time as it changes
	console              run the serial line protocol on stdin/stdout

Flags:
`[1:])
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse(true)
	if err := runMain(flag.Args()); err != nil {
		if err == errUsage {
			flag.Usage()
		}
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func runMain(args []string) (err error) {
	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *devPath != "" {
		cfg.Device = *devPath
	}
	if *debug {
		cfg.LogLevel = "<root>=DEBUG"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %v", err)
	}
	if err := loggo.ConfigureLoggers(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %v", err)
	}
	logger.Debugf("using %s at %#x", cfg.Device, cfg.Address)

	bus := linuxi2c.Open(cfg.Device)
	defer func() {
		if cerr := bus.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	rtc := rx8900.New(loggingBus{bus})
	rtc.Address = cfg.Address

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	c := &command{
		rtc:  &rtc,
		in:   os.Stdin,
		out:  os.Stdout,
		poll: time.Duration(cfg.PollInterval),
	}
	return c.run(ctx, args)
}
