package main

import (
	"tinygo.org/x/drivers"
)

// loggingBus logs each transaction at debug level.
type loggingBus struct {
	drivers.I2C
}

func (b loggingBus) Tx(addr uint16, w, r []byte) error {
	err := b.I2C.Tx(addr, w, r)
	logger.Debugf("tx %#x write % x read % x: %v", addr, w, r, err)
	return err
}

func (b loggingBus) ReadRegister(addr uint8, reg uint8, buf []byte) error {
	err := b.I2C.ReadRegister(addr, reg, buf)
	logger.Debugf("read %#x register %#x: % x: %v", addr, reg, buf, err)
	return err
}

func (b loggingBus) WriteRegister(addr uint8, reg uint8, buf []byte) error {
	err := b.I2C.WriteRegister(addr, reg, buf)
	logger.Debugf("write %#x register %#x: % x: %v", addr, reg, buf, err)
	return err
}
