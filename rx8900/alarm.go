package rx8900

import "fmt"

// Alarm numbers an alarm channel. The RX8900 has one minute/hour alarm, so
// every Alarm value refers to the same registers.
type Alarm uint8

// SetAlarm arms the alarm for hour:minute every day.
func (d *Device) SetAlarm(n Alarm, hour, minute int) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("alarm hour %d: %w", hour, ErrOutOfRange)
	}
	if minute < 0 || minute > 59 {
		return fmt.Errorf("alarm minute %d: %w", minute, ErrOutOfRange)
	}
	buf := encodeAlarm(hour, minute)
	return d.write(buf[:])
}

// ClearAlarm takes every alarm register out of matching.
func (d *Device) ClearAlarm(n Alarm) error {
	buf := clearedAlarm
	return d.write(buf[:])
}

// AlarmFired reports whether the alarm flag is set.
func (d *Device) AlarmFired(n Alarm) (bool, error) {
	buf := [1]byte{}
	err := d.read(Status, buf[:])
	if err != nil {
		return false, err
	}
	return buf[0]&alarmFlag != 0, nil
}
