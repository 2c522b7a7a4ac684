package rx8900

// Register images are written in a single transaction, register address first.

func encodeClock(dt DateTime) [8]byte {
	return [8]byte{
		Time,
		1 + rSecond:  decToBcd(dt.Second),
		1 + rMinute:  decToBcd(dt.Minute),
		1 + rHour:    decToBcd(dt.Hour),
		1 + rWeekday: weekdayBit(WeekdayOf(dt.Epoch())),
		1 + rDay:     decToBcd(dt.Day),
		1 + rMonth:   decToBcd(dt.Month),
		1 + rYear:    decToBcd(dt.Year % 100),
	}
}

// decodeClock reads the time block as returned from the Time register. The
// weekday is taken from prev if the weekday register has no usable bit.
func decodeClock(regs []byte, prev DateTime) DateTime {
	return DateTime{
		Year:    decodeYear(regs[rYear]),
		Month:   bcdToDec(regs[rMonth] & monthMask),
		Day:     bcdToDec(regs[rDay] & dayMask),
		Weekday: bitWeekday(regs[rWeekday], prev.Weekday),
		Hour:    bcdToDec(regs[rHour] & hourMask),
		Minute:  bcdToDec(regs[rMinute] & minuteMask),
		Second:  bcdToDec(regs[rSecond] & secondMask),
	}
}

func encodeAlarm(hour, minute int) [4]byte {
	return [4]byte{AlarmTime, decToBcd(minute), decToBcd(hour), alarmDisabled}
}

var clearedAlarm = [4]byte{AlarmTime, alarmDisabled, alarmDisabled, alarmDisabled}
