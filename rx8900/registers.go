package rx8900

const (
	Address   = 0x32 // I2C address for RX8900
	Time      = 0x00 // Time registers starting with seconds
	RAM       = 0x07 // User RAM, read along with the time block
	AlarmTime = 0x08 // Alarm registers starting with minutes
	Status    = 0x0E // Flag register
	Control   = 0x0F // Control register
)

// offsets into the time block, relative to Time
const (
	rSecond = iota
	rMinute
	rHour
	rWeekday
	rDay
	rMonth
	rYear
	rRAM
)

// masks applied when decoding the time block
const (
	secondMask = 0x7F
	minuteMask = 0x7F
	hourMask   = 0x3F
	dayMask    = 0x3F
	monthMask  = 0x1F
)

const (
	alarmDisabled = 0x80 // AE bit: alarm register does not take part in matching
	alarmFlag     = 0x40 // in Status
)
