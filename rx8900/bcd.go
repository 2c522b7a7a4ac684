package rx8900

import "time"

// decToBcd converts an int in the range 0-99 to BCD
func decToBcd(dec int) uint8 {
	return uint8(dec/10)<<4 | uint8(dec%10)
}

// bcdToDec converts BCD to int. Nibbles above 9 are not rejected.
func bcdToDec(bcd uint8) int {
	return int(bcd>>4)*10 + int(bcd&0x0F)
}

func weekdayBit(w time.Weekday) uint8 {
	return 1 << uint(w)
}

// bitWeekday finds the weekday flagged in the weekday register. Bits are
// scanned from Sunday upwards and the last match wins; when nothing matches
// prev is returned.
func bitWeekday(bits uint8, prev time.Weekday) time.Weekday {
	w := prev
	for i := time.Sunday; i <= time.Saturday; i++ {
		if bits>>uint(i) == 0x01 {
			w = i
		}
	}
	return w
}

// decodeYear maps the two-digit year register onto 1970-2069.
func decodeYear(bcd uint8) int {
	y := bcdToDec(bcd)
	if y < 70 {
		return y + 2000
	}
	return y + 1900
}
