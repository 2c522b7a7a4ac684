package rx8900

import "fmt"

// Field selects one component of the cached calendar for Get and Set.
type Field uint8

const (
	Year Field = iota
	Month
	Day
	Weekday
	Hour
	Minute
	Second
	// Unix is the whole calendar as epoch seconds.
	Unix
)

var fieldNames = [...]string{
	Year:    "year",
	Month:   "month",
	Day:     "day",
	Weekday: "weekday",
	Hour:    "hour",
	Minute:  "minute",
	Second:  "second",
	Unix:    "unix",
}

func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return fmt.Sprintf("Field(%d)", f)
}

// ParseField returns the field with the given name, as printed by String.
func ParseField(name string) (Field, error) {
	for i, n := range fieldNames {
		if n == name {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("unknown field %q", name)
}
