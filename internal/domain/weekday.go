package domain

import "strings"

// Weekday identifies a day of the week using the 1 (Sunday) to 7 (Saturday)
// convention used throughout the templates.
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func (d Weekday) String() string {
	if !d.IsValid() {
		return "Unknown"
	}
	return weekdayNames[d-1]
}

// IsValid reports whether d is within the 1-7 range.
func (d Weekday) IsValid() bool {
	return d >= Sunday && d <= Saturday
}

// weekdayLookup is the complete, finite mapping of accepted day names and
// abbreviations to weekdays. Parsing never matches anything outside it.
var weekdayLookup = map[string]Weekday{
	"sun":       Sunday,
	"sunday":    Sunday,
	"mon":       Monday,
	"monday":    Monday,
	"tue":       Tuesday,
	"tues":      Tuesday,
	"tuesday":   Tuesday,
	"wed":       Wednesday,
	"wednesday": Wednesday,
	"thu":       Thursday,
	"thur":      Thursday,
	"thurs":     Thursday,
	"thursday":  Thursday,
	"fri":       Friday,
	"friday":    Friday,
	"sat":       Saturday,
	"saturday":  Saturday,
}

// ParseWeekday resolves a case-insensitive day name or common abbreviation.
func ParseWeekday(name string) (Weekday, bool) {
	d, ok := weekdayLookup[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// WeekdayFromIndex resolves a 1 (Sunday) to 7 (Saturday) index.
func WeekdayFromIndex(index int) (Weekday, bool) {
	d := Weekday(index)
	return d, d.IsValid()
}
