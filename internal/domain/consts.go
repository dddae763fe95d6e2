package domain

// Weekday constants use the roster convention: Monday=0 .. Sunday=6.
// This differs from time.Weekday, where Sunday is 0.
const (
	Monday    = 0
	Tuesday   = 1
	Wednesday = 2
	Thursday  = 3
	Friday    = 4
	Saturday  = 5
	Sunday    = 6
)

// DayOff is the cell value for an employee who does not work that day
const DayOff = "FOLGA"

// Labels of the two summary rows appended to an exported schedule
const (
	TotalDaysLabel = "TOTAL DIAS"
	SundaysLabel   = "DOMINGOS"
)

// WeekdayAbbr holds the fixed day abbreviations used in row labels
var WeekdayAbbr = map[int]string{
	Monday:    "Mon",
	Tuesday:   "Tue",
	Wednesday: "Wed",
	Thursday:  "Thu",
	Friday:    "Fri",
	Saturday:  "Sat",
	Sunday:    "Sun",
}

// WeekdayNames maps roster weekday numbers to their English names
var WeekdayNames = map[int]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// Rotation kinds
const (
	RotationSunday = "sunday"
	RotationVendor = "vendor"
)

// Publisher defaults for a freshly created roster
const (
	DefaultPublishDay  = 25
	DefaultPublishTime = "09:00"
)
