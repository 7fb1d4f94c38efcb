package schedule

// Day is one of the six working days of the timetable, in week order.
type Day string

const (
	DayDuysembi  Day = "DUYSEMBI"
	DaySiyshembi Day = "SIYSHEMBI"
	DaySarshembi Day = "SARSHEMBI"
	DayPiyshembi Day = "PIYSHEMBI"
	DayJuma      Day = "JUMA"
	DayShembi    Day = "SHEMBI"
)

// Days lists the working days in week order, Monday-equivalent first.
var Days = [...]Day{DayDuysembi, DaySiyshembi, DaySarshembi, DayPiyshembi, DayJuma, DayShembi}

// ValueNone marks a blank source cell. Every field of a Record is always set;
// absence is this sentinel, never an empty string.
const ValueNone = "none"

// SlotNone is the numeric counterpart of ValueNone for the pair index.
const SlotNone = 0

// Logical snapshot names. "original" holds the current authoritative
// timetable; "changes" holds the latest uploaded replacement.
const (
	SnapshotOriginal = "original"
	SnapshotChanges  = "changes"
)

// SlotTimes maps a pair index to its fixed wall-clock range.
var SlotTimes = map[int]string{
	1: "8:30-9:50",
	2: "10:00-11:20",
	3: "11:30-12:50",
	4: "13:00-14:20",
	5: "14:30-15:50",
	6: "16:00-17:20",
}

// Record is one teaching event extracted from the published timetable.
// Equality is structural; a record has no identity beyond its field values.
type Record struct {
	Day     Day
	Slot    int
	Group   string
	Subject string
	Teacher string
	Room    string
}

// DayIndex returns the position of d in week order, or -1 for an unknown day.
func DayIndex(d Day) int {
	for i, day := range Days {
		if day == d {
			return i
		}
	}
	return -1
}
