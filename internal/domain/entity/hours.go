package entity

// Weekday is the canonical day name used in the store hours schedule.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// WeekOrder is the canonical week order for the store hours schedule.
// A draft's hours slice always carries exactly one entry per day, in this order.
var WeekOrder = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Default opening times applied to a freshly created draft.
const (
	DefaultOpenTime  = "09:00"
	DefaultCloseTime = "18:00"
)

// DayHours describes the opening hours for a single day of the week.
// OpenTime and CloseTime are 24-hour "HH:MM" strings and are only
// meaningful while IsOpen is true.
type DayHours struct {
	Day       Weekday `json:"day" validate:"required,weekday"`
	IsOpen    bool    `json:"is_open"`
	OpenTime  string  `json:"open_time" validate:"omitempty,hhmm"`
	CloseTime string  `json:"close_time" validate:"omitempty,hhmm"`
}

// WeekHours is the full weekly schedule. It is created with exactly seven
// entries in canonical week order and no mutation path ever resizes or
// reorders it.
type WeekHours []DayHours

// DefaultWeekHours returns the schedule a new draft starts with: every day
// open 09:00-18:00 except the last day of the week, which starts closed.
func DefaultWeekHours() WeekHours {
	hours := make(WeekHours, 0, len(WeekOrder))
	for i, day := range WeekOrder {
		hours = append(hours, DayHours{
			Day:       day,
			IsOpen:    i != len(WeekOrder)-1,
			OpenTime:  DefaultOpenTime,
			CloseTime: DefaultCloseTime,
		})
	}

	return hours
}

// InWeekOrder reports whether the schedule carries exactly one entry per
// day in canonical week order.
func (h WeekHours) InWeekOrder() bool {
	if len(h) != len(WeekOrder) {
		return false
	}
	for i, day := range WeekOrder {
		if h[i].Day != day {
			return false
		}
	}

	return true
}
