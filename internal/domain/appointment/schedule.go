package appointment

import (
	"time"

	"github.com/barberdesk/booking-api/internal/httperr"
)

// ===============================
// Weekly availability schedule
// ===============================

// DayWindow is one weekday's working interval in "HH:MM" wall-clock
// strings. Both fields empty means the barber does not work that day.
type DayWindow struct {
	Start string `json:"start_time"`
	End   string `json:"end_time"`
}

func (w DayWindow) IsSet() bool {
	return w.Start != "" && w.End != ""
}

// Validate rejects half-set windows, malformed times and inverted
// intervals (start must come strictly before end).
func (w DayWindow) Validate() error {
	if w.Start == "" && w.End == "" {
		return nil
	}
	if w.Start == "" || w.End == "" {
		return httperr.ErrBusiness(httperr.CodeInvalidSchedule)
	}

	start, err := minutesOfDay(w.Start)
	if err != nil {
		return httperr.ErrBusiness(httperr.CodeInvalidSchedule)
	}
	end, err := minutesOfDay(w.End)
	if err != nil {
		return httperr.ErrBusiness(httperr.CodeInvalidSchedule)
	}

	if start >= end {
		return httperr.ErrBusiness(httperr.CodeInvalidSchedule)
	}
	return nil
}

// Contains reports whether [start, end) fits inside the window on the
// day of start. Appointments never span midnight.
func (w DayWindow) Contains(start, end time.Time) bool {
	if !w.IsSet() {
		return false
	}

	winStart, err := minutesOfDay(w.Start)
	if err != nil {
		return false
	}
	winEnd, err := minutesOfDay(w.End)
	if err != nil {
		return false
	}

	sameDay := start.Year() == end.Year() && start.YearDay() == end.YearDay()
	if !sameDay && !isDayBoundary(end, start) {
		return false
	}

	apStart := start.Hour()*60 + start.Minute()
	apEnd := apStart + int(end.Sub(start).Minutes())

	return apStart >= winStart && apEnd <= winEnd
}

// WeekSchedule holds one optional window per weekday, indexed by
// time.Weekday (Sunday = 0).
type WeekSchedule [7]DayWindow

func (s WeekSchedule) Validate() error {
	for _, w := range s {
		if err := w.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ApplyMondayToWeekdays copies Monday's window into Tuesday through
// Saturday. Sunday is left untouched. Fails when Monday is not fully
// set, without mutating anything.
func (s *WeekSchedule) ApplyMondayToWeekdays() error {
	monday := s[time.Monday]
	if !monday.IsSet() {
		return httperr.ErrBusiness(httperr.CodeInvalidSchedule)
	}

	for day := time.Tuesday; day <= time.Saturday; day++ {
		s[day] = monday
	}
	return nil
}

func minutesOfDay(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// end may land exactly on the next midnight when a window runs to 24:00;
// gorm never stores that but guard anyway.
func isDayBoundary(end, start time.Time) bool {
	next := start.AddDate(0, 0, 1)
	return end.Year() == next.Year() && end.YearDay() == next.YearDay() &&
		end.Hour() == 0 && end.Minute() == 0
}
