package availability

import (
	"fmt"
	"time"
)

// WorkingWindow is one owner's availability for a single day of the week.
// The owner is either a clinic or a professional; the two scopes share the
// same shape but are looked up separately. The interval is half-open:
// [Start, End). There is at most one window per (OwnerID, DayOfWeek).
type WorkingWindow struct {
	OwnerID      int
	DayOfWeek    time.Weekday
	Start        TimeOfDay
	End          TimeOfDay
	IsWorkingDay bool
}

// CandidateSlot is the appointment slot being validated. A zero
// ProfessionalID means no professional was selected, so only clinic-level
// windows apply.
type CandidateSlot struct {
	Date           time.Time
	Time           TimeOfDay
	ProfessionalID int
}

// Warning explains why a slot falls outside working hours. It is a value,
// not an error: callers block submission while one is present.
type Warning struct {
	Message string `json:"message"`
}

// Validate reports whether the candidate slot falls inside permitted working
// hours. It returns nil when the slot is acceptable, otherwise a single
// warning; checks short-circuit, with professional-level checks taking
// priority over clinic-level ones.
//
// A professional with no window for the day falls through to the clinic
// check, and a day with no open clinic windows raises no warning at all:
// absent schedule data never blocks booking. When a clinic has several open
// windows on the same day only the min-start/max-end envelope is checked, so
// a slot inside a gap between windows is accepted.
func Validate(slot CandidateSlot, professionalWindows, clinicWindows []WorkingWindow) *Warning {
	minutes := slot.Time
	day := slot.Date.Weekday()

	if slot.ProfessionalID != 0 {
		for _, w := range professionalWindows {
			if w.OwnerID != slot.ProfessionalID || w.DayOfWeek != day {
				continue
			}
			if !w.IsWorkingDay {
				return &Warning{Message: "the professional does not work this day"}
			}
			if minutes < w.Start || minutes >= w.End {
				return &Warning{Message: fmt.Sprintf("outside the professional's hours (%s - %s)", w.Start, w.End)}
			}
			return nil
		}
	}

	var earliest, latest TimeOfDay
	found := false
	for _, w := range clinicWindows {
		if w.DayOfWeek != day || !w.IsWorkingDay {
			continue
		}
		if !found || w.Start < earliest {
			earliest = w.Start
		}
		if !found || w.End > latest {
			latest = w.End
		}
		found = true
	}
	if found && (minutes < earliest || minutes >= latest) {
		return &Warning{Message: fmt.Sprintf("outside clinic hours (%s - %s)", earliest, latest)}
	}

	return nil
}
