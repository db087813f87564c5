package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-01-15 is a Monday, 2024-01-16 a Tuesday.
var (
	monday  = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	tuesday = time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
)

func mustTime(t *testing.T, s string) TimeOfDay {
	t.Helper()
	tod, err := ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func window(t *testing.T, ownerID int, day time.Weekday, start, end string, working bool) WorkingWindow {
	t.Helper()
	return WorkingWindow{
		OwnerID:      ownerID,
		DayOfWeek:    day,
		Start:        mustTime(t, start),
		End:          mustTime(t, end),
		IsWorkingDay: working,
	}
}

func TestValidateInsideProfessionalWindow(t *testing.T) {
	prof := []WorkingWindow{window(t, 7, time.Monday, "09:00", "17:00", true)}
	// Clinic windows are irrelevant once the professional window matches.
	clinic := []WorkingWindow{window(t, 1, time.Monday, "10:00", "12:00", true)}

	for _, at := range []string{"09:00", "09:30", "12:00", "16:59"} {
		slot := CandidateSlot{Date: monday, Time: mustTime(t, at), ProfessionalID: 7}
		assert.Nil(t, Validate(slot, prof, clinic), "time %s should be accepted", at)
	}
}

func TestValidateProfessionalBoundaries(t *testing.T) {
	prof := []WorkingWindow{window(t, 7, time.Monday, "09:00", "17:00", true)}

	// Start is inclusive.
	start := CandidateSlot{Date: monday, Time: mustTime(t, "09:00"), ProfessionalID: 7}
	assert.Nil(t, Validate(start, prof, nil))

	// End is exclusive.
	end := CandidateSlot{Date: monday, Time: mustTime(t, "17:00"), ProfessionalID: 7}
	w := Validate(end, prof, nil)
	require.NotNil(t, w)
	assert.Equal(t, "outside the professional's hours (09:00 - 17:00)", w.Message)
}

func TestValidateProfessionalClosedDayWinsOverClinic(t *testing.T) {
	prof := []WorkingWindow{window(t, 7, time.Monday, "00:00", "00:00", false)}
	clinic := []WorkingWindow{window(t, 1, time.Monday, "08:00", "18:00", true)}

	slot := CandidateSlot{Date: monday, Time: mustTime(t, "10:00"), ProfessionalID: 7}
	w := Validate(slot, prof, clinic)
	require.NotNil(t, w)
	assert.Equal(t, "the professional does not work this day", w.Message)
}

func TestValidateNoProfessionalWindowFallsThroughToClinic(t *testing.T) {
	// Professional has windows, but none for Monday.
	prof := []WorkingWindow{window(t, 7, time.Tuesday, "09:00", "17:00", true)}
	clinic := []WorkingWindow{window(t, 1, time.Monday, "08:00", "18:00", true)}

	inside := CandidateSlot{Date: monday, Time: mustTime(t, "10:00"), ProfessionalID: 7}
	assert.Nil(t, Validate(inside, prof, clinic))

	outside := CandidateSlot{Date: monday, Time: mustTime(t, "19:00"), ProfessionalID: 7}
	w := Validate(outside, prof, clinic)
	require.NotNil(t, w)
	assert.Equal(t, "outside clinic hours (08:00 - 18:00)", w.Message)
}

func TestValidateClinicEnvelopeIgnoresGaps(t *testing.T) {
	// Morning and afternoon shifts with a lunch gap. Only the min/max
	// envelope is checked, so the gap itself is accepted.
	clinic := []WorkingWindow{
		window(t, 1, time.Monday, "08:00", "13:00", true),
		window(t, 1, time.Monday, "14:00", "18:00", true),
	}

	gap := CandidateSlot{Date: monday, Time: mustTime(t, "13:30")}
	assert.Nil(t, Validate(gap, nil, clinic))

	early := Validate(CandidateSlot{Date: monday, Time: mustTime(t, "07:00")}, nil, clinic)
	require.NotNil(t, early)
	assert.Equal(t, "outside clinic hours (08:00 - 18:00)", early.Message)

	late := Validate(CandidateSlot{Date: monday, Time: mustTime(t, "19:00")}, nil, clinic)
	require.NotNil(t, late)
	assert.Equal(t, "outside clinic hours (08:00 - 18:00)", late.Message)
}

func TestValidateClinicWithoutWindowsPermitsAnyTime(t *testing.T) {
	// No rows at all for the day: booking is unconstrained.
	for _, at := range []string{"00:00", "03:00", "12:00", "23:59"} {
		slot := CandidateSlot{Date: monday, Time: mustTime(t, at)}
		assert.Nil(t, Validate(slot, nil, nil), "time %s should be accepted", at)
	}
}

func TestValidateClosedClinicDayPresentsAsUnconstrained(t *testing.T) {
	// The only Tuesday row is a closed day. Closed windows are excluded from
	// the envelope, so the filtered set is empty and no warning is raised.
	clinic := []WorkingWindow{window(t, 1, time.Tuesday, "08:00", "18:00", false)}

	slot := CandidateSlot{Date: tuesday, Time: mustTime(t, "10:00")}
	assert.Nil(t, Validate(slot, nil, clinic))
}

func TestValidateProfessionalAndClinicScenario(t *testing.T) {
	prof := []WorkingWindow{window(t, 3, time.Monday, "09:00", "17:00", true)}
	clinic := []WorkingWindow{window(t, 1, time.Monday, "08:00", "18:00", true)}

	before := CandidateSlot{Date: monday, Time: mustTime(t, "08:30"), ProfessionalID: 3}
	w := Validate(before, prof, clinic)
	require.NotNil(t, w)
	assert.Equal(t, "outside the professional's hours (09:00 - 17:00)", w.Message)

	inside := CandidateSlot{Date: monday, Time: mustTime(t, "09:30"), ProfessionalID: 3}
	assert.Nil(t, Validate(inside, prof, clinic))
}

func TestValidateIgnoresWindowsOfOtherProfessionals(t *testing.T) {
	prof := []WorkingWindow{
		window(t, 5, time.Monday, "09:00", "12:00", true),
		window(t, 7, time.Monday, "14:00", "18:00", true),
	}

	// Professional 7's Monday window applies, not professional 5's.
	slot := CandidateSlot{Date: monday, Time: mustTime(t, "15:00"), ProfessionalID: 7}
	assert.Nil(t, Validate(slot, prof, nil))

	morning := CandidateSlot{Date: monday, Time: mustTime(t, "10:00"), ProfessionalID: 7}
	w := Validate(morning, prof, nil)
	require.NotNil(t, w)
	assert.Equal(t, "outside the professional's hours (14:00 - 18:00)", w.Message)
}
