package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want TimeOfDay
	}{
		{"00:00", 0},
		{"08:30", 510},
		{"09:00", 540},
		{"13:45", 825},
		{"23:59", 1439},
	}
	for _, c := range cases {
		got, err := ParseTimeOfDay(c.in)
		require.NoError(t, err, "parsing %q", c.in)
		assert.Equal(t, c.want, got, "parsing %q", c.in)
	}
}

func TestParseTimeOfDayRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "9", "24:00", "12:60", "ab:cd", "12:30:00", "-1:00"} {
		_, err := ParseTimeOfDay(in)
		assert.Error(t, err, "expected error for %q", in)
	}
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "00:00", TimeOfDay(0).String())
	assert.Equal(t, "09:05", TimeOfDay(545).String())
	assert.Equal(t, "17:00", TimeOfDay(1020).String())
}

func TestTimeOfDayRoundTrip(t *testing.T) {
	for _, in := range []string{"00:00", "07:15", "12:00", "18:30", "23:59"} {
		tod, err := ParseTimeOfDay(in)
		require.NoError(t, err)
		assert.Equal(t, in, tod.String())
	}
}
