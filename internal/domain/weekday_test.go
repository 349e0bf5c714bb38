package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input string
		want  Weekday
		ok    bool
	}{
		{"monday", Monday, true},
		{"Monday", Monday, true},
		{"MON", Monday, true},
		{"  tue ", Tuesday, true},
		{"tues", Tuesday, true},
		{"thur", Thursday, true},
		{"thurs", Thursday, true},
		{"sunday", Sunday, true},
		{"sat", Saturday, true},
		{"", 0, false},
		{"funday", 0, false},
		{"m", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseWeekday(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		if tt.ok {
			assert.Equal(t, tt.want, got, "input %q", tt.input)
		}
	}
}

func TestWeekdayFromIndex(t *testing.T) {
	d, ok := WeekdayFromIndex(1)
	assert.True(t, ok)
	assert.Equal(t, Sunday, d)

	d, ok = WeekdayFromIndex(7)
	assert.True(t, ok)
	assert.Equal(t, Saturday, d)

	_, ok = WeekdayFromIndex(0)
	assert.False(t, ok)
	_, ok = WeekdayFromIndex(8)
	assert.False(t, ok)
	_, ok = WeekdayFromIndex(-1)
	assert.False(t, ok)
}

func TestWeekdayString(t *testing.T) {
	assert.Equal(t, "Sunday", Sunday.String())
	assert.Equal(t, "Wednesday", Wednesday.String())
	assert.Equal(t, "Saturday", Saturday.String())
	assert.Equal(t, "Unknown", Weekday(0).String())
	assert.Equal(t, "Unknown", Weekday(8).String())
}
