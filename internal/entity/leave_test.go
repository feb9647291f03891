package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkingDays(t *testing.T) {
	tests := []struct {
		name  string
		start Date
		end   Date
		want  int
	}{
		{name: "monday to friday", start: NewDate(2026, time.March, 16), end: NewDate(2026, time.March, 20), want: 5},
		{name: "weekend only", start: NewDate(2026, time.March, 14), end: NewDate(2026, time.March, 15), want: 0},
		{name: "single weekday", start: NewDate(2026, time.March, 18), end: NewDate(2026, time.March, 18), want: 1},
		{name: "single saturday", start: NewDate(2026, time.March, 14), end: NewDate(2026, time.March, 14), want: 0},
		{name: "spanning two weekends", start: NewDate(2026, time.March, 13), end: NewDate(2026, time.March, 23), want: 7},
		{name: "sunday to friday", start: NewDate(2026, time.March, 15), end: NewDate(2026, time.March, 20), want: 5},
		{name: "inverted range", start: NewDate(2026, time.March, 20), end: NewDate(2026, time.March, 16), want: 0},
		{name: "full year 2026", start: NewDate(2026, time.January, 1), end: NewDate(2026, time.December, 31), want: 261},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WorkingDays(tt.start, tt.end))
		})
	}
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2026, time.March, 16)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-16"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-03-16"`), &parsed))
	assert.True(t, parsed.Equal(d.Time))

	assert.Error(t, json.Unmarshal([]byte(`"16.03.2026"`), &parsed))
	assert.Error(t, json.Unmarshal([]byte(`42`), &parsed))
}

func TestLeaveType_IsValid(t *testing.T) {
	for _, lt := range []LeaveType{TypeVacation, TypeSickLeave, TypeRemoteWork, TypeParental, TypeTraining, TypeOther} {
		assert.True(t, lt.IsValid(), string(lt))
	}

	assert.False(t, LeaveType("SABBATICAL").IsValid())
	assert.False(t, LeaveType("").IsValid())
}
