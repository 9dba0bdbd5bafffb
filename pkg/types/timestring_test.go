package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid time", input: "09:30", want: "09:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "end of day", input: "23:59", want: "23:59"},
		{name: "missing leading zero normalized", input: "8:30", want: "08:30"},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "09:60", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.Equal(t, 570, TimeString("09:30").Minutes())
	assert.Equal(t, 1439, TimeString("23:59").Minutes())
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), got)

	// Конец суток непредставим
	_, err = TimeString("23:30").AddMinutes(30)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfDay)
}

func TestNormalizeTimeString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "already canonical", input: "08:30", want: "08:30"},
		{name: "no separator four digits", input: "1430", want: "14:30"},
		{name: "no separator three digits", input: "830", want: "08:30"},
		{name: "bare hour", input: "8", want: "08:00"},
		{name: "dot separator", input: "8.30", want: "08:30"},
		{name: "space separator", input: "8 30", want: "08:30"},
		{name: "hours suffix", input: "14:00hrs", want: "14:00"},
		{name: "glued range takes start", input: "08:00–10:00", want: "08:00"},
		{name: "surrounding whitespace", input: " 09:15 ", want: "09:15"},
		{name: "none literal", input: "none", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "unparseable", input: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeTimeString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", d.Format(DateFormat))

	_, err = ParseDate("2026-02-30")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	_, err = ParseDate("01.09.2026")
	require.Error(t, err)
}
