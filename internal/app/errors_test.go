package app

import (
	"errors"
	"testing"

	"github.com/alexanderramin/crewshift/internal/calendar"
	"github.com/stretchr/testify/assert"
)

func TestShiftError_MatchesSentinel(t *testing.T) {
	cause := errors.New("disk full")

	tests := []struct {
		code ShiftErrorCode
		want error
	}{
		{ShiftErrInvalidInput, ErrInvalidInput},
		{ShiftErrNotFound, ErrNotFound},
		{ShiftErrPersistence, ErrPersistence},
	}
	for _, tc := range tests {
		t.Run(string(tc.code), func(t *testing.T) {
			err := error(&ShiftError{Code: tc.code, Message: "x", Err: cause})
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, cause)
		})
	}
}

func TestShiftError_Message(t *testing.T) {
	err := &ShiftError{Code: ShiftErrNotFound, Message: "project abc"}
	assert.Equal(t, "PROJECT_NOT_FOUND: project abc", err.Error())
	assert.NotErrorIs(t, err, ErrInvalidInput)
}

func TestShiftStartDateResponse_Moved(t *testing.T) {
	resp := &ShiftStartDateResponse{Records: []RecordShift{
		{ID: "a", OldDate: mustDate("2025-01-04"), NewDate: mustDate("2025-01-04")},
		{ID: "b", OldDate: mustDate("2025-01-06"), NewDate: mustDate("2025-01-13")},
	}}
	assert.Equal(t, 1, resp.Moved())
}

func mustDate(s string) calendar.Date { return calendar.MustParse(s) }
