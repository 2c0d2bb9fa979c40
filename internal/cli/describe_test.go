package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/session"
	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		err  error
		want string
	}{
		{"unknown", "unknown", errUnknownCommand, "Invalid operation name!"},
		{"usage create", "create_patient", errUsage, "Failed to create user."},
		{"usage login", "login_caregiver", errUsage, "Login failed."},
		{"usage reserve", "reserve", errUsage, "Invalid input"},
		{"usage upload", "upload_availability", errUsage, "Please try again!"},
		{"bad date", "reserve", errInvalidDate, "Please enter a valid date!"},
		{"patient required", "reserve", session.ErrPatientRequired, "Please login as a patient first!"},
		{"caregiver required", "add_doses", session.ErrCaregiverRequired, "Please login as a caregiver first!"},
		{"not logged in", "show_appointments", common.ErrNotAuthorized, "Please login first!"},
		{"logout twice", "logout", common.ErrNotLoggedIn, "Please login first!"},
		{"already logged in", "login_patient", common.ErrAlreadyLoggedIn, "User already logged in."},
		{"login failed", "login_patient", common.ErrLoginFailed, "Login failed."},
		{"username taken", "create_caregiver", common.ErrUsernameTaken, "Username taken, try again!"},
		{"weak password", "create_patient", common.ErrWeakPassword, weakPasswordHint},
		{"no vaccine", "reserve", common.ErrVaccineUnavailable, "Vaccine not available."},
		{"no stock", "reserve", common.ErrInsufficientStock, "Vaccine not available."},
		{"no caregiver", "reserve", common.ErrNoCaregiverAvailable, "No caregivers available on this date."},
		{"duplicate", "upload_availability", common.ErrDuplicateAvailability, "Availability already uploaded for this date."},
		{"cancel", "cancel", common.ErrNotSupported, "Cancel is not supported yet."},
		{"invalid input", "add_doses", common.ErrInvalidInput, "Please try again!"},
		{"storage search", "search_caregiver_schedule", fmt.Errorf("%w: boom", common.ErrStorage), "Error occurred when searching for caregivers"},
		{"storage reserve", "reserve", fmt.Errorf("%w: boom", common.ErrStorage), "Error occurred when reserving appointment"},
		{"storage show", "show_appointments", errors.New("boom"), "Error occurred when retrieving appointments."},
		{"storage logout", "logout", errors.New("boom"), "Please try again!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describe(tt.cmd, tt.err))
		})
	}
}

func TestIsKnown(t *testing.T) {
	assert.True(t, isKnown(session.ErrPatientRequired))
	assert.True(t, isKnown(fmt.Errorf("wrapped: %w", common.ErrWeakPassword)))
	assert.False(t, isKnown(common.ErrStorage))
	assert.False(t, isKnown(errors.New("boom")))
}

func TestReservationOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "booked"},
		{common.ErrVaccineUnavailable, "no_stock"},
		{common.ErrInsufficientStock, "no_stock"},
		{common.ErrNoCaregiverAvailable, "no_caregiver"},
		{session.ErrPatientRequired, "unauthorized"},
		{fmt.Errorf("%w: boom", common.ErrStorage), "error"},
		{errUsage, "invalid"},
		{errInvalidDate, "invalid"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, reservationOutcome(tt.err), "%v", tt.err)
	}
}
