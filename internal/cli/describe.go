package cli

import (
	"errors"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/session"
)

const weakPasswordHint = "Password is not strong enough, try again!\n" +
	"Please include at least 8 characters.\n" +
	"A mixture of both uppercase and lowercase letters.\n" +
	"A mixture of letters and numbers.\n" +
	"Inclusion of at least one special character, from \"!\", \"@\", \"#\", \"?\"."

// usageText is printed when a command gets the wrong number of arguments.
var usageText = map[string]string{
	"create_patient":            "Failed to create user.",
	"create_caregiver":          "Failed to create user.",
	"login_patient":             "Login failed.",
	"login_caregiver":           "Login failed.",
	"search_caregiver_schedule": "Invalid input",
	"reserve":                   "Invalid input",
}

// storageText is printed when the store fails underneath a command.
var storageText = map[string]string{
	"create_patient":            "Failed to create user.",
	"create_caregiver":          "Failed to create user.",
	"login_patient":             "Login failed.",
	"login_caregiver":           "Login failed.",
	"search_caregiver_schedule": "Error occurred when searching for caregivers",
	"reserve":                   "Error occurred when reserving appointment",
	"upload_availability":       "Error occurred when uploading availability",
	"add_doses":                 "Error occurred when adding doses",
	"show_appointments":         "Error occurred when retrieving appointments.",
}

// describe maps a command failure to the single line shown to the user.
func describe(cmd string, err error) string {
	switch {
	case errors.Is(err, errUnknownCommand):
		return "Invalid operation name!"
	case errors.Is(err, errUsage):
		if msg, ok := usageText[cmd]; ok {
			return msg
		}
		return "Please try again!"
	case errors.Is(err, errInvalidDate):
		return "Please enter a valid date!"
	case errors.Is(err, session.ErrPatientRequired):
		return "Please login as a patient first!"
	case errors.Is(err, session.ErrCaregiverRequired):
		return "Please login as a caregiver first!"
	case errors.Is(err, common.ErrNotAuthorized), errors.Is(err, common.ErrNotLoggedIn):
		return "Please login first!"
	case errors.Is(err, common.ErrAlreadyLoggedIn):
		return "User already logged in."
	case errors.Is(err, common.ErrLoginFailed):
		return "Login failed."
	case errors.Is(err, common.ErrUsernameTaken):
		return "Username taken, try again!"
	case errors.Is(err, common.ErrWeakPassword):
		return weakPasswordHint
	case errors.Is(err, common.ErrVaccineUnavailable), errors.Is(err, common.ErrInsufficientStock):
		return "Vaccine not available."
	case errors.Is(err, common.ErrNoCaregiverAvailable):
		return "No caregivers available on this date."
	case errors.Is(err, common.ErrDuplicateAvailability):
		return "Availability already uploaded for this date."
	case errors.Is(err, common.ErrNotSupported):
		return "Cancel is not supported yet."
	case errors.Is(err, common.ErrInvalidInput):
		return "Please try again!"
	}

	if msg, ok := storageText[cmd]; ok {
		return msg
	}
	return "Please try again!"
}
