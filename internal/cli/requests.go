package cli

import (
	"errors"
	"strconv"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/go-playground/validator/v10"
)

var (
	// errUsage means the command got the wrong number of arguments.
	errUsage          = errors.New("wrong number of arguments")
	errUnknownCommand = errors.New("unknown command")
	// errLineTooLong means an input line exceeded maxLineLen.
	errLineTooLong = errors.Join(common.ErrInvalidInput, errors.New("input line too long"))
	// errInvalidDate means a date argument is not YYYY-MM-DD.
	errInvalidDate = errors.Join(common.ErrInvalidInput, errors.New("invalid date"))
)

type credentialsRequest struct {
	UserName string `validate:"required,max=255,printascii"`
	Password []byte `validate:"required,min=1"`
}

type dateRequest struct {
	Date string `validate:"required,datetime=2006-01-02"`
}

type reserveRequest struct {
	Date    string `validate:"required,datetime=2006-01-02"`
	Vaccine string `validate:"required,max=255"`
}

type addDosesRequest struct {
	Vaccine string `validate:"required,max=255"`
	Doses   int    `validate:"gt=0"`
}

type cancelRequest struct {
	AppointmentID int64 `validate:"gt=0"`
}

// check validates req and maps failures onto the sentinels describe knows.
func (a *App) check(req any) error {
	err := a.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "Date" {
				return errInvalidDate
			}
		}
	}
	return common.ErrInvalidInput
}

func parseDoses(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, common.ErrInvalidInput
	}
	return n, nil
}

func parseAppointmentID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, common.ErrInvalidInput
	}
	return id, nil
}
