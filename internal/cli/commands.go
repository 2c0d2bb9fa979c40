package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/dmitrijs2005/vaxscheduler/internal/session"
)

// credentialArgs returns username and password from args, prompting for the
// password when only the username was given.
func (a *App) credentialArgs(args []string) (string, []byte, error) {
	switch len(args) {
	case 1:
		pw, err := getPassword(a.out)
		if err != nil {
			return "", nil, common.ErrInvalidInput
		}
		return args[0], pw, nil
	case 2:
		return args[0], []byte(args[1]), nil
	default:
		return "", nil, errUsage
	}
}

func (a *App) CreateUser(ctx context.Context, sess *session.Session, kind models.Kind, args []string) error {
	userName, password, err := a.credentialArgs(args)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.check(&credentialsRequest{UserName: userName, Password: password}); err != nil {
		return err
	}

	ctx, cancel := a.opContext(ctx)
	defer cancel()

	if err := a.credentials.Create(ctx, kind, userName, password); err != nil {
		return err
	}
	a.println("Created user " + userName)
	return nil
}

func (a *App) Login(ctx context.Context, sess *session.Session, kind models.Kind, args []string) error {
	if sess.LoggedIn() {
		return common.ErrAlreadyLoggedIn
	}

	userName, password, err := a.credentialArgs(args)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.check(&credentialsRequest{UserName: userName, Password: password}); err != nil {
		return common.ErrLoginFailed
	}

	ctx, cancel := a.opContext(ctx)
	defer cancel()

	p, err := a.credentials.Login(ctx, kind, userName, password)
	if err != nil {
		return err
	}
	if err := sess.Login(p); err != nil {
		return err
	}
	a.println("Logged in as: " + userName)
	return nil
}

// SearchCaregiverSchedule prints one line per available caregiver and known
// vaccine, so output grows with caregivers times vaccines.
func (a *App) SearchCaregiverSchedule(ctx context.Context, sess *session.Session, args []string) error {
	if _, err := sess.RequireAny(); err != nil {
		return err
	}
	if len(args) != 1 {
		return errUsage
	}
	if err := a.check(&dateRequest{Date: args[0]}); err != nil {
		return err
	}

	ctx, cancel := a.opContext(ctx)
	defer cancel()

	rows, err := a.availability.Search(ctx, args[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		a.println("No caregivers available for this date.")
		return nil
	}
	for _, r := range rows {
		if r.Vaccine == "" {
			a.println("Caregiver: " + r.CaregiverName)
			continue
		}
		a.println(fmt.Sprintf("Caregiver: %s, Vaccine: %s, Available Doses: %d", r.CaregiverName, r.Vaccine, r.Doses))
	}
	return nil
}

func (a *App) Reserve(ctx context.Context, sess *session.Session, args []string) (err error) {
	defer func() { a.metrics.ObserveReservation(reservationOutcome(err)) }()

	patient, err := sess.RequirePatient()
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return errUsage
	}
	if err := a.check(&reserveRequest{Date: args[0], Vaccine: args[1]}); err != nil {
		return err
	}

	ctx, cancel := a.opContext(ctx)
	defer cancel()

	appt, err := a.allocator.Reserve(ctx, patient, args[0], args[1])
	if err != nil {
		return err
	}
	a.println(fmt.Sprintf("Appointment reserved for %s with %s on %s for %s vaccine.",
		appt.PatientName, appt.CaregiverName, models.FormatDate(appt.Date), appt.VaccineName))
	a.println(fmt.Sprintf("Appointment ID: %d, Caregiver username: %s", appt.ID, appt.CaregiverName))
	return nil
}

func (a *App) UploadAvailability(ctx context.Context, sess *session.Session, args []string) error {
	caregiver, err := sess.RequireCaregiver()
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return errUsage
	}
	if err := a.check(&dateRequest{Date: args[0]}); err != nil {
		return err
	}

	ctx, cancel := a.opContext(ctx)
	defer cancel()

	if err := a.availability.Publish(ctx, caregiver, args[0]); err != nil {
		return err
	}
	a.println("Availability uploaded!")
	return nil
}

func (a *App) AddDoses(ctx context.Context, sess *session.Session, args []string) error {
	if _, err := sess.RequireCaregiver(); err != nil {
		return err
	}
	if len(args) != 2 {
		return errUsage
	}
	doses, err := parseDoses(args[1])
	if err != nil {
		return err
	}
	if err := a.check(&addDosesRequest{Vaccine: args[0], Doses: doses}); err != nil {
		return err
	}

	ctx, cancel := a.opContext(ctx)
	defer cancel()

	if err := a.inventory.AddDoses(ctx, args[0], doses); err != nil {
		return err
	}
	a.println("Doses updated!")
	return nil
}

func (a *App) Cancel(ctx context.Context, sess *session.Session, args []string) error {
	if _, err := sess.RequireAny(); err != nil {
		return err
	}
	if len(args) != 1 {
		return errUsage
	}
	id, err := parseAppointmentID(args[0])
	if err != nil {
		return err
	}
	if err := a.check(&cancelRequest{AppointmentID: id}); err != nil {
		return err
	}

	ctx, cancel := a.opContext(ctx)
	defer cancel()

	return a.appointments.Cancel(ctx, id)
}

func (a *App) ShowAppointments(ctx context.Context, sess *session.Session, args []string) error {
	userName, err := sess.RequireAny()
	if err != nil {
		return err
	}

	ctx, cancel := a.opContext(ctx)
	defer cancel()

	list, err := a.appointments.List(ctx, sess.Role(), userName)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.println("No appointments found.")
		return nil
	}
	for _, appt := range list {
		a.println(fmt.Sprintf("Appointment ID: %d, Vaccine Name: %s, Appointment Date: %s, Username: %s",
			appt.ID, appt.VaccineName, models.FormatDate(appt.Date), appt.Counterpart(sess.Role())))
	}
	return nil
}

func (a *App) Logout(ctx context.Context, sess *session.Session, args []string) error {
	if len(args) != 0 {
		return errUsage
	}
	if err := sess.Logout(); err != nil {
		return err
	}
	a.println("Successfully logged out!")
	return nil
}

func (a *App) Help() {
	a.println("*** Please enter one of the following commands ***")
	a.println("> create_patient <username> <password>")
	a.println("> create_caregiver <username> <password>")
	a.println("> login_patient <username> <password>")
	a.println("> login_caregiver <username> <password>")
	a.println("> search_caregiver_schedule <date>")
	a.println("> reserve <date> <vaccine>")
	a.println("> upload_availability <date>")
	a.println("> cancel <appointment_id>")
	a.println("> add_doses <vaccine> <number>")
	a.println("> show_appointments")
	a.println("> logout")
	a.println("> quit")
	a.println()
}

func reservationOutcome(err error) string {
	switch {
	case err == nil:
		return "booked"
	case errors.Is(err, common.ErrVaccineUnavailable), errors.Is(err, common.ErrInsufficientStock):
		return "no_stock"
	case errors.Is(err, common.ErrNoCaregiverAvailable):
		return "no_caregiver"
	case errors.Is(err, common.ErrNotAuthorized):
		return "unauthorized"
	case errors.Is(err, common.ErrStorage):
		return "error"
	default:
		return "invalid"
	}
}
