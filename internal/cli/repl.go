package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/metrics"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/dmitrijs2005/vaxscheduler/internal/session"
)

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	CreateUser(ctx context.Context, sess *session.Session, kind models.Kind, args []string) error
	Login(ctx context.Context, sess *session.Session, kind models.Kind, args []string) error
	SearchCaregiverSchedule(ctx context.Context, sess *session.Session, args []string) error
	Reserve(ctx context.Context, sess *session.Session, args []string) error
	UploadAvailability(ctx context.Context, sess *session.Session, args []string) error
	AddDoses(ctx context.Context, sess *session.Session, args []string) error
	Cancel(ctx context.Context, sess *session.Session, args []string) error
	ShowAppointments(ctx context.Context, sess *session.Session, args []string) error
	Logout(ctx context.Context, sess *session.Session, args []string) error
	Help()

	print(args ...any)
	println(args ...any)
	// finish reports the outcome of cmd to the user, the log and the metrics.
	finish(ctx context.Context, sess *session.Session, cmd string, err error, elapsed time.Duration)
}

// maxLineLen bounds one input line. Longer lines are discarded whole.
const maxLineLen = 64 * 1024

// readLine returns the next line without its terminator. A line longer than
// maxLineLen is consumed up to its end and reported as errLineTooLong.
func readLine(r *bufio.Reader) (string, error) {
	var (
		buf     []byte
		tooLong bool
	)
	for {
		frag, isPrefix, err := r.ReadLine()
		if err != nil {
			if err == io.EOF && (len(buf) > 0 || tooLong) {
				break
			}
			return "", err
		}
		if !tooLong {
			if len(buf)+len(frag) > maxLineLen {
				tooLong, buf = true, nil
			} else {
				buf = append(buf, frag...)
			}
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", errLineTooLong
	}
	return string(buf), nil
}

// runREPL reads commands from in and dispatches them to a until the user
// quits, the input ends or ctx is cancelled. A failing command never stops
// the loop.
func runREPL(ctx context.Context, a execIface, sess *session.Session, in *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		a.print("> ")
		line, err := readLine(in)
		if errors.Is(err, errLineTooLong) {
			a.finish(ctx, sess, "unknown", err, 0)
			continue
		}
		if err != nil {
			a.println()
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		start := time.Now()

		switch cmd {
		case "create_patient":
			err = a.CreateUser(ctx, sess, models.KindPatient, args)
		case "create_caregiver":
			err = a.CreateUser(ctx, sess, models.KindCaregiver, args)
		case "login_patient":
			err = a.Login(ctx, sess, models.KindPatient, args)
		case "login_caregiver":
			err = a.Login(ctx, sess, models.KindCaregiver, args)
		case "search_caregiver_schedule":
			err = a.SearchCaregiverSchedule(ctx, sess, args)
		case "reserve":
			err = a.Reserve(ctx, sess, args)
		case "upload_availability":
			err = a.UploadAvailability(ctx, sess, args)
		case "add_doses":
			err = a.AddDoses(ctx, sess, args)
		case "cancel":
			err = a.Cancel(ctx, sess, args)
		case "show_appointments":
			err = a.ShowAppointments(ctx, sess, args)
		case "logout":
			err = a.Logout(ctx, sess, args)
		case "help":
			a.Help()
		case "quit", "exit":
			a.println("Bye!")
			a.finish(ctx, sess, cmd, nil, time.Since(start))
			return
		default:
			cmd, err = "unknown", errUnknownCommand
		}

		a.finish(ctx, sess, cmd, err, time.Since(start))
	}
}

func (a *App) finish(ctx context.Context, sess *session.Session, cmd string, err error, elapsed time.Duration) {
	log := a.logger.With("session_id", sess.ID(), "command", cmd)

	outcome := metrics.OutcomeOK
	switch {
	case err == nil:
		log.Debug(ctx, "command done", "elapsed", elapsed)
	case errors.Is(err, common.ErrStorage), !isKnown(err):
		outcome = metrics.OutcomeError
		log.Error(ctx, "command failed", "error", err)
		a.println(describe(cmd, err))
	default:
		outcome = metrics.OutcomeRejected
		log.Debug(ctx, "command rejected", "reason", err)
		a.println(describe(cmd, err))
	}

	a.metrics.ObserveCommand(cmd, outcome, elapsed)
}

// isKnown reports whether err is one of the sentinels users are told about.
func isKnown(err error) bool {
	for _, target := range []error{
		errUsage, errUnknownCommand, common.ErrInvalidInput, common.ErrNotAuthorized, common.ErrLoginFailed,
		common.ErrAlreadyLoggedIn, common.ErrNotLoggedIn, common.ErrUsernameTaken,
		common.ErrWeakPassword, common.ErrVaccineUnavailable, common.ErrNoCaregiverAvailable,
		common.ErrInsufficientStock, common.ErrDuplicateAvailability, common.ErrNotSupported,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
