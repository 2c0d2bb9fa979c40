package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/config"
	"github.com/dmitrijs2005/vaxscheduler/internal/logging"
	"github.com/dmitrijs2005/vaxscheduler/internal/metrics"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/dmitrijs2005/vaxscheduler/internal/services"
	"github.com/dmitrijs2005/vaxscheduler/internal/session"
	"github.com/dmitrijs2005/vaxscheduler/internal/storage"
	"github.com/go-playground/validator/v10"
)

type CredentialService interface {
	Create(ctx context.Context, kind models.Kind, userName string, password []byte) error
	Login(ctx context.Context, kind models.Kind, userName string, password []byte) (*models.Principal, error)
}

type AvailabilityService interface {
	Publish(ctx context.Context, caregiver, date string) error
	Search(ctx context.Context, date string) ([]models.ScheduleRow, error)
}

type InventoryService interface {
	AddDoses(ctx context.Context, vaccine string, delta int) error
}

type AppointmentService interface {
	List(ctx context.Context, kind models.Kind, userName string) ([]models.Appointment, error)
	Cancel(ctx context.Context, id int64) error
}

type Allocator interface {
	Reserve(ctx context.Context, patient, date, vaccine string) (*models.Appointment, error)
}

// App holds the services behind the shell and the output it writes to.
type App struct {
	credentials  CredentialService
	availability AvailabilityService
	inventory    InventoryService
	appointments AppointmentService
	allocator    Allocator

	logger   logging.Logger
	metrics  *metrics.Metrics
	validate *validator.Validate
	out      io.Writer
	timeout  time.Duration
}

// NewApp wires the services over store.
func NewApp(cfg *config.Config, store *storage.Store, logger logging.Logger, m *metrics.Metrics, out io.Writer) *App {
	return &App{
		credentials:  services.NewCredentialService(store.DB, store.Repos, logger),
		availability: services.NewAvailabilityService(store.DB, store.Repos, logger),
		inventory:    services.NewInventoryService(store.DB, store.Repos, logger),
		appointments: services.NewAppointmentService(store.DB, store.Repos),
		allocator:    services.NewAllocator(store.DB, store.Repos, logger, cfg.TxMaxRetries),
		logger:       logger,
		metrics:      m,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		out:          out,
		timeout:      cfg.OperationTimeout,
	}
}

// Run prints the welcome banner and serves commands from in until quit or
// end of input. Each call gets a fresh logged-out session.
func (a *App) Run(ctx context.Context, in io.Reader) {
	sess := session.New()
	a.logger.Info(ctx, "session started", "session_id", sess.ID())

	a.println()
	a.println("Welcome to the COVID-19 Vaccine Reservation Scheduling Application!")
	a.Help()

	runREPL(ctx, a, sess, bufio.NewReader(in))

	a.logger.Info(ctx, "session finished", "session_id", sess.ID())
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) print(args ...any) {
	fmt.Fprint(a.out, args...)
}

// opContext bounds a single command.
func (a *App) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.timeout)
}
