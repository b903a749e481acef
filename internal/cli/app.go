package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jaynujangad03/moodcam/internal/auth"
	"github.com/jaynujangad03/moodcam/internal/config"
	"github.com/jaynujangad03/moodcam/internal/journal"
	"github.com/jaynujangad03/moodcam/internal/logging"
	"github.com/jaynujangad03/moodcam/internal/music"
	"github.com/jaynujangad03/moodcam/internal/reminder"
	"github.com/jaynujangad03/moodcam/internal/session"
	"github.com/jaynujangad03/moodcam/internal/storage"
	"github.com/jaynujangad03/moodcam/internal/storage/kv"
	"github.com/jaynujangad03/moodcam/internal/storage/sqlite"

	_ "modernc.org/sqlite"
)

var errNotLoggedIn = errors.New("not logged in")

// App wires the services behind the REPL. One App is one device: one store,
// one session, one set of pending reminders.
type App struct {
	config  *config.Config
	logger  logging.Logger
	store   storage.Store
	auth    *auth.Service
	journal *journal.Service
	session *session.Holder
	music   *music.Client

	// The one-shot evening nudge and the repeating daily reminder live in
	// separate schedulers so saving an entry can cancel the nudge without
	// disarming the daily reminder.
	nudges *reminder.Scheduler
	daily  *reminder.Scheduler

	reader *bufio.Reader
}

func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		return sqlite.Open(cfg.DatabaseDSN)
	case config.BackendKV:
		return kv.Open(cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	store, err := openStore(cfg)
	if err != nil {
		logger.Error(ctx, "failed to open store", "backend", cfg.Backend, "error", err)
		return nil, err
	}

	authService := auth.NewService(store, logger)
	if err := authService.Initialize(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	notify := func(msg string) { printlnFn("\n🔔 " + msg) }

	return &App{
		config:  cfg,
		logger:  logger,
		store:   store,
		auth:    authService,
		journal: journal.NewService(store, logger),
		session: session.NewHolder(),
		music:   music.NewClient(cfg.MusicEndpoint, cfg.MusicSearchTimeout, logger),
		nudges:  reminder.NewScheduler(notify, logger),
		daily:   reminder.NewScheduler(notify, logger),
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	_, ok := a.session.Current()
	return ok
}

// currentEmail returns the partition key of the logged-in user. Commands
// that need it report the problem to the user themselves.
func (a *App) currentEmail() (string, error) {
	s, ok := a.session.Current()
	if !ok {
		printlnFn("Please login first.")
		return "", errNotLoggedIn
	}
	return s.Email, nil
}

func (a *App) getStatus() string {
	s, ok := a.session.Current()
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s)", s.Email)
}

// Run starts the REPL and blocks until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer func() {
		a.nudges.CancelAll()
		a.daily.CancelAll()
		_ = a.store.Close()
	}()

	printlnFn("MoodCam CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
