package agent

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/mwantia/fabric/pkg/container"
	config "github.com/mwantia/gomemo/internal/config/server"
	"github.com/mwantia/gomemo/pkg/db/store"
	"github.com/mwantia/gomemo/pkg/filter"
	"github.com/mwantia/gomemo/pkg/log"
	"github.com/mwantia/gomemo/pkg/session"
)

type GoMemoAgent struct {
	mutex sync.RWMutex

	cfg *config.BaseServerConfig
	sc  *container.ServiceContainer
	log log.LoggerService

	store   *store.SQLiteStore
	session *session.Session
}

func NewAgent(cfg *config.BaseServerConfig) *GoMemoAgent {
	return &GoMemoAgent{
		cfg: cfg,
		sc:  container.NewServiceContainer(),
		log: log.NewLoggerService("gomemo", cfg.Log),
	}
}

func (gma *GoMemoAgent) setupServices(ctx context.Context) error {
	gma.log.Debug("Opening metadata store '%s'...", gma.cfg.Metadata.SQLite.Path)
	st, err := store.NewSQLiteStore(store.SQLiteConfig{
		Path: gma.cfg.Metadata.SQLite.Path,
	})
	if err != nil {
		return err
	}
	if err := st.Connect(ctx); err != nil {
		st.Close()
		return fmt.Errorf("failed to connect metadata store: %w", err)
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return fmt.Errorf("failed to migrate metadata store: %w", err)
	}

	sess := session.New(st, gma.cfg.Session.UserID, gma.log)
	if err := sess.Refresh(ctx); err != nil {
		st.Close()
		return fmt.Errorf("failed to load session for user %d: %w", gma.cfg.Session.UserID, err)
	}

	errs := container.Errors{}

	gma.log.Debug("Registering 'LoggerService'...")
	errs.Add(container.Register[log.LoggerServiceImpl](gma.sc,
		container.With[log.LoggerService](),
		container.WithInstance(gma.log)))

	gma.log.Debug("Registering 'MetadataStore'...")
	errs.Add(container.Register[store.SQLiteStore](gma.sc,
		container.With[store.MetadataStore](),
		container.WithInstance(st)))

	gma.log.Debug("Registering 'Session'...")
	errs.Add(container.Register[session.Session](gma.sc,
		container.WithInstance(sess)))

	gma.store = st
	gma.session = sess

	return errs.Errors()
}

// Open prepares the store and the session of the configured user.
func (gma *GoMemoAgent) Open(ctx context.Context) error {
	gma.mutex.Lock()
	defer gma.mutex.Unlock()

	if gma.session != nil {
		return nil
	}
	return gma.setupServices(ctx)
}

func (gma *GoMemoAgent) Session() *session.Session {
	gma.mutex.RLock()
	defer gma.mutex.RUnlock()
	return gma.session
}

func (gma *GoMemoAgent) Store() *store.SQLiteStore {
	gma.mutex.RLock()
	defer gma.mutex.RUnlock()
	return gma.store
}

func (gma *GoMemoAgent) Logger() log.LoggerService {
	return gma.log
}

// EditorOptions returns the configured defaults for shortcut editors.
func (gma *GoMemoAgent) EditorOptions() ([]filter.EditorOption, error) {
	d, err := filter.ParseDimension(gma.cfg.Filter.DefaultDimension)
	if err != nil {
		return nil, fmt.Errorf("invalid filter.default_dimension: %w", err)
	}
	return []filter.EditorOption{filter.WithDefaultDimension(d)}, nil
}

func (gma *GoMemoAgent) Close(ctx context.Context) error {
	gma.mutex.Lock()
	defer gma.mutex.Unlock()

	if err := gma.sc.Cleanup(ctx); err != nil {
		return fmt.Errorf("failed to complete service container cleanup: %w", err)
	}

	if gma.store != nil {
		if err := gma.store.Close(); err != nil {
			return fmt.Errorf("failed to close metadata store: %w", err)
		}
		gma.store = nil
	}
	gma.session = nil
	return nil
}

func (gma *GoMemoAgent) Serve(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	if err := gma.Open(ctx); err != nil {
		return err
	}

	gma.log.Info("Serving session for user %d with %d shortcuts", gma.cfg.Session.UserID, len(gma.session.Shortcuts()))
	<-ctx.Done()

	timeout, err := time.ParseDuration(gma.cfg.ShutdownTimeout)
	if err != nil {
		// Set default of 60 seconds if error
		timeout = 60 * time.Second
	}

	shutdown, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return gma.Close(shutdown)
}
