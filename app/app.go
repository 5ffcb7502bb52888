package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jekabolt/stockroom/config"
	httpapi "github.com/jekabolt/stockroom/internal/api/http"
	"github.com/jekabolt/stockroom/internal/apisrv/inventory"
	"github.com/jekabolt/stockroom/internal/dashboard"
	"github.com/jekabolt/stockroom/internal/dependency"
	"github.com/jekabolt/stockroom/internal/store"
	"github.com/jekabolt/stockroom/internal/store/mongostore"
)

// App is the main application
type App struct {
	hs   *httpapi.Server
	db   dependency.Repository
	c    *config.Config
	done chan struct{}
	stop sync.Once
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting stockroom",
		slog.String("driver", a.c.Store.Driver),
	)

	a.db, err = newRepository(ctx, a.c)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't create repository",
			slog.String("err", err.Error()),
		)
		return err
	}

	dash, err := dashboard.New(&a.c.Dashboard, a.db, a.db.Now)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't create dashboard",
			slog.String("err", err.Error()),
		)
		return err
	}

	inv := inventory.New(a.db, dash)

	// start API server
	a.hs = httpapi.New(&a.c.HTTP)
	if err = a.hs.Start(ctx, inv); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}

	go func() {
		<-a.hs.Done()
		a.Stop(context.Background())
	}()

	return nil
}

func newRepository(ctx context.Context, c *config.Config) (dependency.Repository, error) {
	switch c.Store.Driver {
	case config.DriverMongo:
		ms, err := mongostore.New(&c.Mongo)
		if err != nil {
			return nil, err
		}
		return ms, nil
	case config.DriverMySQL:
		ms, err := store.New(ctx, c.DB)
		if err != nil {
			return nil, err
		}
		return ms, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	a.stop.Do(func() {
		if a.hs != nil {
			if err := a.hs.Stop(ctx); err != nil {
				slog.Default().ErrorContext(ctx, "http server shutdown",
					slog.String("err", err.Error()),
				)
			}
		}
		if a.db != nil {
			a.db.Close()
		}
		close(a.done)
	})
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
