package app

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/secureprop/internal/pkg/clock"
	"github.com/shandysiswandi/secureprop/internal/pkg/config"
	"github.com/shandysiswandi/secureprop/internal/pkg/goroutine"
	"github.com/shandysiswandi/secureprop/internal/pkg/hash"
	"github.com/shandysiswandi/secureprop/internal/pkg/instrument"
	"github.com/shandysiswandi/secureprop/internal/pkg/router"
	"github.com/shandysiswandi/secureprop/internal/pkg/secureprop"
	"github.com/shandysiswandi/secureprop/internal/pkg/uid"
	"github.com/shandysiswandi/secureprop/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator *validator.V10Validator
	clock     clock.Clocker
	hasher    hash.Hash
	password  *secureprop.Definition
	uid       uid.NumberID
	uuid      uid.StringID

	// resources
	dbConn *pgxpool.Pool

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initSecureProp()
	app.initDatabase()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
