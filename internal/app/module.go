package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/secureprop/internal/account"
)

func (a *App) initModules() {
	if err := account.New(a.ctx, account.Dependency{
		DBConn:     a.dbConn,
		Router:     a.router,
		Config:     a.config,
		Instrument: a.ins,
		UID:        a.uid,
		Clock:      a.clock,
		Validator:  a.validator,
		Password:   a.password,
		Goroutine:  a.goroutine,
	}); err != nil {
		slog.Error("failed to init module account", "error", err)
		os.Exit(1)
	}
}
