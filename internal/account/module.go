package account

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/secureprop/internal/account/inbound"
	"github.com/shandysiswandi/secureprop/internal/account/outbound/db"
	"github.com/shandysiswandi/secureprop/internal/account/usecase"
	"github.com/shandysiswandi/secureprop/internal/pkg/clock"
	"github.com/shandysiswandi/secureprop/internal/pkg/config"
	"github.com/shandysiswandi/secureprop/internal/pkg/goroutine"
	"github.com/shandysiswandi/secureprop/internal/pkg/instrument"
	"github.com/shandysiswandi/secureprop/internal/pkg/router"
	"github.com/shandysiswandi/secureprop/internal/pkg/secureprop"
	"github.com/shandysiswandi/secureprop/internal/pkg/uid"
	"github.com/shandysiswandi/secureprop/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	Password   *secureprop.Definition     `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
}

func New(ctx context.Context, dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAccount := db.NewDB(dep.DBConn, dep.Instrument)
	if dep.Config.GetBool("database.auto_migrate") {
		if err := dbAccount.Migrate(ctx); err != nil {
			return fmt.Errorf("account: migrate: %w", err)
		}
	}

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbAccount,
		Validator:  dep.Validator,
		Password:   dep.Password,
		UID:        dep.UID,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
		Goroutine:  dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, dep.Config.GetString("app.admin_token"))

	return nil
}
