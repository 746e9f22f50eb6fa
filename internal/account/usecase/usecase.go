package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/secureprop/internal/account/entity"
	"github.com/shandysiswandi/secureprop/internal/pkg/clock"
	"github.com/shandysiswandi/secureprop/internal/pkg/goerror"
	"github.com/shandysiswandi/secureprop/internal/pkg/goroutine"
	"github.com/shandysiswandi/secureprop/internal/pkg/instrument"
	"github.com/shandysiswandi/secureprop/internal/pkg/secureprop"
	"github.com/shandysiswandi/secureprop/internal/pkg/uid"
	"github.com/shandysiswandi/secureprop/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetAccountByID(ctx context.Context, id int64) (*entity.AccountRow, error)
	GetAccountByEmail(ctx context.Context, email string) (*entity.AccountRow, error)

	CreateAccount(ctx context.Context, row entity.AccountRow) error
	UpdatePasswordDigest(ctx context.Context, id int64, digest *string) error
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	password  *secureprop.Definition
	uid       uid.NumberID
	clock     clock.Clocker
	ins       instrument.Instrumentation
	goroutine *goroutine.Manager
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	Password   *secureprop.Definition
	UID        uid.NumberID
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
	Goroutine  *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		password:  dep.Password,
		uid:       dep.UID,
		clock:     dep.Clock,
		ins:       dep.Instrument,
		goroutine: dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("account.usecase").Start(ctx, name)
}

// invalidSecret converts field validation failures into a goerror, renaming
// the reported keys through rename when given.
func invalidSecret(err error, rename map[string]string) error {
	var errs secureprop.Errors
	if !errors.As(err, &errs) {
		return goerror.NewServer(err)
	}

	fields := errs.Fields()
	for from, to := range rename {
		if msg, ok := fields[from]; ok {
			delete(fields, from)
			fields[to] = msg
		}
	}

	return goerror.NewInvalidFields(fields)
}

// loadAccount fetches an account by id, mapping a missing row to a 404.
func (s *Usecase) loadAccount(ctx context.Context, id int64) (*entity.Account, error) {
	row, err := s.repoDB.GetAccountByID(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "account not found", "account_id", id)
		return nil, goerror.NewBusiness("account not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by id", "account_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	return entity.AccountFromRow(row, s.password), nil
}

// storeDigest writes the password digest when it changed.
func (s *Usecase) storeDigest(ctx context.Context, acc *entity.Account) error {
	f := acc.Password()
	defer f.Reset()

	if !f.Dirty() {
		return nil
	}

	if err := s.repoDB.UpdatePasswordDigest(ctx, acc.ID, f.Digest()); err != nil {
		return err
	}
	f.MarkPersisted()

	return nil
}
