// Package entity holds the account record and its persisted row shape.
package entity

import (
	"time"

	"github.com/shandysiswandi/secureprop/internal/pkg/secureprop"
)

// PropPassword is the secret property every account carries.
const PropPassword = "password"

// Account is a registered user with a password credential attached.
type Account struct {
	ID        int64
	Email     string
	FullName  string
	CreatedAt time.Time
	UpdatedAt time.Time

	secureprop.Props
}

// AccountRow is the accounts table row.
type AccountRow struct {
	ID             int64     `db:"id"`
	Email          string    `db:"email"`
	FullName       string    `db:"full_name"`
	PasswordDigest *string   `db:"password_digest"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// NewAccount returns an account with an unset password.
func NewAccount(password *secureprop.Definition) *Account {
	acc := &Account{}
	acc.Attach(password.New())
	return acc
}

// AccountFromRow hydrates an account from storage.
func AccountFromRow(row *AccountRow, password *secureprop.Definition) *Account {
	acc := &Account{
		ID:        row.ID,
		Email:     row.Email,
		FullName:  row.FullName,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	acc.Attach(password.Load(row.PasswordDigest))
	return acc
}

// Password returns the password field. It is nil only for an Account built
// without NewAccount or AccountFromRow.
func (a *Account) Password() *secureprop.Field {
	f, _ := a.Field(PropPassword)
	return f
}

// Row returns the persisted shape of the account.
func (a *Account) Row() AccountRow {
	row := AccountRow{
		ID:        a.ID,
		Email:     a.Email,
		FullName:  a.FullName,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if f := a.Password(); f != nil {
		row.PasswordDigest = f.Digest()
	}
	return row
}
