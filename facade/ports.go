package facade

import (
	"context"
	"time"

	"github.com/Zuggy22/Alke-wallet/domain"
	"github.com/Zuggy22/Alke-wallet/state"
)

type AccountRepo interface {
	Get(ctx context.Context, id domain.AccountID) (domain.Account, error)
	Update(ctx context.Context, a domain.Account) error
}

type TransactionRepo interface {
	// List — la más reciente primero.
	List(ctx context.Context) ([]domain.Transaction, error)
	Recent(ctx context.Context, n int) ([]domain.Transaction, error)
	ListByDate(ctx context.Context, from, to time.Time) ([]domain.Transaction, error)

	// Prepend asigna el ID y antepone al historial.
	Prepend(ctx context.Context, t domain.Transaction) (domain.Transaction, error)
}

type ContactRepo interface {
	// List — en orden de alta.
	List(ctx context.Context) ([]domain.Contact, error)
	Append(ctx context.Context, c domain.Contact) (domain.Contact, error)
}

type SessionStore interface {
	Save(u domain.User, acc domain.AccountID) error
	Load() (state.Session, bool, error)
	Clear() error
}
