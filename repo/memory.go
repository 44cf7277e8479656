package repo

import (
	"context"
	"errors"
	"time"

	"github.com/Zuggy22/Alke-wallet/domain"
)

// Repositorios en memoria: el backend por defecto de la demo.
// Un solo usuario lógico y un solo hilo de ejecución, sin locking.
// Los IDs salen de un contador monótono sembrado con los datos de
// ejemplo; equivale a len+1 mientras no exista borrado.

type MemAccountRepo struct {
	acc domain.Account
}

func NewMemAccountRepo(a domain.Account) *MemAccountRepo {
	return &MemAccountRepo{acc: a}
}

func (r *MemAccountRepo) Get(ctx context.Context, id domain.AccountID) (domain.Account, error) {
	if r.acc.ID != id {
		return domain.Account{}, errors.New("account not found")
	}
	return r.acc, nil
}

func (r *MemAccountRepo) Update(ctx context.Context, a domain.Account) error {
	if r.acc.ID != a.ID {
		return errors.New("account not found")
	}
	r.acc = a
	return nil
}

type MemTransactionRepo struct {
	list   []domain.Transaction // la más reciente primero
	nextID int64
}

// NewMemTransactionRepo recibe el historial inicial ya ordenado de
// más reciente a más antiguo.
func NewMemTransactionRepo(seed []domain.Transaction) *MemTransactionRepo {
	r := &MemTransactionRepo{nextID: int64(len(seed)) + 1}
	r.list = append(r.list, seed...)
	return r
}

// Prepend asigna el ID y antepone la transacción al historial.
func (r *MemTransactionRepo) Prepend(ctx context.Context, t domain.Transaction) (domain.Transaction, error) {
	if err := t.Validate(); err != nil {
		return domain.Transaction{}, err
	}
	t.ID = domain.TransactionID(r.nextID)
	r.nextID++
	r.list = append([]domain.Transaction{t}, r.list...)
	return t, nil
}

func (r *MemTransactionRepo) List(ctx context.Context) ([]domain.Transaction, error) {
	return append([]domain.Transaction(nil), r.list...), nil
}

func (r *MemTransactionRepo) Recent(ctx context.Context, n int) ([]domain.Transaction, error) {
	if n > len(r.list) {
		n = len(r.list)
	}
	return append([]domain.Transaction(nil), r.list[:n]...), nil
}

func (r *MemTransactionRepo) ListByDate(ctx context.Context, from, to time.Time) ([]domain.Transaction, error) {
	var out []domain.Transaction
	for _, t := range r.list {
		if t.Date.Before(from) || t.Date.After(to) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

type MemContactRepo struct {
	list   []domain.Contact // orden de inserción
	nextID int64
}

func NewMemContactRepo(seed []domain.Contact) *MemContactRepo {
	r := &MemContactRepo{nextID: int64(len(seed)) + 1}
	r.list = append(r.list, seed...)
	return r
}

// Append asigna el ID y agrega el contacto al final; el orden de la
// lista es el orden de alta (al revés que las transacciones).
func (r *MemContactRepo) Append(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	if err := c.Validate(); err != nil {
		return domain.Contact{}, err
	}
	c.ID = domain.ContactID(r.nextID)
	r.nextID++
	r.list = append(r.list, c)
	return c, nil
}

func (r *MemContactRepo) List(ctx context.Context) ([]domain.Contact, error) {
	return append([]domain.Contact(nil), r.list...), nil
}
