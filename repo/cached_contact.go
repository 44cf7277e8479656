package repo

import (
	"context"
	"sync"

	"github.com/Zuggy22/Alke-wallet/domain"
)

// CachedContactRepo — caché de lectura sobre el repositorio Postgres.
// La lista de contactos se consulta en cada búsqueda y en cada alta,
// así que mantenerla en memoria evita un round-trip por tecla.
type CachedContactRepo struct {
	inner *PgContactRepo
	mu    sync.RWMutex
	list  []domain.Contact
}

func NewCachedContactRepo(inner *PgContactRepo) *CachedContactRepo {
	return &CachedContactRepo{inner: inner}
}

func (r *CachedContactRepo) List(ctx context.Context) ([]domain.Contact, error) {
	r.mu.RLock()
	if r.list != nil {
		defer r.mu.RUnlock()
		return append([]domain.Contact(nil), r.list...), nil
	}
	r.mu.RUnlock()

	cs, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.list = append([]domain.Contact(nil), cs...)
	r.mu.Unlock()
	return cs, nil
}

func (r *CachedContactRepo) Append(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	created, err := r.inner.Append(ctx, c)
	if err != nil {
		return domain.Contact{}, err
	}
	r.invalidate()
	return created, nil
}

func (r *CachedContactRepo) invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = nil
}
