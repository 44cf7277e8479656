package di

import (
	"context"

	"github.com/Zuggy22/Alke-wallet/domain"
	"github.com/Zuggy22/Alke-wallet/repo"
)

// ensureAccount deja lista la cuenta activa en Postgres: reutiliza la
// primera existente o crea la cuenta demo con su saldo inicial.
func ensureAccount(ctx context.Context, accounts *repo.PgAccountRepo, f domain.Factory) (domain.Account, error) {
	accs, err := accounts.List(ctx)
	if err == nil && len(accs) > 0 {
		return accs[0], nil
	}
	acc, err := f.NewAccount(repo.SeedAccountName, repo.SeedBalance())
	if err != nil {
		return domain.Account{}, err
	}
	if err := accounts.Create(ctx, acc); err != nil {
		return domain.Account{}, err
	}
	return acc, nil
}

// seedPg puebla historial y contactos de ejemplo en una base vacía,
// el mismo juego de datos del backend en memoria.
func seedPg(ctx context.Context, txs *repo.PgTransactionRepo, contacts *repo.PgContactRepo) error {
	list, err := txs.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		seed := repo.SeedTransactions()
		// de la más antigua a la más reciente, para que el orden por
		// id coincida con el orden de inserción
		for i := len(seed) - 1; i >= 0; i-- {
			t := seed[i]
			t.ID = 0
			if _, err := txs.Prepend(ctx, t); err != nil {
				return err
			}
		}
	}

	cs, err := contacts.List(ctx)
	if err != nil {
		return err
	}
	if len(cs) == 0 {
		for _, c := range repo.SeedContacts() {
			c.ID = 0
			if _, err := contacts.Append(ctx, c); err != nil {
				return err
			}
		}
	}
	return nil
}
