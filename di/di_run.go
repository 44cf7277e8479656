package di

import (
	"context"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"go.uber.org/dig"

	"github.com/Zuggy22/Alke-wallet/db"
	"github.com/Zuggy22/Alke-wallet/domain"
	"github.com/Zuggy22/Alke-wallet/facade"
	"github.com/Zuggy22/Alke-wallet/menu"
	"github.com/Zuggy22/Alke-wallet/repo"
	"github.com/Zuggy22/Alke-wallet/service"
	"github.com/Zuggy22/Alke-wallet/state"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

type App struct {
	Menu menu.Menu
	Deps menu.Deps
	Pool *pgxpool.Pool // nil en modo memoria
}

// backend agrupa la cuenta activa, los repositorios y el servicio
// transaccional según el modo de almacenamiento.
type backend struct {
	pool     *pgxpool.Pool
	account  domain.Account
	accounts facade.AccountRepo
	txs      facade.TransactionRepo
	contacts facade.ContactRepo
	svc      *service.WalletService
}

// newBackend — memoria por defecto; Postgres si DATABASE_URL está
// definida.
func newBackend(ctx context.Context, f domain.Factory) (*backend, error) {
	if os.Getenv("DATABASE_URL") == "" {
		return memoryBackend(f)
	}
	return pgBackend(ctx, f)
}

func memoryBackend(f domain.Factory) (*backend, error) {
	acc, err := f.NewAccount(repo.SeedAccountName, repo.SeedBalance())
	if err != nil {
		return nil, err
	}
	logger.Info().Str("account", string(acc.ID)).Msg("memory backend ready")
	return &backend{
		account:  acc,
		accounts: repo.NewMemAccountRepo(acc),
		txs:      repo.NewMemTransactionRepo(repo.SeedTransactions()),
		contacts: repo.NewMemContactRepo(repo.SeedContacts()),
	}, nil
}

func pgBackend(ctx context.Context, f domain.Factory) (*backend, error) {
	pool, err := db.Connect(ctx)
	if err != nil {
		return nil, err
	}
	if err := db.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	accounts := repo.NewPgAccountRepo(pool)
	txs := repo.NewPgTransactionRepo(pool)
	contacts := repo.NewPgContactRepo(pool)

	acc, err := ensureAccount(ctx, accounts, f)
	if err != nil {
		pool.Close()
		return nil, err
	}
	if err := seedPg(ctx, txs, contacts); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info().Str("account", string(acc.ID)).Msg("postgres backend ready")
	return &backend{
		pool:     pool,
		account:  acc,
		accounts: accounts,
		txs:      txs,
		contacts: repo.NewCachedContactRepo(contacts),
		svc:      service.NewWalletService(pool),
	}, nil
}

func Build(ctx context.Context) (*App, error) {
	c := dig.New()
	if err := c.Provide(func() context.Context { return ctx }); err != nil {
		return nil, err
	}
	if err := c.Provide(func() domain.Factory { return domain.Factory{} }); err != nil {
		return nil, err
	}
	if err := c.Provide(state.NewFileStore); err != nil {
		return nil, err
	}
	if err := c.Provide(newBackend); err != nil {
		return nil, err
	}
	if err := c.Provide(func(b *backend) service.TransactionLister { return b.txs }); err != nil {
		return nil, err
	}
	if err := c.Provide(service.NewAnalyticsService); err != nil {
		return nil, err
	}

	if err := c.Provide(func() string {
		if p := os.Getenv("MENU_PATH"); p != "" {
			return p
		}
		return "menu/menu.json"
	}); err != nil {
		return nil, err
	}
	if err := c.Provide(menu.Load); err != nil {
		return nil, err
	}

	var app *App
	err := c.Invoke(func(
		ctx context.Context,
		f domain.Factory,
		st *state.FileStore,
		b *backend,
		ana *service.AnalyticsService,
		m menu.Menu,
	) error {
		session := &facade.SessionFacade{Store: st, AccountID: b.account.ID}
		if u, ok := session.Restore(); ok {
			logger.Info().Str("user", u.Email).Msg("session restored")
		}

		money := facade.MoneyFacade{
			F:         f,
			Accounts:  b.accounts,
			Txs:       b.txs,
			AccountID: b.account.ID,
			Svc:       b.svc,
		}
		contact := facade.ContactFacade{F: f, Contacts: b.contacts}
		analytics := facade.AnalyticsFacade{Svc: ana}

		app = &App{
			Menu: m,
			Pool: b.pool,
			Deps: menu.Deps{
				Pool:      b.pool,
				Factory:   f,
				AccountID: b.account.ID,
				Accounts:  b.accounts,
				TxRepo:    b.txs,
				Contacts:  b.contacts,
				Money:     money,
				Contact:   contact,
				Session:   session,
				Ana:       analytics,
			},
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return app, nil
}
