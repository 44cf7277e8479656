package repo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Zuggy22/Alke-wallet/domain"
)

// PgTransactionRepo — historial en Postgres. El id es BIGSERIAL: el
// contador nunca reutiliza valores, así que el orden por id descendente
// es el orden de inserción (la más reciente primero).
type PgTransactionRepo struct{ db *pgxpool.Pool }

func NewPgTransactionRepo(db *pgxpool.Pool) *PgTransactionRepo {
	return &PgTransactionRepo{db: db}
}

func (r *PgTransactionRepo) Prepend(ctx context.Context, t domain.Transaction) (domain.Transaction, error) {
	if err := t.Validate(); err != nil {
		return domain.Transaction{}, err
	}
	err := r.db.QueryRow(ctx,
		`INSERT INTO transactions(type,amount,"date",description)
		 VALUES($1,$2,$3,$4) RETURNING id`,
		string(t.Type), t.Amount.StringFixed(2), t.Date, t.Description,
	).Scan(&t.ID)
	if err != nil {
		return domain.Transaction{}, err
	}
	return t, nil
}

func (r *PgTransactionRepo) List(ctx context.Context) ([]domain.Transaction, error) {
	return r.query(ctx,
		`SELECT id,type,amount,"date",description FROM transactions ORDER BY id DESC`)
}

func (r *PgTransactionRepo) Recent(ctx context.Context, n int) ([]domain.Transaction, error) {
	return r.query(ctx,
		`SELECT id,type,amount,"date",description FROM transactions ORDER BY id DESC LIMIT $1`, n)
}

func (r *PgTransactionRepo) ListByDate(ctx context.Context, from, to time.Time) ([]domain.Transaction, error) {
	return r.query(ctx,
		`SELECT id,type,amount,"date",description
		   FROM transactions
		  WHERE "date" BETWEEN $1 AND $2
		  ORDER BY id DESC`, from, to)
}

func (r *PgTransactionRepo) query(ctx context.Context, sql string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		var typ, amt string
		if err := rows.Scan(&t.ID, &typ, &amt, &t.Date, &t.Description); err != nil {
			return nil, err
		}
		dec, err := decimal.NewFromString(amt)
		if err != nil {
			return nil, err
		}
		t.Type = domain.TransactionType(typ)
		t.Amount = dec
		out = append(out, t)
	}
	return out, rows.Err()
}
