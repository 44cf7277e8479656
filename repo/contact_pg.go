package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Zuggy22/Alke-wallet/domain"
)

type PgContactRepo struct{ db *pgxpool.Pool }

func NewPgContactRepo(db *pgxpool.Pool) *PgContactRepo { return &PgContactRepo{db: db} }

func (r *PgContactRepo) Append(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	if err := c.Validate(); err != nil {
		return domain.Contact{}, err
	}
	err := r.db.QueryRow(ctx,
		`INSERT INTO contacts(name,email) VALUES($1,$2) RETURNING id`,
		c.Name, c.Email,
	).Scan(&c.ID)
	if err != nil {
		return domain.Contact{}, err
	}
	return c, nil
}

func (r *PgContactRepo) List(ctx context.Context) ([]domain.Contact, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, email FROM contacts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Contact
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
