package service

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Zuggy22/Alke-wallet/domain"
)

// WalletService aplica una transacción contra Postgres dentro de una
// transacción de base de datos, con la fila de la cuenta bloqueada.
type WalletService struct {
	db TxStarter
}

func NewWalletService(db TxStarter) *WalletService {
	return &WalletService{db: db}
}

// Apply valida el movimiento, ajusta el saldo y lo inserta en el
// historial; todo o nada.
func (s *WalletService) Apply(
	ctx context.Context,
	accountID domain.AccountID,
	t domain.Transaction,
) (domain.Transaction, error) {
	if err := t.Validate(); err != nil {
		return domain.Transaction{}, err
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.Transaction{}, err
	}
	defer tx.Rollback(ctx)

	// saldo actual con la fila bloqueada
	var balStr string
	if err := tx.QueryRow(ctx, `SELECT balance FROM accounts WHERE id=$1 FOR UPDATE`, accountID).Scan(&balStr); err != nil {
		return domain.Transaction{}, err
	}
	curBal, err := decimal.NewFromString(balStr)
	if err != nil {
		return domain.Transaction{}, err
	}

	// la lógica de dominio manda: sin sobregiro
	acc := domain.Account{ID: accountID, Balance: curBal}
	if t.IsIncoming() {
		if err := acc.Credit(t.Amount); err != nil {
			return domain.Transaction{}, err
		}
	} else {
		if err := acc.Debit(t.Amount.Abs()); err != nil {
			return domain.Transaction{}, err
		}
	}

	if err := tx.QueryRow(ctx,
		`INSERT INTO transactions(type,amount,"date",description)
		 VALUES($1,$2,$3,$4) RETURNING id`,
		string(t.Type), t.Amount.StringFixed(2), t.Date, t.Description,
	).Scan(&t.ID); err != nil {
		return domain.Transaction{}, err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE accounts SET balance=$2 WHERE id=$1`,
		accountID, acc.Balance.StringFixed(2),
	); err != nil {
		return domain.Transaction{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Transaction{}, err
	}
	return t, nil
}
