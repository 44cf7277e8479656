package facade

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Zuggy22/Alke-wallet/domain"
	"github.com/Zuggy22/Alke-wallet/service"
)

// Entradas de los escenarios de dinero.
type SendInput struct {
	Recipient string
	Note      string
	Amount    decimal.Decimal
}

type DepositInput struct {
	Method domain.PaymentMethod
	Amount decimal.Decimal
}

// MoneyFacade — enviar dinero y depositar. Con Svc presente (modo
// Postgres) el movimiento se aplica en una transacción de base de
// datos; si no, contra los repositorios en memoria.
type MoneyFacade struct {
	F         domain.Factory
	Accounts  AccountRepo
	Txs       TransactionRepo
	AccountID domain.AccountID
	Svc       *service.WalletService
}

func (f MoneyFacade) SendMoney(ctx context.Context, in SendInput) (Notice, error) {
	t, err := f.F.NewTransfer(in.Recipient, in.Note, in.Amount, time.Now())
	if err != nil {
		return Notice{}, err
	}
	if err := f.Apply(ctx, t); err != nil {
		return Notice{}, err
	}
	return Notice{
		Title: "Éxito",
		Message: fmt.Sprintf("Has enviado $%s a %s correctamente.",
			t.Amount.Abs().StringFixed(2), strings.TrimSpace(in.Recipient)),
	}, nil
}

func (f MoneyFacade) Deposit(ctx context.Context, in DepositInput) (Notice, error) {
	t, err := f.F.NewDeposit(in.Method, in.Amount, time.Now())
	if err != nil {
		return Notice{}, err
	}
	if err := f.Apply(ctx, t); err != nil {
		return Notice{}, err
	}
	return Notice{
		Title:   "Éxito",
		Message: fmt.Sprintf("Has depositado $%s correctamente.", t.Amount.StringFixed(2)),
	}, nil
}

// Apply ajusta el saldo y antepone la transacción al historial.
// También lo usa la reimportación de historiales.
func (f MoneyFacade) Apply(ctx context.Context, t domain.Transaction) error {
	if f.Svc != nil {
		_, err := f.Svc.Apply(ctx, f.AccountID, t)
		return err
	}

	acc, err := f.Accounts.Get(ctx, f.AccountID)
	if err != nil {
		return err
	}
	if t.IsIncoming() {
		if err := acc.Credit(t.Amount); err != nil {
			return err
		}
	} else {
		if err := acc.Debit(t.Amount.Abs()); err != nil {
			return err
		}
	}
	if _, err := f.Txs.Prepend(ctx, t); err != nil {
		return err
	}
	return f.Accounts.Update(ctx, acc)
}

// Balance — saldo actual, para re-render tras cada operación.
func (f MoneyFacade) Balance(ctx context.Context) (decimal.Decimal, error) {
	acc, err := f.Accounts.Get(ctx, f.AccountID)
	if err != nil {
		return decimal.Zero, err
	}
	return acc.Balance, nil
}
