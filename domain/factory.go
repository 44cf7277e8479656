package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Factory struct{}

func (f Factory) NewAccount(name string, opening decimal.Decimal) (Account, error) {
	a := Account{
		ID:      AccountID(uuid.NewString()),
		Name:    strings.TrimSpace(name),
		Balance: opening.Round(2),
	}
	return a, a.Validate()
}

// NewTransfer — envío de dinero: monto > 0, destinatario obligatorio.
// El ID lo asigna el repositorio al insertar.
func (f Factory) NewTransfer(recipient, note string, amount decimal.Decimal, when time.Time) (Transaction, error) {
	if strings.TrimSpace(recipient) == "" {
		return Transaction{}, ErrNoRecipient
	}
	amt, ok := normalizeMoney(amount)
	if !ok {
		return Transaction{}, ErrNonPositiveAmt
	}
	t := Transaction{
		Type:        TxSent,
		Amount:      amt.Neg(),
		Description: ComposeTransferDesc(recipient, note),
		Date:        DateOnly(when),
	}
	return t, t.Validate()
}

// NewDeposit — depósito: monto > 0, método reconocido.
func (f Factory) NewDeposit(method PaymentMethod, amount decimal.Decimal, when time.Time) (Transaction, error) {
	if !method.Valid() {
		return Transaction{}, ErrNoPaymentMethod
	}
	amt, ok := normalizeMoney(amount)
	if !ok {
		return Transaction{}, ErrNonPositiveAmt
	}
	t := Transaction{
		Type:        TxDeposit,
		Amount:      amt,
		Description: ComposeDepositDesc(method),
		Date:        DateOnly(when),
	}
	return t, t.Validate()
}

// NewTransaction — constructor genérico; lo usa la reimportación de
// historiales, donde el signo ya viene resuelto en el archivo.
func (f Factory) NewTransaction(t TransactionType, amount decimal.Decimal, desc string, when time.Time) (Transaction, error) {
	tx := Transaction{
		Type:        t,
		Amount:      amount.Round(2),
		Description: strings.TrimSpace(desc),
		Date:        DateOnly(when),
	}
	return tx, tx.Validate()
}

func (f Factory) NewContact(name, email string) (Contact, error) {
	c := Contact{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
	}
	return c, c.Validate()
}
