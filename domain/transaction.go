package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrZeroTransactionAmt     = errors.New("transaction amount is zero")
	ErrAmountSignMismatch     = errors.New("amount sign does not match transaction type")
	ErrZeroDate               = errors.New("transaction date is zero")
	ErrNoRecipient            = errors.New("recipient is required")
	ErrNoPaymentMethod        = errors.New("payment method is required")
)

// Transaction — registro inmutable de un movimiento del saldo.
// Amount lleva el signo: negativo para envíos, positivo para
// depósitos y pagos recibidos.
type Transaction struct {
	ID          TransactionID   `json:"id"          yaml:"id"`
	Type        TransactionType `json:"type"        yaml:"type"`
	Amount      decimal.Decimal `json:"amount"      yaml:"amount"`
	Description string          `json:"description" yaml:"description"`
	Date        time.Time       `json:"date"        yaml:"date"`
}

func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrInvalidTransactionType
	}
	if t.Amount.IsZero() {
		return ErrZeroTransactionAmt
	}
	if t.Type == TxSent && !t.Amount.IsNegative() {
		return ErrAmountSignMismatch
	}
	if t.Type != TxSent && t.Amount.IsNegative() {
		return ErrAmountSignMismatch
	}
	if t.Date.IsZero() {
		return ErrZeroDate
	}
	return nil
}

func (t Transaction) IsIncoming() bool { return t.Type.Incoming() }

func (t Transaction) Sign() int {
	if t.Amount.IsNegative() {
		return -1
	}
	return 1
}

// DateOnly recorta la parte horaria; las transacciones llevan
// únicamente fecha de calendario (ISO 8601, sin hora).
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ComposeTransferDesc arma la descripción de un envío:
// "Transferencia a <destinatario>" más la nota opcional.
func ComposeTransferDesc(recipient, note string) string {
	desc := "Transferencia a " + strings.TrimSpace(recipient)
	if note = strings.TrimSpace(note); note != "" {
		desc += ": " + note
	}
	return desc
}

// ComposeDepositDesc arma la descripción de un depósito según el método.
func ComposeDepositDesc(method PaymentMethod) string {
	return "Depósito vía " + method.Label()
}
