package domain

type AccountID string
type TransactionID int64
type ContactID int64

type TransactionType string

const (
	TxSent     TransactionType = "sent"
	TxReceived TransactionType = "received"
	TxDeposit  TransactionType = "deposit"
)

func (t TransactionType) Valid() bool {
	return t == TxSent || t == TxReceived || t == TxDeposit
}

// Incoming — received y deposit suman al saldo; sent resta.
func (t TransactionType) Incoming() bool { return t != TxSent }

type PaymentMethod string

const (
	PayCredit   PaymentMethod = "credit"
	PayDebit    PaymentMethod = "debit"
	PayTransfer PaymentMethod = "transfer"
)

func (m PaymentMethod) Valid() bool {
	return m == PayCredit || m == PayDebit || m == PayTransfer
}

// Label — nombre visible del método de pago.
func (m PaymentMethod) Label() string {
	switch m {
	case PayCredit:
		return "Tarjeta de Crédito"
	case PayDebit:
		return "Tarjeta de Débito"
	case PayTransfer:
		return "Transferencia Bancaria"
	default:
		return "Método desconocido"
	}
}
