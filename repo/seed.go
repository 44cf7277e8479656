package repo

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Zuggy22/Alke-wallet/domain"
)

// Datos de ejemplo de la aplicación.

const SeedAccountName = "Cuenta Principal"

// SeedBalance — saldo inicial de la cuenta demo.
func SeedBalance() decimal.Decimal {
	return decimal.RequireFromString("1250.75")
}

// SeedTransactions — historial de ejemplo, la más reciente primero.
func SeedTransactions() []domain.Transaction {
	return []domain.Transaction{
		{ID: 1, Type: domain.TxSent, Amount: decimal.RequireFromString("-50.00"), Description: "Transferencia a María López", Date: date(2023, 6, 15)},
		{ID: 2, Type: domain.TxReceived, Amount: decimal.RequireFromString("120.00"), Description: "Pago de Juan Pérez", Date: date(2023, 6, 14)},
		{ID: 3, Type: domain.TxDeposit, Amount: decimal.RequireFromString("200.00"), Description: "Depósito inicial", Date: date(2023, 6, 10)},
		{ID: 4, Type: domain.TxSent, Amount: decimal.RequireFromString("-35.50"), Description: "Pago de servicios", Date: date(2023, 6, 8)},
	}
}

// SeedContacts — contactos de ejemplo, en orden de alta.
func SeedContacts() []domain.Contact {
	return []domain.Contact{
		{ID: 1, Name: "María López", Email: "maria@example.com"},
		{ID: 2, Name: "Juan Pérez", Email: "juan@example.com"},
		{ID: 3, Name: "Carlos Rodríguez", Email: "carlos@example.com"},
		{ID: 4, Name: "Ana García", Email: "ana@example.com"},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
