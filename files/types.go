package files

import (
	"time"

	"github.com/shopspring/decimal"
)

// Row — registro universal del historial para importar/exportar.
type Row struct {
	Type        string          `json:"type" yaml:"type"`     // sent / received / deposit
	Amount      decimal.Decimal `json:"amount" yaml:"amount"` // con signo, 2 decimales
	Date        time.Time       `json:"date" yaml:"date"`     // YYYY-MM-DD
	Description string          `json:"description" yaml:"description"`
}
