package files

import (
	"context"
	"os"

	"github.com/Zuggy22/Alke-wallet/domain"
)

type TransactionSource interface {
	List(ctx context.Context) ([]domain.Transaction, error)
}

type Encoder interface {
	EncodeRows(rows []Row) ([]byte, error)
}

// ExportTransactions vuelca el historial completo (la más reciente
// primero, como en pantalla) con la estrategia de codificación dada.
func ExportTransactions(
	ctx context.Context,
	txs TransactionSource,
	path string,
	enc Encoder,
) error {
	list, err := txs.List(ctx)
	if err != nil {
		return err
	}

	rows := make([]Row, 0, len(list))
	for _, t := range list {
		rows = append(rows, Row{
			Type:        string(t.Type),
			Amount:      t.Amount,
			Date:        t.Date,
			Description: t.Description,
		})
	}

	b, err := enc.EncodeRows(rows)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
