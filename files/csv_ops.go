package files

import (
	"context"
	"encoding/csv"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Zuggy22/Alke-wallet/domain"
)

// ExportTransactionsCSV — vuelca el historial en CSV.
// Formato: type,amount,date,description
func ExportTransactionsCSV(ctx context.Context, txs TransactionSource, path string) error {
	list, err := txs.List(ctx)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"type", "amount", "date", "description"}); err != nil {
		return err
	}

	for _, t := range list {
		rec := []string{
			string(t.Type),
			t.Amount.StringFixed(2),
			t.Date.Format("2006-01-02"),
			t.Description,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}

// ImportTransactionsCSV — lee un CSV al formato universal Row.
// La conversión Row → transacciones de dominio vive en menu.
func ImportTransactionsCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // las filas malformadas se saltan, no abortan
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) <= 1 {
		return nil, nil // solo el header
	}

	out := make([]Row, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		rec := rows[i]
		if len(rec) < 4 {
			continue
		}
		if !domain.TransactionType(rec[0]).Valid() {
			continue
		}
		amt, err := decimal.NewFromString(rec[1])
		if err != nil {
			continue
		}
		dt, err := time.Parse("2006-01-02", rec[2])
		if err != nil {
			continue
		}
		out = append(out, Row{
			Type:        rec[0],
			Amount:      amt.Round(2),
			Date:        dt,
			Description: rec[3],
		})
	}
	return out, nil
}
