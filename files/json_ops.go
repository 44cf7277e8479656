package files

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type txRowJSON struct {
	Type        string `json:"type"`        // sent/received/deposit
	Amount      string `json:"amount"`      // "-50.00"
	Date        string `json:"date"`        // "YYYY-MM-DD"
	Description string `json:"description"` // opcional
}

type JSONEncoder struct{}

func (JSONEncoder) EncodeRows(rows []Row) ([]byte, error) {
	out := make([]txRowJSON, 0, len(rows))
	for _, r := range rows {
		out = append(out, txRowJSON{
			Type:        r.Type,
			Amount:      r.Amount.StringFixed(2),
			Date:        r.Date.Format("2006-01-02"),
			Description: r.Description,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}

func ExportTransactionsJSON(ctx context.Context, txs TransactionSource, path string) error {
	return ExportTransactions(ctx, txs, path, JSONEncoder{})
}

type JSONImporter struct{}

func (JSONImporter) parse(data []byte) ([]Row, error) {
	var in []txRowJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}
	out := make([]Row, 0, len(in))
	for _, r := range in {
		amt, err := decimal.NewFromString(r.Amount)
		if err != nil {
			continue
		}
		dt, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			continue
		}
		out = append(out, Row{
			Type:        r.Type,
			Amount:      amt.Round(2),
			Date:        dt,
			Description: r.Description,
		})
	}
	return out, nil
}

func ImportTransactionsJSON(path string) ([]Row, error) {
	base := BaseImporter{parser: JSONImporter{}}
	return base.Import(path)
}
