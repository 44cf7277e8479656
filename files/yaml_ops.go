package files

import (
	"bytes"
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type txRowYAML struct {
	Type        string `yaml:"type"`
	Amount      string `yaml:"amount"`
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
}

// YAMLEncoder — estrategia de codificación en YAML.
type YAMLEncoder struct{}

func (YAMLEncoder) EncodeRows(rows []Row) ([]byte, error) {
	out := make([]txRowYAML, 0, len(rows))
	for _, r := range rows {
		out = append(out, txRowYAML{
			Type:        r.Type,
			Amount:      r.Amount.StringFixed(2),
			Date:        r.Date.Format("2006-01-02"),
			Description: r.Description,
		})
	}
	return yaml.Marshal(out)
}

func ExportTransactionsYAML(ctx context.Context, txs TransactionSource, path string) error {
	return ExportTransactions(ctx, txs, path, YAMLEncoder{})
}

type YAMLImporter struct{}

func (YAMLImporter) parse(data []byte) ([]Row, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var in []txRowYAML
	if err := dec.Decode(&in); err != nil {
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

func ImportTransactionsYAML(path string) ([]Row, error) {
	base := BaseImporter{parser: YAMLImporter{}}
	return base.Import(path)
}
