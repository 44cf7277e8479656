package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Zuggy22/Alke-wallet/domain"
)

type TransactionLister interface {
	ListByDate(ctx context.Context, from, to time.Time) ([]domain.Transaction, error)
}

type AnalyticsService struct {
	txs TransactionLister
}

func NewAnalyticsService(txs TransactionLister) *AnalyticsService {
	return &AnalyticsService{txs: txs}
}

type Summary struct {
	Income  decimal.Decimal // depósitos + pagos recibidos
	Expense decimal.Decimal // envíos, en valor absoluto
	Net     decimal.Decimal // Income - Expense
}

// SummaryByPeriod — agrega el historial del período [from; to].
func (s *AnalyticsService) SummaryByPeriod(ctx context.Context, from, to time.Time) (Summary, error) {
	list, err := s.txs.ListByDate(ctx, from, to)
	if err != nil {
		return Summary{}, err
	}
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range list {
		amt := t.Amount.Round(2)
		if t.IsIncoming() {
			income = income.Add(amt)
		} else {
			expense = expense.Add(amt.Abs())
		}
	}
	return Summary{
		Income:  income.Round(2),
		Expense: expense.Round(2),
		Net:     income.Sub(expense).Round(2),
	}, nil
}
