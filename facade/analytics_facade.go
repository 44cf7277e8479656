package facade

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Zuggy22/Alke-wallet/service"
)

type AnalyticsFacade struct {
	Svc *service.AnalyticsService
}

type FlowSummary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

func (a AnalyticsFacade) Summary(ctx context.Context, from, to time.Time) (FlowSummary, error) {
	s, err := a.Svc.SummaryByPeriod(ctx, from, to)
	if err != nil {
		return FlowSummary{}, err
	}
	return FlowSummary{
		Income:  s.Income,
		Expense: s.Expense,
		Net:     s.Net,
	}, nil
}
