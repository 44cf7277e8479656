package facade_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Zuggy22/Alke-wallet/domain"
	"github.com/Zuggy22/Alke-wallet/facade"
	"github.com/Zuggy22/Alke-wallet/repo"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal %q: %v", s, err)
	}
	return d
}

func newMoneyFacade(t *testing.T) facade.MoneyFacade {
	t.Helper()
	var f domain.Factory
	acc, err := f.NewAccount(repo.SeedAccountName, repo.SeedBalance())
	if err != nil {
		t.Fatalf("NewAccount: %v", err)
	}
	return facade.MoneyFacade{
		F:         f,
		Accounts:  repo.NewMemAccountRepo(acc),
		Txs:       repo.NewMemTransactionRepo(repo.SeedTransactions()),
		AccountID: acc.ID,
	}
}

func TestSendMoney(t *testing.T) {
	ctx := context.Background()
	m := newMoneyFacade(t)

	// saldo=1250.75, enviar 50 a María López
	notice, err := m.SendMoney(ctx, facade.SendInput{
		Recipient: "María López",
		Amount:    dec(t, "50"),
	})
	if err != nil {
		t.Fatalf("SendMoney: %v", err)
	}
	if notice.Title != "Éxito" {
		t.Errorf("title=%q", notice.Title)
	}
	if notice.Message != "Has enviado $50.00 a María López correctamente." {
		t.Errorf("message=%q", notice.Message)
	}

	bal, _ := m.Balance(ctx)
	if !bal.Equal(dec(t, "1200.75")) {
		t.Fatalf("balance=%s want 1200.75", bal)
	}

	list, _ := m.Txs.List(ctx)
	top := list[0]
	if top.Type != domain.TxSent {
		t.Errorf("type=%s want sent", top.Type)
	}
	if !top.Amount.Equal(dec(t, "-50")) {
		t.Errorf("amount=%s want -50", top.Amount)
	}
	if top.Description != "Transferencia a María López" {
		t.Errorf("description=%q", top.Description)
	}
}

func TestSendMoneyWithNote(t *testing.T) {
	ctx := context.Background()
	m := newMoneyFacade(t)

	if _, err := m.SendMoney(ctx, facade.SendInput{
		Recipient: "Juan Pérez",
		Note:      "almuerzo",
		Amount:    dec(t, "12.30"),
	}); err != nil {
		t.Fatalf("SendMoney: %v", err)
	}
	list, _ := m.Txs.List(ctx)
	if list[0].Description != "Transferencia a Juan Pérez: almuerzo" {
		t.Errorf("description=%q", list[0].Description)
	}
}

func TestSendMoneyInsufficientFunds(t *testing.T) {
	ctx := context.Background()
	m := newMoneyFacade(t)

	before, _ := m.Txs.List(ctx)

	_, err := m.SendMoney(ctx, facade.SendInput{
		Recipient: "María López",
		Amount:    dec(t, "9999.99"),
	})
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("want ErrInsufficientFunds, got %v", err)
	}

	// nada mutó: ni saldo ni historial
	bal, _ := m.Balance(ctx)
	if !bal.Equal(dec(t, "1250.75")) {
		t.Errorf("balance mutated: %s", bal)
	}
	after, _ := m.Txs.List(ctx)
	if len(after) != len(before) {
		t.Errorf("history mutated: %d -> %d", len(before), len(after))
	}
}

func TestSendMoneyNoRecipient(t *testing.T) {
	ctx := context.Background()
	m := newMoneyFacade(t)

	_, err := m.SendMoney(ctx, facade.SendInput{Recipient: "  ", Amount: dec(t, "10")})
	if !errors.Is(err, domain.ErrNoRecipient) {
		t.Fatalf("want ErrNoRecipient, got %v", err)
	}
	bal, _ := m.Balance(ctx)
	if !bal.Equal(dec(t, "1250.75")) {
		t.Errorf("balance mutated: %s", bal)
	}
}

func TestDeposit(t *testing.T) {
	ctx := context.Background()
	m := newMoneyFacade(t)

	// dejar el saldo en 1200.75 y depositar 200
	if _, err := m.SendMoney(ctx, facade.SendInput{Recipient: "María López", Amount: dec(t, "50")}); err != nil {
		t.Fatalf("SendMoney: %v", err)
	}

	notice, err := m.Deposit(ctx, facade.DepositInput{Method: domain.PayCredit, Amount: dec(t, "200")})
	if err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	if notice.Message != "Has depositado $200.00 correctamente." {
		t.Errorf("message=%q", notice.Message)
	}

	bal, _ := m.Balance(ctx)
	if !bal.Equal(dec(t, "1400.75")) {
		t.Fatalf("balance=%s want 1400.75", bal)
	}

	list, _ := m.Txs.List(ctx)
	top := list[0]
	if top.Type != domain.TxDeposit {
		t.Errorf("type=%s want deposit", top.Type)
	}
	if !top.Amount.Equal(dec(t, "200")) {
		t.Errorf("amount=%s want +200", top.Amount)
	}
	if !strings.Contains(top.Description, "Tarjeta de Crédito") {
		t.Errorf("description=%q", top.Description)
	}
}

func TestDepositBadMethod(t *testing.T) {
	ctx := context.Background()
	m := newMoneyFacade(t)

	for _, method := range []domain.PaymentMethod{"", "cash", "CREDIT"} {
		_, err := m.Deposit(ctx, facade.DepositInput{Method: method, Amount: dec(t, "10")})
		if !errors.Is(err, domain.ErrNoPaymentMethod) {
			t.Errorf("method %q: want ErrNoPaymentMethod, got %v", method, err)
		}
	}
	bal, _ := m.Balance(ctx)
	if !bal.Equal(dec(t, "1250.75")) {
		t.Errorf("balance mutated: %s", bal)
	}
}

func TestHistoryOrdering(t *testing.T) {
	// tras N operaciones, la primera de la lista es la N-ésima
	ctx := context.Background()
	m := newMoneyFacade(t)

	for i := 1; i <= 5; i++ {
		note := fmt.Sprintf("op-%d", i)
		if _, err := m.SendMoney(ctx, facade.SendInput{
			Recipient: "María López",
			Note:      note,
			Amount:    dec(t, "1"),
		}); err != nil {
			t.Fatalf("SendMoney %d: %v", i, err)
		}
		list, _ := m.Txs.List(ctx)
		if !strings.HasSuffix(list[0].Description, note) {
			t.Fatalf("list[0]=%q want suffix %q", list[0].Description, note)
		}
	}
}
