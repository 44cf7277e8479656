package repo

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Zuggy22/Alke-wallet/domain"
)

func TestMemTransactionRepoPrepend(t *testing.T) {
	ctx := context.Background()
	r := NewMemTransactionRepo(SeedTransactions())

	tx := domain.Transaction{
		Type:        domain.TxDeposit,
		Amount:      decimal.NewFromInt(200),
		Description: "Depósito vía Tarjeta de Crédito",
		Date:        domain.DateOnly(time.Now()),
	}
	created, err := r.Prepend(ctx, tx)
	if err != nil {
		t.Fatalf("Prepend: %v", err)
	}
	// el contador arranca tras los 4 datos de ejemplo
	if created.ID != 5 {
		t.Fatalf("id=%d want 5", created.ID)
	}

	list, err := r.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 5 {
		t.Fatalf("len=%d want 5", len(list))
	}
	// la más reciente primero
	if list[0].ID != created.ID {
		t.Fatalf("list[0].ID=%d want %d", list[0].ID, created.ID)
	}
}

func TestMemTransactionRepoPrependInvalid(t *testing.T) {
	ctx := context.Background()
	r := NewMemTransactionRepo(nil)

	bad := domain.Transaction{Type: "refund", Amount: decimal.NewFromInt(1), Date: time.Now()}
	if _, err := r.Prepend(ctx, bad); err == nil {
		t.Fatal("want validation error")
	}
	list, _ := r.List(ctx)
	if len(list) != 0 {
		t.Fatalf("list mutated on invalid insert: len=%d", len(list))
	}
}

func TestMemTransactionRepoRecent(t *testing.T) {
	ctx := context.Background()
	r := NewMemTransactionRepo(SeedTransactions())

	top, err := r.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("len=%d want 3", len(top))
	}
	if top[0].ID != 1 {
		t.Fatalf("top[0].ID=%d want 1", top[0].ID)
	}

	all, err := r.Recent(ctx, 100)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("len=%d want 4", len(all))
	}
}

func TestMemTransactionRepoListByDate(t *testing.T) {
	ctx := context.Background()
	r := NewMemTransactionRepo(SeedTransactions())

	from := time.Date(2023, 6, 10, 0, 0, 0, 0, time.Local)
	to := time.Date(2023, 6, 14, 23, 59, 59, 0, time.Local)
	list, err := r.ListByDate(ctx, from, to)
	if err != nil {
		t.Fatalf("ListByDate: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len=%d want 2 (14-jun y 10-jun)", len(list))
	}
}

func TestMemContactRepoAppend(t *testing.T) {
	ctx := context.Background()
	r := NewMemContactRepo(SeedContacts())

	created, err := r.Append(ctx, domain.Contact{Name: "Pedro", Email: "pedro@example.com"})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if created.ID != 5 {
		t.Fatalf("id=%d want 5", created.ID)
	}

	list, _ := r.List(ctx)
	if len(list) != 5 {
		t.Fatalf("len=%d want 5", len(list))
	}
	// los contactos van al final, al revés que las transacciones
	if list[len(list)-1].ID != created.ID {
		t.Fatalf("new contact not appended at the end")
	}
}

func TestMemAccountRepo(t *testing.T) {
	ctx := context.Background()
	acc := domain.Account{ID: "acc-1", Name: SeedAccountName, Balance: SeedBalance()}
	r := NewMemAccountRepo(acc)

	got, err := r.Get(ctx, "acc-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.Balance.Equal(SeedBalance()) {
		t.Fatalf("balance=%s", got.Balance)
	}

	got.Balance = decimal.NewFromInt(10)
	if err := r.Update(ctx, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	again, _ := r.Get(ctx, "acc-1")
	if !again.Balance.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("update not applied: %s", again.Balance)
	}

	if _, err := r.Get(ctx, "acc-2"); err == nil {
		t.Fatal("want error for unknown account")
	}
}
