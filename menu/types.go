package menu

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Zuggy22/Alke-wallet/domain"
	"github.com/Zuggy22/Alke-wallet/facade"
)

type Item struct {
	Key   string `json:"key"`   // clave de la acción
	Field string `json:"field"` // texto a mostrar
}

type Menu struct {
	Items []Item
}

type Deps struct {
	Pool      *pgxpool.Pool // nil en modo memoria
	Factory   domain.Factory
	AccountID domain.AccountID

	Accounts facade.AccountRepo
	TxRepo   facade.TransactionRepo
	Contacts facade.ContactRepo

	Money   facade.MoneyFacade
	Contact facade.ContactFacade
	Session *facade.SessionFacade
	Ana     facade.AnalyticsFacade
}
