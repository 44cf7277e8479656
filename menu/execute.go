package menu

import (
	"context"
	"fmt"
)

func Execute(ctx context.Context, key string, d *Deps) error {
	switch key {
	case "balance":
		if err := actionBalance(ctx, d); err != nil {
			return err
		}
	case "send_money":
		if err := actionSendMoney(ctx, d); err != nil {
			return err
		}
	case "deposit":
		if err := actionDeposit(ctx, d); err != nil {
			return err
		}
	case "recent_tx":
		if err := actionRecentTransactions(ctx, d); err != nil {
			return err
		}
	case "all_tx":
		if err := actionAllTransactions(ctx, d); err != nil {
			return err
		}
	case "search_contacts":
		if err := actionSearchContacts(ctx, d); err != nil {
			return err
		}
	case "add_contact":
		if err := actionAddContact(ctx, d); err != nil {
			return err
		}
	case "frequent_contacts":
		if err := actionFrequentContacts(ctx, d); err != nil {
			return err
		}
	case "summary_30d":
		if err := actionSummary30d(ctx, d); err != nil {
			return err
		}
	case "export_tx_csv":
		if err := actionExportCSV(ctx, d); err != nil {
			return err
		}
	case "import_tx_csv":
		if err := actionImportCSV(ctx, d); err != nil {
			return err
		}
	case "export_tx_json":
		if err := actionExportJSON(ctx, d); err != nil {
			return err
		}
	case "import_tx_json":
		if err := actionImportJSON(ctx, d); err != nil {
			return err
		}
	case "export_tx_yaml":
		if err := actionExportYAML(ctx, d); err != nil {
			return err
		}
	case "import_tx_yaml":
		if err := actionImportYAML(ctx, d); err != nil {
			return err
		}
	case "logout":
		if err := actionLogout(ctx, d); err != nil {
			return err
		}
	case "exit":
		return nil
	default:
		fmt.Println("Comando desconocido:", key)
	}
	return nil
}
