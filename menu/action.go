package menu

import (
	"context"
	"fmt"
	"time"

	"github.com/Zuggy22/Alke-wallet/domain"
	"github.com/Zuggy22/Alke-wallet/facade"
	"github.com/Zuggy22/Alke-wallet/files"
)

const (
	recentCount   = 3 // vista "recientes" del menú principal
	frequentCount = 4 // vista "frecuentes" de contactos
)

func actionBalance(ctx context.Context, d *Deps) error {
	bal, err := d.Money.Balance(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Saldo actual: $%s\n", bal.StringFixed(2))
	return nil
}

func actionSendMoney(ctx context.Context, d *Deps) error {
	// autocompletar de destinatario sobre la lista de contactos
	query := readLine("Buscar contacto (nombre o correo): ")
	matches, err := d.Contact.Find(ctx, query)
	if err != nil {
		return err
	}
	recipient := query
	if len(matches) > 0 {
		fmt.Println("Coincidencias:")
		for i, c := range matches {
			fmt.Printf("%d) %s <%s>\n", i+1, c.Name, c.Email)
		}
		if n, err := ReadIndex(len(matches)); err == nil {
			recipient = matches[n-1].Name
		}
	}

	amount, err := readAmount("Monto a enviar: ")
	if err != nil {
		return err
	}
	note := readLine("Nota (opcional): ")

	notice, err := d.Money.SendMoney(ctx, facade.SendInput{
		Recipient: recipient,
		Note:      note,
		Amount:    amount,
	})
	if err != nil {
		return err
	}
	showMessage(notice.Title, notice.Message)
	return actionBalance(ctx, d)
}

func actionDeposit(ctx context.Context, d *Deps) error {
	amount, err := readAmount("Monto a depositar: ")
	if err != nil {
		return err
	}
	method := readPaymentMethod()

	notice, err := d.Money.Deposit(ctx, facade.DepositInput{
		Method: method,
		Amount: amount,
	})
	if err != nil {
		return err
	}
	showMessage(notice.Title, notice.Message)
	return actionBalance(ctx, d)
}

func actionRecentTransactions(ctx context.Context, d *Deps) error {
	list, err := d.TxRepo.Recent(ctx, recentCount)
	if err != nil {
		return err
	}
	fmt.Println("=== Transacciones recientes ===")
	renderTransactions(list)
	return nil
}

func actionAllTransactions(ctx context.Context, d *Deps) error {
	list, err := d.TxRepo.List(ctx)
	if err != nil {
		return err
	}
	fmt.Println("=== Todas las transacciones ===")
	renderTransactions(list)
	return nil
}

func actionSearchContacts(ctx context.Context, d *Deps) error {
	query := readLine("Buscar (mínimo 2 caracteres): ")
	list, err := d.Contact.Find(ctx, query)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("Sin resultados")
		return nil
	}
	renderContacts(list)
	return nil
}

func actionAddContact(ctx context.Context, d *Deps) error {
	name := readLine("Nombre: ")
	email := readLine("Correo: ")

	notice, err := d.Contact.Add(ctx, name, email)
	if err != nil {
		return err
	}
	showMessage(notice.Title, notice.Message)
	return nil
}

func actionFrequentContacts(ctx context.Context, d *Deps) error {
	list, err := d.Contact.Frequent(ctx, frequentCount)
	if err != nil {
		return err
	}
	fmt.Println("=== Contactos frecuentes ===")
	renderContacts(list)
	return nil
}

func actionSummary30d(ctx context.Context, d *Deps) error {
	from, to := time.Now().AddDate(0, 0, -30), time.Now()
	sum, err := d.Ana.Summary(ctx, from, to)
	if err != nil {
		return err
	}
	fmt.Printf("Ingresos: $%s | Egresos: $%s | Neto: $%s\n",
		sum.Income.StringFixed(2), sum.Expense.StringFixed(2), sum.Net.StringFixed(2))
	return nil
}

func actionLogout(ctx context.Context, d *Deps) error {
	if err := d.Session.Logout(); err != nil {
		return err
	}
	fmt.Println("Sesión cerrada.")
	return nil
}

func actionExportCSV(ctx context.Context, d *Deps) error {
	path := readLine("Archivo destino (ej. historial.csv): ")
	if err := files.ExportTransactionsCSV(ctx, d.TxRepo, path); err != nil {
		return err
	}
	fmt.Println("Exportado a", path)
	return nil
}

func actionImportCSV(ctx context.Context, d *Deps) error {
	path := readLine("Archivo origen (ej. historial.csv): ")
	rows, err := files.ImportTransactionsCSV(path)
	if err != nil {
		return err
	}
	return replayRows(ctx, d, rows)
}

func actionExportJSON(ctx context.Context, d *Deps) error {
	path := readLine("Archivo destino (ej. historial.json): ")
	if err := files.ExportTransactionsJSON(ctx, d.TxRepo, path); err != nil {
		return err
	}
	fmt.Println("Exportado a", path)
	return nil
}

func actionImportJSON(ctx context.Context, d *Deps) error {
	path := readLine("Archivo origen (ej. historial.json): ")
	rows, err := files.ImportTransactionsJSON(path)
	if err != nil {
		return err
	}
	return replayRows(ctx, d, rows)
}

func actionExportYAML(ctx context.Context, d *Deps) error {
	path := readLine("Archivo destino (ej. historial.yaml): ")
	if err := files.ExportTransactionsYAML(ctx, d.TxRepo, path); err != nil {
		return err
	}
	fmt.Println("Exportado a", path)
	return nil
}

func actionImportYAML(ctx context.Context, d *Deps) error {
	path := readLine("Archivo origen (ej. historial.yaml): ")
	rows, err := files.ImportTransactionsYAML(path)
	if err != nil {
		return err
	}
	return replayRows(ctx, d, rows)
}

// replayRows convierte las filas importadas en transacciones de
// dominio y las reaplica de la más antigua a la más reciente, para
// que el historial quede con la más reciente primero. Las filas que
// el dominio rechaza (tipo desconocido, sobregiro) se saltan.
func replayRows(ctx context.Context, d *Deps, rows []files.Row) error {
	applied, skipped := 0, 0
	for i := len(rows) - 1; i >= 0; i-- {
		r := rows[i]
		t, err := d.Factory.NewTransaction(domain.TransactionType(r.Type), r.Amount, r.Description, r.Date)
		if err != nil {
			skipped++
			continue
		}
		if err := d.Money.Apply(ctx, t); err != nil {
			skipped++
			continue
		}
		applied++
	}
	fmt.Printf("Importadas: %d | Omitidas: %d\n", applied, skipped)
	return nil
}
