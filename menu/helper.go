package menu

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Zuggy22/Alke-wallet/domain"
)

var stdin = bufio.NewReader(os.Stdin)

func readLine(prompt string) string {
	fmt.Print(prompt)
	s, _ := stdin.ReadString('\n')
	return strings.TrimSpace(s)
}

func readAmount(prompt string) (decimal.Decimal, error) {
	for {
		raw := readLine(prompt)
		raw = strings.ReplaceAll(raw, ",", ".")
		amt, err := decimal.NewFromString(raw)
		if err != nil {
			fmt.Println("Monto inválido. Ejemplo: 1500.00")
			continue
		}
		return amt, nil
	}
}

// showMessage — el reemplazo del modal: título + mensaje en consola.
func showMessage(title, msg string) {
	fmt.Printf("[%s] %s\n", title, msg)
}

// showError traduce los errores de dominio al aviso que ve el
// usuario. Ninguno es fatal: la operación ya abortó sin mutar nada.
func showError(err error) {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		showMessage("Error", "Saldo insuficiente para realizar esta transacción.")
	case errors.Is(err, domain.ErrNoRecipient):
		showMessage("Error", "Debe seleccionar o escribir un contacto válido.")
	case errors.Is(err, domain.ErrNoPaymentMethod):
		showMessage("Error", "Debe seleccionar un método de pago.")
	case errors.Is(err, domain.ErrNonPositiveAmt):
		showMessage("Error", "El monto debe ser mayor que cero.")
	case errors.Is(err, domain.ErrDuplicateContact):
		showMessage("Aviso", "Este contacto ya existe en tu lista.")
	case errors.Is(err, domain.ErrEmptyContactName), errors.Is(err, domain.ErrEmptyContactEmail):
		showMessage("Error", "Nombre y correo del contacto son obligatorios.")
	default:
		showMessage("Error", err.Error())
	}
}

func renderTransactions(list []domain.Transaction) {
	if len(list) == 0 {
		fmt.Println("No hay transacciones")
		return
	}
	for _, t := range list {
		sign := "-"
		if t.Sign() > 0 {
			sign = "+"
		}
		fmt.Printf("%s | %s$%s | %s\n",
			t.Date.Format("2006-01-02"), sign, t.Amount.Abs().StringFixed(2), t.Description)
	}
}

func renderContacts(list []domain.Contact) {
	if len(list) == 0 {
		fmt.Println("No hay contactos")
		return
	}
	for _, c := range list {
		fmt.Printf("%s <%s>\n", c.Name, c.Email)
	}
}

// readPaymentMethod ofrece los tres métodos reconocidos; una opción
// fuera de rango se devuelve vacía y la valida el dominio.
func readPaymentMethod() domain.PaymentMethod {
	fmt.Println("Método de pago:")
	methods := []domain.PaymentMethod{domain.PayCredit, domain.PayDebit, domain.PayTransfer}
	for i, m := range methods {
		fmt.Printf("%d) %s\n", i+1, m.Label())
	}
	n, err := ReadIndex(len(methods))
	if err != nil {
		return ""
	}
	return methods[n-1]
}
