package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/Zuggy22/Alke-wallet/domain"
)

// Run — bucle principal. Sin sesión iniciada no hay menú: primero la
// pantalla de login (el marcador persistido la salta).
func Run(ctx context.Context, m Menu, d *Deps) {
	deps := d
	cmds := BuildCommands(*deps)
	for {
		if !deps.Session.LoggedIn() {
			if !loginGate(deps) {
				fmt.Println("¡Hasta pronto!")
				return
			}
		}

		Draw(m)
		idx, err := ReadIndex(len(m.Items))
		if err != nil {
			fmt.Println("Entrada inválida")
			WaitEnter()
			fmt.Println()
			continue
		}

		item := m.Items[idx-1]
		key := item.Key

		if key == "exit" || key == "" {
			fmt.Println("¡Hasta pronto!")
			return
		}

		cmd, ok := cmds[key]
		if !ok {
			cmd = Command{
				Key:  key,
				Name: item.Field,
				Run: func(ctx context.Context) error {
					return Execute(ctx, key, deps)
				},
			}
		}

		if err := WithTiming(cmd).Run(ctx); err != nil {
			showError(err)
		}

		WaitEnter()
		fmt.Println()
	}
}

// loginGate pide credenciales hasta que la sesión inicie; un correo
// vacío abandona la aplicación.
func loginGate(d *Deps) bool {
	fmt.Println("==== Iniciar sesión ====")
	for {
		email := readLine("Correo (vacío para salir): ")
		if email == "" {
			return false
		}
		password := readLine("Contraseña: ")

		notice, err := d.Session.Login(email, password)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidCredentials) {
				fmt.Println("Correo o contraseña incorrectos.")
				continue
			}
			fmt.Println("Error:", err)
			continue
		}
		fmt.Println(notice.Message)
		fmt.Println()
		return true
	}
}
