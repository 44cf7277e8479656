package facade

import (
	"github.com/Zuggy22/Alke-wallet/domain"
)

// Credenciales demo; no hay más usuarios ni hashing en esta demo.
const (
	demoEmail    = "test@alkewallet.com"
	demoPassword = "123456"
	demoName     = "Usuario Demo"
)

// SessionFacade — máquina de dos estados: LoggedOut y LoggedIn(user).
// El estado se espeja en el SessionStore para sobrevivir reinicios.
type SessionFacade struct {
	Store     SessionStore
	AccountID domain.AccountID

	user *domain.User
}

// Restore carga el marcador persistido al arrancar. Su ausencia (o un
// marcador ilegible) significa sesión cerrada, nunca un error.
func (f *SessionFacade) Restore() (domain.User, bool) {
	sess, ok, err := f.Store.Load()
	if err != nil || !ok {
		return domain.User{}, false
	}
	u := sess.User
	f.user = &u
	return u, true
}

// Login — transición LoggedOut → LoggedIn cuando las credenciales
// coinciden con el único par reconocido; si no, se queda en LoggedOut
// y nada se persiste.
func (f *SessionFacade) Login(email, password string) (Notice, error) {
	if email != demoEmail || password != demoPassword {
		return Notice{}, domain.ErrInvalidCredentials
	}
	u := domain.User{Email: email, Name: demoName}
	if err := f.Store.Save(u, f.AccountID); err != nil {
		return Notice{}, err
	}
	f.user = &u
	return Notice{Title: "Éxito", Message: "Bienvenido, " + u.Name + "."}, nil
}

// Logout — incondicional: limpia memoria y borra el marcador.
func (f *SessionFacade) Logout() error {
	f.user = nil
	return f.Store.Clear()
}

func (f *SessionFacade) Current() (domain.User, bool) {
	if f.user == nil {
		return domain.User{}, false
	}
	return *f.user, true
}

func (f *SessionFacade) LoggedIn() bool { return f.user != nil }
