package facade_test

import (
	"errors"
	"testing"

	"github.com/Zuggy22/Alke-wallet/domain"
	"github.com/Zuggy22/Alke-wallet/facade"
	"github.com/Zuggy22/Alke-wallet/state"
)

func newSessionFacade(t *testing.T) *facade.SessionFacade {
	t.Helper()
	return &facade.SessionFacade{
		Store:     state.NewFileStoreAt(t.TempDir()),
		AccountID: "acc-1",
	}
}

func TestLoginSuccess(t *testing.T) {
	sf := newSessionFacade(t)

	if sf.LoggedIn() {
		t.Fatal("should start logged out")
	}
	notice, err := sf.Login("test@alkewallet.com", "123456")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if notice.Title != "Éxito" {
		t.Errorf("title=%q", notice.Title)
	}
	u, ok := sf.Current()
	if !ok || u.Name != "Usuario Demo" || u.Email != "test@alkewallet.com" {
		t.Fatalf("current=%+v ok=%v", u, ok)
	}
}

func TestLoginRejected(t *testing.T) {
	sf := newSessionFacade(t)

	cases := []struct{ email, password string }{
		{"test@alkewallet.com", "wrong"},
		{"otro@alkewallet.com", "123456"},
		{"", ""},
		{"TEST@ALKEWALLET.COM", "123456"}, // el correo se compara literal
	}
	for _, tc := range cases {
		if _, err := sf.Login(tc.email, tc.password); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("Login(%q,%q): want ErrInvalidCredentials, got %v", tc.email, tc.password, err)
		}
		if sf.LoggedIn() {
			t.Errorf("Login(%q,%q): should stay logged out", tc.email, tc.password)
		}
	}

	// nada quedó persistido tras los rechazos
	if _, ok := (&facade.SessionFacade{Store: sf.Store}).Restore(); ok {
		t.Error("rejected login persisted a session")
	}
}

func TestSessionSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	st := state.NewFileStoreAt(dir)

	first := &facade.SessionFacade{Store: st, AccountID: "acc-1"}
	if _, err := first.Login("test@alkewallet.com", "123456"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	// "reinicio": otra fachada sobre el mismo marcador
	second := &facade.SessionFacade{Store: state.NewFileStoreAt(dir), AccountID: "acc-1"}
	u, ok := second.Restore()
	if !ok {
		t.Fatal("session not restored")
	}
	if u.Email != "test@alkewallet.com" {
		t.Errorf("restored email=%q", u.Email)
	}
}

func TestLogout(t *testing.T) {
	sf := newSessionFacade(t)

	if _, err := sf.Login("test@alkewallet.com", "123456"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := sf.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if sf.LoggedIn() {
		t.Fatal("still logged in")
	}
	if _, ok := sf.Restore(); ok {
		t.Fatal("marker not cleared")
	}

	// logout es incondicional: repetirlo no falla
	if err := sf.Logout(); err != nil {
		t.Fatalf("second Logout: %v", err)
	}
}
