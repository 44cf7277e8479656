package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Zuggy22/Alke-wallet/domain"
)

func TestSaveLoadClear(t *testing.T) {
	s := NewFileStoreAt(t.TempDir())

	u := domain.User{Email: "test@alkewallet.com", Name: "Usuario Demo"}
	if err := s.Save(u, "acc-1"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	sess, ok, err := s.Load()
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if sess.User != u {
		t.Errorf("user=%+v", sess.User)
	}
	if sess.AccountID != "acc-1" {
		t.Errorf("account=%q", sess.AccountID)
	}
	if sess.SessionID == "" {
		t.Error("session id empty")
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok, err := s.Load(); err != nil || ok {
		t.Fatalf("after Clear: ok=%v err=%v", ok, err)
	}
}

func TestLoadMissingIsLoggedOut(t *testing.T) {
	s := NewFileStoreAt(t.TempDir())
	// que no exista marcador jamás es un error
	if _, ok, err := s.Load(); err != nil || ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear on missing: %v", err)
	}
}

func TestLoadCorruptIsLoggedOut(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, fileName), []byte("{nope"), 0644); err != nil {
		t.Fatal(err)
	}
	s := NewFileStoreAt(dir)
	if _, ok, err := s.Load(); err != nil || ok {
		t.Fatalf("corrupt marker: ok=%v err=%v", ok, err)
	}
}

func TestSessionIDRotates(t *testing.T) {
	s := NewFileStoreAt(t.TempDir())
	u := domain.User{Email: "test@alkewallet.com", Name: "Usuario Demo"}

	if err := s.Save(u, "acc-1"); err != nil {
		t.Fatal(err)
	}
	first, _, _ := s.Load()
	if err := s.Save(u, "acc-1"); err != nil {
		t.Fatal(err)
	}
	second, _, _ := s.Load()
	if first.SessionID == second.SessionID {
		t.Error("session id should rotate on each login")
	}
}
