package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Zuggy22/Alke-wallet/domain"
)

const fileName = ".session.json"

// Session — marcador durable de sesión iniciada. Sobrevive al
// reinicio del proceso; si el archivo falta o está corrupto se trata
// como sesión cerrada, nunca como error.
type Session struct {
	SessionID string      `json:"session_id"`
	User      domain.User `json:"user"`
	AccountID string      `json:"current_account_id"`
}

// FileStore guarda la sesión como JSON en dir (por defecto el
// directorio de trabajo).
type FileStore struct {
	dir string
}

func NewFileStore() *FileStore { return &FileStore{} }

// NewFileStoreAt — para pruebas y rutas explícitas.
func NewFileStoreAt(dir string) *FileStore { return &FileStore{dir: dir} }

func (s *FileStore) path() string {
	dir := s.dir
	if dir == "" {
		wd, _ := os.Getwd()
		dir = wd
	}
	return filepath.Join(dir, fileName)
}

// Save persiste al usuario con un id de sesión nuevo.
func (s *FileStore) Save(u domain.User, acc domain.AccountID) error {
	sess := Session{
		SessionID: uuid.NewString(),
		User:      u,
		AccountID: string(acc),
	}
	b, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(), b, 0644)
}

// Load devuelve la sesión persistida y ok=true si existe y es legible.
func (s *FileStore) Load() (Session, bool, error) {
	b, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Session{}, false, nil
		}
		return Session{}, false, err
	}
	var sess Session
	if err := json.Unmarshal(b, &sess); err != nil {
		// marcador corrupto == sesión cerrada
		return Session{}, false, nil
	}
	if sess.User.Email == "" {
		return Session{}, false, nil
	}
	return sess, true, nil
}

// Clear borra el marcador; que no exista no es un error.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
