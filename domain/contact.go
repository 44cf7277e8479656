package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyContactName  = errors.New("contact name is empty")
	ErrEmptyContactEmail = errors.New("contact email is empty")
	ErrDuplicateContact  = errors.New("contact with this email already exists")
)

// Contact — destinatario posible de un envío. El correo es la clave
// de unicidad, comparada sin distinguir mayúsculas.
type Contact struct {
	ID    ContactID `json:"id"    yaml:"id"`
	Name  string    `json:"name"  yaml:"name"`
	Email string    `json:"email" yaml:"email"`
}

func (c Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyContactName
	}
	if strings.TrimSpace(c.Email) == "" {
		return ErrEmptyContactEmail
	}
	return nil
}

// EmailKey — clave de deduplicación: correo plegado a minúsculas.
func (c Contact) EmailKey() string {
	return strings.ToLower(strings.TrimSpace(c.Email))
}

// Matches — coincidencia por subcadena, sin distinguir mayúsculas,
// sobre nombre o correo.
func (c Contact) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Email), q)
}
