package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid email or password")

// User — identidad de la sesión actual; su ausencia significa
// sesión cerrada.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
