package facade

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Zuggy22/Alke-wallet/domain"
)

// minQueryLen — umbral del autocompletar: con menos de 2 caracteres
// no se busca. Política de la UI original, conservada a propósito.
const minQueryLen = 2

type ContactFacade struct {
	F        domain.Factory
	Contacts ContactRepo
}

// Find — coincidencia por subcadena sobre nombre o correo, sin
// distinguir mayúsculas. Conserva el orden de alta; sin ranking y
// sin efectos secundarios.
func (f ContactFacade) Find(ctx context.Context, query string) ([]domain.Contact, error) {
	if utf8.RuneCountInString(query) < minQueryLen {
		return nil, nil
	}
	all, err := f.Contacts.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Contact
	for _, c := range all {
		if c.Matches(query) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Add — alta de contacto; el correo es único sin distinguir
// mayúsculas y una colisión rechaza el alta sin tocar la lista.
func (f ContactFacade) Add(ctx context.Context, name, email string) (Notice, error) {
	c, err := f.F.NewContact(name, email)
	if err != nil {
		return Notice{}, err
	}

	all, err := f.Contacts.List(ctx)
	if err != nil {
		return Notice{}, err
	}
	for _, existing := range all {
		if strings.EqualFold(existing.EmailKey(), c.EmailKey()) {
			return Notice{}, domain.ErrDuplicateContact
		}
	}

	created, err := f.Contacts.Append(ctx, c)
	if err != nil {
		return Notice{}, err
	}
	return Notice{
		Title:   "Éxito",
		Message: fmt.Sprintf("Contacto %q agregado correctamente.", created.Name),
	}, nil
}

// Frequent — los primeros n contactos, para la vista de frecuentes.
func (f ContactFacade) Frequent(ctx context.Context, n int) ([]domain.Contact, error) {
	all, err := f.Contacts.List(ctx)
	if err != nil {
		return nil, err
	}
	if n > len(all) {
		n = len(all)
	}
	return all[:n], nil
}
