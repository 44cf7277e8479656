package domain

import "testing"

func TestContactMatches(t *testing.T) {
	c := Contact{ID: 1, Name: "María López", Email: "maria@example.com"}

	cases := []struct {
		query string
		want  bool
	}{
		{"mar", true},     // prefijo del nombre y del correo
		{"MAR", true},     // sin distinguir mayúsculas
		{"ópez", true},    // subcadena con acento
		{"example", true}, // coincide por correo
		{"juan", false},
	}
	for _, tc := range cases {
		if got := c.Matches(tc.query); got != tc.want {
			t.Errorf("Matches(%q)=%v want %v", tc.query, got, tc.want)
		}
	}
}

func TestContactEmailKey(t *testing.T) {
	a := Contact{Email: "JUAN@EXAMPLE.COM"}
	b := Contact{Email: "  juan@example.com "}
	if a.EmailKey() != b.EmailKey() {
		t.Fatalf("keys differ: %q vs %q", a.EmailKey(), b.EmailKey())
	}
}
