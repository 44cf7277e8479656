package files

import (
	"os"
)

// Template Method para los importadores.
type Importer interface {
	parse(data []byte) ([]Row, error)
}

// BaseImporter — esqueleto común del proceso de importación.
type BaseImporter struct {
	parser Importer
}

// Import — pasos: leer archivo → parser concreto → []Row.
// Las filas malformadas se descartan en el parser, no aquí.
func (b BaseImporter) Import(path string) ([]Row, error) {
	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rows, err := b.parser.parse(bin)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
