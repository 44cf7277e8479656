package facade

// Notice — payload de confirmación que la capa de presentación
// muestra tal cual (título + mensaje).
type Notice struct {
	Title   string
	Message string
}
