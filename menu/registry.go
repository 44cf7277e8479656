package menu

import "context"

func BuildCommands(d Deps) map[string]Command {
	mk := func(key, name string) Command {
		return Command{
			Key:  key,
			Name: name,
			Run:  func(ctx context.Context) error { return Execute(ctx, key, &d) },
		}
	}

	return map[string]Command{
		"balance":           mk("balance", "Ver saldo"),
		"send_money":        mk("send_money", "Enviar dinero"),
		"deposit":           mk("deposit", "Depositar fondos"),
		"recent_tx":         mk("recent_tx", "Transacciones recientes"),
		"all_tx":            mk("all_tx", "Todas las transacciones"),
		"search_contacts":   mk("search_contacts", "Buscar contactos"),
		"add_contact":       mk("add_contact", "Agregar contacto"),
		"frequent_contacts": mk("frequent_contacts", "Contactos frecuentes"),
		"summary_30d":       mk("summary_30d", "Resumen de 30 días"),
		"export_tx_csv":     mk("export_tx_csv", "Exportar historial (CSV)"),
		"import_tx_csv":     mk("import_tx_csv", "Importar historial (CSV)"),
		"export_tx_json":    mk("export_tx_json", "Exportar historial (JSON)"),
		"import_tx_json":    mk("import_tx_json", "Importar historial (JSON)"),
		"export_tx_yaml":    mk("export_tx_yaml", "Exportar historial (YAML)"),
		"import_tx_yaml":    mk("import_tx_yaml", "Importar historial (YAML)"),
		"logout":            mk("logout", "Cerrar sesión"),
		"exit":              mk("exit", "Salir"),
	}
}
