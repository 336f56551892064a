package utils

// SQLFilter monta um filtro LIKE case-insensitive que funciona tanto no
// Postgres quanto no SQLite.
func SQLFilter(column, value string) (string, []interface{}) {
	return "LOWER(" + column + ") LIKE LOWER(?)", []interface{}{"%" + value + "%"}
}
