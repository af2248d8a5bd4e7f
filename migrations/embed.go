// Пакет migrations — goose-миграции схемы, встроенные в бинарник.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
