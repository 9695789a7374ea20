package readstore

import (
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
)

const dialectPostgres = "postgres"

func dialect() goqu.DialectWrapper {
	return goqu.Dialect(dialectPostgres)
}
