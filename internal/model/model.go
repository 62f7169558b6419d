// Package model contém os registros de domínio do Ponto de Valor.
// Todos os campos monetários usam decimal.Decimal; a serialização JSON segue
// exatamente o layout persistido (camelCase, valores numéricos sem aspas).
package model

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// O layout persistido usa números JSON, não strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// NovoID gera um id único com prefixo de entidade ("piece-…", "sale-…", "order-…").
// Os prefixos são mantidos em inglês por compatibilidade com dados já persistidos.
func NovoID(prefixo string) string {
	return fmt.Sprintf("%s-%s", prefixo, uuid.NewString())
}
