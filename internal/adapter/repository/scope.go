package repository

import (
	"context"
	"strconv"

	"github.com/hugohenrick/academia-backoffice/pkg/tenant"
)

// Ponto único de aplicação do escopo de tenant sobre o SQL. Todos os
// repositórios de entidades com tenant constroem suas consultas através
// destes helpers; incluir uma nova entidade no isolamento não exige nenhuma
// mudança na camada de escopo.

// tenantCondition gera o predicado de tenant para o escopo do contexto.
// argn é o índice do próximo placeholder ($n). Três caminhos:
//   - escopo instalado:   "tenant_id = $n"    (isolamento por tenant)
//   - sem escopo:         "tenant_id IS NULL" (visibilidade de dados legados)
//   - superadmin sem slug: "TRUE"             (isento de isolamento)
func tenantCondition(ctx context.Context, argn int) (string, []any) {
	if id, ok := tenant.TenantID(ctx); ok {
		return "tenant_id = $" + strconv.Itoa(argn), []any{id}
	}
	if tenant.IsSuper(ctx) {
		return "TRUE", nil
	}
	return "tenant_id IS NULL", nil
}

// stampTenant preenche o tenant_id de uma nova linha com o escopo do
// contexto, somente quando a linha ainda não carrega um
func stampTenant(ctx context.Context, current *string) *string {
	if current != nil && *current != "" {
		return current
	}
	if id, ok := tenant.TenantID(ctx); ok {
		return &id
	}
	return nil
}
