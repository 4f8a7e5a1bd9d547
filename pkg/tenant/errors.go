package tenant

import "errors"

// Erros comuns relacionados à resolução de tenant
var (
	// ErrTenantNotFound ocorre quando o slug informado não corresponde a nenhum tenant
	ErrTenantNotFound = errors.New("tenant não encontrado")

	// ErrTenantMismatch ocorre quando o slug informado diverge do tenant do token
	ErrTenantMismatch = errors.New("tenant do token não corresponde ao slug informado")
)
