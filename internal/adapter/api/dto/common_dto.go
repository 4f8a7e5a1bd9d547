package dto

// ErrorResponse é o envelope de erro da API. Message é o texto mostrado
// diretamente na interface da academia; Details carrega o contexto técnico
// opcional.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse é o envelope genérico das operações sem corpo próprio
// (exclusões, reenvios de lembrete etc.)
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSuccessResponse monta o envelope de sucesso
func NewSuccessResponse(message string, data interface{}) SuccessResponse {
	return SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse monta o envelope de erro
func NewErrorResponse(code int, message, details string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// PaginationParams são os parâmetros de paginação das listagens (sócios,
// produtos, recebimentos)
type PaginationParams struct {
	Page     int
	PageSize int
}

// GetPagination normaliza os parâmetros de paginação vindos da query string
func GetPagination(page, pageSize int) PaginationParams {
	if page <= 0 {
		page = 1
	}

	if pageSize <= 0 {
		pageSize = 10
	} else if pageSize > 100 {
		pageSize = 100 // Teto por página
	}

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
	}
}

// Offset retorna o deslocamento para a consulta paginada
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}
