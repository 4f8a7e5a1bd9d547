package settings

import (
	"context"
)

// Repository define a interface para a configuração de divisão de lucros
type Repository interface {
	// Get retorna a configuração do escopo atual
	Get(ctx context.Context) (*Settings, error)

	// Save cria ou substitui a configuração do escopo atual
	Save(ctx context.Context, s *Settings) error
}
