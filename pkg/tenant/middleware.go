package tenant

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SlugHeader é o cabeçalho enviado pelo cliente com o slug do subdomínio
const SlugHeader = "x-tenant-slug"

// RoleSuperAdmin é o papel isento de isolamento entre tenants
const RoleSuperAdmin = "superadmin"

// TokenClaims são as informações do token relevantes para resolução de tenant
type TokenClaims struct {
	TenantID string
	Role     string
}

// TokenParser valida um token e extrai as claims de tenant.
// Tokens inválidos ou expirados devem retornar erro; a resolução os
// trata como ausentes (a autenticação é responsabilidade de outro middleware).
type TokenParser interface {
	ParseTenantClaims(token string) (*TokenClaims, error)
}

// SlugResolver resolve um slug de subdomínio para o ID do tenant.
// A comparação é case-insensitive; slug desconhecido retorna ErrTenantNotFound.
type SlugResolver interface {
	ResolveSlug(ctx context.Context, slug string) (string, error)
}

// errorBody espelha o envelope de erro da API. Declarado aqui para que este
// pacote permaneça uma folha do grafo de imports: a camada de dto depende dos
// serviços, que por sua vez dependem do escopo de tenant.
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Resolver cria o middleware que estabelece o escopo de tenant da requisição.
//
// Algoritmo, executado uma vez por requisição antes das rotas:
//  1. token válido com papel superadmin marca a requisição como "super"
//  2. token válido com tenant_id define o escopo tentativo
//  3. cabeçalho x-tenant-slug, quando presente, é resolvido contra os tenants;
//     slug desconhecido encerra com 404 e divergência com o tenant do token
//     encerra com 403 (exceto para superadmin)
//  4. sem claim e sem slug a requisição segue sem escopo (dados legados);
//     nunca é rejeitada apenas por falta de contexto de tenant
func Resolver(parser TokenParser, resolver SlugResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		tokenTenantID := ""
		super := false

		if claims := parseBearer(c, parser); claims != nil {
			if claims.Role == RoleSuperAdmin {
				super = true
				ctx = WithSuper(ctx)
			} else if claims.TenantID != "" {
				tokenTenantID = claims.TenantID
			}
		}

		scopeID := tokenTenantID

		if slug := strings.TrimSpace(c.GetHeader(SlugHeader)); slug != "" {
			resolvedID, err := resolver.ResolveSlug(ctx, slug)
			if err != nil {
				if errors.Is(err, ErrTenantNotFound) {
					c.AbortWithStatusJSON(http.StatusNotFound, errorBody{
						Code:    http.StatusNotFound,
						Message: "academia não encontrada",
						Details: "nenhum tenant corresponde ao slug '" + slug + "'",
					})
					return
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody{
					Code:    http.StatusInternalServerError,
					Message: "erro ao resolver tenant",
					Details: err.Error(),
				})
				return
			}

			if tokenTenantID != "" && tokenTenantID != resolvedID && !super {
				c.AbortWithStatusJSON(http.StatusForbidden, errorBody{
					Code:    http.StatusForbidden,
					Message: "acesso negado",
					Details: ErrTenantMismatch.Error(),
				})
				return
			}

			scopeID = resolvedID
		}

		if scopeID != "" {
			ctx = WithScope(ctx, scopeID)
			c.Set("tenant_id", scopeID)
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// parseBearer extrai as claims do cabeçalho Authorization, se houver.
// Qualquer token malformado, inválido ou expirado é tratado como ausente.
func parseBearer(c *gin.Context, parser TokenParser) *TokenClaims {
	if parser == nil {
		return nil
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil
	}

	claims, err := parser.ParseTenantClaims(parts[1])
	if err != nil {
		return nil
	}
	return claims
}
