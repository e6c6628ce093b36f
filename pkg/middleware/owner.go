package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-manager-api/pkg/apiErrors"
)

// OwnerOnly restringe a rota ao dono da instalação. Tokens emitidos para outro
// dono (banco recriado, por exemplo) são recusados.
func OwnerOnly(ownerID func() int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if claims.OwnerID != ownerID() {
				logrus.Warningf("Acesso negado para dono ID=%d", claims.OwnerID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
