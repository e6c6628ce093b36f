package handler

import (
	"net/http"

	"github.com/vfg2006/store-manager-api/internal/domain"
	"github.com/vfg2006/store-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/store-manager-api/pkg/apiErrors"
	"github.com/vfg2006/store-manager-api/pkg/log"
	"github.com/vfg2006/store-manager-api/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		token, err := service.LoginOwner(r.Context(), req.Email, req.Password)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("auth: login recusado")
			apiErrors.WriteServiceError(w, err, "Erro interno ao realizar login")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

// GetMe retorna as informações do dono logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		owner, err := service.GetOwnerProfile(r.Context(), claims.OwnerID)
		if err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao obter dados do dono")
			return
		}

		writeJSON(w, http.StatusOK, owner)
	}
}

// ChangePassword permite que o dono altere a própria senha
func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.ChangePasswordRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := service.ChangePassword(r.Context(), claims.OwnerID, req); err != nil {
			apiErrors.WriteServiceError(w, err, "Erro ao alterar senha")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Senha alterada com sucesso",
		})
	}
}
