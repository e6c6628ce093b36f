package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-manager-api/internal/config"
	"github.com/vfg2006/store-manager-api/internal/domain"
	"github.com/vfg2006/store-manager-api/internal/state"
	"github.com/vfg2006/store-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/store-manager-api/internal/usecases/insighting"
)

type stubReader struct {
	snapshot state.Snapshot
}

func (s stubReader) Snapshot() state.Snapshot { return s.snapshot }

// stubAuthenticator aceita "dono" como token do dono 1 e "intruso" como dono 2
type stubAuthenticator struct {
	authenticating.Authenticator
}

func (stubAuthenticator) ValidateToken(token string) (*domain.Claims, error) {
	switch token {
	case "dono":
		return &domain.Claims{OwnerID: 1}, nil
	case "intruso":
		return &domain.Claims{OwnerID: 2}, nil
	}
	return nil, errors.New("token inválido")
}

func TestServerPipeline(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	store := stubReader{snapshot: state.Snapshot{LoadedAt: time.Now()}}
	cfg := &config.Config{Server: config.Server{Host: "localhost", Port: "0", AllowedOrigins: []string{"http://localhost:5173"}}}

	srv, err := New(cfg, Services{
		Store:         store,
		Authenticator: stubAuthenticator{},
		Insighter:     insighting.NewService(store, loc),
	}, func() int { return 1 }, loc)
	require.NoError(t, err)

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
	}{
		{
			name:       "Healthcheck é público",
			method:     http.MethodGet,
			path:       "/healthcheck",
			wantStatus: http.StatusOK,
		},
		{
			name:       "Rota protegida sem token retorna 401",
			method:     http.MethodGet,
			path:       "/v1/dashboard",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Token inválido retorna 401",
			method:     http.MethodGet,
			path:       "/v1/dashboard",
			token:      "qualquer",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Token de outro dono retorna 403",
			method:     http.MethodGet,
			path:       "/v1/dashboard",
			token:      "intruso",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "Dono autenticado acessa o dashboard",
			method:     http.MethodGet,
			path:       "/v1/dashboard",
			token:      "dono",
			wantStatus: http.StatusOK,
		},
		{
			name:       "Preflight CORS não exige token",
			method:     http.MethodOptions,
			path:       "/v1/sales",
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil).WithContext(context.Background())
			req.Header.Set("Origin", "http://localhost:5173")
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			srv.Handler().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestNewRequiresStoreAndAuthenticator(t *testing.T) {
	_, err := New(&config.Config{}, Services{}, func() int { return 1 }, time.UTC)
	assert.Error(t, err)
}
