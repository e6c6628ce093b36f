package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-manager-api/infrastructure/repository"
	"github.com/vfg2006/store-manager-api/internal/config"
	"github.com/vfg2006/store-manager-api/internal/domain"
	"github.com/vfg2006/store-manager-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 6
	defaultTokenTTL   = 24 * time.Hour
)

type Authenticator interface {
	LoginOwner(ctx context.Context, email, password string) (string, error)
	GetOwnerProfile(ctx context.Context, ownerID int) (*domain.Owner, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	ChangePassword(ctx context.Context, ownerID int, req domain.ChangePasswordRequest) error
	EnsureOwner(ctx context.Context) (*domain.Owner, error)
}

type Service struct {
	ownerRepo repository.OwnerRepository
	cfg       *config.Config
	now       func() time.Time
}

func NewService(ownerRepo repository.OwnerRepository, cfg *config.Config) Authenticator {
	return &Service{
		ownerRepo: ownerRepo,
		cfg:       cfg,
		now:       time.Now,
	}
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) LoginOwner(ctx context.Context, email, password string) (string, error) {
	// Validação de entrada
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	owner, err := s.ownerRepo.GetOwnerByEmail(ctx, handleEmail(email))
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar dono no banco de dados")
	}

	// Dono inexistente e senha errada respondem igual
	if owner == nil {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Email ou senha incorretos")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(owner.PasswordHash), []byte(password)); err != nil {
		return "", NewOwnerAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, owner.ID, "Email ou senha incorretos")
	}

	token, err := s.generateJWT(owner)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) GetOwnerProfile(ctx context.Context, ownerID int) (*domain.Owner, error) {
	owner, err := s.ownerRepo.GetOwnerByID(ctx, ownerID)
	if err != nil {
		logrus.Error(err)
		return nil, NewOwnerAuthError(err, apiErrors.ErrDatabaseOperation, ownerID, "")
	}

	if owner == nil {
		return nil, NewOwnerAuthError(ErrOwnerNotFound, apiErrors.ErrUserNotFound, ownerID, "")
	}

	owner.PasswordHash = ""
	return owner, nil
}

func (s *Service) generateJWT(owner *domain.Owner) (string, error) {
	ttl := s.cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	now := s.now()
	claims := domain.Claims{
		OwnerID:    owner.ID,
		OwnerName:  owner.Name,
		OwnerEmail: owner.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
}

// ValidatePassword verifica o tamanho mínimo da senha
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return NewAuthError(ErrWeakPassword, apiErrors.ErrWeakPassword, fmt.Sprintf("a senha deve conter pelo menos %d caracteres", minPasswordLength))
	}
	return nil
}

// ChangePassword altera a senha do dono depois de conferir a senha atual
func (s *Service) ChangePassword(ctx context.Context, ownerID int, req domain.ChangePasswordRequest) error {
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return NewOwnerAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, ownerID, "Senha atual e nova senha são obrigatórias")
	}

	if req.NewPassword != req.Confirmation {
		return NewOwnerAuthError(ErrPasswordMismatch, apiErrors.ErrPasswordMismatch, ownerID, "")
	}

	if err := ValidatePassword(req.NewPassword); err != nil {
		return err
	}

	if req.NewPassword == req.CurrentPassword {
		return NewOwnerAuthError(ErrSamePassword, apiErrors.ErrWeakPassword, ownerID, "")
	}

	owner, err := s.ownerRepo.GetOwnerByID(ctx, ownerID)
	if err != nil {
		return NewOwnerAuthError(err, apiErrors.ErrDatabaseOperation, ownerID, "")
	}

	if owner == nil {
		return NewOwnerAuthError(ErrOwnerNotFound, apiErrors.ErrUserNotFound, ownerID, "")
	}

	// Verificar se a senha atual está correta
	if err := bcrypt.CompareHashAndPassword([]byte(owner.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return NewOwnerAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, ownerID, "Senha atual incorreta")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return NewOwnerAuthError(err, apiErrors.ErrInternalServer, ownerID, "")
	}

	if err := s.ownerRepo.UpdatePassword(ctx, ownerID, string(hashedPassword)); err != nil {
		return NewOwnerAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, ownerID, err.Error())
	}

	logrus.WithField("owner_id", ownerID).Info("Senha do dono alterada")
	return nil
}

// EnsureOwner cria o dono da loja com os dados da configuração quando ele ainda
// não existe. Chamado uma única vez na inicialização.
func (s *Service) EnsureOwner(ctx context.Context) (*domain.Owner, error) {
	email := handleEmail(s.cfg.Owner.Email)
	if email == "" || s.cfg.Owner.Password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "OWNER_EMAIL e OWNER_PASSWORD são obrigatórios")
	}

	owner, err := s.ownerRepo.GetOwnerByEmail(ctx, email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar dono no banco de dados")
	}

	if owner != nil {
		return owner, nil
	}

	if err := ValidatePassword(s.cfg.Owner.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(s.cfg.Owner.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(s.cfg.Owner.Name)
	if name == "" {
		name = domain.DefaultStoreName
	}

	owner, err = s.ownerRepo.CreateOwner(ctx, &domain.Owner{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	})
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar dono da loja")
	}

	logrus.WithFields(logrus.Fields{
		"owner_id":    owner.ID,
		"owner_email": owner.Email,
	}).Info("Dono da loja criado")

	return owner, nil
}
