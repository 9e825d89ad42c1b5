package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/workspace-manager-api/infrastructure/repository"
	"github.com/vfg2006/workspace-manager-api/internal/config"
	"github.com/vfg2006/workspace-manager-api/internal/domain"
	"github.com/vfg2006/workspace-manager-api/pkg/apiErrors"
)

// Authenticator resolve e persiste o usuário logado. O login é um atalho de
// demonstração: localiza o usuário pelo e-mail (sem diferenciar maiúsculas)
// e aceita qualquer senha — não há verificação de credencial.
type Authenticator interface {
	Login(email, password string) (*LoginResult, error)
	Logout() error
	RestoreSession() *domain.User
	GetUserProfile(userID string) (*domain.User, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	ListUsers() []domain.User
}

type LoginResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type Service struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	cfg         *config.Config
}

func NewService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	cfg *config.Config,
) Authenticator {
	return &Service{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

// handleEmail normaliza o e-mail do login da mesma forma que o repositório
// de usuários: minúsculas e sem espaços nas bordas. Espaços internos não
// são removidos; um e-mail malformado não deve casar com nenhum cadastro.
func handleEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (s *Service) Login(email, password string) (*LoginResult, error) {
	if email == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "E-mail é obrigatório")
	}

	email = handleEmail(email)

	// Atraso fixo simulando a latência de rede do painel original.
	// Não é cancelável.
	if s.cfg.Auth.LoginDelayMS > 0 {
		time.Sleep(time.Duration(s.cfg.Auth.LoginDelayMS) * time.Millisecond)
	}

	user := s.userRepo.GetByEmail(email)
	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	if !user.Active {
		return nil, NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	// A senha é aceita incondicionalmente (modo demonstração).
	_ = password

	if err := s.sessionRepo.SetCurrentUser(user); err != nil {
		return nil, NewAuthError(err, apiErrors.ErrStorageOperation, "Erro ao persistir a sessão")
	}

	token, err := generateJWT(user, s.cfg.Auth.SecretKey)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role_id": user.RoleID,
	}).Info("Login realizado")

	return &LoginResult{Token: token, User: user}, nil
}

func (s *Service) Logout() error {
	return s.sessionRepo.ClearCurrentUser()
}

// RestoreSession recupera a sessão persistida, se houver. Chamada na
// subida da aplicação, depois do seed.
func (s *Service) RestoreSession() *domain.User {
	user := s.sessionRepo.GetCurrentUser()
	if user == nil {
		return nil
	}

	logrus.WithField("user_id", user.ID).Info("Sessão anterior restaurada")
	return user
}

func (s *Service) GetUserProfile(userID string) (*domain.User, error) {
	user := s.userRepo.GetByID(userID)
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}

func (s *Service) ListUsers() []domain.User {
	return s.userRepo.List()
}

func generateJWT(user *domain.User, secretKey string) (string, error) {
	claims := domain.Claims{
		UserID:       user.ID,
		UserName:     user.Name,
		UserLastname: user.Lastname,
		UserEmail:    user.Email,
		UserActive:   user.Active,
		UserRoleID:   user.RoleID,
		UserClientID: user.ClientID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
