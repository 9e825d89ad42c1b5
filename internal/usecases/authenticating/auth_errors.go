package authenticating

import (
	"errors"
	"fmt"
)

// Erros de autenticação. A mensagem de ErrUserNotFound é a mensagem fixa
// devolvida ao painel quando o e-mail não corresponde a nenhum usuário.
var (
	ErrUserNotFound        = errors.New("usuário não encontrado")
	ErrUserDisabled        = errors.New("usuário desativado")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidToken        = errors.New("token inválido")
)

// AuthError agrega o erro base ao código de API e a detalhes opcionais.
type AuthError struct {
	Err     error
	Code    string
	UserID  string
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewUserAuthError(baseErr error, code string, userID string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
