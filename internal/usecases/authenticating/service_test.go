package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/workspace-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/workspace-manager-api/internal/config"
	"github.com/vfg2006/workspace-manager-api/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			SecretKey:    "segredo-de-teste",
			LoginDelayMS: 0,
		},
	}
}

func activeUser() *domain.User {
	clientID := "cli-1"
	return &domain.User{
		ID:       "usr-1",
		Name:     "Carlos",
		Lastname: "Lima",
		Email:    "carlos.lima@acmetec.com.br",
		Active:   true,
		RoleID:   2,
		ClientID: &clientID,
	}
}

func TestLogin_AceitaQualquerSenha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockSessionRepo := mocks.NewMockSessionRepository(ctrl)
	service := NewService(mockUserRepo, mockSessionRepo, testConfig())

	user := activeUser()

	tests := []struct {
		name     string
		password string
	}{
		{name: "Senha qualquer", password: "qualquer-coisa"},
		{name: "Senha vazia", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo.EXPECT().GetByEmail(user.Email).Return(user)
			mockSessionRepo.EXPECT().SetCurrentUser(user).Return(nil)

			result, err := service.Login(user.Email, tt.password)
			require.NoError(t, err)
			require.NotNil(t, result)

			assert.NotEmpty(t, result.Token)
			assert.Equal(t, user.ID, result.User.ID)
		})
	}
}

func TestLogin_NormalizaEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockSessionRepo := mocks.NewMockSessionRepository(ctrl)
	service := NewService(mockUserRepo, mockSessionRepo, testConfig())

	user := activeUser()

	// E-mail com maiúsculas e espaços é normalizado antes da busca
	mockUserRepo.EXPECT().GetByEmail(user.Email).Return(user)
	mockSessionRepo.EXPECT().SetCurrentUser(user).Return(nil)

	result, err := service.Login("  Carlos.Lima@AcmeTec.com.br ", "x")
	require.NoError(t, err)
	assert.Equal(t, user.ID, result.User.ID)
}

func TestLogin_EspacoInternoNaoECorrigido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockSessionRepo := mocks.NewMockSessionRepository(ctrl)
	service := NewService(mockUserRepo, mockSessionRepo, testConfig())

	// Um e-mail malformado não deve ser "consertado" até casar com um
	// cadastro: só as bordas são aparadas
	mockUserRepo.EXPECT().GetByEmail("carlos lima@acmetec.com.br").Return(nil)

	result, err := service.Login("Carlos Lima@AcmeTec.com.br", "x")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_EmailDesconhecidoRetornaMensagemFixa(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockSessionRepo := mocks.NewMockSessionRepository(ctrl)
	service := NewService(mockUserRepo, mockSessionRepo, testConfig())

	mockUserRepo.EXPECT().GetByEmail("ninguem@example.com").Return(nil)

	result, err := service.Login("ninguem@example.com", "x")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_UsuarioDesativado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockSessionRepo := mocks.NewMockSessionRepository(ctrl)
	service := NewService(mockUserRepo, mockSessionRepo, testConfig())

	user := activeUser()
	user.Active = false

	mockUserRepo.EXPECT().GetByEmail(user.Email).Return(user)

	result, err := service.Login(user.Email, "x")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrUserDisabled)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, user.ID, authErr.UserID)
}

func TestLogin_EmailVazio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(
		mocks.NewMockUserRepository(ctrl),
		mocks.NewMockSessionRepository(ctrl),
		testConfig(),
	)

	result, err := service.Login("", "x")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}

func TestValidateToken_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockSessionRepo := mocks.NewMockSessionRepository(ctrl)
	service := NewService(mockUserRepo, mockSessionRepo, testConfig())

	user := activeUser()
	mockUserRepo.EXPECT().GetByEmail(user.Email).Return(user)
	mockSessionRepo.EXPECT().SetCurrentUser(user).Return(nil)

	result, err := service.Login(user.Email, "x")
	require.NoError(t, err)

	claims, err := service.ValidateToken(result.Token)
	require.NoError(t, err)

	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.RoleID, claims.UserRoleID)
	require.NotNil(t, claims.UserClientID)
	assert.Equal(t, *user.ClientID, *claims.UserClientID)
}

func TestValidateToken_TokenAdulterado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(
		mocks.NewMockUserRepository(ctrl),
		mocks.NewMockSessionRepository(ctrl),
		testConfig(),
	)

	_, err := service.ValidateToken("token-invalido")
	assert.Error(t, err)
}

func TestRestoreSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessionRepo := mocks.NewMockSessionRepository(ctrl)
	service := NewService(mocks.NewMockUserRepository(ctrl), mockSessionRepo, testConfig())

	user := activeUser()
	mockSessionRepo.EXPECT().GetCurrentUser().Return(user)
	assert.Equal(t, user, service.RestoreSession())

	mockSessionRepo.EXPECT().GetCurrentUser().Return(nil)
	assert.Nil(t, service.RestoreSession())
}

func TestLogout_LimpaASessao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessionRepo := mocks.NewMockSessionRepository(ctrl)
	service := NewService(mocks.NewMockUserRepository(ctrl), mockSessionRepo, testConfig())

	mockSessionRepo.EXPECT().ClearCurrentUser().Return(nil)
	assert.NoError(t, service.Logout())
}
