package service

import (
	"context"
	"testing"

	"tempero/internal/config"
	"tempero/internal/dto"
	"tempero/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type usuariosFalso struct {
	porID    map[uuid.UUID]*model.Usuario
	porEmail map[string]*model.Usuario
}

func novoUsuariosFalso() *usuariosFalso {
	return &usuariosFalso{
		porID:    make(map[uuid.UUID]*model.Usuario),
		porEmail: make(map[string]*model.Usuario),
	}
}

func (r *usuariosFalso) Criar(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.porID[u.ID] = u
	r.porEmail[u.Email] = u
	return nil
}

func (r *usuariosFalso) ObterPorID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.porID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *usuariosFalso) ObterPorEmail(_ context.Context, email string) (*model.Usuario, error) {
	u, ok := r.porEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func configDeTeste() *config.Config {
	return &config.Config{
		JWTSecret:          "segredo-de-teste",
		JWTExpirationHours: 8,
		JWTRefreshHours:    168,
	}
}

func seedUsuario(t *testing.T, repo *usuariosFalso, email, senha string, ativo bool) *model.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.Usuario{
		ID:        uuid.New(),
		EmpresaID: uuid.New(),
		Nome:      "Maria",
		Email:     email,
		SenhaHash: string(hash),
		Papel:     "admin",
		Ativo:     ativo,
	}
	require.NoError(t, repo.Criar(context.Background(), u))
	return u
}

func TestLogin(t *testing.T) {
	repo := novoUsuariosFalso()
	u := seedUsuario(t, repo, "maria@tempero.app", "senha-forte", true)
	svc := NewAuthService(repo, configDeTeste())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "maria@tempero.app",
		Senha: "senha-forte",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, u.ID.String(), resp.User.ID)

	// O token carrega o tenant, que o middleware usa para escopar tudo.
	token, err := jwt.Parse(resp.AccessToken, func(*jwt.Token) (interface{}, error) {
		return []byte("segredo-de-teste"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, u.EmpresaID.String(), claims["empresa_id"])
	assert.Equal(t, "admin", claims["papel"])
}

func TestLoginSenhaErrada(t *testing.T) {
	repo := novoUsuariosFalso()
	seedUsuario(t, repo, "maria@tempero.app", "senha-forte", true)
	svc := NewAuthService(repo, configDeTeste())

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "maria@tempero.app",
		Senha: "outra-senha",
	})
	assert.Error(t, err)
}

func TestLoginUsuarioInativo(t *testing.T) {
	repo := novoUsuariosFalso()
	seedUsuario(t, repo, "maria@tempero.app", "senha-forte", false)
	svc := NewAuthService(repo, configDeTeste())

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "maria@tempero.app",
		Senha: "senha-forte",
	})
	assert.Error(t, err)
}

func TestRefresh(t *testing.T) {
	repo := novoUsuariosFalso()
	seedUsuario(t, repo, "maria@tempero.app", "senha-forte", true)
	svc := NewAuthService(repo, configDeTeste())

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "maria@tempero.app",
		Senha: "senha-forte",
	})
	require.NoError(t, err)

	renovado, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, renovado.AccessToken)
	assert.Equal(t, login.User.ID, renovado.User.ID)
}

func TestRefreshTokenInvalido(t *testing.T) {
	svc := NewAuthService(novoUsuariosFalso(), configDeTeste())

	_, err := svc.Refresh(context.Background(), "nem-de-longe-um-jwt")
	assert.Error(t, err)
}

func TestCriarUsuarioEmailDuplicado(t *testing.T) {
	repo := novoUsuariosFalso()
	u := seedUsuario(t, repo, "maria@tempero.app", "senha-forte", true)
	svc := NewAuthService(repo, configDeTeste())

	_, err := svc.CriarUsuario(context.Background(), u.EmpresaID, dto.CriarUsuarioRequest{
		Nome:  "Outra Maria",
		Email: "maria@tempero.app",
		Senha: "12345678",
		Papel: "operador",
	})
	assert.Error(t, err)
}
