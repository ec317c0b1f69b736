package auth_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/innovasport/almacen-api/internal/application/auth"
	"github.com/innovasport/almacen-api/internal/application/dto"
	"github.com/innovasport/almacen-api/internal/domain"
	"github.com/innovasport/almacen-api/internal/domain/entity"
	"github.com/innovasport/almacen-api/internal/domain/repository"
	"github.com/innovasport/almacen-api/pkg/jwt"
)

const (
	testSecret   = "unit-test-secret"
	testPassword = "super-secreta-123"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		f.users[u.Email] = u
	}
	return f
}

func (f *fakeUserRepo) List(context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := f.users[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	u.ID = int64(len(f.users) + 1)
	cp := *u
	f.users[u.Email] = &cp
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, email string, patch repository.UserPatch) (*entity.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	if patch.PasswordHash != nil {
		u.PasswordHash = *patch.PasswordHash
	}
	if patch.Category != nil {
		u.Category = *patch.Category
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, email string) error {
	delete(f.users, email)
	return nil
}

func seededRepo(t *testing.T) *fakeUserRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	return newFakeUserRepo(&entity.User{
		ID:           7,
		Email:        "demo@innovasport.com",
		PasswordHash: string(hash),
		Category:     entity.RoleAdmin,
	})
}

func newUseCase(repo repository.UserRepository) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "almacen-api",
	})
}

func TestLogin_OK(t *testing.T) {
	uc := newUseCase(seededRepo(t))

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "demo@innovasport.com",
		Password: testPassword,
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	require.NotEmpty(t, out.Token)

	// El token emitido refleja la identidad del usuario autenticado.
	claims, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "demo@innovasport.com", claims.Email)
	assert.Equal(t, entity.RoleAdmin, claims.Role)

	assert.Equal(t, int64(7), out.User.ID)
	assert.Equal(t, "demo@innovasport.com", out.User.Email)
	assert.Equal(t, entity.RoleAdmin, out.User.Category)
}

// La respuesta nunca incluye el hash de password.
func TestLogin_NoExponeElHash(t *testing.T) {
	uc := newUseCase(seededRepo(t))

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "demo@innovasport.com",
		Password: testPassword,
	})
	require.NoError(t, err)
	assert.NotContains(t, strings.ToLower(out.Token), "$2a$")
}

// Password incorrecto y email desconocido producen exactamente el mismo
// error: la API no permite distinguir si la cuenta existe.
func TestLogin_CredencialesInvalidasUniformes(t *testing.T) {
	uc := newUseCase(seededRepo(t))

	_, errWrongPass := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "demo@innovasport.com",
		Password: "otra-cosa",
	})
	_, errUnknown := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@innovasport.com",
		Password: testPassword,
	})

	require.Error(t, errWrongPass)
	require.Error(t, errUnknown)
	assert.True(t, errors.Is(errWrongPass, domain.ErrInvalidCredentials))
	assert.True(t, errors.Is(errUnknown, domain.ErrInvalidCredentials))
	assert.Equal(t, errWrongPass, errUnknown)
}
