package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/auth"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para registro de personal.
// ──────────────────────────────────────────────────────────────────────────────

const authTestTenant = "tenant-1"

type stubUserRepo struct {
	repository.UserRepository

	byEmail  map[string]*entity.User
	emailErr error
	created  []*entity.User
}

func (s *stubUserRepo) GetByEmailAndTenant(email, tenantID string) (*entity.User, error) {
	if s.emailErr != nil {
		return nil, s.emailErr
	}
	u := s.byEmail[email]
	if u == nil || u.TenantID != tenantID {
		return nil, nil
	}
	return u, nil
}

func (s *stubUserRepo) Create(user *entity.User) error {
	s.created = append(s.created, user)
	return nil
}

type stubTenantRepo struct {
	repository.TenantRepository

	byID map[string]*entity.Tenant
}

func (s *stubTenantRepo) GetByID(id string) (*entity.Tenant, error) {
	return s.byID[id], nil
}

func newAuthFixture(t *testing.T) (*auth.AuthUseCase, *stubUserRepo) {
	t.Helper()

	users := &stubUserRepo{byEmail: map[string]*entity.User{
		"existente@demo.resto": {ID: "user-1", TenantID: authTestTenant, Email: "existente@demo.resto"},
	}}
	tenants := &stubTenantRepo{byID: map[string]*entity.Tenant{
		authTestTenant: {ID: authTestTenant, Status: entity.TenantStatusActive, SubscriptionStatus: entity.SubscriptionActive},
	}}
	uc := auth.NewAuthUseCase(users, tenants, auth.JWTConfig{
		Secret: "test-secret", ExpMinutes: 60, Issuer: "resto-ops-test",
	})
	return uc, users
}

func registerRequest(email string) dto.RegisterRequest {
	return dto.RegisterRequest{
		TenantID: authTestTenant,
		Email:    email,
		Password: "demo1234!",
		Name:     "Ana Mesera",
		Role:     entity.RoleWaiter,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterUser
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_CaminoFeliz(t *testing.T) {
	uc, users := newAuthFixture(t)

	resp, err := uc.RegisterUser(registerRequest("nueva@demo.resto"))
	require.NoError(t, err)
	assert.Equal(t, "nueva@demo.resto", resp.Email)

	require.Len(t, users.created, 1)
	persisted := users.created[0]
	assert.Equal(t, authTestTenant, persisted.TenantID)
	assert.NotEqual(t, "demo1234!", persisted.PasswordHash, "el password nunca se persiste en claro")
}

func TestRegisterUser_EmailDuplicadoRechazado(t *testing.T) {
	uc, users := newAuthFixture(t)

	_, err := uc.RegisterUser(registerRequest("existente@demo.resto"))
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Empty(t, users.created)
}

// Un fallo de infraestructura al consultar el email se propaga: no se trata
// como "email libre" ni se intenta crear el usuario.
func TestRegisterUser_ErrorDeRepoSePropaga(t *testing.T) {
	uc, users := newAuthFixture(t)
	infraErr := errors.New("conexión rechazada")
	users.emailErr = infraErr

	_, err := uc.RegisterUser(registerRequest("nueva@demo.resto"))
	assert.ErrorIs(t, err, infraErr)
	assert.NotErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Empty(t, users.created, "con el chequeo de email caído no debe crearse nada")
}

func TestRegisterUser_TenantInexistenteNotFound(t *testing.T) {
	uc, _ := newAuthFixture(t)

	in := registerRequest("nueva@demo.resto")
	in.TenantID = "tenant-fantasma"

	_, err := uc.RegisterUser(in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
