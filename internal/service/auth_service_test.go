package service

import (
	"context"
	"testing"

	"github.com/raweer420/CRMBUTECO/internal/config"
	"github.com/raweer420/CRMBUTECO/internal/domain"
	"github.com/raweer420/CRMBUTECO/internal/dto"
	"github.com/raweer420/CRMBUTECO/internal/model"
	"github.com/raweer420/CRMBUTECO/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Active = false
	return nil
}

func (r *stubUserRepo) Reactivate(_ context.Context, id uuid.UUID) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Active = true
	return nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

func newAuthFixture() (AuthService, *stubUserRepo) {
	repo := newStubUserRepo()
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
	}
	return NewAuthService(repo, cfg, nil), repo
}

func TestLogin_IssuesTokensWithRoleClaim(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()
	admin := adminActor()

	created, err := svc.CreateUser(ctx, admin, dto.CreateUserRequest{
		Name:     "Caixa Teste",
		Email:    "caixa@local",
		Password: "segredo123",
		Role:     domain.RoleCashier,
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, dto.LoginRequest{Email: "caixa@local", Password: "segredo123"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	require.NotEmpty(t, resp.AccessToken)

	token, err := jwt.Parse(resp.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, created.ID, claims["user_id"])
	assert.Equal(t, domain.RoleCashier, claims["role"])
}

func TestLogin_WrongPasswordAndInactiveUserRejected(t *testing.T) {
	svc, repo := newAuthFixture()
	ctx := context.Background()
	admin := adminActor()

	created, err := svc.CreateUser(ctx, admin, dto.CreateUserRequest{
		Name:     "Garçom",
		Email:    "garcom@local",
		Password: "segredo123",
		Role:     domain.RoleWaiter,
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "garcom@local", Password: "errada"})
	require.EqualError(t, err, "credenciais inválidas")

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "ninguem@local", Password: "segredo123"})
	require.EqualError(t, err, "credenciais inválidas")

	require.NoError(t, repo.SoftDelete(ctx, uuid.MustParse(created.ID)))
	_, err = svc.Login(ctx, dto.LoginRequest{Email: "garcom@local", Password: "segredo123"})
	require.EqualError(t, err, "credenciais inválidas")
}

func TestRefresh_RotatesTokens(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, adminActor(), dto.CreateUserRequest{
		Name:     "Gerente",
		Email:    "gerente@local",
		Password: "segredo123",
		Role:     domain.RoleManager,
	})
	require.NoError(t, err)

	login, err := svc.Login(ctx, dto.LoginRequest{Email: "gerente@local", Password: "segredo123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.Refresh(ctx, "not-a-token")
	require.Error(t, err)
}

func TestCreateUser_RequiresPermissionAndValidRole(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, cashierActor(), dto.CreateUserRequest{
		Name: "X", Email: "x@local", Password: "12345678", Role: domain.RoleWaiter,
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = svc.CreateUser(ctx, adminActor(), dto.CreateUserRequest{
		Name: "X", Email: "x@local", Password: "12345678", Role: "SUPERUSER",
	})
	require.ErrorAs(t, err, &verr)
}

func TestDeactivateUser_BlocksSelfDeactivation(t *testing.T) {
	svc, repo := newAuthFixture()
	ctx := context.Background()
	admin := adminActor()

	self := &model.User{ID: admin.UserID, Name: "Admin", Email: "admin@local", Role: domain.RoleAdmin, Active: true}
	require.NoError(t, repo.Create(ctx, self))

	err := svc.DeactivateUser(ctx, admin, admin.UserID)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)

	other, err := svc.CreateUser(ctx, admin, dto.CreateUserRequest{
		Name: "Estoque", Email: "estoque@local", Password: "12345678", Role: domain.RoleStock,
	})
	require.NoError(t, err)
	require.NoError(t, svc.DeactivateUser(ctx, admin, uuid.MustParse(other.ID)))
	assert.False(t, repo.users[uuid.MustParse(other.ID)].Active)

	require.NoError(t, svc.ReactivateUser(ctx, admin, uuid.MustParse(other.ID)))
	assert.True(t, repo.users[uuid.MustParse(other.ID)].Active)
}
