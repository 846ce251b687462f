package service

import (
	"context"
	"errors"
	"time"

	"github.com/raweer420/CRMBUTECO/internal/config"
	"github.com/raweer420/CRMBUTECO/internal/domain"
	"github.com/raweer420/CRMBUTECO/internal/dto"
	"github.com/raweer420/CRMBUTECO/internal/model"
	"github.com/raweer420/CRMBUTECO/internal/repository"
	"github.com/raweer420/CRMBUTECO/internal/worker"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)

	CreateUser(ctx context.Context, actor Actor, req dto.CreateUserRequest) (*dto.UserResponse, error)
	ListUsers(ctx context.Context) ([]dto.UserResponse, error)
	UpdateUser(ctx context.Context, actor Actor, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeactivateUser(ctx context.Context, actor Actor, id uuid.UUID) error
	ReactivateUser(ctx context.Context, actor Actor, id uuid.UUID) error
}

type authService struct {
	repo       repository.UserRepository
	cfg        *config.Config
	dispatcher *worker.Dispatcher
}

func NewAuthService(repo repository.UserRepository, cfg *config.Config, dispatcher *worker.Dispatcher) AuthService {
	return &authService{repo: repo, cfg: cfg, dispatcher: dispatcher}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("credenciais inválidas")
	}
	if !user.Active {
		return nil, errors.New("credenciais inválidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("credenciais inválidas")
	}

	return s.tokenResponse(user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("refresh token inválido ou expirado")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("token mal formado")
	}
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("token mal formado")
	}
	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, errors.New("token mal formado")
	}

	user, err := s.repo.FindByID(ctx, uid)
	if err != nil || !user.Active {
		return nil, errors.New("usuário não encontrado ou inativo")
	}

	return s.tokenResponse(user)
}

func (s *authService) CreateUser(ctx context.Context, actor Actor, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !actor.Caps.CanManageUsers {
		return nil, domain.NewValidationError("sem permissão para gerenciar usuários")
	}
	if !model.ValidRole(req.Role) {
		return nil, domain.NewValidationError("papel inválido: %s", req.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Active:       true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	auditViaDispatcher(ctx, s.dispatcher, actor, "USER_CREATED", "User", user.ID.String(), nil, map[string]interface{}{
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})

	return userToResponse(user), nil
}

func (s *authService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UserResponse, len(users))
	for i := range users {
		resp[i] = *userToResponse(&users[i])
	}
	return resp, nil
}

func (s *authService) UpdateUser(ctx context.Context, actor Actor, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if !actor.Caps.CanManageUsers {
		return nil, domain.NewValidationError("sem permissão para gerenciar usuários")
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, &domain.NotFoundError{Resource: "Usuário"}
	}

	before := map[string]interface{}{"name": user.Name, "email": user.Email, "role": user.Role}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Role != "" {
		if !model.ValidRole(req.Role) {
			return nil, domain.NewValidationError("papel inválido: %s", req.Role)
		}
		user.Role = req.Role
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	auditViaDispatcher(ctx, s.dispatcher, actor, "USER_UPDATED", "User", user.ID.String(), before,
		map[string]interface{}{"name": user.Name, "email": user.Email, "role": user.Role})

	return userToResponse(user), nil
}

func (s *authService) DeactivateUser(ctx context.Context, actor Actor, id uuid.UUID) error {
	if !actor.Caps.CanManageUsers {
		return domain.NewValidationError("sem permissão para gerenciar usuários")
	}
	if id == actor.UserID {
		return domain.NewValidationError("não é possível desativar o próprio usuário")
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	auditViaDispatcher(ctx, s.dispatcher, actor, "USER_DEACTIVATED", "User", id.String(),
		map[string]interface{}{"active": true}, map[string]interface{}{"active": false})
	return nil
}

func (s *authService) ReactivateUser(ctx context.Context, actor Actor, id uuid.UUID) error {
	if !actor.Caps.CanManageUsers {
		return domain.NewValidationError("sem permissão para gerenciar usuários")
	}
	if err := s.repo.Reactivate(ctx, id); err != nil {
		return err
	}
	auditViaDispatcher(ctx, s.dispatcher, actor, "USER_REACTIVATED", "User", id.String(),
		map[string]interface{}{"active": false}, map[string]interface{}{"active": true})
	return nil
}

func (s *authService) tokenResponse(user *model.User) (*dto.LoginResponse, error) {
	accessToken, err := s.generateToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.generateToken(user, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		User:         *userToResponse(user),
	}, nil
}

func (s *authService) generateToken(user *model.User, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(duration).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func userToResponse(u *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:     u.ID.String(),
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Active: u.Active,
	}
}
