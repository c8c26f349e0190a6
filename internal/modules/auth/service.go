package auth

import (
	"context"
	"errors"
	"strings"

	"serveez/internal/domain"
	"serveez/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

type Service struct {
	users UserRepository
	jwt   jwtService
}

func NewService(users UserRepository, jwt jwtService) *Service {
	return &Service{users: users, jwt: jwt}
}

// Register creates a user account. Self-registration is limited to the
// customer and provider roles, admins are seeded out of band.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	role := domain.RoleUser
	switch strings.ToUpper(req.Role) {
	case "", string(domain.RoleUser):
	case string(domain.RoleProvider):
		role = domain.RoleProvider
	default:
		return nil, ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &AuthResponse{User: user, Token: token}, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &AuthResponse{User: user, Token: token}, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.User, error) {
	user, err := s.GetCurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
