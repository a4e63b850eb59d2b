package services

import (
	"context"
	"errors"

	"github.com/AkumaMonarch/NekoEats/internal/middleware"
	"github.com/AkumaMonarch/NekoEats/internal/model"
	"github.com/AkumaMonarch/NekoEats/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetimeHours = 12

type AuthService struct {
	Repo *repository.AuthRepository
}

func NewAuthService(r *repository.AuthRepository) *AuthService {
	return &AuthService{Repo: r}
}

// Login authenticates an admin and returns a signed token plus the admin record.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.Admin, error) {
	if email == "" || password == "" {
		return "", nil, errors.New("email and password are required")
	}
	admin, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		// do not reveal whether the email exists
		return "", nil, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}
	token, err := middleware.GenerateToken(admin.ID, admin.Email, admin.Role, tokenLifetimeHours)
	if err != nil {
		return "", nil, err
	}
	admin.PasswordHash = ""
	return token, admin, nil
}

// EnsureSeedAdmin creates the bootstrap admin account from the environment on
// first start. A no-op when the email already exists or no seed is configured.
func (s *AuthService) EnsureSeedAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	exists, err := s.Repo.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.Repo.Create(ctx, uuid.NewString(), email, string(hash), "admin")
}
