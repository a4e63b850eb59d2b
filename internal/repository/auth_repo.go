package repository

import (
	"context"
	"errors"
	"time"

	"github.com/AkumaMonarch/NekoEats/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AuthRepository struct {
	DB *pgxpool.Pool
}

func NewAuthRepository(db *pgxpool.Pool) *AuthRepository {
	return &AuthRepository{DB: db}
}

func (r *AuthRepository) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	query := `SELECT id, email, password_hash, role, created_at FROM admins WHERE email=$1`
	var a model.Admin
	if err := r.DB.QueryRow(ctx, query, email).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt); err != nil {
		return nil, errors.New("admin not found")
	}
	return &a, nil
}

func (r *AuthRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var n int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM admins WHERE email=$1`, email).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *AuthRepository) Create(ctx context.Context, id, email, passwordHash, role string) error {
	query := `INSERT INTO admins (id, email, password_hash, role, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.Exec(ctx, query, id, email, passwordHash, role, time.Now())
	return err
}
