package repository

import (
	"context"

	"github.com/angel1410/score-backend/internal/domain"
)

// UsersRepository manages application accounts (accounts store). Passwords
// are already hashed when they reach this layer.
type UsersRepository interface {
	ListUsuarios(ctx context.Context) ([]domain.Usuario, error)
	GetUsuario(ctx context.Context, id int64) (*domain.Usuario, error)
	GetUsuarioForLogin(ctx context.Context, cedula int64, passwordHash string) (*domain.Usuario, error)
	CreateUsuario(ctx context.Context, u domain.UsuarioCreate) (*domain.Usuario, error)
	UpdateUsuario(ctx context.Context, id int64, u domain.UsuarioUpdate) (*domain.Usuario, error)
	ToggleBloqueo(ctx context.Context, id int64) (*domain.Usuario, error)
	BatchInsertUsuarios(ctx context.Context, users []domain.UsuarioCreate) error
}
