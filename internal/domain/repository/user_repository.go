package repository

import (
	"context"

	"github.com/innovasport/almacen-api/internal/domain/entity"
)

// UserPatch campos opcionales de una actualización de usuario (clave: email).
type UserPatch struct {
	PasswordHash *string
	Category     *string
}

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	List(ctx context.Context) ([]*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, u *entity.User) error
	Update(ctx context.Context, email string, patch UserPatch) (*entity.User, error)
	Delete(ctx context.Context, email string) error
}
