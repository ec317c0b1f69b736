package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/innovasport/almacen-api/internal/application/dto"
	"github.com/innovasport/almacen-api/internal/domain"
	"github.com/innovasport/almacen-api/internal/domain/entity"
	"github.com/innovasport/almacen-api/internal/domain/repository"
)

// UserUseCase administración de usuarios. El control de rol del caller lo
// hace el middleware de autorización; aquí solo se valida la entrada.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve todos los usuarios, sin el hash de password.
func (uc *UserUseCase) List(ctx context.Context) (*dto.UserListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, toUserResponse(u))
	}
	return &dto.UserListResponse{Users: items}, nil
}

// Current devuelve el usuario del email indicado (el del token del caller).
// Devuelve (nil, nil) si la cuenta ya no existe.
func (uc *UserUseCase) Current(ctx context.Context, email string) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	out := toUserResponse(u)
	return &out, nil
}

// Create da de alta un usuario con el password hasheado con bcrypt.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado y
// ErrInvalidInput si el rol no pertenece al conjunto reconocido.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	category := in.Category
	if category == "" {
		category = entity.RoleEmployee
	}
	if !entity.ValidRole(category) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		Category:     category,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	out := toUserResponse(u)
	return &out, nil
}

// Update cambia password y/o rol del usuario direccionado por email.
// Devuelve (nil, nil) si el email no existe.
func (uc *UserUseCase) Update(ctx context.Context, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	patch := repository.UserPatch{}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		s := string(hash)
		patch.PasswordHash = &s
	}
	if in.Category != nil {
		if !entity.ValidRole(*in.Category) {
			return nil, domain.ErrInvalidInput
		}
		patch.Category = in.Category
	}
	u, err := uc.repo.Update(ctx, in.Email, patch)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	out := toUserResponse(u)
	return &out, nil
}

// Delete elimina un usuario por email. Idempotente.
func (uc *UserUseCase) Delete(ctx context.Context, email string) error {
	return uc.repo.Delete(ctx, email)
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		Category: u.Category,
	}
}
