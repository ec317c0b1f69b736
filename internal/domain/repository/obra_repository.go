package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/innovasport/almacen-api/internal/domain/entity"
)

// ObraPatch campos opcionales de una actualización parcial de Obra.
// UpdatedAt se estampa siempre.
type ObraPatch struct {
	Obra          *string
	Email         *string
	Provincia     *string
	Localidad     *string
	Importe       *decimal.Decimal
	Contacto      *string
	Observaciones *string
}

// ObraRepository define el puerto de persistencia para Obra (DIP).
type ObraRepository interface {
	List(ctx context.Context) ([]*entity.Obra, error)
	GetByID(ctx context.Context, id int64) (*entity.Obra, error)
	Create(ctx context.Context, o *entity.Obra) error
	PartialUpdate(ctx context.Context, id int64, patch ObraPatch) (*entity.Obra, error)
	Delete(ctx context.Context, id int64) error
}
