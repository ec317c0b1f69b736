package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/innovasport/almacen-api/internal/domain/entity"
)

// MaterialPatch campos opcionales de una actualización parcial de Material.
// Un puntero nil deja la columna intacta. UpdatedBy y LastUpdated se estampan
// siempre, aunque todos los demás campos sean nil (toque de metadatos).
type MaterialPatch struct {
	Name        *string
	Category    *string
	Quantity    *decimal.Decimal
	Valor       *decimal.Decimal
	Factura     *string
	Description *string
	LastDestiny *string
	UpdatedBy   string
}

// MaterialRepository define el puerto de persistencia para Material (DIP).
// Los métodos de lectura devuelven (nil, nil) cuando no hay fila.
type MaterialRepository interface {
	List(ctx context.Context) ([]*entity.Material, error)
	GetByID(ctx context.Context, id int64) (*entity.Material, error)
	GetByName(ctx context.Context, name string) (*entity.Material, error)
	Create(ctx context.Context, m *entity.Material) error
	PartialUpdate(ctx context.Context, id int64, patch MaterialPatch) (*entity.Material, error)
	UpdateQuantityValor(ctx context.Context, id int64, quantity, valor decimal.Decimal, updatedBy string) (*entity.Material, error)
	Delete(ctx context.Context, id int64) error
}
