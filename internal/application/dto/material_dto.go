package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaterialRequest alta de material. Quantity y Valor se normalizan a 2
// decimales antes de persistir.
type CreateMaterialRequest struct {
	Name        string          `json:"name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Valor       decimal.Decimal `json:"valor"`
	Factura     string          `json:"factura"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	LastDestiny string          `json:"lastDestiny"`
	UpdatedBy   string          `json:"updatedBy"`
}

// UpdateMaterialRequest actualización parcial: el id y updatedBy son
// obligatorios, el resto de campos son opcionales (nil = sin cambio).
type UpdateMaterialRequest struct {
	ID          int64            `json:"id"`
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	Quantity    *decimal.Decimal `json:"quantity"`
	Valor       *decimal.Decimal `json:"valor"`
	Factura     *string          `json:"factura"`
	Description *string          `json:"description"`
	LastDestiny *string          `json:"lastDestiny"`
	UpdatedBy   string           `json:"updatedBy"`
}

// AdjustMaterialRequest actualización especializada de cantidad y precio.
type AdjustMaterialRequest struct {
	ID        int64           `json:"id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Valor     decimal.Decimal `json:"valor"`
	UpdatedBy string          `json:"updatedBy"`
}

// DeleteMaterialRequest borrado por id (el id viaja en el cuerpo, como en el
// resto de mutaciones de la colección).
type DeleteMaterialRequest struct {
	ID int64 `json:"id"`
}

// MaterialResponse proyección de Material hacia el cliente.
type MaterialResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Valor       decimal.Decimal `json:"valor"`
	Factura     string          `json:"factura"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	LastDestiny string          `json:"lastDestiny"`
	UpdatedBy   string          `json:"updatedBy"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// MaterialListResponse listado completo de materiales.
type MaterialListResponse struct {
	Materials []MaterialResponse `json:"materials"`
}
